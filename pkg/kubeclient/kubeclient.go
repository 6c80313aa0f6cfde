// Package kubeclient wraps the Kubernetes client used to open watch streams.
package kubeclient

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

type client struct {
	client kubernetes.Interface
	logger *logrus.Logger
}

// NewKubeClient returns a new Kubernetes client.
//
// If kubeconfig is empty, the config is discovered from the conventional
// locations (KUBECONFIG, ~/.kube/config). readTimeout, when non-zero, bounds
// how long a single request may stay open on the client side; leaving it at
// zero means a silent network outage can block a watch indefinitely.
func NewKubeClient(logger *logrus.Logger, kubeconfig string, kubeContext string, readTimeout time.Duration) (Client, error) {
	restConfig, err := buildRestConfig(kubeconfig, kubeContext, readTimeout)
	if err != nil {
		return nil, err
	}

	clientSet, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kube client: %w", err)
	}

	return &client{
		client: clientSet,
		logger: logger,
	}, nil
}

func buildRestConfig(kubeconfig string, kubeContext string, readTimeout time.Duration) (*rest.Config, error) {
	var restConfig *rest.Config
	var err error
	if kubeconfig == "" || kubeContext != "" {
		loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
		loadingRules.ExplicitPath = kubeconfig
		restConfig, err = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			loadingRules,
			&clientcmd.ConfigOverrides{
				CurrentContext: kubeContext,
			},
		).ClientConfig()
	} else {
		restConfig, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build kubeconfig: %w", err)
	}

	if readTimeout > 0 {
		restConfig.Timeout = readTimeout
	}

	return restConfig, nil
}

// WatchNamespaces opens a watch stream on all namespaces.
func (k *client) WatchNamespaces(ctx context.Context, timeoutSeconds int64) (watch.Interface, error) {
	k.logger.WithField("timeout_seconds", timeoutSeconds).Debug("opening namespace watch")

	w, err := k.client.CoreV1().Namespaces().Watch(ctx, listOptions(timeoutSeconds))
	if err != nil {
		return nil, fmt.Errorf("failed to watch namespaces: %w", err)
	}
	return w, nil
}

// WatchPods opens a watch stream on pods across all namespaces.
func (k *client) WatchPods(ctx context.Context, timeoutSeconds int64) (watch.Interface, error) {
	k.logger.WithField("timeout_seconds", timeoutSeconds).Debug("opening pod watch")

	w, err := k.client.CoreV1().Pods(metav1.NamespaceAll).Watch(ctx, listOptions(timeoutSeconds))
	if err != nil {
		return nil, fmt.Errorf("failed to watch pods: %w", err)
	}
	return w, nil
}

func listOptions(timeoutSeconds int64) metav1.ListOptions {
	opts := metav1.ListOptions{}
	if timeoutSeconds > 0 {
		opts.TimeoutSeconds = &timeoutSeconds
	}
	return opts
}
