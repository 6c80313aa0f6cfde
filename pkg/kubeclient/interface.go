package kubeclient

import (
	"context"

	"k8s.io/apimachinery/pkg/watch"
)

// Client opens watch streams against a Kubernetes cluster.
type Client interface {
	// WatchNamespaces opens a watch stream on all namespaces.
	// timeoutSeconds bounds how long the server keeps the stream open;
	// zero lets the server pick its randomized default.
	WatchNamespaces(ctx context.Context, timeoutSeconds int64) (watch.Interface, error)
	// WatchPods opens a watch stream on pods across all namespaces.
	WatchPods(ctx context.Context, timeoutSeconds int64) (watch.Interface, error)
}
