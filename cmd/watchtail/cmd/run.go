package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/watch"

	"github.com/openkube/watchtail/cmd/watchtail/cmd/flags"
	"github.com/openkube/watchtail/pkg/kubeclient"
	"github.com/openkube/watchtail/pkg/log"
	"github.com/openkube/watchtail/pkg/stream"
)

const (
	defaultBudget        = 10
	defaultServerTimeout = 10 * time.Second
)

// runEnv holds environment defaults for the run command, e.g.
// WATCHTAIL_KUBECONFIG and WATCHTAIL_KUBE_CONTEXT.
type runEnv struct {
	Kubeconfig  string `envconfig:"kubeconfig"`
	KubeContext string `envconfig:"kube_context"`
}

type runCommand struct {
	globalFlags *flags.GlobalFlags
	logger      *logrus.Logger

	kubeconfig  string
	kubeContext string

	budget        int
	serverTimeout time.Duration
	readTimeout   time.Duration
	showSummary   bool

	kubeClient kubeclient.Client
	out        io.Writer
}

func newRunCommand(globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &runCommand{
		globalFlags: globalFlags,
		logger:      log.GetLogger(),
	}

	env := runEnv{}
	if err := envconfig.Process("watchtail", &env); err != nil {
		cmd.logger.WithError(err).Warn("failed to process environment defaults")
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Tail the namespace and pod watch streams until the event budget runs out",
		RunE:  cmd.run,
	}

	// Add flags
	runCmd.Flags().StringVar(&cmd.kubeconfig, "kubeconfig", env.Kubeconfig, "path to the kubeconfig file, defaults to the conventional locations")
	runCmd.Flags().StringVar(&cmd.kubeContext, "kube-context", env.KubeContext, "name of the kubeconfig context to use")
	runCmd.Flags().IntVar(&cmd.budget, "budget", defaultBudget, "number of events to observe across both streams before stopping")
	runCmd.Flags().DurationVar(&cmd.serverTimeout, "server-timeout", defaultServerTimeout, "server-side timeout per watch stream, 0 lets the server pick a randomized default")
	runCmd.Flags().DurationVar(&cmd.readTimeout, "read-timeout", 0, "client-side request timeout, 0 disables it and a silent network outage can hang the watch")
	runCmd.Flags().BoolVar(&cmd.showSummary, "summary", false, "print an event tally after both streams finish")

	return runCmd
}

func (c *runCommand) run(_ *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if c.out == nil {
		c.out = os.Stdout
	}

	if c.kubeClient == nil {
		kubeClient, err := kubeclient.NewKubeClient(c.logger, c.kubeconfig, c.kubeContext, c.readTimeout)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		c.kubeClient = kubeClient
	}

	timeoutSeconds := int64(c.serverTimeout / time.Second)
	budget := stream.NewBudget(c.budget)
	consumer := stream.NewConsumer(c.logger, c.out, budget)

	var tally *stream.Tally
	if c.showSummary {
		tally = stream.NewTally()
		consumer.SetTally(tally)
	}

	c.logger.WithFields(logrus.Fields{
		"budget":          c.budget,
		"timeout_seconds": timeoutSeconds,
	}).Info("starting watch streams")

	err := consumer.Run(ctx, "namespace", func(ctx context.Context) (watch.Interface, error) {
		return c.kubeClient.WatchNamespaces(ctx, timeoutSeconds)
	})
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	err = consumer.Run(ctx, "pod", func(ctx context.Context) (watch.Interface, error) {
		return c.kubeClient.WatchPods(ctx, timeoutSeconds)
	})
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if tally != nil {
		tally.Render(c.out)
	}

	return nil
}
