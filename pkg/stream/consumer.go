// Package stream consumes bounded Kubernetes watch streams.
package stream

import (
	"context"
	"fmt"
	"io"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/watch"
)

// Opener opens one watch session. A session cannot be replayed; every call
// returns a fresh stream.
type Opener func(ctx context.Context) (watch.Interface, error)

// Consumer prints events from watch sessions until a shared budget runs out.
//
// Cancellation is cooperative: after the budget reaches zero the consumer
// stops the watch and drains, without processing, any events the transport
// had already buffered.
type Consumer struct {
	logger *logrus.Logger
	out    io.Writer
	budget *Budget
	tally  *Tally
}

// NewConsumer returns a consumer writing event lines and completion markers to out.
func NewConsumer(logger *logrus.Logger, out io.Writer, budget *Budget) *Consumer {
	return &Consumer{
		logger: logger,
		out:    out,
		budget: budget,
	}
}

// SetTally attaches an event tally that is updated for every processed event.
func (c *Consumer) SetTally(tally *Tally) {
	c.tally = tally
}

// Run consumes a single watch session identified by streamName until the
// budget is exhausted or the stream ends. The server closing the stream is a
// normal end; transport failures and ERROR events abort the run without
// printing the completion marker.
func (c *Consumer) Run(ctx context.Context, streamName string, open Opener) error {
	w, err := open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open %s watch: %w", streamName, err)
	}
	defer w.Stop()

	sessionLogger := c.logger.WithFields(logrus.Fields{
		"stream":     streamName,
		"session_id": uuid.NewV4().String(),
	})
	sessionLogger.WithField("remaining", c.budget.Remaining()).Debug("watch session opened")

	stopped := false
	if c.budget.Exhausted() {
		w.Stop()
		stopped = true
	}

	for event := range w.ResultChan() {
		if stopped {
			// Buffered leftovers after the stop request are drained
			// unprocessed so the budget never goes negative.
			continue
		}

		if event.Type == watch.Error {
			return fmt.Errorf("%s watch failed: %w", streamName, apierrors.FromObject(event.Object))
		}

		if err := c.observe(event); err != nil {
			return fmt.Errorf("%s watch: %w", streamName, err)
		}

		if c.budget.Consume() == 0 {
			sessionLogger.Debug("budget exhausted, stopping watch session")
			w.Stop()
			stopped = true
		}
	}

	sessionLogger.WithField("remaining", c.budget.Remaining()).Debug("watch session closed")
	fmt.Fprintf(c.out, "Finished %s stream.\n", streamName)
	return nil
}

func (c *Consumer) observe(event watch.Event) error {
	if event.Object == nil {
		return fmt.Errorf("received %s event without an object", event.Type)
	}

	objMeta, err := meta.Accessor(event.Object)
	if err != nil {
		return fmt.Errorf("unexpected object in %s event: %w", event.Type, err)
	}

	kind := event.Object.GetObjectKind().GroupVersionKind().Kind
	printedKind := kind
	if printedKind == "" {
		// Typed objects can arrive with an empty TypeMeta.
		printedKind = "-"
	}
	fmt.Fprintf(c.out, "Event: %s %s %s\n", event.Type, printedKind, objMeta.GetName())

	if c.tally != nil {
		c.tally.Record(event.Type, kind, objMeta.GetNamespace())
	}

	return nil
}
