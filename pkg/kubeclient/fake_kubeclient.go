package kubeclient

import (
	"context"

	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/watch"
)

// FakeClient is an in-memory Client that replays preloaded events.
type FakeClient struct {
	logger *logrus.Logger

	// NamespaceEvents are replayed by WatchNamespaces in order.
	NamespaceEvents []watch.Event
	// PodEvents are replayed by WatchPods in order.
	PodEvents []watch.Event
	// WatchErr, when set, is returned instead of opening a stream.
	WatchErr error
	// HoldOpen keeps the replayed stream open after the last event,
	// simulating a server that has not hit its timeout yet.
	HoldOpen bool
}

// NewFakeClient returns a new fake Kubernetes client.
func NewFakeClient(logger *logrus.Logger) *FakeClient {
	return &FakeClient{
		logger: logger,
	}
}

// WatchNamespaces implements Client.
func (f *FakeClient) WatchNamespaces(ctx context.Context, timeoutSeconds int64) (watch.Interface, error) {
	f.logger.Debugf("fake namespace watch with timeout %d", timeoutSeconds)
	return f.replay(f.NamespaceEvents)
}

// WatchPods implements Client.
func (f *FakeClient) WatchPods(ctx context.Context, timeoutSeconds int64) (watch.Interface, error) {
	f.logger.Debugf("fake pod watch with timeout %d", timeoutSeconds)
	return f.replay(f.PodEvents)
}

func (f *FakeClient) replay(events []watch.Event) (watch.Interface, error) {
	if f.WatchErr != nil {
		return nil, f.WatchErr
	}

	w := watch.NewFakeWithChanSize(len(events)+1, false)
	for _, event := range events {
		w.Action(event.Type, event.Object)
	}
	if !f.HoldOpen {
		// Closing with events still buffered mimics a server-side
		// timeout arriving after the last delivered event.
		w.Stop()
	}
	return w, nil
}
