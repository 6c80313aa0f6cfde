package stream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/apimachinery/pkg/watch"
)

func TestTallyRender(t *testing.T) {
	tally := NewTally()
	tally.Record(watch.Added, "Namespace", "")
	tally.Record(watch.Added, "Pod", "kube-system")
	tally.Record(watch.Modified, "Pod", "default")
	tally.Record(watch.Deleted, "Pod", "default")

	assert.Equal(t, 4, tally.Total())

	out := new(bytes.Buffer)
	tally.Render(out)

	rendered := out.String()
	assert.Contains(t, rendered, "ADDED")
	assert.Contains(t, rendered, "MODIFIED")
	assert.Contains(t, rendered, "DELETED")
	assert.Contains(t, rendered, "TOTAL")
	assert.Contains(t, rendered, "Kinds: Namespace, Pod")
	assert.Contains(t, rendered, "Namespaces: default, kube-system")
}

func TestTallyRenderEmpty(t *testing.T) {
	tally := NewTally()

	out := new(bytes.Buffer)
	tally.Render(out)

	assert.Contains(t, out.String(), "Kinds: -")
	assert.Contains(t, out.String(), "Namespaces: -")
}
