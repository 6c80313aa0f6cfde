package stream

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/scylladb/go-set/strset"
	"k8s.io/apimachinery/pkg/watch"
)

// Tally accumulates event counts across watch sessions for the end-of-run summary.
type Tally struct {
	counts     map[watch.EventType]int
	kinds      *strset.Set
	namespaces *strset.Set
	total      int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{
		counts:     make(map[watch.EventType]int),
		kinds:      strset.New(),
		namespaces: strset.New(),
	}
}

// Record counts one processed event.
func (t *Tally) Record(eventType watch.EventType, kind string, namespace string) {
	t.counts[eventType]++
	t.total++
	if kind != "" {
		t.kinds.Add(kind)
	}
	if namespace != "" {
		t.namespaces.Add(namespace)
	}
}

// Total returns the number of recorded events.
func (t *Tally) Total() int {
	return t.total
}

// Render writes the event tally as a table followed by the distinct kinds
// and namespaces seen.
func (t *Tally) Render(out io.Writer) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Event Type", "Count"})
	table.SetColumnSeparator(" ")
	table.SetCenterSeparator("-")
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	eventTypes := make([]string, 0, len(t.counts))
	for eventType := range t.counts {
		eventTypes = append(eventTypes, string(eventType))
	}
	sort.Strings(eventTypes)

	for _, eventType := range eventTypes {
		table.Append([]string{eventType, strconv.Itoa(t.counts[watch.EventType(eventType)])})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(t.total)})
	table.Render()

	fmt.Fprintf(out, "Kinds: %s\n", joinSorted(t.kinds))
	fmt.Fprintf(out, "Namespaces: %s\n", joinSorted(t.namespaces))
}

func joinSorted(set *strset.Set) string {
	if set.Size() == 0 {
		return "-"
	}
	items := set.List()
	sort.Strings(items)
	return strings.Join(items, ", ")
}
