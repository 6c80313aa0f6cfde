package stream

// Budget is the countdown of remaining events to observe before a session
// requests cancellation. A single Budget is shared by reference across
// sequential sessions and is never reset between them.
type Budget struct {
	remaining int
}

// NewBudget returns a budget allowing n events. A negative n is treated as zero.
func NewBudget(n int) *Budget {
	if n < 0 {
		n = 0
	}
	return &Budget{remaining: n}
}

// Consume records one observed event and returns the remaining budget.
// The budget never goes below zero.
func (b *Budget) Consume() int {
	if b.remaining > 0 {
		b.remaining--
	}
	return b.remaining
}

// Remaining returns the number of events left in the budget.
func (b *Budget) Remaining() int {
	return b.remaining
}

// Exhausted reports whether the budget has reached zero.
func (b *Budget) Exhausted() bool {
	return b.remaining == 0
}
