package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetConsume(t *testing.T) {
	tests := []struct {
		name              string
		initial           int
		consume           int
		expectedRemaining int
		expectedExhausted bool
	}{
		{
			name:              "Consume Part Of The Budget",
			initial:           10,
			consume:           7,
			expectedRemaining: 3,
		},
		{
			name:              "Consume The Whole Budget",
			initial:           10,
			consume:           10,
			expectedRemaining: 0,
			expectedExhausted: true,
		},
		{
			name:              "Consume Past The Budget Never Goes Negative",
			initial:           3,
			consume:           10,
			expectedRemaining: 0,
			expectedExhausted: true,
		},
		{
			name:              "Zero Budget Starts Exhausted",
			initial:           0,
			consume:           0,
			expectedRemaining: 0,
			expectedExhausted: true,
		},
		{
			name:              "Negative Budget Is Treated As Zero",
			initial:           -5,
			consume:           2,
			expectedRemaining: 0,
			expectedExhausted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := NewBudget(tt.initial)
			for i := 0; i < tt.consume; i++ {
				remaining := budget.Consume()
				assert.GreaterOrEqual(t, remaining, 0)
			}

			assert.Equal(t, tt.expectedRemaining, budget.Remaining())
			assert.Equal(t, tt.expectedExhausted, budget.Exhausted())
		})
	}
}
