package types

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanValidation(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		investment decimal.Decimal
		cadence    Cadence
		start, end time.Time
		wantErr    error
	}{
		{"valid", decimal.NewFromInt(100), Daily, start, end, nil},
		{"zero investment", decimal.Zero, Daily, start, end, ErrNonPositiveInvestment},
		{"negative investment", decimal.NewFromInt(-5), Weekly, start, end, ErrNonPositiveInvestment},
		{"unknown cadence", decimal.NewFromInt(100), Cadence("yearly"), start, end, ErrUnknownCadence},
		{"inverted range", decimal.NewFromInt(100), Daily, end, start, ErrInvalidDateRange},
		{"single day range", decimal.NewFromInt(100), Daily, start, start, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlan(tt.investment, tt.cadence, tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewPlanNormalizesDates(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	start := time.Date(2024, 1, 1, 23, 30, 0, 0, loc)
	end := time.Date(2024, 1, 10, 4, 0, 0, 0, loc)

	plan, err := NewPlan(decimal.NewFromInt(50), Weekly, start, end)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), plan.Start)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), plan.End)
}
