package engine

import (
	"testing"
	"time"

	"dcasim/types"
)

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPurchaseDates(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		cadence types.Cadence
		want    []time.Time
	}{
		{
			"weekly over 20 days",
			day0, day0.AddDate(0, 0, 20), types.Weekly,
			[]time.Time{day0, day0.AddDate(0, 0, 7), day0.AddDate(0, 0, 14)},
		},
		{
			"daily over 3 days",
			day0, day0.AddDate(0, 0, 2), types.Daily,
			[]time.Time{day0, day0.AddDate(0, 0, 1), day0.AddDate(0, 0, 2)},
		},
		{
			"biweekly over 30 days",
			day0, day0.AddDate(0, 0, 30), types.Biweekly,
			[]time.Time{day0, day0.AddDate(0, 0, 14), day0.AddDate(0, 0, 28)},
		},
		{
			"four-weekly over 60 days steps exactly 28 days",
			day0, day0.AddDate(0, 0, 60), types.FourWeekly,
			[]time.Time{day0, day0.AddDate(0, 0, 28), day0.AddDate(0, 0, 56)},
		},
		{
			"start equals end yields just the start",
			day0, day0, types.Weekly,
			[]time.Time{day0},
		},
		{
			"unknown cadence yields nothing",
			day0, day0.AddDate(0, 0, 10), types.Cadence("yearly"),
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PurchaseDates(tt.start, tt.end, tt.cadence)
			if len(got) != len(tt.want) {
				t.Fatalf("PurchaseDates() returned %d dates, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("PurchaseDates()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPurchaseDatesIsPure(t *testing.T) {
	first := PurchaseDates(day0, day0.AddDate(0, 0, 20), types.Weekly)
	second := PurchaseDates(day0, day0.AddDate(0, 0, 20), types.Weekly)
	if len(first) != len(second) {
		t.Fatalf("repeated calls disagree: %d vs %d dates", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("repeated calls disagree at %d: %s vs %s", i, first[i], second[i])
		}
	}
}
