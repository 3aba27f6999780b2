package engine

import (
	"time"

	"dcasim/types"
)

// PurchaseDates expands a date range into the ordered purchase dates
// for a cadence. The start date is always included; stepping is a fixed
// number of days per cadence (28 for four-weekly, deliberately not a
// calendar month). Pure function of its inputs.
func PurchaseDates(start, end time.Time, cadence types.Cadence) []time.Time {
	step, ok := types.CadenceToDays[cadence]
	if !ok {
		return nil
	}

	start, end = types.Day(start), types.Day(end)
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, step) {
		dates = append(dates, d)
	}
	return dates
}
