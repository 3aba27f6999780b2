package engine

import "errors"

var (
	// ErrPriceUnavailable marks a single date the resolver could not
	// price. The simulation skips such dates and carries on.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrEndDatePriceUnavailable is fatal for the summary projection:
	// without a historical price for the end date there is no
	// end-of-range valuation. The series projection is unaffected.
	ErrEndDatePriceUnavailable = errors.New("no historical price for plan end date")
)
