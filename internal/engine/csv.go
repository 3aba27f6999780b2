package engine

import (
	"encoding/csv"
	"fmt"
	"io"

	"dcasim/types"
)

// WriteSeriesCSV writes a time series to any io.Writer as CSV.
// You can pass os.Stdout for debugging, or an HTTP response.
func WriteSeriesCSV(w io.Writer, series types.TimeSeries) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"date", "cumulative_investment", "cumulative_units"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, point := range series {
		record := []string{
			point.Date.Format(types.DayFormat),
			point.CumulativeInvestment.String(),
			point.CumulativeUnits.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
