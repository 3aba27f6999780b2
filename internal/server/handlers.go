package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"dcasim/internal/engine"
	"dcasim/types"
)

// simulateRequest mirrors the field names the original UI submits.
type simulateRequest struct {
	InvestmentValue decimal.Decimal `json:"investment_value"`
	RepeatPurchase  string          `json:"repeat_purchase"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := req.toPlan()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.engine.Summarize(r.Context(), plan)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	plan, err := planFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	series, err := s.engine.Series(r.Context(), plan)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"points": series})
}

func (s *Server) handleSeriesCSV(w http.ResponseWriter, r *http.Request) {
	plan, err := planFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	series, err := s.engine.Series(r.Context(), plan)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="dca_series.csv"`)
	if err := engine.WriteSeriesCSV(w, series); err != nil {
		s.log.Error().Err(err).Msg("write series csv")
	}
}

func (req simulateRequest) toPlan() (types.Plan, error) {
	return buildPlan(req.InvestmentValue, req.RepeatPurchase, req.StartDate, req.EndDate)
}

func planFromQuery(q url.Values) (types.Plan, error) {
	investment, err := decimal.NewFromString(q.Get("investment_value"))
	if err != nil {
		return types.Plan{}, types.ErrNonPositiveInvestment
	}
	return buildPlan(investment, q.Get("repeat_purchase"), q.Get("start_date"), q.Get("end_date"))
}

func buildPlan(investment decimal.Decimal, cadence, start, end string) (types.Plan, error) {
	c, ok := types.ConvertCadence[cadence]
	if !ok {
		return types.Plan{}, types.ErrUnknownCadence
	}
	startDay, err := types.ParseDay(start)
	if err != nil {
		return types.Plan{}, errors.New("start_date must be YYYY-MM-DD")
	}
	endDay, err := types.ParseDay(end)
	if err != nil {
		return types.Plan{}, errors.New("end_date must be YYYY-MM-DD")
	}
	return types.NewPlan(investment, c, startDay, endDay)
}

func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrEndDatePriceUnavailable):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.log.Error().Err(err).Msg("simulation failed")
		writeError(w, http.StatusInternalServerError, "simulation failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
