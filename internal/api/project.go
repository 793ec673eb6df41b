package api

import (
	"encoding/json"
	"io"
	"net/http"

	"wealth-projector/internal/engine"
)

// projectRequest optionally overrides the stored plan settings and position
// set for a single projection run. Nil fields fall back to the saved values.
type projectRequest struct {
	Positions         []engine.Position `json:"positions"`
	AnnualInvestment  *float64          `json:"annual_investment"`
	LumpSumInvestment *float64          `json:"lump_sum_investment"`
	Age               *int              `json:"age"`
	HorizonYears      *int              `json:"horizon_years"`
	TailPercentile    *int              `json:"tail_percentile"`
}

// projectResponse is the engine output plus the aggregated portfolio metrics
// the run was derived from.
type projectResponse struct {
	YearlyData []engine.YearRecord      `json:"yearly_data"`
	Summary    engine.ProjectionSummary `json:"summary"`
	Portfolio  engine.PortfolioMetrics  `json:"portfolio"`
}

// handleProject aggregates the position set into scalar inputs, merges the
// plan settings, and runs the projection engine. When positions exist, their
// total value becomes an additional lump sum and the blended return and the
// fixed volatility assumption replace the configured percentages.
func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid projection payload")
		return
	}

	positions := req.Positions
	if positions == nil && s.db != nil {
		stored, err := s.db.ListPositions()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		positions = stored
	}
	metrics := engine.AggregatePositions(positions)

	s.mu.RLock()
	cfg := *s.cfg
	s.mu.RUnlock()

	in := engine.ProjectionInput{
		AnnualInvestment:  cfg.AnnualInvestment,
		LumpSumInvestment: cfg.LumpSumInvestment,
		Age:               cfg.CurrentAge,
		HorizonYears:      cfg.HorizonYears,
		ExpectedReturn:    cfg.ExpectedReturnPercent / 100,
		Volatility:        cfg.VolatilityPercent / 100,
		TailPercentile:    cfg.TailPercentile,
	}
	if metrics.Investment > 0 {
		in.LumpSumInvestment += metrics.Investment
		in.ExpectedReturn = metrics.ExpectedReturn
		in.Volatility = metrics.Volatility
	}

	if req.AnnualInvestment != nil {
		in.AnnualInvestment = *req.AnnualInvestment
	}
	if req.LumpSumInvestment != nil {
		in.LumpSumInvestment = *req.LumpSumInvestment
	}
	if req.Age != nil {
		in.Age = *req.Age
	}
	if req.HorizonYears != nil {
		in.HorizonYears = *req.HorizonYears
	}
	if req.TailPercentile != nil {
		in.TailPercentile = *req.TailPercentile
	}

	if msg := validateProjectionInput(in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	res := s.projections.Project(in)
	writeJSON(w, projectResponse{
		YearlyData: res.YearlyData,
		Summary:    res.Summary,
		Portfolio:  metrics,
	})
}

func validateProjectionInput(in engine.ProjectionInput) string {
	switch {
	case in.HorizonYears < 0 || in.HorizonYears > 100:
		return "horizon_years must be between 0 and 100"
	case in.AnnualInvestment < 0 || in.LumpSumInvestment < 0:
		return "investment amounts must be non-negative"
	case in.Volatility < 0:
		return "volatility must be non-negative"
	case in.TailPercentile < 0 || in.TailPercentile > 49:
		return "tail_percentile must be between 0 and 49"
	}
	return ""
}
