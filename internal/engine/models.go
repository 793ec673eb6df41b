package engine

// Position is a single holding in the caller-owned portfolio.
// ExpectedReturn is on a 0-100 percent scale; InvestmentAmount is a
// non-negative currency amount.
type Position struct {
	ID               string  `json:"id"`
	Symbol           string  `json:"symbol"`
	AssetClass       string  `json:"asset_class"`
	ExpectedReturn   float64 `json:"expected_return"`
	InvestmentAmount float64 `json:"investment_amount"`
	AddedAt          string  `json:"added_at"`
}

// PortfolioMetrics is the scalar reduction of a position set: total invested
// capital, blended expected return, and the portfolio volatility assumption.
// ExpectedReturn and Volatility are yearly fractions (0.06 = 6%).
type PortfolioMetrics struct {
	Investment     float64 `json:"investment"`
	ExpectedReturn float64 `json:"expected_return"`
	Volatility     float64 `json:"volatility"`
}

// ProjectionInput holds everything the projection engine needs for one run.
// Amounts are currency, ExpectedReturn/Volatility are yearly fractions, and
// TailPercentile is the symmetric low/high tail in whole percent (0-50).
// The lump sum is applied once, at the start of year 1.
type ProjectionInput struct {
	AnnualInvestment  float64 `json:"annual_investment"`
	LumpSumInvestment float64 `json:"lump_sum_investment"`
	Age               int     `json:"age"`
	HorizonYears      int     `json:"horizon_years"`
	ExpectedReturn    float64 `json:"expected_return"`
	Volatility        float64 `json:"volatility"`
	TailPercentile    int     `json:"tail_percentile"`
}

// YearRecord is one row of the projection, for one year of the plan.
//
// MedianProjection is the deterministic compounding path
// (prev × (1+mu) + contribution); MedianCase is the lognormal band median at
// p=0.5. The two are close but not equal and both are reported.
type YearRecord struct {
	Year int `json:"year"`
	Age  int `json:"age"`

	AnnualContribution      float64 `json:"annual_contribution"`
	LumpSum                 float64 `json:"lump_sum"`
	CumulativeAnnual        float64 `json:"cumulative_annual"`
	CumulativeLumpSum       float64 `json:"cumulative_lump_sum"`
	CumulativeContributions float64 `json:"cumulative_contributions"`

	MedianProjection float64 `json:"median_projection"`
	WorstCase        float64 `json:"worst_case"`
	MedianCase       float64 `json:"median_case"`
	BestCase         float64 `json:"best_case"`
	TotalReturn      float64 `json:"total_return"`
}

// ProjectionSummary is a read-only view of the final YearRecord plus the
// nominal inputs the projection ran with.
type ProjectionSummary struct {
	FinalYear          int     `json:"final_year"`
	FinalAge           int     `json:"final_age"`
	TotalContributions float64 `json:"total_contributions"`
	FinalValue         float64 `json:"final_value"`
	WorstCase          float64 `json:"worst_case"`
	BestCase           float64 `json:"best_case"`
	TotalReturn        float64 `json:"total_return"`

	AnnualInvestment  float64 `json:"annual_investment"`
	LumpSumInvestment float64 `json:"lump_sum_investment"`
	ExpectedReturn    float64 `json:"expected_return"`
	Volatility        float64 `json:"volatility"`
}

// ProjectionResult is the full engine output: one record per year in
// ascending order, plus the summary.
type ProjectionResult struct {
	YearlyData []YearRecord      `json:"yearly_data"`
	Summary    ProjectionSummary `json:"summary"`
}
