package config

// Config holds the saved plan settings (in-memory representation).
// Persistence is handled by the internal/db package.
//
// Amounts are in the user's currency; ExpectedReturnPercent and
// VolatilityPercent are on a 0-100 scale and converted to fractions at the
// engine boundary. ExpectedReturnPercent only applies when the position set
// is empty; otherwise the blended portfolio return wins.
type Config struct {
	CurrentAge        int     `json:"current_age"`
	HorizonYears      int     `json:"horizon_years"`
	AnnualInvestment  float64 `json:"annual_investment"`
	LumpSumInvestment float64 `json:"lump_sum_investment"`

	ExpectedReturnPercent float64 `json:"expected_return_percent"`
	VolatilityPercent     float64 `json:"volatility_percent"`
	TailPercentile        int     `json:"tail_percentile"`
}

// Default returns a Config with sensible defaults: a 30-year plan starting at
// age 35, a 10% symmetric tail, and the fixed 15% volatility assumption.
func Default() *Config {
	return &Config{
		CurrentAge:            35,
		HorizonYears:          30,
		AnnualInvestment:      120000,
		LumpSumInvestment:     0,
		ExpectedReturnPercent: 6,
		VolatilityPercent:     15,
		TailPercentile:        10,
	}
}
