package engine

// PortfolioVolatility is the fixed yearly volatility assumption applied to
// every non-empty portfolio. It is a deliberate simplification: position
// covariances are not modeled, so the blend carries a single constant rather
// than a derived figure.
const PortfolioVolatility = 0.15

// AggregatePositions reduces a position set into the scalar triple the
// projection engine consumes. The blended expected return is the
// investment-weighted average of the per-position returns, converted from the
// 0-100 percent scale to a yearly fraction.
//
// An empty (or zero-amount) portfolio yields all-zero metrics; there is no
// error condition.
func AggregatePositions(positions []Position) PortfolioMetrics {
	var total, weighted float64
	for _, p := range positions {
		total += p.InvestmentAmount
		weighted += p.InvestmentAmount * p.ExpectedReturn / 100
	}
	if total <= 0 {
		return PortfolioMetrics{}
	}
	return PortfolioMetrics{
		Investment:     total,
		ExpectedReturn: weighted / total,
		Volatility:     PortfolioVolatility,
	}
}
