package engine

import "testing"

func TestAggregatePositions_WeightedBlend(t *testing.T) {
	positions := []Position{
		{Symbol: "BND", AssetClass: "bonds", ExpectedReturn: 4, InvestmentAmount: 100000},
		{Symbol: "EQT", AssetClass: "stocks", ExpectedReturn: 8, InvestmentAmount: 100000},
	}
	m := AggregatePositions(positions)
	if m.Investment != 200000 {
		t.Errorf("investment = %v, want 200000", m.Investment)
	}
	if !closeTo(m.ExpectedReturn, 0.06, 1e-12) {
		t.Errorf("expected return = %v, want 0.06", m.ExpectedReturn)
	}
	if m.Volatility != PortfolioVolatility {
		t.Errorf("volatility = %v, want %v", m.Volatility, PortfolioVolatility)
	}
}

func TestAggregatePositions_UnevenWeights(t *testing.T) {
	positions := []Position{
		{ExpectedReturn: 10, InvestmentAmount: 300000},
		{ExpectedReturn: 2, InvestmentAmount: 100000},
	}
	m := AggregatePositions(positions)
	if !closeTo(m.ExpectedReturn, 0.08, 1e-12) {
		t.Errorf("expected return = %v, want 0.08", m.ExpectedReturn)
	}
}

func TestAggregatePositions_EmptyPortfolioIsZero(t *testing.T) {
	m := AggregatePositions(nil)
	if m != (PortfolioMetrics{}) {
		t.Errorf("metrics = %+v, want zero value", m)
	}
}

func TestAggregatePositions_ZeroAmountsAvoidDivisionByZero(t *testing.T) {
	positions := []Position{
		{ExpectedReturn: 7, InvestmentAmount: 0},
		{ExpectedReturn: 5, InvestmentAmount: 0},
	}
	m := AggregatePositions(positions)
	if m.ExpectedReturn != 0 || m.Investment != 0 || m.Volatility != 0 {
		t.Errorf("metrics = %+v, want zero value", m)
	}
}
