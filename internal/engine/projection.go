package engine

import "math"

// Band probability bounds. The configured tail is clamped into this range so
// the inverse normal CDF never sees 0 or 1.
const (
	minTailProbability = 0.0001
	maxTailProbability = 0.9999
)

// Project runs the full year-by-year projection. It returns one YearRecord
// per year 1..HorizonYears in ascending order plus a summary of the final
// year. A horizon of zero yields an empty sequence and a zero summary.
//
// Inputs are assumed pre-validated by the caller: non-negative amounts,
// volatility >= 0. The engine performs no recovery; degenerate inputs take
// explicit branches that return defined values instead of NaN.
//
// Project is a pure function: no shared state, safe for concurrent use, and
// bit-identical output for identical inputs.
func Project(in ProjectionInput) ProjectionResult {
	horizon := in.HorizonYears
	if horizon < 0 {
		horizon = 0
	}

	// Symmetric low/high tail. The quartiles are part of the evaluated set so
	// an out-of-range tail configuration can never cross the median.
	pLow := float64(in.TailPercentile) / 100
	if pLow < minTailProbability {
		pLow = minTailProbability
	}
	pHigh := 1 - pLow
	if pHigh > maxTailProbability {
		pHigh = maxTailProbability
	}
	probs := []float64{pLow, 0.25, 0.5, 0.75, pHigh}
	pMin, pMax := probs[0], probs[0]
	for _, p := range probs[1:] {
		pMin = math.Min(pMin, p)
		pMax = math.Max(pMax, p)
	}

	records := make([]YearRecord, 0, horizon)

	// Accumulator state carried across years. Each record is immutable once
	// appended; nothing looks back further than these scalars.
	var deterministic, cumAnnual, cumLump float64

	for year := 1; year <= horizon; year++ {
		lumpThisYear := 0.0
		if year == 1 {
			// The lump sum lands at the start of year 1; with the annual
			// contribution at year end the first row is fully deterministic.
			lumpThisYear = in.LumpSumInvestment
			cumLump = in.LumpSumInvestment
			deterministic = in.LumpSumInvestment + in.AnnualInvestment
		} else {
			deterministic = deterministic*(1+in.ExpectedReturn) + in.AnnualInvestment
		}
		cumAnnual += in.AnnualInvestment
		cumTotal := cumAnnual + cumLump

		// Independently of the deterministic path: fit both component
		// distributions for the stream seen so far and read the bands off the
		// shared-shock combination. The lump sum has aged year−1 years.
		annE, annV := annuityMoments(in.AnnualInvestment, year, in.ExpectedReturn, in.Volatility)
		lumpE, lumpV := lumpSumMoments(in.LumpSumInvestment, year-1, in.ExpectedReturn, in.Volatility)
		band := combinedBand{
			annuity: matchLognormal(annE, annV),
			lump:    matchLognormal(lumpE, lumpV),
			hasAnn:  in.AnnualInvestment > 0,
			hasLump: in.LumpSumInvestment > 0,
		}

		worst := math.Max(0, band.quantile(pMin))
		median := band.quantile(0.5)
		best := band.quantile(pMax)

		records = append(records, YearRecord{
			Year:                    year,
			Age:                     in.Age + year,
			AnnualContribution:      in.AnnualInvestment,
			LumpSum:                 lumpThisYear,
			CumulativeAnnual:        cumAnnual,
			CumulativeLumpSum:       cumLump,
			CumulativeContributions: cumTotal,
			MedianProjection:        deterministic,
			WorstCase:               worst,
			MedianCase:              median,
			BestCase:                best,
			TotalReturn:             deterministic - cumTotal,
		})
	}

	return ProjectionResult{
		YearlyData: records,
		Summary:    summarize(in, records),
	}
}

// summarize derives the read-only summary from the final record. It has no
// independent lifecycle.
func summarize(in ProjectionInput, records []YearRecord) ProjectionSummary {
	s := ProjectionSummary{
		AnnualInvestment:  in.AnnualInvestment,
		LumpSumInvestment: in.LumpSumInvestment,
		ExpectedReturn:    in.ExpectedReturn,
		Volatility:        in.Volatility,
	}
	if len(records) == 0 {
		return s
	}
	last := records[len(records)-1]
	s.FinalYear = last.Year
	s.FinalAge = last.Age
	s.TotalContributions = last.CumulativeContributions
	s.FinalValue = last.MedianProjection
	s.WorstCase = last.WorstCase
	s.BestCase = last.BestCase
	s.TotalReturn = last.TotalReturn
	return s
}
