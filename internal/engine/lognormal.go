package engine

import "math"

// lognormalParams are the parameters of a lognormal distribution fitted to a
// (mean, variance) pair by moment matching.
type lognormalParams struct {
	logMu    float64
	logSigma float64
}

// matchLognormal fits a lognormal to the given mean and variance:
//
//	sigma_w² = ln(1 + V/E²)
//	logMu    = ln(E) − sigma_w²/2
//
// Moment matching is undefined for E <= 0; the moment functions guarantee
// E >= 1 for degenerate inputs, so this only trips on caller misuse.
func matchLognormal(mean, variance float64) lognormalParams {
	if mean <= 0 {
		return lognormalParams{}
	}
	sw2 := math.Log(1 + variance/(mean*mean))
	return lognormalParams{
		logMu:    math.Log(mean) - 0.5*sw2,
		logSigma: math.Sqrt(sw2),
	}
}

// normQuantile is the standard-normal inverse CDF, p in (0,1).
// This is the only place the inverse normal CDF is used.
func normQuantile(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

// at evaluates the lognormal at a given standard-normal draw z.
func (lp lognormalParams) at(z float64) float64 {
	return math.Exp(lp.logMu + z*lp.logSigma)
}

// quantile evaluates the lognormal at cumulative probability p.
func (lp lognormalParams) quantile(p float64) float64 {
	return lp.at(normQuantile(p))
}
