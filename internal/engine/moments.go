package engine

import "math"

// The future value of money compounded under i.i.d. yearly returns with mean
// mu and standard deviation sigma has exactly computable first two moments.
// The key quantity is A = E[(1+r)²] = (1+mu)² + sigma², the second moment of
// the one-year gross-return factor. Everything below is closed form; no
// simulation is involved.

// annuityMoments returns the mean and variance of the future value of n
// consecutive end-of-year contributions of size c. Each subsequent
// contribution compounds for one year less.
//
// Degenerate inputs (n <= 0 or c == 0) return a defined point mass so that
// downstream lognormal matching never sees ln(0).
func annuityMoments(c float64, n int, mu, sigma float64) (mean, variance float64) {
	if n <= 0 || c == 0 {
		e := c
		if c == 0 {
			e = 1
		}
		return e, 0
	}

	m := 1 + mu
	a := m*m + sigma*sigma

	// Future value of an ordinary annuity. The mu=0 case uses the linear sum
	// to avoid dividing by zero.
	if mu == 0 {
		mean = c * float64(n)
	} else {
		mean = c * (math.Pow(m, float64(n)) - 1) / mu
	}

	// Second moment = c²·(S + 2T) with S the diagonal geometric sum over A
	// and T the cross terms between contributions made in different years.
	var s, t float64
	if a == 1 {
		s = float64(n)
		for p := 1; p < n; p++ {
			t += math.Pow(m, float64(p)) * float64(n-p)
		}
	} else {
		s = (math.Pow(a, float64(n)) - 1) / (a - 1)
		for p := 1; p < n; p++ {
			t += math.Pow(m, float64(p)) * (math.Pow(a, float64(n-p)) - 1) / (a - 1)
		}
	}
	second := c * c * (s + 2*t)

	variance = second - mean*mean
	if variance < 0 {
		// Floating-point cancellation guard.
		variance = 0
	}
	return mean, variance
}

// lumpSumMoments returns the mean and variance of a single amount l
// compounded over n years.
func lumpSumMoments(l float64, n int, mu, sigma float64) (mean, variance float64) {
	if n <= 0 || l == 0 {
		e := l
		if l == 0 {
			e = 1
		}
		return e, 0
	}

	m := 1 + mu
	a := m*m + sigma*sigma

	mean = l * math.Pow(m, float64(n))
	second := l * l * math.Pow(a, float64(n))

	variance = second - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, variance
}
