package engine

import (
	"math"
	"testing"
)

func TestNormQuantile_KnownValues(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.8413447460685429, 1},  // Phi(1)
		{0.15865525393145705, -1}, // Phi(-1)
		{0.975, 1.959963984540054},
		{0.025, -1.959963984540054},
	}
	for _, tt := range tests {
		got := normQuantile(tt.p)
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("normQuantile(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestNormQuantile_Symmetry(t *testing.T) {
	for _, p := range []float64{0.01, 0.1, 0.25, 0.4} {
		lo := normQuantile(p)
		hi := normQuantile(1 - p)
		if math.Abs(lo+hi) > 1e-12 {
			t.Errorf("z(%v)+z(%v) = %v, want 0", p, 1-p, lo+hi)
		}
	}
}

func TestMatchLognormal_RecoversMoments(t *testing.T) {
	// A lognormal with parameters (logMu, logSigma) has mean
	// exp(logMu + logSigma²/2) and variance mean²·(exp(logSigma²) − 1).
	// Moment matching must invert that exactly.
	cases := []struct{ mean, variance float64 }{
		{16459353.598717442, 28324017510328.188},
		{100000, 0},
		{1, 0},
		{5000, 2.5e6},
	}
	for _, c := range cases {
		lp := matchLognormal(c.mean, c.variance)
		gotMean := math.Exp(lp.logMu + 0.5*lp.logSigma*lp.logSigma)
		gotVar := gotMean * gotMean * (math.Exp(lp.logSigma*lp.logSigma) - 1)
		if !closeTo(gotMean, c.mean, 1e-10) {
			t.Errorf("mean round-trip: got %v, want %v", gotMean, c.mean)
		}
		if !closeTo(gotVar, c.variance, 1e-8) {
			t.Errorf("variance round-trip: got %v, want %v", gotVar, c.variance)
		}
	}
}

func TestMatchLognormal_ZeroMeanReturnsZeroParams(t *testing.T) {
	lp := matchLognormal(0, 100)
	if lp.logMu != 0 || lp.logSigma != 0 {
		t.Errorf("params = %+v, want zero value", lp)
	}
}

func TestLognormalQuantile_MonotonicInP(t *testing.T) {
	lp := matchLognormal(1e6, 1e11)
	prev := lp.quantile(0.01)
	for _, p := range []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
		q := lp.quantile(p)
		if q <= prev {
			t.Fatalf("quantile not increasing at p=%v: %v <= %v", p, q, prev)
		}
		prev = q
	}
}

func TestCombinedBand_SharedShockAddsComponents(t *testing.T) {
	ann := matchLognormal(annuityMoments(10000, 10, 0.06, 0.1))
	lump := matchLognormal(lumpSumMoments(50000, 9, 0.06, 0.1))
	band := combinedBand{annuity: ann, lump: lump, hasAnn: true, hasLump: true}

	for _, p := range []float64{0.1, 0.5, 0.9} {
		z := normQuantile(p)
		want := math.Exp(ann.logMu+z*ann.logSigma) + math.Exp(lump.logMu+z*lump.logSigma)
		if got := band.quantile(p); !closeTo(got, want, 1e-12) {
			t.Errorf("quantile(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestCombinedBand_MissingComponentContributesNothing(t *testing.T) {
	// The moment engine substitutes a unit point mass for zero contributions;
	// the combiner must not let that leak into the sum.
	lump := matchLognormal(lumpSumMoments(50000, 9, 0.06, 0.1))
	band := combinedBand{
		annuity: matchLognormal(annuityMoments(0, 10, 0.06, 0.1)),
		lump:    lump,
		hasAnn:  false,
		hasLump: true,
	}
	if got, want := band.quantile(0.5), lump.quantile(0.5); !closeTo(got, want, 1e-12) {
		t.Errorf("quantile = %v, want lump-only %v", got, want)
	}

	empty := combinedBand{}
	if got := empty.quantile(0.5); got != 0 {
		t.Errorf("empty band quantile = %v, want 0", got)
	}
}
