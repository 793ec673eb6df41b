package engine

// combinedBand holds the two fitted component curves for one year together
// with flags marking which components actually carry money. A component with
// no contribution must add exactly 0, not the unit point mass the moment
// engine substitutes to keep logs finite.
type combinedBand struct {
	annuity lognormalParams
	lump    lognormalParams
	hasAnn  bool
	hasLump bool
}

// quantile evaluates both component curves at the same standard-normal draw
// before summing. Sharing one z across the annuity and the lump sum treats
// them as driven by the same realized return path (comonotonic), which keeps
// the worst/best bands moving consistently across both contribution types.
// A true sum-of-lognormals quantile has no closed form; the shared draw is
// the intended behavior, not an approximation to be replaced.
func (b combinedBand) quantile(p float64) float64 {
	z := normQuantile(p)
	var v float64
	if b.hasAnn {
		v += b.annuity.at(z)
	}
	if b.hasLump {
		v += b.lump.at(z)
	}
	return v
}
