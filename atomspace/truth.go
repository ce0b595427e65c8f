package atomspace

// TruthValue expresses probabilistic belief as a (strength, confidence,
// observation count) triple. Strength and Confidence are always within
// [0, 1]; Count only ever grows while the atom lives.
type TruthValue struct {
	// Strength is how true the atom is believed to be, from 0.0 to 1.0.
	Strength float64

	// Confidence is how certain that belief is, from 0.0 to 1.0.
	Confidence float64

	// Count is the number of observations that produced this value.
	Count uint64
}

// DefaultTruth returns the truth value assigned to newly created atoms:
// strength 0.5, confidence 0.5, no observations.
func DefaultTruth() TruthValue {
	return TruthValue{Strength: 0.5, Confidence: 0.5}
}

// InRange reports whether both strength and confidence lie within [0, 1].
func (tv TruthValue) InRange() bool {
	return inUnitRange(tv.Strength) && inUnitRange(tv.Confidence)
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
