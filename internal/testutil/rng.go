package testutil

// ScriptedSource replays queued values, then falls back to constants.
// Scripted ints are clamped into the requested range.
type ScriptedSource struct {
	Ints   []int
	Floats []float64

	// FallbackFloat is returned once Floats is exhausted.
	FallbackFloat float64
	// FallbackHigh makes Int return max instead of min once Ints is exhausted.
	FallbackHigh bool
}

// Int implements rng.Source.
func (s *ScriptedSource) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	if len(s.Ints) > 0 {
		v := s.Ints[0]
		s.Ints = s.Ints[1:]
		if v < min {
			return min
		}
		if v > max {
			return max
		}
		return v
	}
	if s.FallbackHigh {
		return max
	}
	return min
}

// Float64 implements rng.Source.
func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) > 0 {
		v := s.Floats[0]
		s.Floats = s.Floats[1:]
		return v
	}
	return s.FallbackFloat
}

// FixedSource returns a constant float and the low or high end of every int range.
func FixedSource(f float64, high bool) *ScriptedSource {
	return &ScriptedSource{FallbackFloat: f, FallbackHigh: high}
}
