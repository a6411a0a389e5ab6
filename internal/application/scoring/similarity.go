// Package scoring provides the numeric primitives shared by the plan
// generation and substitution scorers.
package scoring

// RatioSimilarity compares two non-negative quantities as min/max.
// Both zero means the values agree perfectly; exactly one zero means they
// could not be more different.
func RatioSimilarity(a, b float64) float64 {
	if a <= 0 && b <= 0 {
		return 1.0
	}
	if a <= 0 || b <= 0 {
		return 0.0
	}
	if a < b {
		return a / b
	}
	return b / a
}

// Clamp01 clamps a score into [0,1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
