package field

import "math"

// MaxRDivRatio is the largest ratio an RDiv code can express.
const MaxRDivRatio = 1 << (1<<RDivWidth - 1)

// Ratio returns the divide ratio of the output divider, 2 raised to the code.
func (r RDiv) Ratio() int {
	return 1 << r
}

// RDivForRatio returns the code dividing by exactly n. n must be a power of
// two between 1 and MaxRDivRatio.
func RDivForRatio(n int) (RDiv, error) {
	if n < 1 || n > MaxRDivRatio || n&(n-1) != 0 {
		return 0, &RatioError{Ratio: float64(n)}
	}
	var r RDiv
	for n > 1 {
		n >>= 1
		r++
	}
	return r, nil
}

// NearestRDiv returns the code whose ratio is closest to ratio. Ties go to the
// smaller divider. Ratios below 1, above MaxRDivRatio or not finite are
// rejected.
func NearestRDiv(ratio float64) (RDiv, error) {
	if math.IsNaN(ratio) || ratio < 1 || ratio > MaxRDivRatio {
		return 0, &RatioError{Ratio: ratio}
	}
	best := RDiv1
	for r := RDiv2; r <= RDiv128; r++ {
		if math.Abs(float64(r.Ratio())-ratio) < math.Abs(float64(best.Ratio())-ratio) {
			best = r
		}
	}
	return best, nil
}
