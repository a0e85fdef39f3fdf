package dmath

// CheckNaN returns the index of the first NaN in values, scanning left to
// right. It returns (-1, false) when values holds no NaN. Infinities are not
// NaN.
func CheckNaN(values []float64) (int, bool) {
	for i, v := range values {
		if v != v {
			return i, true
		}
	}
	return -1, false
}
