package retrieval

import "math"

// vector is a sparse vector keyed by vocabulary dimension. Terms absent
// from the map carry zero weight.
type vector map[int]float64

// dot returns the inner product of two sparse vectors. For L2-normalized
// vectors this is their cosine similarity.
func (v vector) dot(other vector) float64 {
	// Iterate the smaller side.
	if len(other) < len(v) {
		v, other = other, v
	}
	var sum float64
	for dim, w := range v {
		sum += w * other[dim]
	}
	return sum
}

// normalize scales v to unit L2 length in place. A zero vector stays zero.
func (v vector) normalize() {
	var sq float64
	for _, w := range v {
		sq += w * w
	}
	if sq == 0 {
		return
	}
	norm := math.Sqrt(sq)
	for dim, w := range v {
		v[dim] = w / norm
	}
}
