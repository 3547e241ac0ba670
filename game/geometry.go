package game

// Rand is the random source the simulation draws from.
// *math/rand.Rand satisfies it; tests supply scripted sequences.
type Rand interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// Rect is an axis-aligned box with its origin at the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes intersect. Boxes that only share an
// edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Center returns the midpoint of the box
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RandomRange returns a uniform value in [min, max)
func RandomRange(r Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
