package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"far away", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
		{"enclosing", Rect{X: -5, Y: -5, W: 30, H: 30}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestRandomRange(t *testing.T) {
	r := &seqRand{vals: []float64{0, 0.5, 0.999}}
	assert.Equal(t, 10.0, RandomRange(r, 10, 20))
	assert.Equal(t, 15.0, RandomRange(r, 10, 20))
	assert.Less(t, RandomRange(r, 10, 20), 20.0)
}

func TestAimAt(t *testing.T) {
	x, y := aimAt(0, 0, 3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	// Coincident points must not divide by zero
	x, y = aimAt(5, 5, 5, 5)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 1.0, y)
}
