package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, r.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, r.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}), "touching edges do not overlap")
	assert.True(t, r.OverlapsX(Rect{X: 5, Y: 100, W: 10, H: 10}))
	assert.True(t, r.Inflate(5).Overlaps(Rect{X: 12, Y: 0, W: 2, H: 2}))
}

func TestRectCenter(t *testing.T) {
	x, y := Rect{X: 100, Y: 600, W: 30, H: 50}.Center()
	assert.Equal(t, 115.0, x)
	assert.Equal(t, 625.0, y)
}
