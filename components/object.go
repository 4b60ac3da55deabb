package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// MidX returns the horizontal centre of the box.
func (o *ObjectData) MidX() float64 { return o.X + o.W/2 }

// MidY returns the vertical centre of the box.
func (o *ObjectData) MidY() float64 { return o.Y + o.H/2 }

// Feet returns the y coordinate of the bottom edge.
func (o *ObjectData) Feet() float64 { return o.Y + o.H }

// Touches reports a strict axis-aligned overlap with another box.
func (o *ObjectData) Touches(other *resolv.Object) bool {
	return o.X < other.X+other.W && o.X+o.W > other.X &&
		o.Y < other.Y+other.H && o.Y+o.H > other.Y
}

var Object = donburi.NewComponentType[ObjectData]()
