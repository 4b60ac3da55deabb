package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PopupData struct {
	Text   string
	Color  string
	X      float64
	StartY float64
	Y      float64
	Life   int
}

var Popup = donburi.NewComponentType[PopupData]()
var Tween = donburi.NewComponentType[gween.Tween]()
