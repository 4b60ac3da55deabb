package factory

import (
	"github.com/automoto/brawl-arena/archetypes"
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreatePopup spawns floating text that rises steadily over its lifetime.
func CreatePopup(w donburi.World, x, y float64, text, color string) *donburi.Entry {
	popup := archetypes.Popup.Spawn(w)

	life := config.Popup.Life
	components.Popup.SetValue(popup, components.PopupData{
		Text:   text,
		Color:  color,
		X:      x,
		StartY: y,
		Y:      y,
		Life:   life,
	})

	rise := float32(config.Popup.RisePerFrame * float64(life))
	components.Tween.Set(popup, gween.New(float32(y), float32(y)-rise, float32(life), ease.Linear))

	return popup
}
