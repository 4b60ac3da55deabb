package systems

import (
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/automoto/brawl-arena/systems/factory"
	"github.com/yohamta/donburi"
)

// Popup queues floating text. The same text is shown at most once per
// debounce window.
func (m *Match) Popup(x, y float64, text, color string) {
	if last, ok := m.lastPopup[text]; ok && m.frame-last < config.Popup.DebounceTicks {
		return
	}
	m.lastPopup[text] = m.frame
	factory.CreatePopup(m.world, x, y, text, color)
	m.emit(messages.PopupEvent{X: x, Y: y, Text: text, Color: color})
}

// UpdatePopups rises each popup along its tween and drops the expired ones.
func UpdatePopups(m *Match) {
	var expired []donburi.Entity
	components.Popup.Each(m.world, func(e *donburi.Entry) {
		popup := components.Popup.Get(e)
		y, _ := components.Tween.Get(e).Update(1)
		popup.Y = float64(y)
		popup.Life--
		if popup.Life <= 0 {
			expired = append(expired, e.Entity())
		}
	})
	for _, e := range expired {
		m.world.Remove(e)
	}
}

// Popups returns the floating text currently on screen.
func (m *Match) Popups() []components.PopupData {
	var out []components.PopupData
	components.Popup.Each(m.world, func(e *donburi.Entry) {
		out = append(out, *components.Popup.Get(e))
	})
	return out
}
