package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Heal raises hp by amount without passing Max and returns the amount applied.
func (h *HealthData) Heal(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	before := h.Current
	h.Current = min(h.Max, h.Current+amount)
	return h.Current - before
}

var Health = donburi.NewComponentType[HealthData]()
