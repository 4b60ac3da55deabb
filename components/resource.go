package components

import "github.com/yohamta/donburi"

// ResourceData is the bounded pool abilities spend from (mana, rage, ammo...)
type ResourceData struct {
	Current    float64
	Max        float64
	RegenTimer int
}

// Add changes the pool by delta and keeps it inside [0, Max].
func (r *ResourceData) Add(delta float64) {
	r.Current = max(0, min(r.Max, r.Current+delta))
}

// Fill sets the pool to its maximum.
func (r *ResourceData) Fill() { r.Current = r.Max }

var Resource = donburi.NewComponentType[ResourceData]()
