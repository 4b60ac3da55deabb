package systems

import (
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
)

// UpdateHazard advances the ground hazard cycle and the match clock. While the
// hazard is active, anyone standing on a hazard-level platform takes damage
// on the shared cadence.
func UpdateHazard(m *Match) {
	h := config.Hazard
	m.hazard.Timer++
	m.hazard.Active = m.hazard.Timer%h.Period < h.ActiveFrames
	if m.hazard.Timer%h.FramesPerSecond == 0 {
		m.clock++
	}

	if !m.hazard.Active || m.hazard.Timer%h.DamageInterval != 0 {
		return
	}
	for id := 1; id <= len(m.players); id++ {
		e := m.Player(id)
		if e == nil || components.Lives.Get(e).Dead() {
			continue
		}
		ph := components.Physics.Get(e)
		if !ph.OnGround || components.Status.Get(e).Invisible {
			continue
		}
		p := m.Platform(ph.Platform)
		if p == nil || components.Platform.Get(p).Level != config.LevelHazard {
			continue
		}
		m.Damage(e, h.Damage, config.DamageHazard)
	}
}
