package systems

import (
	"github.com/automoto/brawl-arena/components"
	cfg "github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/gamemath"
	"github.com/automoto/brawl-arena/tags"
	"github.com/yohamta/donburi"
)

// applyPhysics integrates one tick of gravity and velocity, keeps the body on
// stage horizontally and resolves landing against the platforms.
func (m *Match) applyPhysics(e *donburi.Entry) {
	obj := components.Object.Get(e)
	ph := components.Physics.Get(e)

	x, y, vy := gamemath.Integrate(obj.X, obj.Y, ph.SpeedX, ph.SpeedY, cfg.Physics.Gravity)
	obj.X = gamemath.Clamp(x, 0, cfg.C.Arena.Width-obj.W)
	obj.Y = y
	ph.SpeedY = vy

	ph.OnGround = false
	ph.Platform = -1
	for _, p := range m.space.Objects() {
		if !p.HasTags(tags.ResolvPlatform) {
			continue
		}
		// Ledges are ignored for the rest of a drop-through window
		if ph.DropTimer > 0 && !p.HasTags(tags.ResolvGround) {
			continue
		}
		box := gamemath.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
		if !gamemath.LandsOn(obj.X, obj.W, obj.Feet(), ph.SpeedY, box, cfg.Physics.LandingTolerance) {
			continue
		}
		obj.Y = p.Y - obj.H
		ph.SpeedY = 0
		ph.OnGround = true
		if pe, ok := p.Data.(*donburi.Entry); ok {
			ph.Platform = components.Platform.Get(pe).Index
		}
		break
	}

	obj.Update()
}

// moveSpeed is the horizontal speed the combatant runs at this tick.
func (m *Match) moveSpeed(e *donburi.Entry) float64 {
	st := components.Status.Get(e)
	mods := gamemath.SpeedModifiers{
		SpeedBuff:     st.SpeedBuff,
		Slowed:        st.SlowDebuff,
		SpeedPlatform: m.standingOnLevel(e, cfg.LevelSpeed),
		Raging:        st.Raging > 0,
	}
	p := cfg.Physics
	return gamemath.MoveSpeed(p.BaseSpeed, mods, p.SpeedBuffMult, p.SlowDivisor, p.PlatformSpeedMult, p.RageSpeedMult)
}

// standingOn returns the platform the combatant is grounded on, or nil.
func (m *Match) standingOn(e *donburi.Entry) *donburi.Entry {
	ph := components.Physics.Get(e)
	if !ph.OnGround {
		return nil
	}
	return m.Platform(ph.Platform)
}

func (m *Match) standingOnLevel(e *donburi.Entry, level int) bool {
	p := m.standingOn(e)
	return p != nil && components.Platform.Get(p).Level == level
}

// applyPlatformEffects grants or clears the jump, slow and speed statuses of
// the platform underfoot. A speed buff granted with a duration outlives the
// platform until the duration runs out.
func (m *Match) applyPlatformEffects(e *donburi.Entry) {
	st := components.Status.Get(e)
	level := 0
	if p := m.standingOn(e); p != nil {
		level = components.Platform.Get(p).Level
	}

	st.JumpBuff = level == cfg.LevelJump
	st.SlowDebuff = level == cfg.LevelSlow
	if level == cfg.LevelSpeed {
		st.SpeedBuff = true
	} else if st.BuffDuration <= 0 {
		st.SpeedBuff = false
	}

	if st.BuffDuration > 0 {
		st.BuffDuration--
		if st.BuffDuration == 0 {
			obj := components.Object.Get(e)
			m.Popup(obj.X, obj.Y-20, "Buff End", "#aaaaaa")
			if level != cfg.LevelSpeed {
				st.SpeedBuff = false
			}
		}
	}
}
