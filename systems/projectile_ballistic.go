package systems

import (
	"math"

	"github.com/automoto/brawl-arena/components"
	cfg "github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/gamemath"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/yohamta/donburi"
)

// landingPlatform returns the top of a platform a falling box is passing
// through, if any.
func (m *Match) landingPlatform(obj *components.ObjectData, vy float64) (float64, bool) {
	if vy <= 0 {
		return 0, false
	}
	lip := cfg.Projectiles.BallisticHitLip
	for _, pe := range m.platforms {
		if !m.world.Valid(pe) {
			continue
		}
		p := components.Object.Get(m.world.Entry(pe))
		if obj.Y+obj.H >= p.Y && obj.Y < p.Y+lip && obj.X > p.X && obj.X < p.X+p.W {
			return p.Y, true
		}
	}
	return 0, false
}

// updateGrenade flies a grenade on the combatant gravity its aim was solved
// for, and bursts it on ground, platform or body contact.
func (m *Match) updateGrenade(e *donburi.Entry) {
	p := components.Projectile.Get(e)
	obj := components.Object.Get(e)

	p.VY += cfg.Physics.Gravity
	obj.X += p.VX
	obj.Y += p.VY
	obj.Update()

	if obj.X < 0 || obj.X > cfg.C.Arena.Width {
		p.Active = false
		return
	}

	hitGround := obj.Feet() >= cfg.C.Arena.GroundY
	if !hitGround {
		_, hitGround = m.landingPlatform(obj, p.VY)
	}

	enemy := m.Opponent(p.OwnerID)
	if enemy != nil && m.tryReflect(e, enemy, cfg.Projectiles.GrenadeNudge) {
		return
	}
	hitEnemy := enemy != nil && overlaps(obj, components.Object.Get(enemy))
	if !hitGround && !hitEnemy {
		return
	}

	p.Active = false
	p.HasExploded = true
	m.Particles(obj.X, obj.Y, "#ff9500", "nova")
	m.Cue(p.OwnerID, "hit", 0.5)

	hit := false
	switch {
	case hitEnemy:
		m.Damage(enemy, p.Damage, cfg.DamageNormal)
		hit = true
	case enemy != nil:
		if m.splashReaches(obj.X, obj.Y, enemy, cfg.Projectiles.GrenadeSplash) {
			m.Damage(enemy, p.Damage, cfg.DamageNormal)
			hit = true
		}
	}
	m.emit(messages.ExplosionEvent{OwnerID: p.OwnerID, Kind: p.Kind, X: obj.X, Y: obj.Y, Hit: hit})
}

// splashReaches measures from the burst point to the target's centre.
func (m *Match) splashReaches(x, y float64, target *donburi.Entry, radius float64) bool {
	cx, cy := rectOf(components.Object.Get(target)).Center()
	return gamemath.Distance(x, y, cx, cy) < radius
}

// updateC4 waits out the fuse, or a remote detonation that zeroed it.
func (m *Match) updateC4(e *donburi.Entry) {
	p := components.Projectile.Get(e)
	obj := components.Object.Get(e)

	p.Life--
	if p.Life > 0 {
		return
	}
	p.Active = false
	p.HasExploded = true
	m.Particles(obj.X, obj.Y, "#ff9500", "nova")
	m.Cue(p.OwnerID, "hit", 0.6)

	hit := false
	if enemy := m.Opponent(p.OwnerID); enemy != nil && m.splashReaches(obj.X, obj.Y, enemy, cfg.Projectiles.C4Splash) {
		m.Damage(enemy, p.Damage, cfg.DamageNormal)
		eo := components.Object.Get(enemy)
		m.Popup(eo.X, eo.Y, "BOOM!", "#ff3b30")
		hit = true
	}
	m.emit(messages.ExplosionEvent{OwnerID: p.OwnerID, Kind: p.Kind, X: obj.X, Y: obj.Y, Hit: hit})
}

// updateCarpetBomb holds a bomb off-screen for its stagger delay, then drops it
// until it bursts just above the ground.
func (m *Match) updateCarpetBomb(e *donburi.Entry) {
	p := components.Projectile.Get(e)
	obj := components.Object.Get(e)
	pc := cfg.Projectiles

	if p.TickTimer > 0 {
		p.TickTimer--
		return
	}
	p.VY += pc.BallisticGravity
	obj.Y += p.VY
	obj.Update()
	if obj.Y <= pc.CarpetBurstY {
		return
	}

	p.Active = false
	p.HasExploded = true
	m.Particles(obj.MidX(), cfg.C.Arena.GroundY, "#ff9500", "nova")
	m.Cue(p.OwnerID, "ult", 0.5)

	hit := false
	if enemy := m.Opponent(p.OwnerID); enemy != nil {
		eo := components.Object.Get(enemy)
		if rectOf(obj).OverlapsX(rectOf(eo)) && eo.Feet() > pc.CarpetReachY {
			m.Damage(enemy, p.Damage, cfg.DamageNormal)
			components.Status.Get(enemy).Stun = pc.CarpetStun
			hit = true
		}
	}
	m.emit(messages.ExplosionEvent{OwnerID: p.OwnerID, Kind: p.Kind, X: obj.MidX(), Y: obj.Y, Hit: hit})
}

// moveDice bounces a die off the ground, platforms and stage walls. It comes
// to rest once a ground bounce is too weak.
func (m *Match) moveDice(e *donburi.Entry) {
	p := components.Projectile.Get(e)
	obj := components.Object.Get(e)
	pc := cfg.Projectiles

	p.VY += pc.BallisticGravity
	obj.X += p.VX
	obj.Y += p.VY

	ground := cfg.C.Arena.GroundY
	if obj.Feet() > ground {
		obj.Y = ground - obj.H
		p.VY = -p.VY * pc.DiceRestitution
		if math.Abs(p.VY) < pc.DiceMinBounce {
			p.Active = false
		}
	}
	if top, ok := m.landingPlatform(obj, p.VY); ok {
		obj.Y = top - obj.H
		p.VY = -p.VY * pc.DiceRestitution
	}
	if obj.X < 0 || obj.X > cfg.C.Arena.Width {
		p.VX = -p.VX
	}
}
