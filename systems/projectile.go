package systems

import (
	"github.com/automoto/brawl-arena/components"
	cfg "github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/gamemath"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/yohamta/donburi"
)

// UpdateProjectiles clears spent projectiles, then advances every live one.
// Projectiles spawned during this pass wait for the next tick.
func UpdateProjectiles(m *Match) {
	var spent []donburi.Entity
	components.Projectile.Each(m.world, func(e *donburi.Entry) {
		if !components.Projectile.Get(e).Active {
			spent = append(spent, e.Entity())
		}
	})
	for _, e := range spent {
		m.world.Remove(e)
	}

	live := m.Projectiles()
	for _, e := range live {
		if components.Projectile.Get(e).Active {
			m.updateProjectile(e, live)
		}
	}
}

// Projectiles returns the live projectiles.
func (m *Match) Projectiles() []*donburi.Entry {
	var out []*donburi.Entry
	components.Projectile.Each(m.world, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Active {
			out = append(out, e)
		}
	})
	return out
}

func (m *Match) updateProjectile(e *donburi.Entry, live []*donburi.Entry) {
	p := components.Projectile.Get(e)
	obj := components.Object.Get(e)
	p.Age++

	switch p.Kind {
	case cfg.StasisField:
		m.updateStasisField(e, live)
		return
	case cfg.LightPillar:
		m.updateLightPillar(e)
		return
	case cfg.MageBeam:
		m.updateMageBeam(e)
		return
	case cfg.Grenade:
		m.updateGrenade(e)
		return
	case cfg.C4Trap:
		m.updateC4(e)
		return
	case cfg.CarpetBomb:
		m.updateCarpetBomb(e)
		return
	case cfg.DiceBoulder:
		m.moveDice(e)
	case cfg.TimeNeedle:
		m.moveNeedle(e)
	default:
		obj.X += p.VX
		obj.Y += p.VY
	}
	obj.Update()

	if !p.Active {
		return
	}
	if offstage(obj) {
		p.Active = false
		return
	}

	enemy := m.Opponent(p.OwnerID)
	if enemy == nil {
		return
	}
	if m.tryReflect(e, enemy, cfg.Projectiles.ReflectNudge) {
		return
	}
	if overlaps(obj, components.Object.Get(enemy)) {
		m.projectileHit(e, enemy)
		p.Active = false
	}
}

// offstage reports a projectile that has left the arena by more than the margin.
func offstage(obj *components.ObjectData) bool {
	margin := cfg.Projectiles.OffstageMargin
	arena := cfg.C.Arena
	return obj.X < -margin || obj.X > arena.Width+margin ||
		obj.Y < -margin || obj.Y > arena.Height+margin
}

func rectOf(obj *components.ObjectData) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func overlaps(a, b *components.ObjectData) bool {
	return a.Touches(b.Object)
}

// tryReflect turns a projectile around when the target has an open reflect
// window and the projectile is inside its widened box. The target takes
// ownership and the projectile is pushed nudge velocity steps clear.
func (m *Match) tryReflect(e, target *donburi.Entry, nudge float64) bool {
	p := components.Projectile.Get(e)
	if !cfg.Projectiles.Reflectable[p.Kind] || components.Status.Get(target).Reflecting <= 0 {
		return false
	}
	obj := components.Object.Get(e)
	to := components.Object.Get(target)
	if !rectOf(obj).Overlaps(rectOf(to).Inflate(cfg.Projectiles.ReflectReach)) {
		return false
	}

	if owner := m.Player(p.OwnerID); owner != nil {
		oo := components.Object.Get(owner)
		p.VX, p.VY = gamemath.ReflectVelocity(obj.X, obj.Y, p.VX, p.VY, oo.X, oo.Y, cfg.Projectiles.ReflectMinSpeed)
	} else {
		p.VX = -p.VX
	}

	reflector := components.Player.Get(target).ID
	p.OwnerID = reflector
	obj.X += p.VX * nudge
	obj.Update()

	m.Popup(obj.X, obj.Y, "REFLECT!", "#ffd60a")
	m.Particles(obj.X, obj.Y, "#ffd60a", "spark")
	m.Cue(reflector, "hit", 2)
	m.emit(messages.ReflectEvent{ReflectorID: reflector, Kind: p.Kind, X: obj.X, Y: obj.Y})
	return true
}

// projectileHit resolves a direct hit on the opposing combatant.
func (m *Match) projectileHit(e, enemy *donburi.Entry) {
	p := components.Projectile.Get(e)
	pc := cfg.Projectiles
	owner := m.Player(p.OwnerID)

	switch p.Kind {
	case cfg.Hook:
		if owner == nil {
			return
		}
		oo := components.Object.Get(owner)
		components.Status.Get(owner).DoubleDamage = pc.HookBuffFrames
		m.Popup(oo.X, oo.Y-30, "Buffed!", "#af52de")
		dir := components.Player.Get(owner).Facing
		m.Teleport(enemy, oo.X+dir*pc.HookPull, oo.Y, "hook")
		components.Physics.Get(enemy).SpeedX = 0
		components.Status.Get(enemy).Stun = pc.HookStun
		eo := components.Object.Get(enemy)
		m.Popup(eo.X, eo.Y, "HOOKED!", "#af52de")

	case cfg.SwapBullet:
		if owner == nil {
			return
		}
		oo := components.Object.Get(owner)
		targetX := oo.X + components.Player.Get(owner).Facing*pc.BanishOffset
		if targetX < 0 {
			targetX = pc.BanishEdge
		}
		if targetX > cfg.C.Arena.Width {
			targetX = cfg.C.Arena.Width - pc.BanishEdge
		}
		m.Teleport(enemy, targetX, pc.BanishY, "banish")
		ph := components.Physics.Get(enemy)
		ph.SpeedX, ph.SpeedY = 0, 0
		components.Status.Get(enemy).Stun = pc.BanishStun
		m.Particles(targetX, pc.BanishY, "#af52de", "nova")
		m.Popup(targetX, pc.BanishY-40, "TELEPORTED!", "#af52de")

	default:
		m.Damage(enemy, p.Damage, cfg.DamageNormal)
	}
}
