package systems

import (
	"testing"

	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/kits"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletHitsAndDespawns(t *testing.T) {
	m := newTestMatch(t, config.Marksman, config.Tank)
	disableHazard(m)
	place(m, 1, 200, groundTop)
	tank := place(m, 2, 400, groundTop)
	idle(m, 1)

	act(m, 1, messages.Intent{Attack: true})
	idle(m, 20)
	assert.Equal(t, 5.0, components.Health.Get(tank).Current)
	assert.Empty(t, m.Projectiles())
}

func TestProjectilesLeaveStage(t *testing.T) {
	m := newTestMatch(t, config.Marksman, config.Tank)
	disableHazard(m)
	m.Spawn(config.Bullet, 1, 990, 50, 15, 0, 1)

	idle(m, 3)
	assert.Equal(t, 1, countKind(m, config.Bullet))
	idle(m, 3)
	assert.Equal(t, 0, countKind(m, config.Bullet))
}

func TestDeadOpponentIsNotHit(t *testing.T) {
	m := newTestMatch(t, config.Marksman, config.Tank)
	disableHazard(m)
	m.systems = []System{UpdateProjectiles}
	tank := place(m, 2, 400, groundTop)
	components.Lives.Get(tank).Lives = 0

	m.Spawn(config.Bullet, 1, 350, 620, 15, 0, 1)
	idle(m, 5)
	assert.Equal(t, 6.0, components.Health.Get(tank).Current)
	assert.Equal(t, 1, countKind(m, config.Bullet))
}

func TestReflectRedirectsToOwner(t *testing.T) {
	m := newTestMatch(t, config.Mage, config.Paladin)
	disableHazard(m)
	mage := place(m, 1, 200, groundTop)
	paladin := place(m, 2, 500, groundTop)
	idle(m, 1)

	components.Status.Get(paladin).Reflecting = 60
	ball := m.Spawn(config.Fireball, 1, 300, 620, 8, 0, 1)

	reflected := false
	for i := 0; i < 40 && !reflected; i++ {
		idle(m, 1)
		reflected = len(eventsOf[messages.ReflectEvent](m.DrainEvents())) > 0
	}
	require.True(t, reflected)
	p := components.Projectile.Get(ball)
	assert.Equal(t, 2, p.OwnerID)
	assert.Less(t, p.VX, 0.0)
	assert.True(t, hasPopup(m, "REFLECT!"))

	idle(m, 60)
	assert.Equal(t, 3.0, components.Health.Get(mage).Current)
	assert.Equal(t, 6.0, components.Health.Get(paladin).Current)
}

func TestHookIgnoresReflectAndPulls(t *testing.T) {
	m := newTestMatch(t, config.Ghost, config.Paladin)
	disableHazard(m)
	ghost := place(m, 1, 200, groundTop)
	paladin := place(m, 2, 400, groundTop)
	idle(m, 1)
	components.Status.Get(paladin).Reflecting = 60

	act(m, 1, messages.Intent{Ultimate: true})
	pulled := false
	for i := 0; i < 20 && !pulled; i++ {
		idle(m, 1)
		pulled = components.Status.Get(paladin).Stun > 0
	}
	require.True(t, pulled)
	assert.Equal(t, 250.0, components.Object.Get(paladin).X)
	assert.Greater(t, components.Status.Get(ghost).DoubleDamage, 0)
	assert.Equal(t, 6.0, components.Health.Get(paladin).Current)

	act(m, 1, messages.Intent{Attack: true})
	assert.Equal(t, 4.0, components.Health.Get(paladin).Current, "buffed melee hits twice as hard")
}

func TestGrenadeFindsTarget(t *testing.T) {
	m := newTestMatch(t, config.Demolitionist, config.Tank)
	disableHazard(m)
	place(m, 1, 400, groundTop)
	tank := place(m, 2, 600, groundTop)
	idle(m, 1)

	act(m, 1, messages.Intent{Attack: true})
	require.Equal(t, 1, countKind(m, config.Grenade))
	assert.Equal(t, 2.0, components.Resource.Get(m.Player(1)).Current)

	idle(m, 60)
	assert.Equal(t, 5.0, components.Health.Get(tank).Current)
	explosions := eventsOf[messages.ExplosionEvent](m.DrainEvents())
	require.Len(t, explosions, 1)
	assert.True(t, explosions[0].Hit)
}

func TestSingleC4WithRemoteDetonation(t *testing.T) {
	m := newTestMatch(t, config.Demolitionist, config.Tank)
	disableHazard(m)
	demo := place(m, 1, 400, groundTop)
	tank := place(m, 2, 420, groundTop)
	idle(m, 1)

	act(m, 1, messages.Intent{Skill: true})
	require.Equal(t, 1, countKind(m, config.C4Trap))
	assert.Equal(t, 2.0, components.Resource.Get(demo).Current)

	idle(m, 29)
	act(m, 1, messages.Intent{Skill: true})
	assert.Equal(t, 0, countKind(m, config.C4Trap))
	assert.Equal(t, 2.0, components.Resource.Get(demo).Current, "detonating is free")
	assert.Equal(t, 5.0, components.Health.Get(tank).Current)
	assert.Equal(t, 60, components.Cooldowns.Get(demo).Skill)
	assert.True(t, hasPopup(m, "BOOM!"))

	for i := 0; i < 200; i++ {
		act(m, 1, messages.Intent{Skill: true})
		require.LessOrEqual(t, countKind(m, config.C4Trap), 1)
	}
}

func TestC4FuseRunsOut(t *testing.T) {
	m := newTestMatch(t, config.Demolitionist, config.Tank)
	disableHazard(m)
	place(m, 1, 400, groundTop)
	tank := place(m, 2, 800, groundTop)
	idle(m, 1)

	act(m, 1, messages.Intent{Skill: true})
	idle(m, 598)
	require.Equal(t, 1, countKind(m, config.C4Trap))
	idle(m, 1)
	assert.Equal(t, 0, countKind(m, config.C4Trap))
	assert.Equal(t, 6.0, components.Health.Get(tank).Current)

	explosions := eventsOf[messages.ExplosionEvent](m.DrainEvents())
	require.Len(t, explosions, 1)
	assert.False(t, explosions[0].Hit)
}

func TestCarpetBombing(t *testing.T) {
	m := newTestMatch(t, config.Demolitionist, config.Tank)
	disableHazard(m)
	demo := place(m, 1, 400, groundTop)
	tank := place(m, 2, 460, groundTop)
	idle(m, 1)

	act(m, 1, messages.Intent{Ultimate: true})
	require.Equal(t, 3, countKind(m, config.CarpetBomb))
	assert.Equal(t, 1.0, components.Resource.Get(demo).Current)

	idle(m, 100)
	assert.Equal(t, 0, countKind(m, config.CarpetBomb))
	assert.Equal(t, 4.0, components.Health.Get(tank).Current)
	assert.Len(t, eventsOf[messages.ExplosionEvent](m.DrainEvents()), 3)
}

func TestDiceComeToRest(t *testing.T) {
	m := newTestMatch(t, config.Gambler, config.Tank)
	disableHazard(m)
	place(m, 1, 400, groundTop)
	place(m, 2, 100, groundTop)
	idle(m, 1)

	act(m, 1, messages.Intent{Ultimate: true})
	require.Equal(t, 3, countKind(m, config.DiceBoulder))

	for i := 0; i < 1000 && countKind(m, config.DiceBoulder) > 0; i++ {
		idle(m, 1)
	}
	assert.Equal(t, 0, countKind(m, config.DiceBoulder))
}

func TestRewindRestoresOldestSample(t *testing.T) {
	m := newTestMatch(t, config.Chronomancer, config.Tank)
	disableHazard(m)
	e := place(m, 1, 200, groundTop)
	idle(m, 1)

	for i := 0; i < 20; i++ {
		act(m, 1, messages.Intent{MoveX: 1})
	}
	require.Equal(t, 300.0, components.Object.Get(e).X)
	components.Health.Get(e).Current = 1

	act(m, 1, messages.Intent{Skill: true})
	obj := components.Object.Get(e)
	assert.Equal(t, 200.0, obj.X)
	assert.Equal(t, 600.0, obj.Y)
	assert.Equal(t, 3.0, components.Health.Get(e).Current)
	assert.Equal(t, 50.0, components.Resource.Get(e).Current)
	assert.Equal(t, 600, components.Cooldowns.Get(e).Skill)
}

func TestRewindNeverLowersHealth(t *testing.T) {
	m := newTestMatch(t, config.Chronomancer, config.Tank)
	disableHazard(m)
	e := place(m, 1, 200, groundTop)
	components.Health.Get(e).Current = 1
	idle(m, 5)

	components.Health.Get(e).Current = 3
	act(m, 1, messages.Intent{Skill: true})
	assert.Equal(t, 3.0, components.Health.Get(e).Current)
	assert.True(t, hasPopup(m, "Rewind!"))
}

func TestRewindWithoutHistory(t *testing.T) {
	m := newTestMatch(t, config.Chronomancer, config.Tank)
	e := m.Player(1)
	x := components.Object.Get(e).X

	assert.True(t, m.Kit(1).Skill(m, e))
	assert.True(t, hasPopup(m, "No History"))
	assert.Equal(t, x, components.Object.Get(e).X)
	assert.Equal(t, 50.0, components.Resource.Get(e).Current)
}

func TestNeedleAmmo(t *testing.T) {
	m := newTestMatch(t, config.Chronomancer, config.Tank)
	disableHazard(m)
	place(m, 1, 200, groundTop)
	place(m, 2, 10, groundTop)

	kit := m.Kit(1).(kits.AmmoCounter)
	fired := 0
	for i := 0; i < 60; i++ {
		act(m, 1, messages.Intent{Attack: true})
		fired = max(fired, countKind(m, config.TimeNeedle))
	}
	assert.Equal(t, 3, fired)
	assert.Less(t, kit.Ammo(), 3)
}

func TestStasisFieldDragsProjectiles(t *testing.T) {
	m := newTestMatch(t, config.Chronomancer, config.Tank)
	disableHazard(m)
	place(m, 1, 100, groundTop)
	place(m, 2, 800, groundTop)
	idle(m, 1)

	m.Spawn(config.StasisField, 1, 400, 400, 0, 0, 0)
	bullet := m.Spawn(config.Bullet, 1, 480, 480, 10, 0, 1)
	idle(m, 1)
	assert.Equal(t, 485.0, components.Object.Get(bullet).X)
}

func TestStasisFieldDragsOtherField(t *testing.T) {
	m := newTestMatch(t, config.Chronomancer, config.Tank)
	disableHazard(m)
	place(m, 1, 100, groundTop)
	place(m, 2, 800, groundTop)
	idle(m, 1)

	still := m.Spawn(config.StasisField, 1, 400, 400, 0, 0, 0)
	drifting := m.Spawn(config.StasisField, 2, 420, 420, 2, 0, 0)
	idle(m, 1)
	assert.Equal(t, 421.0, components.Object.Get(drifting).X)
	assert.Equal(t, 400.0, components.Object.Get(still).X)
}

func TestLightPillarPurges(t *testing.T) {
	m := newTestMatch(t, config.Paladin, config.Tank)
	disableHazard(m)
	place(m, 1, 200, groundTop)
	tank := place(m, 2, 360, groundTop)
	idle(m, 1)

	act(m, 1, messages.Intent{Ultimate: true})
	require.Equal(t, 1, countKind(m, config.LightPillar))
	assert.Equal(t, 30.0, components.Resource.Get(m.Player(1)).Current)

	idle(m, 28)
	assert.Equal(t, 6.0, components.Health.Get(tank).Current)
	idle(m, 1)
	assert.Equal(t, 5.0, components.Health.Get(tank).Current)
	assert.Equal(t, config.Projectiles.PillarStun, components.Status.Get(tank).Stun)
	assert.True(t, hasPopup(m, "PURGED!"))
}

func TestBanishTeleportsAhead(t *testing.T) {
	m := newTestMatch(t, config.Illusionist, config.Tank)
	disableHazard(m)
	place(m, 1, 500, groundTop)
	tank := place(m, 2, 560, groundTop)
	idle(m, 1)

	act(m, 1, messages.Intent{Ultimate: true})
	banished := false
	for i := 0; i < 10 && !banished; i++ {
		idle(m, 1)
		banished = components.Status.Get(tank).Stun > 0
	}
	require.True(t, banished)
	obj := components.Object.Get(tank)
	assert.Equal(t, 600.0, obj.X)
	assert.Equal(t, 600.0, obj.Y)
	assert.Equal(t, config.Projectiles.BanishStun, components.Status.Get(tank).Stun)
	assert.Equal(t, 6.0, components.Health.Get(tank).Current)
}
