package systems

import (
	"testing"

	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamageGrantsHitInvulnerability(t *testing.T) {
	m := newTestMatch(t, config.Warrior, config.Tank)
	disableHazard(m)
	e := place(m, 1, 200, groundTop)
	components.Resource.Get(e).Current = 0

	m.Damage(e, 1, config.DamageNormal)
	assert.Equal(t, 4.0, components.Health.Get(e).Current)
	assert.Equal(t, config.Player.HitInvulnFrames, components.Status.Get(e).Invuln)
	assert.Equal(t, 5.0, components.Resource.Get(e).Current, "rage from being hit")

	m.Damage(e, 1, config.DamageNormal)
	assert.Equal(t, 4.0, components.Health.Get(e).Current)

	idle(m, 1)
	assert.Equal(t, config.Player.HitInvulnFrames-1, components.Status.Get(e).Invuln)

	idle(m, config.Player.HitInvulnFrames)
	m.Damage(e, 1, config.DamageNormal)
	assert.Equal(t, 3.0, components.Health.Get(e).Current)
	assert.Equal(t, 3, components.Lives.Get(e).Lives)

	damages := eventsOf[messages.DamageEvent](m.DrainEvents())
	require.Len(t, damages, 2)
	assert.Equal(t, 3.0, damages[1].HP)
}

func TestDamageIgnoresBadTargets(t *testing.T) {
	m := newTestMatch(t, config.Ghost, config.Tank)
	assert.NotPanics(t, func() { m.Damage(nil, 1, config.DamageNormal) })

	e := m.Player(1)
	st := components.Status.Get(e)
	st.Invisible = true
	m.Damage(e, 1, config.DamageHazard)
	assert.Equal(t, 1.0, components.Health.Get(e).Current)

	m.Damage(e, 1, config.DamageNormal)
	assert.Equal(t, 2, components.Lives.Get(e).Lives)
}

func TestDeathRespawnsWithCleanSlate(t *testing.T) {
	m := newTestMatch(t, config.Warrior, config.Tank)
	disableHazard(m)
	e := place(m, 1, 600, groundTop)
	components.Health.Get(e).Current = 1
	components.Resource.Get(e).Current = 0
	components.Status.Get(e).Stun = 30
	components.Cooldowns.Get(e).Skill = 100

	m.Damage(e, 1, config.DamageNormal)

	obj := components.Object.Get(e)
	assert.Equal(t, 2, components.Lives.Get(e).Lives)
	assert.Equal(t, 50.0, obj.X)
	assert.Equal(t, 200.0, obj.Y)
	assert.Equal(t, 5.0, components.Health.Get(e).Current)
	assert.Equal(t, 100.0, components.Resource.Get(e).Current)
	assert.Equal(t, config.Player.RespawnInvulnFrames, components.Status.Get(e).Invuln)
	assert.Equal(t, 0, components.Status.Get(e).Stun)
	assert.Equal(t, 100, components.Cooldowns.Get(e).Skill, "cooldowns survive a respawn")

	events := m.DrainEvents()
	require.Len(t, eventsOf[messages.DeathEvent](events), 1)
	respawns := eventsOf[messages.RespawnEvent](events)
	require.Len(t, respawns, 1)
	assert.Equal(t, 1, respawns[0].PlayerID)
}

func TestLastLifeEndsMatch(t *testing.T) {
	m := newTestMatch(t, config.Warrior, config.Tank)
	disableHazard(m)
	place(m, 1, 200, groundTop)
	e := place(m, 2, 700, groundTop)
	idle(m, 1)
	m.DrainEvents()

	components.Lives.Get(e).Lives = 1
	components.Health.Get(e).Current = 1
	m.Damage(e, 1, config.DamageNormal)
	assert.Equal(t, 0, components.Lives.Get(e).Lives)
	assert.Nil(t, m.Opponent(1))

	obj := components.Object.Get(e)
	x, y := obj.X, obj.Y

	for i := 0; i < 5; i++ {
		m.Step(messages.Inputs{{}, {MoveX: 1, Jump: true}})
	}
	over, winner := m.Over()
	assert.True(t, over)
	assert.Equal(t, 1, winner)
	assert.Len(t, eventsOf[messages.MatchOverEvent](m.DrainEvents()), 1)
	assert.Equal(t, x, obj.X)
	assert.Equal(t, y, obj.Y)

	m.Damage(e, 1, config.DamageNormal)
	assert.Empty(t, eventsOf[messages.DamageEvent](m.DrainEvents()))
}

func TestDoubleKnockoutHasNoWinner(t *testing.T) {
	m := newTestMatch(t, config.Warrior, config.Tank)
	for id := 1; id <= 2; id++ {
		e := m.Player(id)
		components.Lives.Get(e).Lives = 1
		components.Health.Get(e).Current = 1
		m.Damage(e, 1, config.DamageNormal)
	}
	idle(m, 1)
	over, winner := m.Over()
	assert.True(t, over)
	assert.Equal(t, 0, winner)
}

func TestGuardBlocksAboutHalf(t *testing.T) {
	m := newTestMatch(t, config.Warrior, config.Tank)
	e := m.Player(2)
	hp := components.Health.Get(e)
	st := components.Status.Get(e)

	blocked := 0
	for i := 0; i < 200; i++ {
		st.Guard = 100
		st.Invuln = 0
		hp.Current = hp.Max
		m.Damage(e, 1, config.DamageNormal)
		if hp.Current == hp.Max {
			blocked++
		}
	}
	assert.Greater(t, blocked, 60)
	assert.Less(t, blocked, 140)
	assert.Len(t, eventsOf[messages.BlockEvent](m.DrainEvents()), blocked)
}

func TestTankArmedHitStuns(t *testing.T) {
	m := newTestMatch(t, config.Tank, config.Warrior)
	disableHazard(m)
	tank := place(m, 1, 200, groundTop)
	warrior := place(m, 2, 240, groundTop)
	idle(m, 1)

	act(m, 1, messages.Intent{Skill: true})
	require.True(t, components.Status.Get(tank).NextHitStun)

	act(m, 1, messages.Intent{Attack: true})
	assert.Equal(t, 4.0, components.Health.Get(warrior).Current)
	assert.False(t, components.Status.Get(tank).NextHitStun)
	// The warrior's own update later in the tick has already counted one frame off
	assert.Equal(t, 29, components.Status.Get(warrior).Stun)
}
