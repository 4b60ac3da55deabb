package systems

import (
	"testing"

	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallAndLand(t *testing.T) {
	m := newTestMatch(t, config.Tank, config.Tank)
	disableHazard(m)
	e := place(m, 1, 500, 450)

	ph := components.Physics.Get(e)
	for i := 0; i < 60 && !ph.OnGround; i++ {
		idle(m, 1)
	}
	require.True(t, ph.OnGround)
	assert.Equal(t, 0, ph.Platform)
	assert.Equal(t, 0.0, ph.SpeedY)
	assert.Equal(t, 600.0, components.Object.Get(e).Y)
}

func TestStageWallsClampX(t *testing.T) {
	m := newTestMatch(t, config.Tank, config.Tank)
	disableHazard(m)
	p1 := place(m, 1, 990, groundTop)
	p2 := place(m, 2, 5, groundTop)

	for i := 0; i < 3; i++ {
		m.Step(messages.Inputs{{MoveX: 1}, {MoveX: -1}})
	}
	assert.Equal(t, 970.0, components.Object.Get(p1).X)
	assert.Equal(t, 0.0, components.Object.Get(p2).X)
}

func TestDropThroughLedge(t *testing.T) {
	m := newTestMatch(t, config.Tank, config.Tank)
	disableHazard(m)
	e := place(m, 1, 150, jumpTop)
	idle(m, 1)

	ph := components.Physics.Get(e)
	require.Equal(t, 1, ph.Platform)

	act(m, 1, messages.Intent{Drop: true})
	assert.False(t, ph.OnGround)
	assert.Greater(t, ph.DropTimer, 0)

	for i := 0; i < 40 && ph.Platform != 0; i++ {
		idle(m, 1)
	}
	assert.Equal(t, 0, ph.Platform)
	assert.Equal(t, 600.0, components.Object.Get(e).Y)
}

func TestDropOnGroundIsIgnored(t *testing.T) {
	m := newTestMatch(t, config.Tank, config.Tank)
	disableHazard(m)
	e := place(m, 1, 500, groundTop)
	idle(m, 1)

	act(m, 1, messages.Intent{Drop: true})
	ph := components.Physics.Get(e)
	assert.True(t, ph.OnGround)
	assert.Equal(t, 0, ph.DropTimer)
	assert.Equal(t, 600.0, components.Object.Get(e).Y)
}

func TestJumpPlatformBoostsJump(t *testing.T) {
	m := newTestMatch(t, config.Tank, config.Tank)
	disableHazard(m)

	onGround := place(m, 1, 500, groundTop)
	onLedge := place(m, 2, 750, jumpTop)
	idle(m, 1)
	require.True(t, components.Status.Get(onLedge).JumpBuff)
	require.False(t, components.Status.Get(onGround).JumpBuff)

	m.Step(messages.Inputs{{Jump: true}, {Jump: true}})
	assert.InDelta(t, -15.2, components.Physics.Get(onGround).SpeedY, 1e-9)
	assert.InDelta(t, -23.2, components.Physics.Get(onLedge).SpeedY, 1e-9)

	jumps := 0
	for _, c := range eventsOf[messages.CueEvent](m.DrainEvents()) {
		if c.Cue == "jump" {
			jumps++
		}
	}
	assert.Equal(t, 2, jumps)
}

func TestPlatformSpeedModifiers(t *testing.T) {
	m := newTestMatch(t, config.Tank, config.Tank)
	disableHazard(m)

	fast := place(m, 1, 400, speedTop)
	slow := place(m, 2, 900, slowTop)
	idle(m, 1)
	require.True(t, components.Status.Get(fast).SpeedBuff)
	require.True(t, components.Status.Get(slow).SlowDebuff)

	m.Step(messages.Inputs{{MoveX: 1}, {MoveX: -1}})
	// Speed buff and the speed platform stack
	assert.Equal(t, 15.0, components.Physics.Get(fast).SpeedX)
	assert.Equal(t, -2.5, components.Physics.Get(slow).SpeedX)
	assert.Equal(t, config.DirectionLeft, components.Player.Get(slow).Facing)
}

func TestTimedSpeedBuffOutlivesPlatform(t *testing.T) {
	m := newTestMatch(t, config.Gambler, config.Tank)
	disableHazard(m)
	e := place(m, 1, 500, groundTop)

	st := components.Status.Get(e)
	st.SpeedBuff = true
	st.BuffDuration = 180

	idle(m, 179)
	assert.True(t, st.SpeedBuff)
	assert.Equal(t, 1, st.BuffDuration)

	idle(m, 1)
	assert.False(t, st.SpeedBuff)
	assert.True(t, hasPopup(m, "Buff End"))
}

func TestSpeedBuffClearsOffPlatform(t *testing.T) {
	m := newTestMatch(t, config.Tank, config.Tank)
	disableHazard(m)
	e := place(m, 1, 400, speedTop)
	idle(m, 1)
	require.True(t, components.Status.Get(e).SpeedBuff)

	place(m, 1, 500, groundTop)
	idle(m, 1)
	assert.False(t, components.Status.Get(e).SpeedBuff)
}
