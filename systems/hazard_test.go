package systems

import (
	"testing"

	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/stretchr/testify/assert"
)

func TestHazardCycle(t *testing.T) {
	m := newTestMatch(t, config.Tank, config.Tank)

	idle(m, 1)
	assert.True(t, m.Hazard().Active)
	assert.Equal(t, 0, m.Clock())

	idle(m, 59)
	assert.Equal(t, 1, m.Clock())

	idle(m, 120) // timer 180
	assert.False(t, m.Hazard().Active)

	idle(m, 119) // timer 299
	assert.False(t, m.Hazard().Active)

	idle(m, 1) // timer 300
	assert.True(t, m.Hazard().Active)
	assert.Equal(t, 5, m.Clock())
}

func TestHazardDamagesGroundedCombatants(t *testing.T) {
	m := newTestMatch(t, config.Tank, config.Tank)
	place(m, 1, 200, groundTop)
	place(m, 2, 700, groundTop)

	idle(m, 59)
	assert.Equal(t, 6.0, components.Health.Get(m.Player(1)).Current)
	assert.Equal(t, 6.0, components.Health.Get(m.Player(2)).Current)

	idle(m, 1)
	assert.Equal(t, 5.0, components.Health.Get(m.Player(1)).Current)
	assert.Equal(t, 5.0, components.Health.Get(m.Player(2)).Current)

	// Ticks 120 then nothing while the hazard is off at 180 and 240
	idle(m, 180)
	assert.Equal(t, 4.0, components.Health.Get(m.Player(1)).Current)
}

func TestHazardSparesLedgesAndInvisible(t *testing.T) {
	m := newTestMatch(t, config.Ghost, config.Tank)
	place(m, 1, 500, groundTop)
	place(m, 2, 150, jumpTop)

	st := components.Status.Get(m.Player(1))
	st.Invisible = true
	st.InvisibleTimer = 1000

	idle(m, 60)
	assert.Equal(t, 1.0, components.Health.Get(m.Player(1)).Current)
	assert.Equal(t, 6.0, components.Health.Get(m.Player(2)).Current)
}
