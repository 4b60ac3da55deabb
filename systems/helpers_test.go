package systems

import (
	"testing"

	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// Platform tops, in config order.
const (
	groundTop = 650.0
	jumpTop   = 500.0 // x 100..300 and 700..900
	slowTop   = 350.0 // x 0..150 and 850..1000
	speedTop  = 200.0 // x 350..650
)

func newTestMatch(t *testing.T, p1, p2 config.CharacterID, opts ...Option) *Match {
	t.Helper()
	m, err := NewMatch(p1, p2, append([]Option{WithSeed(7)}, opts...)...)
	require.NoError(t, err)
	return m
}

// disableHazard drops the hazard stage so long scenarios on the ground are
// not disturbed by hazard ticks.
func disableHazard(m *Match) {
	m.systems = []System{UpdatePlayers, UpdateProjectiles, UpdatePopups, UpdateMatchState}
}

// place stands combatant id at x with its feet on a surface whose top is top.
func place(m *Match, id int, x, top float64) *donburi.Entry {
	e := m.Player(id)
	obj := components.Object.Get(e)
	obj.X, obj.Y = x, top-obj.H
	obj.Update()
	ph := components.Physics.Get(e)
	ph.SpeedX, ph.SpeedY = 0, 0
	return e
}

func idle(m *Match, n int) {
	for i := 0; i < n; i++ {
		m.Step(messages.Inputs{})
	}
}

// act steps once with an intent for player id and nothing for the other.
func act(m *Match, id int, in messages.Intent) {
	var inputs messages.Inputs
	inputs[id-1] = in
	m.Step(inputs)
}

func countKind(m *Match, kind config.ProjectileKind) int {
	n := 0
	for _, e := range m.Projectiles() {
		if components.Projectile.Get(e).Kind == kind {
			n++
		}
	}
	return n
}

func firstOfKind(m *Match, kind config.ProjectileKind) *donburi.Entry {
	for _, e := range m.Projectiles() {
		if components.Projectile.Get(e).Kind == kind {
			return e
		}
	}
	return nil
}

func eventsOf[T any](events []any) []T {
	var out []T
	for _, ev := range events {
		if e, ok := ev.(T); ok {
			out = append(out, e)
		}
	}
	return out
}

func hasPopup(m *Match, text string) bool {
	for _, p := range m.Popups() {
		if p.Text == text {
			return true
		}
	}
	return false
}
