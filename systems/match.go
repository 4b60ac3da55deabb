// Package systems advances a two-combatant match one tick at a time.
package systems

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/kits"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/automoto/brawl-arena/systems/factory"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// System is one ordered stage of a tick.
type System func(m *Match)

// HazardState is the shared ground hazard cycle.
type HazardState struct {
	Active bool
	Timer  int
}

// Match owns every entity of one bout: platforms, both combatants, their
// projectiles and floating text. It is the only writer of that state.
type Match struct {
	ID string

	world donburi.World
	space *resolv.Space
	rng   *rand.Rand
	flags config.Flags

	roster    [2]config.CharacterID
	players   [2]donburi.Entity
	kits      [2]kits.Kit
	platforms []donburi.Entity

	frame  int
	clock  int // Whole seconds elapsed on the hazard timer
	hazard HazardState

	lastPopup map[string]int
	events    []any

	over   bool
	winner int

	systems []System
}

// Option configures a match at construction.
type Option func(*Match)

// WithSeed makes every random roll of the match reproducible.
func WithSeed(seed int64) Option {
	return func(m *Match) { m.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares a caller-owned source.
func WithRand(r *rand.Rand) Option {
	return func(m *Match) { m.rng = r }
}

// WithFlags sets the initial runtime flags.
func WithFlags(f config.Flags) Option {
	return func(m *Match) { m.flags = f }
}

// NewMatch sets up a bout between two characters.
func NewMatch(p1, p2 config.CharacterID, opts ...Option) (*Match, error) {
	for _, c := range []config.CharacterID{p1, p2} {
		if _, ok := config.LookupCharacter(c); !ok {
			return nil, fmt.Errorf("new match: unknown character %q", c)
		}
	}
	m := &Match{
		roster: [2]config.CharacterID{p1, p2},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m.systems = []System{
		UpdateHazard,
		UpdatePlayers,
		UpdateProjectiles,
		UpdatePopups,
		UpdateMatchState,
	}
	if err := m.Reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset replaces the whole match state with a fresh bout between the same
// characters.
func (m *Match) Reset() error {
	var fresh [2]kits.Kit
	for i, c := range m.roster {
		k, err := kits.New(c)
		if err != nil {
			return fmt.Errorf("reset match: %w", err)
		}
		fresh[i] = k
	}

	m.ID = uuid.New().String()
	m.world = donburi.NewWorld()
	m.space = factory.CreateSpace(16, 16)
	m.platforms = factory.CreatePlatforms(m.world, m.space)
	for i, c := range m.roster {
		m.players[i] = factory.CreatePlayer(m.world, m.space, i+1, c).Entity()
	}
	m.kits = fresh
	m.frame = 0
	m.clock = 0
	m.hazard = HazardState{}
	m.lastPopup = map[string]int{}
	m.events = nil
	m.over = false
	m.winner = 0
	return nil
}

// Step advances the match by one tick using each combatant's intent.
func (m *Match) Step(in messages.Inputs) {
	m.frame++
	for i, e := range m.players {
		if m.world.Valid(e) {
			components.Player.Get(m.world.Entry(e)).Intent = in.For(i + 1)
		}
	}
	for _, s := range m.systems {
		s(m)
	}
}

// SetFlags replaces the runtime flags from the next tick on.
func (m *Match) SetFlags(f config.Flags) { m.flags = f }

// DrainEvents returns and clears everything emitted since the last drain.
func (m *Match) DrainEvents() []any {
	ev := m.events
	m.events = nil
	return ev
}

func (m *Match) emit(ev any) {
	m.events = append(m.events, ev)
}

// Over reports whether a combatant has run out of lives, and who won.
func (m *Match) Over() (bool, int) { return m.over, m.winner }

// Hazard returns the current hazard cycle state.
func (m *Match) Hazard() HazardState { return m.hazard }

// Clock returns the elapsed match time in whole seconds.
func (m *Match) Clock() int { return m.clock }

// Kit returns the kit of player id, or nil.
func (m *Match) Kit(id int) kits.Kit {
	if id < 1 || id > len(m.kits) {
		return nil
	}
	return m.kits[id-1]
}

// Platform returns the platform entry at index, or nil.
func (m *Match) Platform(index int) *donburi.Entry {
	if index < 0 || index >= len(m.platforms) || !m.world.Valid(m.platforms[index]) {
		return nil
	}
	return m.world.Entry(m.platforms[index])
}

// Space returns the collision space shared by platforms and combatants.
func (m *Match) Space() *resolv.Space { return m.space }

// The methods below satisfy kits.Arena.

func (m *Match) World() donburi.World { return m.world }
func (m *Match) Flags() config.Flags  { return m.flags }
func (m *Match) Rand() *rand.Rand     { return m.rng }
func (m *Match) Frame() int           { return m.frame }

func (m *Match) Player(id int) *donburi.Entry {
	if id < 1 || id > len(m.players) || !m.world.Valid(m.players[id-1]) {
		return nil
	}
	return m.world.Entry(m.players[id-1])
}

func (m *Match) Opponent(id int) *donburi.Entry {
	other := 3 - id
	e := m.Player(other)
	if e == nil || components.Lives.Get(e).Dead() {
		return nil
	}
	return e
}

func (m *Match) Spawn(kind config.ProjectileKind, ownerID int, x, y, vx, vy, damage float64) *donburi.Entry {
	e := factory.CreateProjectile(m.world, kind, ownerID, x, y, vx, vy, damage)
	m.emit(messages.SpawnEvent{OwnerID: ownerID, Kind: kind, X: x, Y: y})
	return e
}

func (m *Match) Teleport(target *donburi.Entry, x, y float64, cause string) {
	obj := components.Object.Get(target)
	obj.X, obj.Y = x, y
	obj.Update()
	m.emit(messages.TeleportEvent{PlayerID: components.Player.Get(target).ID, Cause: cause, X: x, Y: y})
}

func (m *Match) Particles(x, y float64, color, effect string) {
	if !m.flags.Flashy {
		return
	}
	count := 15
	if effect == "nova" || effect == "death" {
		count = 40
	}
	m.emit(messages.ParticleEvent{X: x, Y: y, Color: color, Effect: effect, Count: count})
}

func (m *Match) Cue(playerID int, cue string, pitch float64) {
	m.emit(messages.CueEvent{PlayerID: playerID, Cue: cue, Pitch: pitch})
}

var _ kits.Arena = (*Match)(nil)
