package core

import (
	"bytes"
	"testing"

	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/automoto/brawl-arena/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatch(t *testing.T, p1, p2 config.CharacterID) *systems.Match {
	t.Helper()
	m, err := systems.NewMatch(p1, p2, systems.WithSeed(3))
	require.NoError(t, err)
	return m
}

// scripted replays a fixed intent every tick.
type scripted struct {
	in    messages.Intent
	calls int
}

func (s *scripted) Intent(*systems.Match, int) messages.Intent {
	s.calls++
	return s.in
}

func TestServerStopsAtTickLimit(t *testing.T) {
	s := NewServer(newMatch(t, config.Tank, config.Tank), 60, [2]IntentSource{})
	s.SetMaxTicks(5)

	assert.Equal(t, 5, s.Loop().RunTicks(100))
	assert.Equal(t, 5, s.Match().Frame())
}

func TestServerPollsSources(t *testing.T) {
	walker := &scripted{in: messages.NewIntent(1)}
	s := NewServer(newMatch(t, config.Tank, config.Tank), 60, [2]IntentSource{walker, nil})

	start := components.Object.Get(s.Match().Player(1)).X
	s.Loop().RunTicks(10)
	assert.Equal(t, 10, walker.calls)
	assert.Greater(t, components.Object.Get(s.Match().Player(1)).X, start)
}

func TestServerStopsWhenMatchEnds(t *testing.T) {
	m := newMatch(t, config.Warrior, config.Tank)
	s := NewServer(m, 60, [2]IntentSource{})

	require.True(t, s.Tick())
	e := m.Player(2)
	components.Lives.Get(e).Lives = 1
	components.Health.Get(e).Current = 1
	m.Damage(e, 1, config.DamageNormal)

	assert.False(t, s.Tick())
	over, winner := m.Over()
	assert.True(t, over)
	assert.Equal(t, 1, winner)
}

func TestServerRecordsEveryTick(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)
	s := NewServer(newMatch(t, config.Chronomancer, config.Mage), 60, [2]IntentSource{})
	s.SetRecorder(rec)
	s.SetFlags(config.Flags{Flashy: true})

	s.Loop().RunTicks(3)
	assert.Equal(t, 3, rec.Frames())

	frames, err := ReadRecording(&buf)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	for i, f := range frames {
		assert.Equal(t, i+1, f.Frame)
		assert.Equal(t, s.Match().ID, f.MatchID)
	}
	assert.Equal(t, 3, frames[0].Players[0].Ammo)
}

func TestReadRecordingRejectsGarbage(t *testing.T) {
	_, err := ReadRecording(bytes.NewReader([]byte{0xc1}))
	assert.Error(t, err)
}

func TestLoopRunsUntilLimit(t *testing.T) {
	s := NewServer(newMatch(t, config.Tank, config.Tank), 1000, [2]IntentSource{})
	s.SetMaxTicks(3)

	s.Start()
	assert.False(t, s.Loop().Running())
	assert.Equal(t, 3, s.Match().Frame())
}

func TestLoopStop(t *testing.T) {
	s := NewServer(newMatch(t, config.Tank, config.Tank), 1000, [2]IntentSource{})

	done := make(chan struct{})
	go func() {
		s.Start()
		close(done)
	}()
	s.Stop()
	<-done
	assert.False(t, s.Loop().Running())
}
