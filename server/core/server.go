package core

import (
	"log"
	"sync"

	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/automoto/brawl-arena/systems"
)

// IntentSource supplies one combatant's intent for the coming tick.
type IntentSource interface {
	Intent(m *systems.Match, id int) messages.Intent
}

// Idle never does anything.
type Idle struct{}

func (Idle) Intent(*systems.Match, int) messages.Intent { return messages.Intent{} }

// Server runs a headless match: it polls both intent sources, steps the
// match and forwards the results to the log and an optional recorder.
type Server struct {
	match    *systems.Match
	loop     *GameLoop
	sources  [2]IntentSource
	recorder *Recorder
	maxTicks int

	mu sync.Mutex
}

// NewServer wraps a match. A nil source is treated as Idle.
func NewServer(match *systems.Match, tickRate int, sources [2]IntentSource) *Server {
	s := &Server{match: match}
	for i, src := range sources {
		if src == nil {
			src = Idle{}
		}
		s.sources[i] = src
	}
	s.loop = NewGameLoop(s, tickRate)
	return s
}

// SetRecorder streams a HUD frame per tick to r.
func (s *Server) SetRecorder(r *Recorder) { s.recorder = r }

// SetMaxTicks ends the match after n ticks. Zero means no limit.
func (s *Server) SetMaxTicks(n int) { s.maxTicks = n }

// SetFlags forwards runtime flags to the match.
func (s *Server) SetFlags(f config.Flags) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.match.SetFlags(f)
}

// Start runs the loop on the calling goroutine until the match ends.
func (s *Server) Start() {
	s.loop.Run()
}

// Stop ends a running loop.
func (s *Server) Stop() {
	s.loop.Stop()
}

// Loop exposes the game loop, mainly for driving it synchronously.
func (s *Server) Loop() *GameLoop { return s.loop }

// Match returns the simulated match.
func (s *Server) Match() *systems.Match { return s.match }

// Tick advances the match once and reports whether it should keep running.
func (s *Server) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var in messages.Inputs
	for i, src := range s.sources {
		in[i] = src.Intent(s.match, i+1)
	}
	s.match.Step(in)
	s.processEvents(s.match.DrainEvents())

	if s.recorder != nil {
		if err := s.recorder.Record(s.match.HUD()); err != nil {
			log.Printf("[recorder] %v", err)
			s.recorder = nil
		}
	}

	if over, _ := s.match.Over(); over {
		return false
	}
	if s.maxTicks > 0 && s.match.Frame() >= s.maxTicks {
		log.Printf("[match] tick limit %d reached", s.maxTicks)
		return false
	}
	return true
}

func (s *Server) processEvents(events []any) {
	for _, ev := range events {
		switch e := ev.(type) {
		case messages.DeathEvent:
			log.Printf("[match] player %d down, %d lives left", e.VictimID, e.LivesLeft)
		case messages.MatchOverEvent:
			if e.WinnerID == 0 {
				log.Printf("[match] draw at frame %d", e.Frame)
			} else {
				log.Printf("[match] player %d wins at frame %d", e.WinnerID, e.Frame)
			}
		}
	}
}
