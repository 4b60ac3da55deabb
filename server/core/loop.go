package core

import (
	"log"
	"time"
)

type GameLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run steps the match on a wall-clock ticker until Stop is called or the
// match ends.
func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[loop] stopped")
			return
		case <-ticker.C:
			if !g.server.Tick() {
				g.running = false
				log.Println("[loop] match finished")
				return
			}
		}
	}
}

// RunTicks steps the match n times as fast as possible. It returns the number
// of ticks actually run, which is lower when the match ends early.
func (g *GameLoop) RunTicks(n int) int {
	for i := 0; i < n; i++ {
		if !g.server.Tick() {
			return i + 1
		}
	}
	return n
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) Running() bool { return g.running }
