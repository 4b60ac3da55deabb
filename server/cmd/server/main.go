package main

import (
	"flag"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/server/core"
	"github.com/automoto/brawl-arena/systems"
)

func main() {
	p1 := flag.String("p1", string(config.Warrior), "Character for player 1")
	p2 := flag.String("p2", string(config.Mage), "Character for player 2")
	tickRate := flag.Int("tickrate", config.C.Arena.TickRate, "Simulation tick rate (ticks per second, 0 = as fast as possible)")
	maxTicks := flag.Int("maxticks", 60*60*3, "Stop after this many ticks (0 = until someone wins)")
	seed := flag.Int64("seed", 1, "Random seed for the match and bots")
	difficulty := flag.String("bot", "normal", "Bot difficulty: easy, normal or hard")
	noCost := flag.Bool("nocost", false, "Ignore resource costs and cooldowns")
	flashy := flag.Bool("flashy", false, "Emit cosmetic particle requests")
	record := flag.String("record", "", "Write a msgpack HUD recording to this file")
	saveSettings := flag.Bool("save-settings", false, "Persist -nocost and -flashy as the new defaults")
	flag.Parse()

	flags := config.Flags{NoCost: *noCost, Flashy: *flashy}
	if store, err := core.OpenSettings("brawl-arena"); err != nil {
		log.Printf("[settings] %v", err)
	} else if *saveSettings {
		if err := store.Save(flags); err != nil {
			log.Printf("[settings] %v", err)
		}
	} else if saved, err := store.Load(); err != nil {
		log.Printf("[settings] %v", err)
	} else {
		flags.NoCost = flags.NoCost || saved.NoCost
		flags.Flashy = flags.Flashy || saved.Flashy
	}

	match, err := systems.NewMatch(config.CharacterID(*p1), config.CharacterID(*p2),
		systems.WithSeed(*seed), systems.WithFlags(flags))
	if err != nil {
		log.Fatalf("Failed to create match: %v (characters: %v)", err, config.CharacterNames())
	}

	d := config.ParseBotDifficulty(*difficulty)
	server := core.NewServer(match, max(*tickRate, 1), [2]core.IntentSource{
		core.NewBot(d, *seed+1),
		core.NewBot(d, *seed+2),
	})
	server.SetMaxTicks(*maxTicks)

	if *record != "" {
		f, err := os.Create(*record)
		if err != nil {
			log.Fatalf("Failed to create recording: %v", err)
		}
		defer f.Close()
		server.SetRecorder(core.NewRecorder(f))
	}

	log.Printf("Starting match %s: %s vs %s (seed %d, bots %s, flags %+v)",
		match.ID, *p1, *p2, *seed, *difficulty, flags)

	if *tickRate <= 0 {
		n := *maxTicks
		if n == 0 {
			n = math.MaxInt32
		}
		ticks := server.Loop().RunTicks(n)
		log.Printf("Ran %d ticks", ticks)
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		server.Stop()
	}()

	server.Start()
	hud := match.HUD()
	log.Printf("Final: %s | P1 %s hp %.1f lives %d | P2 %s hp %.1f lives %d",
		hud.Clock,
		hud.Players[0].Name, hud.Players[0].HP, hud.Players[0].Lives,
		hud.Players[1].Name, hud.Players[1].HP, hud.Players[1].Lives)
}
