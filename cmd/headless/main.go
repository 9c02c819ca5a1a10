package main

import (
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/supertale/core"
	"github.com/automoto/supertale/shared/simconfig"
)

func main() {
	seed := flag.Int64("seed", 1, "Random seed for hazard spawns")
	scriptPath := flag.String("script", "", "Battle script YAML (empty = embedded)")
	tickRate := flag.Int("tps", 60, "Ticks per simulated second")
	botName := flag.String("bot", "dodge", "Player bot: idle, sweep or dodge")
	choice := flag.String("choice", "spare", "Command to pick: fight, spare or none")
	maxTime := flag.Duration("max", 3*time.Minute, "Simulated time cap")
	realtime := flag.Bool("realtime", false, "Run on the wall clock instead of virtual time")
	quiet := flag.Bool("quiet", false, "Discard engine logging")
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
	}

	var script *simconfig.Script
	if *scriptPath != "" {
		s, err := simconfig.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		script = s
	}

	if *choice != "none" {
		if _, ok := simconfig.ParseCommand(*choice); !ok {
			log.Fatalf("Unknown choice %q", *choice)
		}
	}

	tun := simconfig.Default()
	bot, err := newBot(*botName, tun.PlayerSpeed)
	if err != nil {
		log.Fatal(err)
	}

	rec := newRecorder(bot, *choice)
	engine := core.New(script,
		core.WithRand(rand.New(rand.NewSource(*seed))),
		core.WithTunables(tun),
		core.WithPhaseHook(rec.hook),
	)
	rec.engine = engine
	engine.Start()

	var elapsed time.Duration
	if *realtime {
		elapsed = runRealtime(engine, rec, *tickRate, *maxTime)
	} else {
		elapsed = core.Simulate(engine, *tickRate, *maxTime, rec.observe)
	}

	rec.report(os.Stdout, elapsed)
}

func runRealtime(engine *core.Engine, rec *recorder, tickRate int, maxTime time.Duration) time.Duration {
	loop := core.NewGameLoop(engine, tickRate)
	var elapsed time.Duration
	loop.OnTick = func(now time.Duration) bool {
		elapsed = now
		return now < maxTime && rec.observe(now)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case <-sigChan:
			log.Println("Stopping...")
			loop.Stop()
		case <-done:
		}
	}()

	loop.Run()
	close(done)
	return elapsed
}
