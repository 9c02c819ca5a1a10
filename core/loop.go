package core

import (
	"log"
	"time"
)

// GameLoop drives an Engine in real time at a fixed tick rate. The engine is
// only touched from the loop goroutine.
type GameLoop struct {
	engine   *Engine
	tickRate int
	running  bool
	stopChan chan struct{}

	// OnTick runs after every update on the loop goroutine. Returning false
	// stops the loop.
	OnTick func(now time.Duration) bool
}

func NewGameLoop(engine *Engine, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		engine:   engine,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)
	start := time.Now()

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if !g.tick(time.Since(start)) {
				g.running = false
				log.Println("Game loop finished")
				return
			}
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick(now time.Duration) bool {
	g.engine.Update(now)
	if g.OnTick != nil {
		return g.OnTick(now)
	}
	return true
}

// Simulate drives the engine on a virtual clock at tickRate until each
// returns false or limit is reached. It returns the final timestamp.
func Simulate(e *Engine, tickRate int, limit time.Duration, each func(now time.Duration) bool) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	step := time.Second / time.Duration(tickRate)
	now := e.Now()
	end := now + limit
	for now < end {
		now += step
		e.Update(now)
		if each != nil && !each(now) {
			break
		}
	}
	return now
}
