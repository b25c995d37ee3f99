//go:build js && wasm

package main

import (
	"go.uber.org/zap"

	"github.com/BluAtlas/Picross-W-WASM/bridge"
	"github.com/BluAtlas/Picross-W-WASM/channel"
	"github.com/BluAtlas/Picross-W-WASM/event"
	"github.com/BluAtlas/Picross-W-WASM/game"
	"github.com/BluAtlas/Picross-W-WASM/host"
	"github.com/BluAtlas/Picross-W-WASM/puzzle"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		log = zap.NewNop()
	}
	defer log.Sync()

	inbound := channel.New[event.Event](128)
	outbox := channel.New[game.Message](128)

	grid := puzzle.NewGrid()
	sched := bridge.New(inbound, grid, bridge.WithLogger(log))
	runner := game.NewRunner(sched, grid, outbox, game.WithRunnerLogger(log))

	adapter := host.NewAdapter(host.Config{}, inbound, outbox, log)
	adapter.ExportBoard(grid.Board)

	sched.Begin()
	adapter.Start()

	adapter.RunFrames(func() {
		state := runner.Tick()
		if state != bridge.StateReady {
			return
		}
		if b := runner.Board(); b != nil {
			p := adapter.PointerSample()
			if p.Pressed {
				b.PointerInput(p.X, p.Y, p.Button, p.JustPressed)
			}
		}
	})

	// the module lives as long as the page; host callbacks keep it running
	select {}
}
