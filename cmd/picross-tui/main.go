package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type config struct {
	Puzzle     string `env:"PICROSS_PUZZLE" envDefault:"puzzle.txt"`
	TickRate   int    `env:"PICROSS_TICK_RATE" envDefault:"30"`
	ChannelCap int    `env:"PICROSS_CHANNEL_CAP" envDefault:"64"`
	LogFile    string `env:"PICROSS_LOG"`
}

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "picross-tui needs a terminal")
		os.Exit(1)
	}

	log := zap.NewNop()
	if cfg.LogFile != "" {
		zcfg := zap.NewDevelopmentConfig()
		zcfg.OutputPaths = []string{cfg.LogFile}
		built, err := zcfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
			os.Exit(1)
		}
		log = built
		defer log.Sync()
	}

	p := tea.NewProgram(newModel(cfg, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
