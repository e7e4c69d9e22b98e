package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/radial-dots/internal/config"
	"github.com/iburimskiy/radial-dots/internal/game"
	"github.com/iburimskiy/radial-dots/internal/render"
)

func main() {
	bg := flag.String("bg", config.Background, "canvas background color")
	fg := flag.String("fg", config.DotColor, "dot color")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	bgColor, err := render.ParseColor(*bg)
	if err != nil {
		logger.Error("bad -bg", "err", err)
		os.Exit(2)
	}
	dotColor, err := render.ParseColor(*fg)
	if err != nil {
		logger.Error("bad -fg", "err", err)
		os.Exit(2)
	}

	surface := render.NewSurface(config.CanvasWidth, config.CanvasHeight, bgColor)
	g := game.New(render.NewRenderer(surface, dotColor))

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Radial dots - drag sliders, Tab/arrows to adjust, R: reset, Esc/Q: quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}
