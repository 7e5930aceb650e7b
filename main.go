package main

import (
	"flag"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/liminal/logger"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "liminal", "level name in prefabs/levels/ (basename, .yaml optional)")
	tuning := flag.String("tuning", "", "controller tuning yaml to load and hot-reload")
	flag.Parse()

	cfg := logger.DefaultConfig()
	if *debug {
		cfg = logger.DevelopmentConfig()
	}
	log, err := logger.New(cfg)
	if err != nil {
		panic("main: build logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("liminal")

	game, err := NewGame(gameOptions{Level: *levelName, Tuning: *tuning, Debug: *debug}, log)
	if err != nil {
		log.Fatal("start game", zap.Error(err))
	}
	defer func() { _ = game.Close() }()

	// Captured cursor keeps mouse look from leaving the window.
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run game", zap.Error(err))
	}
}

func dirOf(path string) string {
	dir := filepath.Dir(path)
	if dir == "" {
		return "."
	}
	return dir
}
