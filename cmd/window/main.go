package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/spaceshield/internal/asset"
	"github.com/tomz197/spaceshield/internal/audio/sink"
	"github.com/tomz197/spaceshield/internal/config"
	"github.com/tomz197/spaceshield/internal/window"
)

func main() {
	logger := config.NewLogger(os.Stderr, "spaceshield")

	tuning, err := config.LoadTuning(config.GetEnv("SPACESHIELD_CONFIG", ""))
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}

	player, closeAudio := sink.Open(config.GetEnvBool("SPACESHIELD_AUDIO", true), logger)
	defer closeAudio()

	w := window.New(window.Options{
		Tuning: tuning,
		Audio:  player,
		Art:    asset.NewLoader(asset.Embedded(), logger).LoadSet(),
		Logger: logger,
	})

	ebiten.SetWindowSize(window.ScreenWidth, window.ScreenHeight)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, window.ErrQuit) {
		logger.Fatal("game error", "err", err)
	}
}
