package main

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/spaceshield/internal/asset"
	"github.com/tomz197/spaceshield/internal/audio/sink"
	"github.com/tomz197/spaceshield/internal/config"
	"github.com/tomz197/spaceshield/internal/loop/client"
)

func main() {
	logger := config.NewLogger(os.Stderr, "spaceshield")

	tuning, err := config.LoadTuning(config.GetEnv("SPACESHIELD_CONFIG", ""))
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	player, closeAudio := sink.Open(config.GetEnvBool("SPACESHIELD_AUDIO", false), logger)
	defer closeAudio()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.NewClient(bufio.NewReader(os.Stdin), os.Stdout, client.Options{
		Tuning: tuning,
		Audio:  player,
		Art:    asset.NewLoader(asset.Embedded(), logger).LoadSet(),
		Logger: logger,
	})
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		_ = term.Restore(fd, oldState)
		logger.Fatal("game error", "err", err)
	}
}
