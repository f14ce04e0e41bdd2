// Package client runs one game in a terminal: it reads keys, drives the
// game loop at a fixed frame rate and renders the scene with half-blocks.
package client

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceshield/internal/asset"
	"github.com/tomz197/spaceshield/internal/audio"
	"github.com/tomz197/spaceshield/internal/camera"
	"github.com/tomz197/spaceshield/internal/clock"
	"github.com/tomz197/spaceshield/internal/config"
	"github.com/tomz197/spaceshield/internal/draw"
	"github.com/tomz197/spaceshield/internal/hud"
	"github.com/tomz197/spaceshield/internal/input"
	"github.com/tomz197/spaceshield/internal/loop"
	"github.com/tomz197/spaceshield/internal/loop/server"
	"github.com/tomz197/spaceshield/internal/render"
)

// Terminal render limits. Larger terminals get a centered, framed play area.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 70
)

// Display timings.
const (
	GameOverBanner  = 3 * time.Second
	ShutdownDisplay = 10 * time.Second
)

// Options configures the client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Tuning       config.Tuning
	Audio        audio.Player
	Art          asset.Set
	Logger       *log.Logger
	Rand         *rand.Rand

	// Server, when set, registers the session and delivers shutdown notices.
	Server *server.Server

	// IdleWarn and IdleTimeout warn about and end idle sessions. Zero disables.
	IdleWarn    time.Duration
	IdleTimeout time.Duration
}

// Client handles rendering and input for a single terminal.
type Client struct {
	game   *loop.Game
	clock  *clock.Game
	layer  *render.Layer
	board  *hud.Board
	camera *camera.Provider

	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	writer   io.Writer
	input    *input.Stream
	termSize draw.TermSizeFunc
	logger   *log.Logger

	srv    *server.Server
	handle *server.Handle

	offCol, offRow int

	idleWarn    time.Duration
	idleTimeout time.Duration
	lastInput   time.Time
	idle        bool

	running    bool
	shutdownAt time.Time // Zero until the host announced shutdown
	overs      int       // Game overs already shown
	bannerTill time.Time
	prevScreen screen
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r io.Reader, w io.Writer, opts Options) *Client {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	logger := opts.Logger.With("component", "client")
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}

	cols, rows, _ := opts.TermSizeFunc()
	renderCols, renderRows, offCol, offRow := clampTermSize(cols, rows)
	canvas := draw.NewCanvas(renderCols, renderRows)
	canvas.SetOffset(offCol, offRow)

	c := &Client{
		clock:       clock.NewGame(clock.System{}),
		layer:       render.NewLayer(),
		board:       hud.NewBoard(),
		canvas:      canvas,
		cw:          draw.NewChunkWriter(w, offCol, offRow),
		writer:      w,
		input:       input.StartStream(r),
		termSize:    opts.TermSizeFunc,
		logger:      logger,
		srv:         opts.Server,
		idleWarn:    opts.IdleWarn,
		idleTimeout: opts.IdleTimeout,
		offCol:      offCol,
		offRow:      offRow,
		lastInput:   time.Now(),
		running:     true,
		prevScreen:  -1,
	}
	c.camera = camera.New(config.DefaultFOV, config.DefaultCameraDistance, c.aspect)
	c.game = loop.New(loop.Options{
		Tuning: opts.Tuning,
		Scene:  c.layer,
		Clock:  c.clock,
		Bounds: c.camera.Bounds,
		HUD:    c.board,
		Audio:  opts.Audio,
		Art:    opts.Art,
		Rand:   opts.Rand,
		Logger: opts.Logger,
	})
	if c.srv != nil {
		c.handle = c.srv.Register(opts.Username)
	}
	return c
}

// Game returns the game driven by the client.
func (c *Client) Game() *loop.Game { return c.game }

// aspect is the play area ratio. Half-block pixels are square.
func (c *Client) aspect() float64 {
	return float64(c.canvas.Width()) / float64(c.canvas.Height())
}

// Run starts the client loop. Blocks until the user quits, the input closes,
// the context is cancelled or the session is dropped.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer draw.ClearScreen(c.writer)

	if c.handle != nil {
		defer c.srv.Unregister(c.handle.ID)
	}

	for c.running {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c.processInput(frameStart)
		c.processServer(frameStart)
		c.updateScreen()
		c.game.Frame()
		c.trackGameOver(frameStart)

		if err := c.drawFrame(frameStart); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.FrameTime {
			time.Sleep(config.FrameTime - elapsed)
		}
	}
	return nil
}

// processInput feeds key events to the game.
func (c *Client) processInput(now time.Time) {
	events := c.input.Poll(now)
	for _, ev := range events {
		if ev.Pressed {
			c.lastInput = now
			c.idle = false
		}
		if ev.Action == input.Quit {
			c.running = false
			return
		}
		if !c.shutdownAt.IsZero() {
			continue
		}
		c.dispatch(ev)
	}

	if c.idleTimeout > 0 && now.Sub(c.lastInput) > c.idleTimeout {
		c.logger.Info("disconnecting idle session")
		c.running = false
	} else if c.idleWarn > 0 && now.Sub(c.lastInput) > c.idleWarn {
		c.idle = true
	}
}

// dispatch applies one event. Space doubles as the start and continue key.
func (c *Client) dispatch(ev input.Event) {
	if ev.Action == input.Fire && ev.Pressed {
		switch c.game.Phase() {
		case loop.NotStarted:
			c.input.Reset()
			c.game.Start()
			return
		case loop.Ended:
			c.input.Reset()
			c.game.Acknowledge()
			return
		}
	}
	c.game.Handle(ev)
}

// processServer handles a shutdown notice from the host.
func (c *Client) processServer(now time.Time) {
	if c.handle == nil {
		return
	}
	if c.shutdownAt.IsZero() {
		select {
		case <-c.handle.ShutdownCh():
			c.shutdownAt = now
			if c.game.Phase() == loop.Running {
				c.game.TogglePause()
			}
		default:
		}
		return
	}
	if now.Sub(c.shutdownAt) >= ShutdownDisplay {
		c.running = false
	}
}

// trackGameOver starts the game over banner when a run just ended.
func (c *Client) trackGameOver(now time.Time) {
	if v := c.board.Snapshot(); v.GameOvers != c.overs {
		c.overs = v.GameOvers
		c.bannerTill = now.Add(GameOverBanner)
	}
}

// updateScreen follows terminal resizes, clamped to the max render size.
// Any change clears the terminal to drop residual pixels.
func (c *Client) updateScreen() {
	cols, rows, err := c.termSize()
	if err != nil {
		return
	}
	renderCols, renderRows, offCol, offRow := clampTermSize(cols, rows)
	if renderCols != c.canvas.Cols() || renderRows != c.canvas.Rows() ||
		offCol != c.offCol || offRow != c.offRow {
		c.cw.WriteString(draw.ClearSeq)
		c.canvas.ForceRedraw()
	}
	c.offCol, c.offRow = offCol, offRow
	c.canvas.Resize(renderCols, renderRows)
	c.canvas.SetOffset(offCol, offRow)
	c.cw.SetOffset(offCol, offRow)
}

// clampTermSize clamps the terminal size to the max render size and computes
// the centering offset.
func clampTermSize(cols, rows int) (renderCols, renderRows, offsetCol, offsetRow int) {
	renderCols = min(max(cols, 0), MaxTermWidth)
	renderRows = min(max(rows, 0), MaxTermHeight)
	offsetCol = max(cols-renderCols, 0) / 2
	offsetRow = max(rows-renderRows, 0) / 2
	return
}
