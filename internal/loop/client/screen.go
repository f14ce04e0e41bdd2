package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/spaceshield/internal/config"
	"github.com/tomz197/spaceshield/internal/draw"
	"github.com/tomz197/spaceshield/internal/hud"
	"github.com/tomz197/spaceshield/internal/loop"
)

// screen is what the UI overlay currently shows. A change clears the terminal.
type screen int

const (
	screenStart screen = iota
	screenPlaying
	screenPaused
	screenGameOver
	screenIdle
	screenShutdown
)

const cooldownBarWidth = 10

var (
	colorHeart    = tcell.NewRGBColor(0xFF, 0x30, 0x40)
	colorCooldown = tcell.NewRGBColor(0xFF, 0x00, 0x00)
	colorReady    = tcell.ColorWhite
)

var titleArt = []string{
	`  ___ ___  _   ___ ___   ___ _  _ ___ ___ _    ___  `,
	` / __| _ \/_\ / __| __| / __| || |_ _| __| |  |   \ `,
	` \__ \  _/ _ \ (__| _|  \__ \ __ || || _|| |__| |) |`,
	` |___/_|/_/ \_\___|___| |___/_||_|___|___|____|___/ `,
	``,
}

var controlLines = []string{
	"W A S D / Arrows . Move",
	"SPACE  . . . . . . Shoot",
	"E  . . . . . . .  Shield",
	"P  . . . . . . . . Pause",
	"M  . . . . . . . . Music",
	"Q  . . . . . . . .  Quit",
}

func (c *Client) currentScreen(now time.Time) screen {
	switch {
	case !c.shutdownAt.IsZero():
		return screenShutdown
	case c.idle:
		return screenIdle
	}
	switch c.game.Phase() {
	case loop.NotStarted:
		return screenStart
	case loop.Paused:
		return screenPaused
	case loop.Ended:
		return screenGameOver
	}
	if now.Before(c.bannerTill) {
		return screenGameOver
	}
	return screenPlaying
}

// drawFrame renders the scene and the UI overlay.
func (c *Client) drawFrame(now time.Time) error {
	scr := c.currentScreen(now)
	if scr != c.prevScreen {
		c.cw.WriteString(draw.ClearSeq)
		c.canvas.ForceRedraw()
		c.prevScreen = scr
	}

	c.canvas.Clear()
	vp := draw.Viewport{
		World:  c.game.State().Bounds,
		Width:  c.canvas.Width(),
		Height: c.canvas.Height(),
	}
	c.canvas.DrawStars(vp, c.game.Stars(), config.DefaultCameraDistance)
	if scr != screenStart {
		c.canvas.DrawLayer(vp, c.layer)
	}
	c.canvas.Render(c.cw)
	c.canvas.RenderBorder(c.cw)

	c.drawUI(scr, now)
	return c.cw.Flush()
}

// drawUI draws the text overlay for the screen.
func (c *Client) drawUI(scr screen, now time.Time) {
	cols, rows := c.canvas.Cols(), c.canvas.Rows()
	centerX, centerY := cols/2, rows/2
	v := c.board.Snapshot()

	switch scr {
	case screenStart:
		c.drawStartScreen(centerX, centerY, now)
		return
	case screenShutdown:
		c.drawShutdownScreen(centerX, centerY, now)
		return
	case screenIdle:
		c.drawIdleScreen(centerX, centerY, now)
		return
	}

	c.drawHUD(cols, rows, v)
	switch scr {
	case screenPaused:
		c.writeCentered(centerX, centerY-2, "PAUSED")
		c.writeCentered(centerX, centerY, "Run time "+hud.FormatClock(c.game.Survived()))
		c.writeCentered(centerX, centerY+2, "Press P to resume")
	case screenGameOver:
		c.drawGameOver(centerX, centerY, v, now)
	}
}

// drawHUD draws score, time, hearts and the shield cooldown bar.
// Text fields are fixed width so shrinking values leave no residue.
func (c *Client) drawHUD(cols, rows int, v hud.View) {
	c.writeText(2, 1, fmt.Sprintf("%-16s", v.ScoreText()))
	c.writeText(20, 1, v.TimerText())

	hearts := strings.Repeat("♥", v.Hearts)
	pad := strings.Repeat(" ", max(0, c.maxHearts()-v.Hearts))
	col := cols - c.maxHearts() - 1
	c.cw.WriteColorAt(col, 1, pad+hearts, colorHeart)
	c.canvas.MarkTextDirty(col, 1, c.maxHearts())

	color := colorCooldown
	if v.ShieldReady() {
		color = colorReady
	}
	c.writeText(2, rows, "Shield ")
	c.cw.WriteColorAt(9, rows, cooldownBar(v.Cooldown, cooldownBarWidth), color)
	c.canvas.MarkTextDirty(9, rows, cooldownBarWidth+2)
}

func (c *Client) maxHearts() int {
	if p := c.game.State().Player; p != nil {
		return p.HPPool
	}
	return config.DefaultTuning().Player.HPPool
}

// cooldownBar renders ratio as a bracketed bar with shaded partial cells.
func cooldownBar(ratio float64, width int) string {
	ratio = min(max(ratio, 0), 1)
	filled := ratio * float64(width)

	var b strings.Builder
	b.WriteByte('[')
	for i := range width {
		switch part := filled - float64(i); {
		case part >= 1:
			b.WriteRune(draw.BlockFull)
		case part >= 0.5:
			b.WriteRune('▓')
		case part > 0:
			b.WriteRune('░')
		default:
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (c *Client) drawStartScreen(centerX, centerY int, now time.Time) {
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}
	top := centerY - 8
	for i, line := range titleArt {
		c.writeText(centerX-titleWidth/2, top+i, line)
	}
	c.writeCentered(centerX, top+len(titleArt)+1, "~ Dodge, shoot and shield ~")

	controlsY := top + len(titleArt) + 3
	c.writeCentered(centerX, controlsY, "Controls")
	for i, line := range controlLines {
		c.writeCentered(centerX, controlsY+1+i, line)
	}

	if blinkOn(now) {
		c.writeCentered(centerX, controlsY+len(controlLines)+2, ">>  Press SPACE to Start  <<")
	}
}

func (c *Client) drawGameOver(centerX, centerY int, v hud.View, now time.Time) {
	c.writeCentered(centerX, centerY-2, "GAME OVER")
	if v.LastRun != nil {
		c.writeCentered(centerX, centerY, v.LastRun.String())
	}
	if c.game.Phase() == loop.Ended && blinkOn(now) {
		c.writeCentered(centerX, centerY+2, ">>  Press SPACE to Restart  <<")
	}
}

func (c *Client) drawIdleScreen(centerX, centerY int, now time.Time) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")
	left := max(0, int((c.idleTimeout - now.Sub(c.lastInput)).Seconds()))
	c.writeCentered(centerX, centerY, fmt.Sprintf("You will be disconnected in %d seconds.", left))
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

func (c *Client) drawShutdownScreen(centerX, centerY int, now time.Time) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")
	left := int((ShutdownDisplay-now.Sub(c.shutdownAt)).Seconds()) + 1
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %2d seconds...", left))
	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}

func (c *Client) writeCentered(centerX, row int, s string) {
	c.writeText(centerX-len([]rune(s))/2, row, s)
}

// writeText writes s and marks the cells below it for redraw.
func (c *Client) writeText(col, row int, s string) {
	if col < 1 || row < 1 || row > c.canvas.Rows() {
		return
	}
	c.cw.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, len([]rune(s)))
}

func blinkOn(now time.Time) bool {
	return now.UnixMilli()/600%2 == 0
}
