// Package window runs the game in a desktop window with ebiten.
package window

import (
	"errors"
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/spaceshield/internal/asset"
	"github.com/tomz197/spaceshield/internal/audio"
	"github.com/tomz197/spaceshield/internal/camera"
	"github.com/tomz197/spaceshield/internal/clock"
	"github.com/tomz197/spaceshield/internal/config"
	"github.com/tomz197/spaceshield/internal/draw"
	"github.com/tomz197/spaceshield/internal/hud"
	"github.com/tomz197/spaceshield/internal/input"
	"github.com/tomz197/spaceshield/internal/loop"
	"github.com/tomz197/spaceshield/internal/object"
	"github.com/tomz197/spaceshield/internal/render"
)

// Default window size.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	Title        = "Space Shield"
)

// ErrQuit ends the ebiten loop when the user quits.
var ErrQuit = errors.New("quit")

const (
	heartSize        = 24
	shieldIconSize   = 32
	cooldownBarWidth = 80
)

var (
	colorCooldown = color.RGBA{R: 0xFF, A: 0xFF}
	colorReady    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorShade    = color.RGBA{A: 0xA0}
)

// Options configures the window.
type Options struct {
	Tuning config.Tuning
	Audio  audio.Player
	Art    asset.Set
	Logger *log.Logger
	Rand   *rand.Rand
}

// Window implements ebiten.Game.
type Window struct {
	game   *loop.Game
	clock  *clock.Game
	layer  *render.Layer
	board  *hud.Board
	camera *camera.Provider
	art    asset.Set
	logger *log.Logger

	width, height int
	images        map[*asset.Art]*ebiten.Image
	keys          []ebiten.Key
}

var _ ebiten.Game = (*Window)(nil)

// New creates a window game on the start screen.
func New(opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	w := &Window{
		clock:  clock.NewGame(clock.System{}),
		layer:  render.NewLayer(),
		board:  hud.NewBoard(),
		art:    opts.Art,
		logger: opts.Logger.With("component", "window"),
		width:  ScreenWidth,
		height: ScreenHeight,
		images: make(map[*asset.Art]*ebiten.Image),
	}
	w.camera = camera.New(config.DefaultFOV, config.DefaultCameraDistance, func() float64 {
		return float64(w.width) / float64(w.height)
	})
	w.game = loop.New(loop.Options{
		Tuning: opts.Tuning,
		Scene:  w.layer,
		Clock:  w.clock,
		Bounds: w.camera.Bounds,
		HUD:    w.board,
		Audio:  opts.Audio,
		Art:    opts.Art,
		Rand:   opts.Rand,
		Logger: opts.Logger,
	})
	return w
}

// Game returns the driven game.
func (w *Window) Game() *loop.Game { return w.game }

// Update applies the keys of this tick and advances the game.
func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	pressed := Translate(w.keys, true)
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	released := Translate(w.keys, false)

	for _, ev := range append(pressed, released...) {
		if ev.Action == input.Quit {
			w.logger.Info("quit requested")
			return ErrQuit
		}
		w.dispatch(ev)
	}
	w.game.Frame()
	return nil
}

// dispatch applies one event. Space doubles as the start and continue key.
func (w *Window) dispatch(ev input.Event) {
	if ev.Action == input.Fire && ev.Pressed {
		switch w.game.Phase() {
		case loop.NotStarted:
			w.game.Start()
			return
		case loop.Ended:
			w.game.Acknowledge()
			return
		}
	}
	w.game.Handle(ev)
}

// Layout uses the window size as the logical screen.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.width, w.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return w.width, w.height
}

// Draw renders the scene and the HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	vp := draw.Viewport{World: w.game.State().Bounds, Width: w.width, Height: w.height}

	w.drawStars(screen, vp)
	phase := w.game.Phase()
	if phase != loop.NotStarted {
		w.layer.Each(func(v *render.Visual) { w.drawVisual(screen, vp, v) })
	}

	v := w.board.Snapshot()
	switch phase {
	case loop.NotStarted:
		w.drawCentered(screen, []string{
			"SPACE SHIELD",
			"",
			"WASD / Arrows  move",
			"SPACE  shoot    E  shield",
			"P  pause    M  music    ESC  quit",
			"",
			"Press SPACE to start",
		})
		return
	case loop.Paused:
		w.drawHUD(screen, v)
		w.drawCentered(screen, []string{
			"PAUSED",
			"Run time " + hud.FormatClock(w.game.Survived()),
			"Press P to resume",
		})
	case loop.Ended:
		w.drawHUD(screen, v)
		lines := []string{"GAME OVER"}
		if v.LastRun != nil {
			lines = append(lines, v.LastRun.String())
		}
		w.drawCentered(screen, append(lines, "Press SPACE to restart"))
	default:
		w.drawHUD(screen, v)
	}
}

func (w *Window) drawStars(screen *ebiten.Image, vp draw.Viewport) {
	for _, st := range w.game.Stars().Stars {
		x, y := vp.ToCanvas(st.Project(config.DefaultCameraDistance))
		a := 0.25 + 0.6*(1+st.Z/math.Abs(object.StarFar))
		c := color.RGBA{R: uint8(255 * a), G: uint8(255 * a), B: uint8(255 * a), A: uint8(255 * a)}
		vector.DrawFilledRect(screen, float32(x), float32(y), 1.5, 1.5, c, false)
	}
}

func (w *Window) drawVisual(screen *ebiten.Image, vp draw.Viewport, v *render.Visual) {
	x, y := vp.ToCanvas(v.Position)
	s := vp.Scale()

	if !v.Visible {
		return
	}
	switch v.Kind {
	case render.Orb:
		c := RGBA(v.Color, v.Opacity)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(max(v.Radius*s, 1)), c, true)
	case render.Sprite:
		art, ok := v.Art.Get()
		if !ok {
			return
		}
		w.drawArt(screen, art, x, y, v.Scale*s, v.Opacity)
	}
}

// drawArt draws art centered at (x, y) with its longest side spanning size pixels.
func (w *Window) drawArt(screen *ebiten.Image, art *asset.Art, x, y, size, opacity float64) {
	img, ok := w.images[art]
	if !ok {
		img = ebiten.NewImageFromImage(ArtImage(art))
		w.images[art] = img
	}
	scale := size / float64(max(art.Width, art.Height))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-float64(art.Width)*scale/2, y-float64(art.Height)*scale/2)
	op.ColorScale.ScaleAlpha(float32(opacity))
	screen.DrawImage(img, op)
}

func (w *Window) drawHUD(screen *ebiten.Image, v hud.View) {
	ebitenutil.DebugPrintAt(screen, v.ScoreText(), 12, 10)
	ebitenutil.DebugPrintAt(screen, v.TimerText(), 12, 26)

	right := float64(w.width) - 12
	heart, hasHeart := w.art.Heart.Get()
	for i := range v.Hearts {
		cx := right - heartSize/2 - float64(i)*(heartSize+4)
		if hasHeart {
			w.drawArt(screen, heart, cx, 10+heartSize/2, heartSize, 1)
		} else {
			vector.DrawFilledCircle(screen, float32(cx), 10+heartSize/2, heartSize/3, colorCooldown, true)
		}
	}

	// Shield icon with its cooldown bar below.
	ix, iy := 12+shieldIconSize/2.0, float64(w.height)-24-shieldIconSize/2.0
	if icon, ok := w.art.Shield.Get(); ok {
		w.drawArt(screen, icon, ix, iy, shieldIconSize, 1)
	}
	bar := colorCooldown
	if v.ShieldReady() {
		bar = colorReady
	}
	bx, by := float32(ix+shieldIconSize/2+8), float32(iy-4)
	vector.DrawFilledRect(screen, bx, by, cooldownBarWidth, 8, colorShade, false)
	vector.DrawFilledRect(screen, bx, by, float32(cooldownBarWidth*math.Min(math.Max(v.Cooldown, 0), 1)), 8, bar, false)
	vector.StrokeRect(screen, bx, by, cooldownBarWidth, 8, 1, colorReady, false)
}

func (w *Window) drawCentered(screen *ebiten.Image, lines []string) {
	const lineHeight = 16
	top := w.height/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		// The debug font is 6 pixels wide.
		ebitenutil.DebugPrintAt(screen, line, w.width/2-len(line)*3, top+i*lineHeight)
	}
}

// RGBA converts a visual colour with opacity to a premultiplied colour.
func RGBA(c tcell.Color, opacity float64) color.RGBA {
	opacity = math.Min(math.Max(opacity, 0), 1)
	r, g, b := int32(255), int32(255), int32(255)
	if c != tcell.ColorDefault {
		r, g, b = c.RGB()
	}
	return color.RGBA{
		R: uint8(float64(r) * opacity),
		G: uint8(float64(g) * opacity),
		B: uint8(float64(b) * opacity),
		A: uint8(255 * opacity),
	}
}

// ArtImage converts art to an image; transparent pixels stay clear.
func ArtImage(a *asset.Art) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, a.Width, a.Height))
	for y := range a.Height {
		for x := range a.Width {
			if c := a.At(x, y); c != tcell.ColorDefault {
				img.SetRGBA(x, y, RGBA(c, 1))
			}
		}
	}
	return img
}
