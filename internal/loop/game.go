// Package loop runs one game: it owns the world state and advances every
// system once per frame on a single logical clock.
package loop

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceshield/internal/asset"
	"github.com/tomz197/spaceshield/internal/audio"
	"github.com/tomz197/spaceshield/internal/camera"
	"github.com/tomz197/spaceshield/internal/clock"
	"github.com/tomz197/spaceshield/internal/config"
	"github.com/tomz197/spaceshield/internal/hud"
	"github.com/tomz197/spaceshield/internal/input"
	"github.com/tomz197/spaceshield/internal/object"
	"github.com/tomz197/spaceshield/internal/physics"
	"github.com/tomz197/spaceshield/internal/render"
)

// BoundsFunc returns the visible play rectangle. It is queried every tick.
type BoundsFunc func() physics.Rect

// DefaultAspect is the play area ratio when no bounds are supplied.
const DefaultAspect = 16.0 / 9.0

// Options configures a game. Zero fields get working defaults.
type Options struct {
	Tuning config.Tuning
	Scene  render.Scene
	Clock  clock.Clock // A clock.Pausable freezes time while paused
	Bounds BoundsFunc
	HUD    hud.HUD
	Audio  audio.Player
	Art    asset.Set
	Rand   *rand.Rand
	Logger *log.Logger
}

// Game is the orchestrator of one session. Not safe for concurrent use:
// Handle and Frame must be called from the same goroutine.
type Game struct {
	state   *State
	spawner *Spawner
	stars   *object.Starfield

	clock  clock.Clock
	epoch  time.Time
	bounds BoundsFunc
	hud    hud.HUD
	audio  audio.Player
	logger *log.Logger

	spawnTimer *clock.Interval
	fireTimer  *clock.Interval
	textTimer  *clock.Interval

	last *hud.Summary
}

// New creates a game on the start screen.
func New(opts Options) *Game {
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.DefaultTuning()
	}
	if opts.Scene == nil {
		opts.Scene = render.Nop{}
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewGame(clock.System{})
	}
	if opts.Bounds == nil {
		opts.Bounds = camera.New(config.DefaultFOV, config.DefaultCameraDistance, camera.Fixed(DefaultAspect)).Bounds
	}
	if opts.HUD == nil {
		opts.HUD = hud.Nop{}
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	t := opts.Tuning
	st := NewState(t, opts.Scene)
	st.Bounds = opts.Bounds()

	p := object.NewPlayer(
		physics.Vec2{X: t.Player.SpawnX, Y: t.Player.SpawnY},
		t.Player.HPPool,
		object.NewShield(t.Shield.Cooldown, t.Shield.Duration),
		object.NewBlink(t.Player.BlinkPeriod, t.Player.BlinkCount),
	)
	p.Visual = render.NewSprite(opts.Art.Player, ShipSize)
	p.Visual.Z = 2
	p.Overlay = render.NewSprite(opts.Art.ShieldOn, ShieldSize)
	p.Overlay.Z = 3
	p.Overlay.Visible = false
	st.Player = p
	opts.Scene.Add(p.Visual)
	opts.Scene.Add(p.Overlay)

	g := &Game{
		state:      st,
		spawner:    &Spawner{Rand: opts.Rand, EnemyArt: opts.Art.Enemy},
		stars:      object.NewStarfield(object.StarCount, st.Bounds, opts.Rand),
		clock:      opts.Clock,
		epoch:      opts.Clock.Now(),
		bounds:     opts.Bounds,
		hud:        opts.HUD,
		audio:      opts.Audio,
		logger:     opts.Logger.With("component", "game"),
		spawnTimer: clock.NewInterval(t.SpawnPeriod),
		fireTimer:  clock.NewInterval(t.FirePeriod),
		textTimer:  clock.NewInterval(t.TimerPeriod),
	}
	st.Session.OnScore = func(_, to int) { g.hud.SetScoreText(to) }
	p.SyncVisuals(g.clock.Now(), 0)
	g.pushHUD(g.clock.Now())
	return g
}

// State returns the world state.
func (g *Game) State() *State { return g.state }

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase { return g.state.Session.Phase }

// Stars returns the background starfield.
func (g *Game) Stars() *object.Starfield { return g.stars }

// LastSummary returns the result of the most recent finished run.
func (g *Game) LastSummary() (hud.Summary, bool) {
	if g.last == nil {
		return hud.Summary{}, false
	}
	return *g.last, true
}

// Elapsed returns game time since the game was created. The shield runs on
// this time base, so it keeps cooling down across runs.
func (g *Game) Elapsed() time.Duration {
	return g.clock.Now().Sub(g.epoch)
}

// Survived returns the time of the current run.
func (g *Game) Survived() time.Duration {
	return g.state.Session.Elapsed(g.clock.Now())
}

// Start leaves the start screen.
func (g *Game) Start() {
	if g.Phase() != NotStarted {
		return
	}
	now := g.clock.Now()
	g.state.Session.Phase = Running
	g.state.Session.StartTime = now
	g.spawnTimer.Reset(now)
	g.fireTimer.Reset(now)
	g.textTimer.Reset(now)
	g.pushHUD(now)
	g.audio.Play(audio.Music)
	g.logger.Info("game started")
}

// TogglePause switches between running and paused. Game time stops while
// paused when the clock supports it.
func (g *Game) TogglePause() {
	sess := &g.state.Session
	switch sess.Phase {
	case Running:
		sess.Phase = Paused
		if pc, ok := g.clock.(clock.Pausable); ok {
			pc.Pause()
		}
		g.logger.Debug("game paused")
	case Paused:
		if pc, ok := g.clock.(clock.Pausable); ok {
			pc.Resume()
		}
		sess.Phase = Running
		g.logger.Debug("game resumed")
	}
}

// Fire shoots a player bullet.
func (g *Game) Fire() {
	if g.Phase() != Running {
		return
	}
	if g.spawner.FireBullet(g.state, g.clock.Now()) != nil {
		g.audio.Play(audio.Laser)
	}
}

// UseSkill activates the shield if it has cooled down.
func (g *Game) UseSkill() {
	if g.Phase() != Running || g.state.Player == nil {
		return
	}
	elapsed := g.Elapsed()
	if g.state.Player.Shield.Activate(elapsed) {
		g.state.Player.SyncVisuals(g.clock.Now(), elapsed)
		g.logger.Debug("shield activated")
	}
}

// Acknowledge dismisses the game over prompt and starts the next run.
func (g *Game) Acknowledge() {
	if g.Phase() != Ended {
		return
	}
	now := g.clock.Now()
	g.state.Session.Phase = Running
	g.state.Session.StartTime = now
	g.hud.SetTimerText(hud.FormatClock(0))
	g.textTimer.Reset(now)
}

// Handle applies one input event.
func (g *Game) Handle(ev input.Event) {
	if ev.Action.Held() {
		if p := g.state.Player; p != nil {
			switch ev.Action {
			case input.Up:
				p.Moves.Up = ev.Pressed
			case input.Down:
				p.Moves.Down = ev.Pressed
			case input.Left:
				p.Moves.Left = ev.Pressed
			case input.Right:
				p.Moves.Right = ev.Pressed
			}
		}
		return
	}
	if !ev.Pressed {
		return
	}

	switch ev.Action {
	case input.Fire:
		g.Fire()
	case input.UseSkill:
		g.UseSkill()
	case input.TogglePause:
		g.TogglePause()
	case input.Start, input.Confirm:
		switch g.Phase() {
		case NotStarted:
			g.Start()
		case Ended:
			g.Acknowledge()
		}
	case input.ToggleMusic:
		if m, ok := g.audio.(interface{ ToggleMusic() bool }); ok {
			g.logger.Debug("music toggled", "on", m.ToggleMusic())
		}
	}
}

// Frame advances the world by one tick. Nothing moves unless running.
func (g *Game) Frame() {
	if g.Phase() != Running {
		return
	}

	st := g.state
	now := g.clock.Now()
	elapsed := now.Sub(g.epoch)
	st.Bounds = g.bounds()

	MovePlayer(st)
	MoveEntities(st)
	if st.Player != nil {
		st.Player.Shield.Update(elapsed)
		g.hud.SetShieldCooldown(st.Player.Shield.Ratio(elapsed))
	}

	if CheckPlayerHit(st, now) {
		g.audio.Play(audio.Explosion)
		g.hud.SetHeartCount(st.Player.Health)
		if !st.Player.Alive() {
			g.gameOver(now)
			st.Player.SyncVisuals(now, elapsed)
			return
		}
	}
	if CheckEnemyHit(st) {
		g.audio.Play(audio.EnemyExplosion)
	}

	if g.spawnTimer.Due(now) {
		g.spawner.SpawnEnemy(st, now)
	}
	if g.fireTimer.Due(now) {
		g.spawner.FireEnemyBullets(st, now)
	}
	if g.textTimer.Due(now) {
		g.hud.SetTimerText(hud.FormatClock(st.Session.Elapsed(now)))
	}

	g.stars.Update(st.Bounds)
	if st.Player != nil {
		st.Player.SyncVisuals(now, elapsed)
	}
}

// gameOver reports the finished run and resets the world for the next one.
func (g *Game) gameOver(now time.Time) {
	st := g.state
	summary := hud.Summary{Score: st.Session.Score, Survived: st.Session.Elapsed(now)}
	g.last = &summary
	g.logger.Info("game over", "score", summary.Score, "survived", hud.FormatClock(summary.Survived))
	g.hud.GameOver(summary)

	st.Session.Phase = Ended
	g.reset(now)
	if !st.Tuning.PromptOnGameOver {
		st.Session.Phase = Running
	}
}

// reset restores the player, clears every registry and restarts score and time.
func (g *Game) reset(now time.Time) {
	st := g.state
	st.Player.Reset()
	st.ClearEntities()
	st.Session.ResetScore(st.Tuning.ScoreIncrement)
	st.Session.StartTime = now
	g.textTimer.Reset(now)
	g.pushHUD(now)
}

func (g *Game) pushHUD(now time.Time) {
	st := g.state
	g.hud.SetScoreText(st.Session.Score)
	g.hud.SetTimerText(hud.FormatClock(st.Session.Elapsed(now)))
	if st.Player != nil {
		g.hud.SetHeartCount(st.Player.Health)
		g.hud.SetShieldCooldown(st.Player.Shield.Ratio(now.Sub(g.epoch)))
	}
}
