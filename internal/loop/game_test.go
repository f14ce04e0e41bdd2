package loop

import (
	"io"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceshield/internal/audio"
	"github.com/tomz197/spaceshield/internal/clock"
	"github.com/tomz197/spaceshield/internal/config"
	"github.com/tomz197/spaceshield/internal/hud"
	"github.com/tomz197/spaceshield/internal/input"
	"github.com/tomz197/spaceshield/internal/object"
	"github.com/tomz197/spaceshield/internal/physics"
	"github.com/tomz197/spaceshield/internal/render"
)

var (
	epoch      = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	testBounds = physics.Rect{MinX: -30, MaxX: 30, MinY: -15, MaxY: 15}
)

type cueRecorder struct {
	cues []audio.Cue
}

func (r *cueRecorder) Play(c audio.Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c audio.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

type fixture struct {
	game  *Game
	clock *clock.Manual
	layer *render.Layer
	board *hud.Board
	audio *cueRecorder
}

func newFixture(t *testing.T, tune func(*config.Tuning)) *fixture {
	t.Helper()
	tun := config.DefaultTuning()
	if tune != nil {
		tune(&tun)
	}

	f := &fixture{
		clock: clock.NewManual(epoch),
		layer: render.NewLayer(),
		board: hud.NewBoard(),
		audio: &cueRecorder{},
	}
	f.game = New(Options{
		Tuning: tun,
		Scene:  f.layer,
		Clock:  f.clock,
		Bounds: func() physics.Rect { return testBounds },
		HUD:    f.board,
		Audio:  f.audio,
		Rand:   rand.New(rand.NewPCG(7, 11)),
		Logger: log.New(io.Discard),
	})
	return f
}

// tick advances the clock by one frame and runs it.
func (f *fixture) tick(d time.Duration) {
	f.clock.Advance(d)
	f.game.Frame()
}

func (f *fixture) addEnemyBullet(pos, vel physics.Vec2) *object.EnemyBullet {
	st := f.game.State()
	b := &object.EnemyBullet{Entity: object.Entity{
		ID:       st.NextID(),
		Kind:     object.KindEnemyBullet,
		Position: pos,
		Velocity: vel,
		Visual:   render.NewOrb(object.BulletRadius, object.ColorStraight),
	}}
	st.EnemyBullets.Add(b)
	return b
}

func (f *fixture) addEnemy(pos physics.Vec2) *object.Enemy {
	st := f.game.State()
	e := &object.Enemy{
		Entity: object.Entity{
			ID:       st.NextID(),
			Kind:     object.KindEnemy,
			Position: pos,
			Visual:   render.NewSprite(nil, ShipSize),
		},
		FiringDelay:   time.Hour,
		LastFiredTime: f.clock.Now(),
	}
	st.Enemies.Add(e)
	return e
}

func (f *fixture) addBullet(pos physics.Vec2) *object.Bullet {
	st := f.game.State()
	b := &object.Bullet{Entity: object.Entity{
		ID:       st.NextID(),
		Kind:     object.KindBullet,
		Position: pos,
		Visual:   render.NewOrb(object.BulletRadius, object.ColorBullet),
	}}
	st.Bullets.Add(b)
	return b
}

func TestNewGameStartsOnStartScreen(t *testing.T) {
	f := newFixture(t, nil)
	if f.game.Phase() != NotStarted {
		t.Fatalf("phase = %v, want not-started", f.game.Phase())
	}

	p := f.game.State().Player
	if p.Position != (physics.Vec2{X: -20, Y: 0}) || p.Health != 10 {
		t.Fatalf("player = %+v", p)
	}
	if v := f.board.Snapshot(); v.Hearts != 10 || v.Score != 0 {
		t.Fatalf("initial HUD = %+v", v)
	}

	// Nothing advances before the start action.
	f.game.Fire()
	f.tick(5 * time.Second)
	if f.game.State().EntityCount() != 0 {
		t.Fatal("world moved before start")
	}
}

func TestStartPlaysMusicAndAnchorsTime(t *testing.T) {
	f := newFixture(t, nil)
	f.clock.Advance(3 * time.Second)
	f.game.Handle(input.Event{Action: input.Confirm, Pressed: true})

	if f.game.Phase() != Running {
		t.Fatalf("phase = %v, want running", f.game.Phase())
	}
	if !f.game.State().Session.StartTime.Equal(f.clock.Now()) {
		t.Error("start time not anchored at start")
	}
	if f.audio.count(audio.Music) != 1 {
		t.Error("music not started")
	}
}

func TestSpawnEnemyRespectsCap(t *testing.T) {
	f := newFixture(t, nil)
	st := f.game.State()
	sp := f.game.spawner
	now := f.clock.Now()

	for range 15 {
		sp.SpawnEnemy(st, now)
		if st.Enemies.Len() > st.Tuning.Enemy.MaxEnemies {
			t.Fatalf("enemies = %d exceeds cap", st.Enemies.Len())
		}
	}
	if st.Enemies.Len() != 10 {
		t.Fatalf("enemies = %d, want 10", st.Enemies.Len())
	}

	for _, e := range st.Enemies.Items() {
		if e.Position.X != testBounds.MaxX {
			t.Errorf("enemy x = %v, want %v", e.Position.X, testBounds.MaxX)
		}
		if e.Position.Y < testBounds.MinY || e.Position.Y > testBounds.MaxY {
			t.Errorf("enemy y = %v out of bounds", e.Position.Y)
		}
		if e.FiringDelay < 500*time.Millisecond || e.FiringDelay >= 2*time.Second {
			t.Errorf("firing delay = %v out of range", e.FiringDelay)
		}
		if !e.LastFiredTime.Equal(now) {
			t.Error("last fired time not set to spawn time")
		}
		if !f.layer.Contains(e.Visual) {
			t.Error("enemy visual not published")
		}
	}
}

func TestStraightEnemyFiresOneBullet(t *testing.T) {
	f := newFixture(t, nil)
	st := f.game.State()
	y0 := 4.0

	e := f.addEnemy(physics.Vec2{X: testBounds.MaxX, Y: y0})
	e.Pattern = object.Straight
	e.FiringDelay = 500 * time.Millisecond

	if n := f.game.spawner.FireEnemyBullets(st, f.clock.Now().Add(499*time.Millisecond)); n != 0 {
		t.Fatalf("fired %d bullets before delay", n)
	}

	at := f.clock.Now().Add(500 * time.Millisecond)
	if n := f.game.spawner.FireEnemyBullets(st, at); n != 1 {
		t.Fatalf("fired %d bullets, want 1", n)
	}
	b := st.EnemyBullets.At(0)
	if b.Position != (physics.Vec2{X: testBounds.MaxX, Y: y0}) {
		t.Errorf("bullet position = %+v", b.Position)
	}
	if b.Velocity != (physics.Vec2{X: -0.25}) {
		t.Errorf("bullet velocity = %+v, want (-0.25, 0)", b.Velocity)
	}
	if b.Pattern != object.Straight || !e.LastFiredTime.Equal(at) {
		t.Error("pattern or last fired time wrong")
	}
}

func TestPatternVolleySizes(t *testing.T) {
	tests := []struct {
		pattern object.Pattern
		want    int
	}{
		{object.Straight, 1},
		{object.Circle, 8},
		{object.Triple, 3},
	}
	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			f := newFixture(t, nil)
			e := f.addEnemy(physics.Vec2{X: 10, Y: 0})
			e.Pattern = tt.pattern
			e.FiringDelay = 0

			n := f.game.spawner.FireEnemyBullets(f.game.State(), f.clock.Now())
			if n != tt.want || f.game.State().EnemyBullets.Len() != tt.want {
				t.Fatalf("volley = %d, want %d", n, tt.want)
			}
			for _, b := range f.game.State().EnemyBullets.Items() {
				if b.Visual.Color != tt.pattern.Color() {
					t.Error("bullet colour does not match pattern")
				}
			}
		})
	}
}

func TestMoveEntitiesIntegratesAndRemoves(t *testing.T) {
	f := newFixture(t, nil)
	st := f.game.State()
	st.Bounds = testBounds

	inside := f.addBullet(physics.Vec2{X: 0, Y: 0})
	inside.Velocity = physics.Vec2{X: 0.1}
	leaving := f.addBullet(physics.Vec2{X: testBounds.MaxX - 0.05})
	leaving.Velocity = physics.Vec2{X: 0.1}

	enemy := f.addEnemy(physics.Vec2{X: testBounds.MinX + 0.01})
	enemy.Velocity = physics.Vec2{X: -0.05}

	// Outside the camera but inside the fixed box: kept.
	far := f.addEnemyBullet(physics.Vec2{X: -100, Y: 0}, physics.Vec2{X: -0.25})
	gone := f.addEnemyBullet(physics.Vec2{X: 0, Y: 499.95}, physics.Vec2{Y: 0.1})

	MoveEntities(st)

	if math.Abs(inside.Position.X-0.1) > 1e-9 {
		t.Errorf("bullet x = %v, want 0.1", inside.Position.X)
	}
	if st.Bullets.Len() != 1 || f.layer.Contains(leaving.Visual) {
		t.Error("bullet past the right edge not removed")
	}
	if st.Enemies.Len() != 0 || f.layer.Contains(enemy.Visual) {
		t.Error("enemy past the left edge not removed")
	}
	if st.EnemyBullets.Len() != 1 || st.EnemyBullets.At(0) != far {
		t.Error("enemy bullet box removal wrong")
	}
	if f.layer.Contains(gone.Visual) {
		t.Error("removed enemy bullet visual still in scene")
	}
	if far.Visual.Position != far.Position {
		t.Error("visual not following entity")
	}
}

func TestMovePlayerWithInput(t *testing.T) {
	f := newFixture(t, nil)
	f.game.Start()

	f.game.Handle(input.Event{Action: input.Right, Pressed: true})
	f.tick(config.FrameTime)
	p := f.game.State().Player
	if math.Abs(p.Position.X-(-20+0.15)) > 1e-9 {
		t.Fatalf("x = %v, want -19.85", p.Position.X)
	}

	f.game.Handle(input.Event{Action: input.Right, Pressed: false})
	before := p.Position
	f.tick(config.FrameTime)
	if p.Position != before {
		t.Fatal("player moved after release")
	}

	f.game.Handle(input.Event{Action: input.Left, Pressed: true})
	for range 100 {
		f.tick(0)
	}
	if p.Position.X != testBounds.MinX {
		t.Fatalf("x = %v, want clamped %v", p.Position.X, testBounds.MinX)
	}
}

func TestBulletHitsEnemy(t *testing.T) {
	f := newFixture(t, nil)
	st := f.game.State()
	st.Session.Score = 40

	b := f.addBullet(physics.Vec2{X: 5, Y: 5})
	e := f.addEnemy(physics.Vec2{X: 5.3, Y: 5.3})

	if !CheckEnemyHit(st) {
		t.Fatal("expected a hit")
	}
	if st.Bullets.Len() != 0 || st.Enemies.Len() != 0 {
		t.Fatal("bullet and enemy not both removed")
	}
	if f.layer.Contains(b.Visual) || f.layer.Contains(e.Visual) {
		t.Fatal("visuals not released")
	}
	if st.Session.Score != 50 {
		t.Fatalf("score = %d, want 50", st.Session.Score)
	}
}

func TestOneEnemyHitPerTick(t *testing.T) {
	f := newFixture(t, nil)
	st := f.game.State()

	f.addBullet(physics.Vec2{X: 0, Y: 0})
	f.addEnemy(physics.Vec2{X: 0, Y: 0})
	last := f.addBullet(physics.Vec2{X: 10, Y: 0})
	f.addEnemy(physics.Vec2{X: 10, Y: 0})

	CheckEnemyHit(st)
	if st.Bullets.Len() != 1 || st.Enemies.Len() != 1 {
		t.Fatalf("resolved more than one pair: %d bullets, %d enemies", st.Bullets.Len(), st.Enemies.Len())
	}
	if st.Bullets.At(0) == last {
		t.Fatal("the last added bullet should be resolved first")
	}
	if st.Session.Score != 10 {
		t.Fatalf("score = %d, want 10", st.Session.Score)
	}
}

func TestCollisionBoundaryIsStrict(t *testing.T) {
	f := newFixture(t, nil)
	st := f.game.State()
	f.addBullet(physics.Vec2{X: 0})
	f.addEnemy(physics.Vec2{X: 1})

	if CheckEnemyHit(st) {
		t.Fatal("distance of exactly 1 must not hit")
	}
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	f := newFixture(t, nil)
	f.game.Start()
	p := f.game.State().Player

	f.addEnemyBullet(p.Position, physics.Vec2{})
	f.tick(config.FrameTime)

	if p.Health != 9 {
		t.Fatalf("health = %d, want 9", p.Health)
	}
	if f.game.State().EnemyBullets.Len() != 0 {
		t.Fatal("hit bullet not removed")
	}
	if f.board.Snapshot().Hearts != 9 {
		t.Fatal("heart count not updated")
	}
	if !p.Blink.Active(f.clock.Now()) {
		t.Fatal("blink not started")
	}
	if f.audio.count(audio.Explosion) != 1 {
		t.Fatal("player hit cue not played")
	}
}

func TestLastHealthPointResetsGame(t *testing.T) {
	f := newFixture(t, nil)
	f.game.Start()
	st := f.game.State()
	p := st.Player

	f.clock.Advance(75 * time.Second)
	p.Health = 1
	p.Position = physics.Vec2{X: 3, Y: 3}
	p.Moves.Up = true
	st.Session.Score = 120

	for range 3 {
		f.addBullet(physics.Vec2{X: -5, Y: -7})
		f.addEnemy(physics.Vec2{X: 20, Y: 10})
	}
	f.addEnemyBullet(physics.Vec2{X: 3, Y: 3.15}, physics.Vec2{})
	f.addEnemyBullet(physics.Vec2{X: 15, Y: 0}, physics.Vec2{X: -0.25})

	f.tick(config.FrameTime)
	now := f.clock.Now()

	if f.game.Phase() != Running {
		t.Fatalf("phase = %v, want running", f.game.Phase())
	}
	if p.Health != p.HPPool {
		t.Errorf("health = %d, want %d", p.Health, p.HPPool)
	}
	if p.Position != (physics.Vec2{X: -20, Y: 0}) || p.Moves != (object.MoveFlags{}) {
		t.Errorf("player not reset: %+v", p)
	}
	if st.Session.Score != 0 {
		t.Errorf("score = %d, want 0", st.Session.Score)
	}
	if st.EntityCount() != 0 {
		t.Errorf("registries not empty: %d", st.EntityCount())
	}
	if f.layer.Len() != 2 {
		t.Errorf("scene holds %d visuals, want only the player and shield", f.layer.Len())
	}
	if !st.Session.StartTime.Equal(now) {
		t.Errorf("start time = %v, want %v", st.Session.StartTime, now)
	}

	v := f.board.Snapshot()
	if v.GameOvers != 1 || v.LastRun.Score != 120 || v.LastRun.Survived < 75*time.Second {
		t.Errorf("game over summary = %+v", v.LastRun)
	}
	if v.Score != 0 || v.Hearts != p.HPPool || v.Timer != "00:00" {
		t.Errorf("HUD not reset: %+v", v)
	}
	if s, ok := f.game.LastSummary(); !ok || s.Score != 120 {
		t.Errorf("LastSummary = %+v %v", s, ok)
	}
}

func TestResetScoreNetsZero(t *testing.T) {
	tests := []struct {
		start, increment int
	}{
		{70, 10},
		{0, 10},
		{-5, 25},
	}
	for _, tt := range tests {
		var steps [][2]int
		s := Session{Score: tt.start, OnScore: func(from, to int) {
			steps = append(steps, [2]int{from, to})
		}}
		s.ResetScore(tt.increment)

		if s.Score != 0 {
			t.Errorf("ResetScore(%d) from %d: score = %d, want 0", tt.increment, tt.start, s.Score)
		}
		if len(steps) != 1 || steps[0] != [2]int{-tt.increment, 0} {
			t.Errorf("ResetScore(%d) from %d: steps = %v, want one step %d -> 0",
				tt.increment, tt.start, steps, -tt.increment)
		}
	}
}

func TestGameOverResetsScoreThroughOneIncrement(t *testing.T) {
	f := newFixture(t, nil)
	f.game.Start()
	st := f.game.State()
	st.Session.Score = 40

	var steps [][2]int
	hook := st.Session.OnScore
	st.Session.OnScore = func(from, to int) {
		steps = append(steps, [2]int{from, to})
		hook(from, to)
	}
	st.Player.Health = 0
	f.game.gameOver(f.clock.Now())

	inc := st.Tuning.ScoreIncrement
	if len(steps) != 1 || steps[0] != [2]int{-inc, 0} {
		t.Fatalf("score steps = %v, want %d -> 0", steps, -inc)
	}
	if got := f.board.Snapshot().Score; got != 0 {
		t.Fatalf("HUD score = %d, want 0", got)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	f.game.Start()
	st := f.game.State()

	for range 3 {
		st.Player.Health = 0
		f.addEnemy(physics.Vec2{X: 1})
		f.game.gameOver(f.clock.Now())

		if st.Player.Health != st.Player.HPPool || st.Session.Score != 0 || st.EntityCount() != 0 {
			t.Fatalf("reset left health=%d score=%d entities=%d",
				st.Player.Health, st.Session.Score, st.EntityCount())
		}
		f.clock.Advance(time.Second)
	}
}

func TestShieldBlocksEnemyBullets(t *testing.T) {
	f := newFixture(t, nil)
	f.game.Start()
	p := f.game.State().Player

	f.game.Handle(input.Event{Action: input.UseSkill, Pressed: true})
	if !p.Shield.IsActive() {
		t.Fatal("shield not activated at t=0")
	}

	bullet := f.addEnemyBullet(p.Position, physics.Vec2{})
	f.tick(3 * time.Second)
	if p.Health != 10 {
		t.Fatalf("health = %d at t=3 with shield on", p.Health)
	}
	if f.game.State().EnemyBullets.Len() == 0 || f.game.State().EnemyBullets.At(0) != bullet {
		t.Fatal("bullet removed while shield active")
	}
	if !p.Overlay.Visible {
		t.Fatal("shield overlay hidden while active")
	}

	f.tick(3 * time.Second)
	if p.Shield.IsActive() {
		t.Fatal("shield still active at t=6")
	}
	if p.Health != 9 {
		t.Fatalf("health = %d at t=6, want 9", p.Health)
	}
	if p.Overlay.Visible {
		t.Fatal("shield overlay visible after expiry")
	}
}

func TestShieldCooldownGatesReactivation(t *testing.T) {
	f := newFixture(t, nil)
	f.game.Start()
	sh := f.game.State().Player.Shield

	f.game.UseSkill()
	f.tick(10 * time.Second)
	f.game.UseSkill()
	if sh.IsActive() || sh.ActivatedAt() != 0 {
		t.Fatal("reactivated before cooldown")
	}
	if got := f.board.Snapshot().Cooldown; math.Abs(got-1.0/3) > 1e-9 {
		t.Fatalf("HUD cooldown = %v, want 1/3", got)
	}

	f.tick(20 * time.Second)
	if !f.board.Snapshot().ShieldReady() {
		t.Fatal("HUD does not show ready shield")
	}
	f.game.UseSkill()
	if !sh.IsActive() {
		t.Fatal("activation after cooldown failed")
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	manual := clock.NewManual(epoch)
	gc := clock.NewGame(manual)
	f := newFixture(t, nil)
	f.game = New(Options{
		Scene:  f.layer,
		Clock:  gc,
		Bounds: func() physics.Rect { return testBounds },
		HUD:    f.board,
		Audio:  f.audio,
		Rand:   rand.New(rand.NewPCG(1, 1)),
		Logger: log.New(io.Discard),
	})
	f.game.Start()

	b := f.addBullet(physics.Vec2{})
	b.Velocity = physics.Vec2{X: 0.1}

	f.game.Handle(input.Event{Action: input.TogglePause, Pressed: true})
	if f.game.Phase() != Paused || !gc.IsPaused() {
		t.Fatal("not paused")
	}
	f.game.Fire()

	manual.Advance(time.Minute)
	for range 100 {
		f.game.Frame()
	}
	if b.Position.X != 0 || f.game.State().Enemies.Len() != 0 || f.game.State().Bullets.Len() != 1 {
		t.Fatal("world changed while paused")
	}
	if f.game.Elapsed() != 0 {
		t.Fatalf("game time advanced while paused: %v", f.game.Elapsed())
	}

	f.game.TogglePause()
	manual.Advance(1600 * time.Millisecond)
	f.game.Frame()
	if f.game.Phase() != Running || b.Position.X == 0 {
		t.Fatal("world did not resume")
	}
	if f.game.State().Enemies.Len() != 1 {
		t.Fatalf("enemies = %d, want 1 spawned 1.5s after start of game time", f.game.State().Enemies.Len())
	}
}

func TestTimersRunOnGameTime(t *testing.T) {
	f := newFixture(t, nil)
	f.game.Start()

	f.tick(1400 * time.Millisecond)
	if f.game.State().Enemies.Len() != 0 {
		t.Fatal("enemy spawned before 1500ms")
	}
	if f.board.Snapshot().Timer != "00:01" {
		t.Fatalf("timer = %q, want 00:01", f.board.Snapshot().Timer)
	}

	f.tick(100 * time.Millisecond)
	if f.game.State().Enemies.Len() != 1 {
		t.Fatal("enemy not spawned at 1500ms")
	}
}

func TestFireSpawnsBulletAndLaser(t *testing.T) {
	f := newFixture(t, nil)
	f.game.Start()
	p := f.game.State().Player

	f.game.Handle(input.Event{Action: input.Fire, Pressed: true})
	f.game.Handle(input.Event{Action: input.Fire, Pressed: false})

	st := f.game.State()
	if st.Bullets.Len() != 1 {
		t.Fatalf("bullets = %d, want 1", st.Bullets.Len())
	}
	b := st.Bullets.At(0)
	if b.Position != p.Position || b.Velocity != (physics.Vec2{X: 0.10}) {
		t.Fatalf("bullet = %+v", b.Entity)
	}
	if f.audio.count(audio.Laser) != 1 {
		t.Fatal("laser cue not played")
	}
}

func TestPromptOnGameOverWaitsForAcknowledge(t *testing.T) {
	f := newFixture(t, func(tun *config.Tuning) { tun.PromptOnGameOver = true })
	f.game.Start()
	p := f.game.State().Player
	p.Health = 1
	f.addEnemyBullet(p.Position, physics.Vec2{})

	f.tick(config.FrameTime)
	if f.game.Phase() != Ended {
		t.Fatalf("phase = %v, want ended", f.game.Phase())
	}

	f.tick(10 * time.Second)
	if f.game.State().Enemies.Len() != 0 {
		t.Fatal("world advanced during game over prompt")
	}

	f.game.Handle(input.Event{Action: input.Confirm, Pressed: true})
	if f.game.Phase() != Running {
		t.Fatal("acknowledge did not resume")
	}
	if !f.game.State().Session.StartTime.Equal(f.clock.Now()) {
		t.Fatal("start time not re-anchored on acknowledge")
	}
	if f.game.Survived() != 0 {
		t.Fatalf("survived = %v, want 0", f.game.Survived())
	}
}

func TestNilPlayerIsTolerated(t *testing.T) {
	st := NewState(config.DefaultTuning(), render.NewLayer())
	st.Bounds = testBounds
	st.EnemyBullets.Add(&object.EnemyBullet{})

	MovePlayer(st)
	if CheckPlayerHit(st, epoch) {
		t.Fatal("nil player cannot be hit")
	}
	var sp Spawner
	if sp.FireBullet(st, epoch) != nil {
		t.Fatal("nil player cannot fire")
	}
}

func TestPlayerBlinkDuringTicks(t *testing.T) {
	f := newFixture(t, nil)
	f.game.Start()
	p := f.game.State().Player
	f.addEnemyBullet(p.Position, physics.Vec2{})

	f.tick(config.FrameTime)
	f.tick(150 * time.Millisecond)
	if p.Visual.Visible {
		t.Fatal("player should be hidden on the first blink toggle")
	}
	f.tick(time.Second)
	if !p.Visual.Visible {
		t.Fatal("player should be visible after blinking")
	}
}

func TestPhaseString(t *testing.T) {
	if Paused.String() != "paused" || Phase(9).String() != "phase(9)" {
		t.Fatal("unexpected phase names")
	}
}

func TestDefaultBoundsFollowDefaultAspect(t *testing.T) {
	g := New(Options{Logger: log.New(io.Discard)})
	b := g.State().Bounds
	if r := b.Width() / b.Height(); r < DefaultAspect-0.01 || r > DefaultAspect+0.01 {
		t.Fatalf("default play area ratio = %v, want %v", r, DefaultAspect)
	}
	if b.MinX != -b.MaxX || b.MinY != -b.MaxY {
		t.Fatalf("default bounds %+v not centered", b)
	}
}
