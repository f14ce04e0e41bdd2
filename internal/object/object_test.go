package object

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/tomz197/spaceshield/internal/config"
	"github.com/tomz197/spaceshield/internal/physics"
	"github.com/tomz197/spaceshield/internal/render"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newBullet(x, y float64) *Bullet {
	b := &Bullet{Entity{Kind: KindBullet, Position: physics.Vec2{X: x, Y: y}, Velocity: physics.Vec2{X: 0.1}}}
	b.Visual = render.NewOrb(BulletRadius, ColorBullet)
	return b
}

func TestRegistryKeepsSceneInSync(t *testing.T) {
	layer := render.NewLayer()
	reg := NewRegistry[*Bullet](layer)

	a, b, c := newBullet(0, 0), newBullet(1, 0), newBullet(2, 0)
	reg.Add(a)
	reg.Add(b)
	reg.Add(c)
	if reg.Len() != 3 || layer.Len() != 3 {
		t.Fatalf("Len = %d/%d, want 3/3", reg.Len(), layer.Len())
	}
	if a.Visual.Position != a.Position {
		t.Error("Add should sync the visual position")
	}

	removed := reg.RemoveAt(1)
	if removed != b || layer.Contains(b.Visual) {
		t.Fatal("RemoveAt did not release the visual")
	}
	if reg.At(0) != a || reg.At(1) != c {
		t.Fatal("RemoveAt broke ordering")
	}

	reg.Clear()
	if reg.Len() != 0 || layer.Len() != 0 {
		t.Fatalf("after Clear Len = %d/%d, want 0/0", reg.Len(), layer.Len())
	}
}

func TestRegistryRemoveFunc(t *testing.T) {
	layer := render.NewLayer()
	reg := NewRegistry[*Bullet](layer)
	for i := range 5 {
		reg.Add(newBullet(float64(i), 0))
	}

	n := reg.RemoveFunc(func(b *Bullet) bool { return b.Position.X >= 3 })
	if n != 2 || reg.Len() != 3 || layer.Len() != 3 {
		t.Fatalf("removed %d, left %d/%d", n, reg.Len(), layer.Len())
	}
}

func TestEntityStep(t *testing.T) {
	b := newBullet(1, 1)
	for range 10 {
		b.Step()
	}
	if math.Abs(b.Position.X-2) > 1e-9 || b.Position.Y != 1 {
		t.Fatalf("position = %+v, want (2, 1)", b.Position)
	}
	if b.Visual.Position != b.Position {
		t.Error("visual not following entity")
	}
}

func TestPatternVelocities(t *testing.T) {
	tun := config.DefaultTuning()

	straight := Straight.Velocities(tun)
	if len(straight) != 1 || straight[0] != (physics.Vec2{X: -0.25}) {
		t.Errorf("straight = %v", straight)
	}

	circle := Circle.Velocities(tun)
	if len(circle) != 8 {
		t.Fatalf("circle count = %d, want 8", len(circle))
	}
	for i, v := range circle {
		if math.Abs(v.Len()-0.10) > 1e-9 {
			t.Errorf("circle[%d] speed = %v", i, v.Len())
		}
	}

	triple := Triple.Velocities(tun)
	if len(triple) != 3 {
		t.Fatalf("triple count = %d, want 3", len(triple))
	}
	if math.Abs(triple[0].X+0.15) > 1e-9 || math.Abs(triple[0].Y) > 1e-9 {
		t.Errorf("triple[0] = %+v, want (-0.15, 0)", triple[0])
	}
	if triple[1].Y <= 0 || triple[2].Y >= 0 {
		t.Errorf("triple spread wrong: %+v", triple)
	}
}

func TestRandomPatternCoversAll(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := map[Pattern]bool{}
	for range 300 {
		seen[RandomPattern(rng)] = true
	}
	if len(seen) != 3 {
		t.Fatalf("patterns seen = %v", seen)
	}
}

func TestEnemyCanFire(t *testing.T) {
	e := &Enemy{FiringDelay: 500 * time.Millisecond, LastFiredTime: epoch}
	if e.CanFire(epoch.Add(499 * time.Millisecond)) {
		t.Error("fired before delay")
	}
	if !e.CanFire(epoch.Add(500 * time.Millisecond)) {
		t.Error("did not fire at delay")
	}
}

func TestPlayerMoveClamps(t *testing.T) {
	bounds := physics.Rect{MinX: -10, MaxX: 10, MinY: -5, MaxY: 5}
	p := NewPlayer(physics.Vec2{X: 9.9, Y: 0}, 10, nil, NewBlink(100*time.Millisecond, 5))

	p.Moves = MoveFlags{Right: true, Up: true}
	p.Move(bounds, 0.15)
	if p.Position.X != 10 {
		t.Errorf("x = %v, want clamped 10", p.Position.X)
	}
	if math.Abs(p.Position.Y-0.15) > 1e-9 {
		t.Errorf("y = %v, want 0.15", p.Position.Y)
	}

	p.Moves = MoveFlags{Left: true, Right: true}
	before := p.Position
	p.Move(bounds, 0.15)
	if p.Position != before {
		t.Error("opposite flags should cancel")
	}
}

func TestPlayerHitAndReset(t *testing.T) {
	p := NewPlayer(physics.Vec2{X: -20}, 2, nil, NewBlink(100*time.Millisecond, 5))
	p.Position = physics.Vec2{X: 3, Y: 3}
	p.Moves.Up = true

	if p.Hit(epoch) {
		t.Fatal("died with health left")
	}
	if !p.Hit(epoch) {
		t.Fatal("expected death at zero health")
	}
	if p.Hit(epoch); p.Health != 0 {
		t.Errorf("health went below zero: %d", p.Health)
	}

	p.Reset()
	if p.Health != 2 || p.Position != p.Spawn || p.Moves != (MoveFlags{}) {
		t.Fatalf("reset incomplete: %+v", p)
	}
}

func TestShieldStateMachine(t *testing.T) {
	s := NewShield(30*time.Second, 5*time.Second)

	if !s.Ready(0) || s.Ratio(0) != 1 {
		t.Fatal("shield should start ready")
	}
	if !s.Activate(0) {
		t.Fatal("activation at t=0 failed")
	}

	s.Update(3 * time.Second)
	if !s.IsActive() {
		t.Fatal("expected active at t=3")
	}
	if s.Activate(3 * time.Second) {
		t.Fatal("reactivation before cooldown must be a no-op")
	}
	if s.ActivatedAt() != 0 {
		t.Fatal("failed reactivation changed state")
	}

	s.Update(5 * time.Second)
	if s.IsActive() {
		t.Fatal("shield must expire at activatedAt+duration")
	}

	if r := s.Ratio(15 * time.Second); math.Abs(r-0.5) > 1e-9 {
		t.Errorf("Ratio(15s) = %v, want 0.5", r)
	}
	if s.Ready(29 * time.Second) {
		t.Error("ready before cooldown")
	}
	if !s.Activate(30 * time.Second) {
		t.Error("activation after cooldown failed")
	}
}

func TestShieldOpacityPulse(t *testing.T) {
	s := NewShield(30*time.Second, 5*time.Second)
	if s.Opacity(0) != 0 {
		t.Error("inactive shield must be transparent")
	}
	s.Activate(0)
	if got := s.Opacity(500 * time.Millisecond); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Opacity(0.5s) = %v, want 0.5", got)
	}
	if got := s.Opacity(0); math.Abs(got-0.35) > 1e-9 {
		t.Errorf("Opacity(0) = %v, want 0.35", got)
	}
}

func TestBlink(t *testing.T) {
	b := NewBlink(100*time.Millisecond, 5)
	if !b.Visible(epoch) {
		t.Fatal("idle blink must be visible")
	}

	b.Trigger(epoch)
	tests := []struct {
		at   time.Duration
		want bool
	}{
		{50 * time.Millisecond, true},
		{150 * time.Millisecond, false},
		{250 * time.Millisecond, true},
		{950 * time.Millisecond, false},
		{time.Second, true},
	}
	for _, tt := range tests {
		if got := b.Visible(epoch.Add(tt.at)); got != tt.want {
			t.Errorf("Visible(+%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
	if b.Active(epoch.Add(time.Second)) {
		t.Error("blink should have finished after ten toggles")
	}
}

func TestStarfieldRespawnsAtFarPlane(t *testing.T) {
	bounds := physics.Rect{MinX: -10, MaxX: 10, MinY: -5, MaxY: 5}
	sf := NewStarfield(50, bounds, rand.New(rand.NewPCG(3, 4)))

	for _, st := range sf.Stars {
		if !bounds.Contains(physics.Vec2{X: st.X, Y: st.Y}) || st.Z < StarFar || st.Z > 0 {
			t.Fatalf("star out of range: %+v", st)
		}
	}

	sf.Stars[0].Z = -0.01
	sf.Update(bounds)
	if sf.Stars[0].Z != StarFar {
		t.Errorf("star not respawned: z = %v", sf.Stars[0].Z)
	}

	near := Star{X: 1, Y: 1, Z: 0}
	if p := near.Project(100); p.X != 1 || p.Y != 1 {
		t.Errorf("star on plane projects to %+v", p)
	}
	far := Star{X: 1, Y: 1, Z: -10}
	if p := far.Project(100); p.X >= 1 {
		t.Errorf("far star should appear closer to centre, got %+v", p)
	}
}

func TestSyncVisualsShieldOverlay(t *testing.T) {
	sh := NewShield(30*time.Second, 5*time.Second)
	p := NewPlayer(physics.Vec2{}, 3, sh, NewBlink(100*time.Millisecond, 5))
	p.Visual = render.NewSprite(nil, 1)
	p.Overlay = render.NewSprite(nil, 5)

	p.SyncVisuals(epoch, 0)
	if p.Overlay.Visible {
		t.Fatal("overlay visible with shield off")
	}

	sh.Activate(0)
	p.Position = physics.Vec2{X: 2}
	p.SyncVisuals(epoch, 0)
	if !p.Overlay.Visible || p.Overlay.Position != p.Position {
		t.Fatalf("overlay not following active shield: %+v", p.Overlay)
	}
}
