package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Frame timing for every frontend.
const (
	TickRate  = 60
	FrameTime = time.Second / TickRate
)

// Camera defaults.
const (
	DefaultFOV            = 15.0 // Degrees
	DefaultCameraDistance = 100.0
)

// Tuning holds the gameplay parameters. Speeds are world units per tick.
//
// File location: $SPACESHIELD_CONFIG (optional). Fields missing from the
// file keep their default values.
type Tuning struct {
	Player PlayerTuning `yaml:"player"`
	Shield ShieldTuning `yaml:"shield"`
	Enemy  EnemyTuning  `yaml:"enemy"`

	// Bullets
	BulletSpeed      float64 `yaml:"bulletSpeed"`
	StraightSpeed    float64 `yaml:"straightSpeed"`
	CircleSpeed      float64 `yaml:"circleSpeed"`
	CircleCount      int     `yaml:"circleCount"`
	TripleSpeed      float64 `yaml:"tripleSpeed"`
	EnemyBulletLimit float64 `yaml:"enemyBulletLimit"` // Removal box half-size

	CollisionRadius float64 `yaml:"collisionRadius"`
	ScoreIncrement  int     `yaml:"scoreIncrement"`

	// Timers
	SpawnPeriod time.Duration `yaml:"spawnPeriod"`
	FirePeriod  time.Duration `yaml:"firePeriod"`
	TimerPeriod time.Duration `yaml:"timerPeriod"`

	// PromptOnGameOver keeps the game in the ended phase until acknowledged.
	PromptOnGameOver bool `yaml:"promptOnGameOver"`
}

// PlayerTuning configures the player ship.
type PlayerTuning struct {
	HPPool      int           `yaml:"hpPool"`
	MoveSpeed   float64       `yaml:"moveSpeed"`
	SpawnX      float64       `yaml:"spawnX"`
	SpawnY      float64       `yaml:"spawnY"`
	BlinkPeriod time.Duration `yaml:"blinkPeriod"`
	BlinkCount  int           `yaml:"blinkCount"`
}

// ShieldTuning configures the shield skill.
type ShieldTuning struct {
	Cooldown time.Duration `yaml:"cooldown"`
	Duration time.Duration `yaml:"duration"`
}

// EnemyTuning configures enemy spawning.
type EnemyTuning struct {
	MaxEnemies     int           `yaml:"maxEnemies"`
	Speed          float64       `yaml:"speed"`
	MinFiringDelay time.Duration `yaml:"minFiringDelay"`
	MaxFiringDelay time.Duration `yaml:"maxFiringDelay"`
}

// DefaultTuning returns the stock game parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			HPPool:      10,
			MoveSpeed:   0.15,
			SpawnX:      -20,
			SpawnY:      0,
			BlinkPeriod: 100 * time.Millisecond,
			BlinkCount:  5,
		},
		Shield: ShieldTuning{
			Cooldown: 30 * time.Second,
			Duration: 5 * time.Second,
		},
		Enemy: EnemyTuning{
			MaxEnemies:     10,
			Speed:          0.05,
			MinFiringDelay: 500 * time.Millisecond,
			MaxFiringDelay: 2000 * time.Millisecond,
		},
		BulletSpeed:      0.10,
		StraightSpeed:    0.25,
		CircleSpeed:      0.10,
		CircleCount:      8,
		TripleSpeed:      0.15,
		EnemyBulletLimit: 500,
		CollisionRadius:  1,
		ScoreIncrement:   10,
		SpawnPeriod:      1500 * time.Millisecond,
		FirePeriod:       150 * time.Millisecond,
		TimerPeriod:      time.Second,
	}
}

// LoadTuning reads a YAML tuning file on top of the defaults.
// An empty path returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning config: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning config: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning config: %w", err)
	}
	return t, nil
}

// Validate checks that every value is usable by the game loop.
func (t Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positiveDur := func(name string, d time.Duration) {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, d))
		}
	}

	positive("player.hpPool", float64(t.Player.HPPool))
	positive("player.moveSpeed", t.Player.MoveSpeed)
	positiveDur("player.blinkPeriod", t.Player.BlinkPeriod)
	if t.Player.BlinkCount < 0 {
		errs = append(errs, fmt.Errorf("player.blinkCount must not be negative, got %d", t.Player.BlinkCount))
	}

	positiveDur("shield.cooldown", t.Shield.Cooldown)
	positiveDur("shield.duration", t.Shield.Duration)
	if t.Shield.Cooldown < t.Shield.Duration {
		errs = append(errs, fmt.Errorf("shield.cooldown (%v) shorter than shield.duration (%v)",
			t.Shield.Cooldown, t.Shield.Duration))
	}

	positive("enemy.maxEnemies", float64(t.Enemy.MaxEnemies))
	positive("enemy.speed", t.Enemy.Speed)
	if t.Enemy.MinFiringDelay < 0 || t.Enemy.MaxFiringDelay < t.Enemy.MinFiringDelay {
		errs = append(errs, fmt.Errorf("enemy firing delay range invalid: min(%v) max(%v)",
			t.Enemy.MinFiringDelay, t.Enemy.MaxFiringDelay))
	}

	positive("bulletSpeed", t.BulletSpeed)
	positive("straightSpeed", t.StraightSpeed)
	positive("circleSpeed", t.CircleSpeed)
	positive("circleCount", float64(t.CircleCount))
	positive("tripleSpeed", t.TripleSpeed)
	positive("enemyBulletLimit", t.EnemyBulletLimit)
	positive("collisionRadius", t.CollisionRadius)
	positive("scoreIncrement", float64(t.ScoreIncrement))

	positiveDur("spawnPeriod", t.SpawnPeriod)
	positiveDur("firePeriod", t.FirePeriod)
	positiveDur("timerPeriod", t.TimerPeriod)

	return errors.Join(errs...)
}
