// Package asset loads sprite art asynchronously from a file system.
package asset

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
)

// Sprite names shipped in the embedded file system.
const (
	Player   = "player"
	Enemy    = "enemy"
	Heart    = "heart"
	Shield   = "shield"
	ShieldOn = "shield_on"
)

//go:embed sprites/*.txt
var embedded embed.FS

// Embedded returns the built-in sprite file system.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		panic(err)
	}
	return sub
}

// Loader resolves art by name on background goroutines.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader reading "<name>.txt" files from fsys.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{fsys: fsys, logger: logger.With("component", "asset")}
}

// Load returns immediately; the slot resolves once the file is parsed.
// Failures are logged and leave the slot unresolved.
func (l *Loader) Load(name string) *Slot[Art] {
	slot := &Slot[Art]{}
	go func() {
		art, err := l.read(name)
		if err != nil {
			l.logger.Warn("sprite unavailable", "name", name, "err", err)
			slot.Fail(err)
			return
		}
		l.logger.Debug("sprite loaded", "name", name, "w", art.Width, "h", art.Height)
		slot.Set(art)
	}()
	return slot
}

func (l *Loader) read(name string) (Art, error) {
	data, err := fs.ReadFile(l.fsys, name+".txt")
	if err != nil {
		return Art{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	art, err := ParseArt(string(data))
	if err != nil {
		return Art{}, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return art, nil
}

// Set is the collection of sprites used by the game.
type Set struct {
	Player   *Slot[Art]
	Enemy    *Slot[Art]
	Heart    *Slot[Art]
	Shield   *Slot[Art]
	ShieldOn *Slot[Art]
}

// LoadSet starts loading every game sprite.
func (l *Loader) LoadSet() Set {
	return Set{
		Player:   l.Load(Player),
		Enemy:    l.Load(Enemy),
		Heart:    l.Load(Heart),
		Shield:   l.Load(Shield),
		ShieldOn: l.Load(ShieldOn),
	}
}

// Wait blocks until every slot of the set has settled or ctx is done.
// Settled slots may still have failed; see Slot.Err.
func (s Set) Wait(ctx context.Context) error {
	for _, slot := range []*Slot[Art]{s.Player, s.Enemy, s.Heart, s.Shield, s.ShieldOn} {
		if slot == nil {
			continue
		}
		select {
		case <-slot.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
