// Package commands implements the mcpack operations behind the CLI. Each
// operation opens the instance's pack, applies one change and closes it, so
// changes are on disk when the function returns.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ruminaider/mcpack/internal/config"
	"github.com/ruminaider/mcpack/internal/meta"
	"github.com/ruminaider/mcpack/internal/migrate"
	"github.com/ruminaider/mcpack/internal/pack"
)

// Env locates an instance and the metadata used to resolve its components.
type Env struct {
	InstanceDir string
	MetaDir     string
	SaveDelay   time.Duration
	Logger      *slog.Logger
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

func (e Env) saveDelay() time.Duration {
	if e.SaveDelay <= 0 {
		return config.DefaultSaveDelay
	}
	return e.SaveDelay
}

func newList(env Env) (*pack.List, error) {
	info, err := os.Stat(env.InstanceDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("no instance at %s", env.InstanceDir)
	}
	index := meta.NewIndex(env.MetaDir)
	log := env.logger()
	return pack.New(env.InstanceDir, index,
		pack.WithLogger(log),
		pack.WithSaveDelay(env.saveDelay()),
		pack.WithMigrator(migrate.New(index, log)),
	), nil
}

// Open loads the instance's pack, converting a legacy instance first, and
// merges the launch profile. A failed merge is not an error here; the list
// simply has no profile. The caller must Close the list.
func Open(env Env) (*pack.List, error) {
	l, err := newList(env)
	if err != nil {
		return nil, err
	}
	if err := l.Load(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", env.InstanceDir, err)
	}
	_ = l.ReapplyPatches()
	return l, nil
}

// withList runs fn on the opened pack and closes it, saving any change.
func withList(env Env, fn func(l *pack.List) error) (err error) {
	l, err := Open(env)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, l.Close())
	}()
	return fn(l)
}

func indexOf(l *pack.List, uid string) (int, error) {
	for i, c := range l.Components() {
		if c.ID() == uid {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", pack.ErrNotFound, uid)
}
