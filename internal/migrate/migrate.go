// Package migrate builds the pack of an instance created before packs
// existed, from its patches directory, order.json and instance.cfg.
package migrate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ruminaider/mcpack/internal/config"
	"github.com/ruminaider/mcpack/internal/fsutil"
	"github.com/ruminaider/mcpack/internal/meta"
	"github.com/ruminaider/mcpack/internal/pack"
	"github.com/ruminaider/mcpack/internal/patch"
	"github.com/ruminaider/mcpack/internal/paths"
)

const lwjglUID = pack.LWJGLUID

type fixedComponent struct {
	uid   string
	order int
}

// builtins always come first, in this order.
var builtins = []fixedComponent{
	{patch.MinecraftUID, -2},
	{lwjglUID, -1},
}

// specials were configured by version in instance.cfg rather than by file.
var specials = []fixedComponent{
	{"net.minecraftforge", 5},
	{"com.mumfrey.liteloader", 10},
}

// Migrator implements pack.Migrator.
type Migrator struct {
	resolver meta.Resolver
	log      *slog.Logger
}

var _ pack.Migrator = (*Migrator)(nil)

// New returns a migrator resolving versions with resolver.
func New(resolver meta.Resolver, logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{resolver: resolver, log: logger}
}

// Migrate returns the components of the legacy instance in dir: the builtins,
// then the entries named by order.json, then everything else by order
// number. oldVersions overrides the versions read from instance.cfg.
func (m *Migrator) Migrate(dir string, oldVersions map[string]string) ([]*pack.Component, error) {
	versions := m.legacyVersions(dir, oldVersions)

	upgraded, err := upgradeDeprecatedFiles(dir)
	if err != nil {
		m.log.Warn("couldn't upgrade deprecated version files", "instance", dir, "error", err)
	} else if upgraded {
		m.log.Info("upgraded deprecated version file", "instance", dir)
	}

	components := make([]*pack.Component, 0, len(builtins))
	for _, b := range builtins {
		c, err := m.builtin(dir, b, versions[b.uid])
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}

	found, err := m.scanPatches(dir)
	if err != nil {
		return nil, err
	}
	for _, s := range specials {
		version := versions[s.uid]
		if version == "" || containsUID(found, s.uid) {
			continue
		}
		found = append(found, m.special(s, version))
	}

	userOrder, err := readOrder(paths.OrderFile(dir))
	if err != nil {
		m.log.Warn("ignoring order file", "instance", dir, "error", err)
		userOrder = nil
	}
	return append(components, m.arrange(found, userOrder)...), nil
}

func (m *Migrator) legacyVersions(dir string, overrides map[string]string) map[string]string {
	versions := map[string]string{}
	cfgPath := paths.InstanceConfigFile(dir)
	if fsutil.Exists(cfgPath) {
		cfg, err := config.ReadInstanceConfig(cfgPath)
		if err != nil {
			m.log.Warn("couldn't read instance config", "instance", dir, "error", err)
		} else {
			versions = cfg.ComponentVersions()
		}
	}
	for uid, version := range overrides {
		if version != "" {
			versions[uid] = version
		}
	}
	return versions
}

// builtin loads a builtin from its override file when one exists, otherwise
// from metadata at the legacy version.
func (m *Migrator) builtin(dir string, b fixedComponent, version string) (*pack.Component, error) {
	filename := paths.PatchFile(dir, b.uid)
	var c *pack.Component
	if fsutil.Exists(filename) {
		f, err := patch.ParseFile(filename, false)
		if err != nil {
			return nil, err
		}
		if f.Version == "" {
			f.Version = version
		}
		c = pack.NewFileComponent(b.uid, f, filename)
		c.SetRevertible(true)
	} else if v := m.version(b.uid, version); v != nil {
		c = pack.NewMetaComponent(v)
		c.SetVanilla(true)
	} else {
		m.log.Warn("no metadata for builtin component", "instance", dir, "uid", b.uid, "version", version)
		c = pack.NewComponent(b.uid, filename)
		c.SetPinnedVersion(version)
	}
	c.SetOrder(b.order)
	return c, nil
}

func (m *Migrator) special(s fixedComponent, version string) *pack.Component {
	var c *pack.Component
	if v := m.version(s.uid, version); v != nil {
		c = pack.NewMetaComponent(v)
		c.SetVanilla(true)
	} else {
		c = pack.NewComponent(s.uid, "")
		c.SetPinnedVersion(version)
	}
	c.SetOrder(s.order)
	c.SetMovable(true)
	c.SetRemovable(true)
	return c
}

func (m *Migrator) version(uid, version string) *meta.Version {
	if m.resolver == nil {
		return nil
	}
	return m.resolver.Version(uid, version)
}

// scanPatches loads every non-builtin patch in patches/ in file name order.
// Legacy patches must carry an order number.
func (m *Migrator) scanPatches(dir string) ([]*pack.Component, error) {
	entries, err := os.ReadDir(paths.PatchesDir(dir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading patches directory: %w", err)
	}

	var found []*pack.Component
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		// builtins are loaded by builtin() and need no order
		if name := strings.TrimSuffix(e.Name(), ".json"); name == patch.MinecraftUID || name == lwjglUID {
			continue
		}
		path := filepath.Join(paths.PatchesDir(dir), e.Name())
		m.log.Debug("reading patch", "file", e.Name())
		f, err := patch.ParseFile(path, true)
		if err != nil {
			return nil, err
		}
		uid := f.UID
		if uid == "" {
			uid = strings.TrimSuffix(e.Name(), ".json")
			f.UID = uid
		}
		if uid == patch.MinecraftUID || uid == lwjglUID {
			continue
		}
		if containsUID(found, uid) {
			m.log.Warn("duplicate component id in patches, keeping the first", "instance", dir, "uid", uid, "file", e.Name())
			continue
		}

		c := pack.NewFileComponent(uid, f, path)
		c.SetMovable(true)
		c.SetRemovable(true)
		c.SetRevertible(m.resolver != nil && m.resolver.HasUID(uid))
		found = append(found, c)
	}
	return found, nil
}

// arrange puts the components named by userOrder first, in that order, then
// the rest by ascending order number, ties kept in discovery order.
func (m *Migrator) arrange(found []*pack.Component, userOrder []string) []*pack.Component {
	out := make([]*pack.Component, 0, len(found))
	placed := map[string]bool{}
	for _, uid := range userOrder {
		if uid == patch.MinecraftUID || uid == lwjglUID || placed[uid] {
			continue
		}
		for _, c := range found {
			if c.ID() == uid {
				out = append(out, c)
				placed[uid] = true
				break
			}
		}
	}

	var rest []*pack.Component
	for _, c := range found {
		if !placed[c.ID()] {
			rest = append(rest, c)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Order() < rest[j].Order() })
	for i := 1; i < len(rest); i++ {
		if rest[i].Order() == rest[i-1].Order() {
			m.log.Warn("components share an order number",
				"order", rest[i].Order(), "first", rest[i-1].ID(), "second", rest[i].ID())
		}
	}
	return append(out, rest...)
}

func containsUID(components []*pack.Component, uid string) bool {
	for _, c := range components {
		if c.ID() == uid {
			return true
		}
	}
	return false
}
