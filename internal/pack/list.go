// Package pack manages an instance's component list: the ordered set of
// components stored in mmc-pack.json, their override files under patches/,
// and the launch profile merged from them.
//
// A List is safe for concurrent use. Mutations mark the list dirty and
// schedule a delayed save; Close flushes a pending save.
package pack

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ruminaider/mcpack/internal/config"
	"github.com/ruminaider/mcpack/internal/debounce"
	"github.com/ruminaider/mcpack/internal/fsutil"
	"github.com/ruminaider/mcpack/internal/launch"
	"github.com/ruminaider/mcpack/internal/meta"
	"github.com/ruminaider/mcpack/internal/patch"
	"github.com/ruminaider/mcpack/internal/paths"
)

// LWJGLUID is the uid of the LWJGL component.
const LWJGLUID = "org.lwjgl"

// Migrator builds the initial component list of an instance that has no
// pack file yet. oldVersions holds versions from the legacy instance config,
// keyed by component uid.
type Migrator interface {
	Migrate(instanceDir string, oldVersions map[string]string) ([]*Component, error)
}

// Direction is the direction of a Move.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Option configures a List.
type Option func(*List)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *List) { l.log = logger }
}

// WithSaveDelay sets how long after the last change the list is saved.
func WithSaveDelay(d time.Duration) Option {
	return func(l *List) { l.saveDelay = d }
}

// WithMigrator sets the migrator used when the pack file is missing.
func WithMigrator(m Migrator) Option {
	return func(l *List) { l.migrator = m }
}

// List is the component list of one instance.
type List struct {
	mu         sync.Mutex
	dir        string
	name       string
	resolver   meta.Resolver
	migrator   Migrator
	log        *slog.Logger
	saveDelay  time.Duration
	saver      *debounce.Debouncer
	components []*Component
	byID       map[string]*Component
	profile    *launch.Profile
	oldConfig  map[string]string
	dirty      bool
	events     []Event

	subsMu  sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

// New returns an empty list for the instance in dir. Call Load to read it.
func New(dir string, resolver meta.Resolver, opts ...Option) *List {
	l := &List{
		dir:       dir,
		name:      filepath.Base(dir),
		resolver:  resolver,
		log:       slog.Default(),
		saveDelay: config.DefaultSaveDelay,
		byID:      map[string]*Component{},
		oldConfig: map[string]string{},
		subs:      map[int]func(Event){},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.saver = debounce.New(l.saveDelay, l.saveIfDirty)
	return l
}

// Dir returns the instance directory.
func (l *List) Dir() string { return l.dir }

// lock and unlock bracket every mutation. Events queued while locked are
// delivered after the lock is released.
func (l *List) lock() { l.mu.Lock() }

func (l *List) unlock() {
	events := l.events
	l.events = nil
	l.mu.Unlock()
	l.notify(events)
}

func (l *List) emit(e Event) {
	l.events = append(l.events, e)
}

// SetOldConfigVersion records a version read from the legacy instance
// config. Migration uses these when it builds the initial list. Empty
// versions are ignored.
func (l *List) SetOldConfigVersion(uid, version string) {
	if version == "" {
		return
	}
	l.lock()
	defer l.unlock()
	l.oldConfig[uid] = version
}

// Load reads the pack file, migrating legacy configuration first when it is
// missing, and replaces the in-memory list. A pack file that cannot be used
// leaves the list empty and returns an error wrapping ErrInvalidPackFile.
func (l *List) Load() error {
	l.lock()
	defer l.unlock()
	return l.loadLocked()
}

// Reload saves pending changes, then loads and rebuilds the profile.
func (l *List) Reload() error {
	l.lock()
	defer l.unlock()
	if err := l.flushLocked(); err != nil {
		return err
	}
	if err := l.loadLocked(); err != nil {
		return err
	}
	_ = l.reapplyLocked()
	return nil
}

func (l *List) loadLocked() error {
	path := paths.PackFile(l.dir)
	if !fsutil.Exists(path) {
		if err := l.migrateLocked(path); err != nil {
			l.log.Error("failed to convert legacy configuration", "instance", l.name, "error", err)
			return err
		}
	}

	var components []*Component
	records, err := ReadPackFile(path)
	if err != nil {
		l.log.Warn("failed to load component list", "instance", l.name, "error", err)
	} else {
		components = make([]*Component, 0, len(records))
		for _, r := range records {
			components = append(components, l.resolveRecord(r))
		}
	}

	l.components = components
	l.byID = make(map[string]*Component, len(components))
	for _, c := range components {
		l.byID[c.uid] = c
	}
	l.emit(Event{Kind: EventReset})
	return err
}

func (l *List) migrateLocked(path string) error {
	if l.migrator == nil {
		return fmt.Errorf("%w: %s", ErrNoPackFile, path)
	}
	old := make(map[string]string, len(l.oldConfig))
	for k, v := range l.oldConfig {
		old[k] = v
	}
	components, err := l.migrator.Migrate(l.dir, old)
	if err != nil {
		return fmt.Errorf("migrating legacy configuration: %w", err)
	}
	if err := WritePackFile(path, recordsOf(components)); err != nil {
		return fmt.Errorf("writing migrated pack file: %w", err)
	}
	l.log.Info("converted legacy configuration", "instance", l.name, "components", len(components))
	return nil
}

// resolveRecord turns a persisted record into a component: an override file
// wins over metadata, and a record that resolves to neither stays unresolved.
func (l *List) resolveRecord(r Record) *Component {
	filename := paths.PatchFile(l.dir, r.UID)
	var c *Component
	switch {
	case fsutil.Exists(filename):
		f, err := patch.ParseFile(filename, false)
		if err != nil {
			l.log.Warn("failed to read override file", "instance", l.name, "uid", r.UID, "error", err)
			c = newBrokenFileComponent(r.UID, filename, err)
		} else {
			c = NewFileComponent(r.UID, f, filename)
		}
		c.revertible = l.resolver != nil && l.resolver.HasUID(r.UID)
	case l.resolver != nil:
		if v := l.resolver.Version(r.UID, r.CurrentVersion); v != nil {
			c = NewMetaComponent(v)
			c.vanilla = true
			break
		}
		fallthrough
	default:
		c = NewComponent(r.UID, filename)
	}

	if r.CurrentVersion != "" {
		c.currentVersion = r.CurrentVersion
	}
	if c.cachedName == "" {
		c.cachedName = r.CachedName
	}
	builtin := r.UID == patch.MinecraftUID || r.UID == LWJGLUID
	c.movable = !builtin
	c.removable = !builtin
	c.resolver = l.resolver
	return c
}

// Save writes the pack file now. On failure the list stays dirty so a later
// save retries.
func (l *List) Save() error {
	l.lock()
	defer l.unlock()
	return l.saveLocked()
}

func (l *List) saveLocked() error {
	if err := WritePackFile(paths.PackFile(l.dir), recordsOf(l.components)); err != nil {
		l.log.Error("failed to save component list", "instance", l.name, "error", err)
		return fmt.Errorf("saving component list: %w", err)
	}
	l.dirty = false
	l.log.Debug("component list saved", "instance", l.name)
	return nil
}

func (l *List) saveIfDirty() {
	l.lock()
	defer l.unlock()
	if l.dirty {
		_ = l.saveLocked()
	}
}

// flushLocked saves pending changes so the pack file on disk is current
// before it is read back.
func (l *List) flushLocked() error {
	l.saver.Cancel()
	if !l.dirty {
		return nil
	}
	return l.saveLocked()
}

func (l *List) scheduleSaveLocked() {
	if !l.dirty {
		l.dirty = true
		l.log.Debug("component list save scheduled", "instance", l.name, "delay", l.saveDelay)
	}
	l.saver.Schedule()
}

// Dirty reports whether there are unsaved changes.
func (l *List) Dirty() bool {
	l.lock()
	defer l.unlock()
	return l.dirty
}

// Close cancels the save timer and saves pending changes synchronously.
func (l *List) Close() error {
	l.lock()
	defer l.unlock()
	return l.flushLocked()
}

// ReapplyPatches rebuilds the launch profile from the components in order.
// If any component fails to apply, the list is left without a profile.
func (l *List) ReapplyPatches() error {
	l.lock()
	defer l.unlock()
	return l.reapplyLocked()
}

func (l *List) reapplyLocked() error {
	profile := launch.New()
	for _, c := range l.components {
		l.log.Debug("applying component", "instance", l.name, "uid", c.uid)
		if err := c.ApplyTo(profile); err != nil {
			l.profile = nil
			l.log.Warn("couldn't apply profile patches", "instance", l.name, "uid", c.uid, "error", err)
			return fmt.Errorf("applying %s: %w", c.uid, err)
		}
	}
	l.profile = profile
	return nil
}

// Profile returns the merged launch profile, or nil if the last merge
// failed or none was attempted.
func (l *List) Profile() *launch.Profile {
	l.lock()
	defer l.unlock()
	return l.profile
}

// Len returns the number of components.
func (l *List) Len() int {
	l.lock()
	defer l.unlock()
	return len(l.components)
}

// Components returns the components in order.
func (l *List) Components() []*Component {
	l.lock()
	defer l.unlock()
	out := make([]*Component, len(l.components))
	copy(out, l.components)
	return out
}

// Component returns the component with uid, or nil.
func (l *List) Component(uid string) *Component {
	l.lock()
	defer l.unlock()
	return l.byID[uid]
}

// ComponentAt returns the component at index, or nil when out of range.
func (l *List) ComponentAt(index int) *Component {
	l.lock()
	defer l.unlock()
	return l.componentAtLocked(index)
}

func (l *List) componentAtLocked(index int) *Component {
	if index < 0 || index >= len(l.components) {
		return nil
	}
	return l.components[index]
}

func (l *List) indexOfLocked(uid string) int {
	for i, c := range l.components {
		if c.uid == uid {
			return i
		}
	}
	return -1
}

// ComponentVersion returns the effective version of uid, or "" if absent.
func (l *List) ComponentVersion(uid string) string {
	l.lock()
	defer l.unlock()
	if c := l.byID[uid]; c != nil {
		return c.Version()
	}
	return ""
}

// IsVanilla reports whether no component is customized.
func (l *List) IsVanilla() bool {
	l.lock()
	defer l.unlock()
	for _, c := range l.components {
		if c.IsCustom() {
			return false
		}
	}
	return true
}

// AppendComponent adds c at the end of the list.
func (l *List) AppendComponent(c *Component) error {
	l.lock()
	defer l.unlock()
	if err := l.appendLocked(c); err != nil {
		return err
	}
	l.scheduleSaveLocked()
	return nil
}

func (l *List) appendLocked(c *Component) error {
	if c.uid == "" {
		l.log.Warn("attempt to add a component with an empty id", "instance", l.name)
		return ErrEmptyID
	}
	if _, ok := l.byID[c.uid]; ok {
		l.log.Warn("attempt to add a duplicate component", "instance", l.name, "uid", c.uid)
		return fmt.Errorf("%w: %s", ErrDuplicateID, c.uid)
	}
	if c.resolver == nil {
		c.resolver = l.resolver
	}
	l.components = append(l.components, c)
	l.byID[c.uid] = c
	l.emit(Event{Kind: EventInserted, Index: len(l.components) - 1})
	return nil
}

// Remove deletes the component at index together with its override file and
// local jar files, then rebuilds the profile.
func (l *List) Remove(index int) error {
	l.lock()
	defer l.unlock()
	return l.removeLocked(index)
}

// RemoveByID deletes the component with uid.
func (l *List) RemoveByID(uid string) error {
	l.lock()
	defer l.unlock()
	index := l.indexOfLocked(uid)
	if index < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, uid)
	}
	return l.removeLocked(index)
}

func (l *List) removeLocked(index int) error {
	c := l.componentAtLocked(index)
	if c == nil {
		return fmt.Errorf("%w: index %d", ErrNotFound, index)
	}
	if !c.removable {
		l.log.Warn("attempt to remove a non-removable component", "instance", l.name, "uid", c.uid)
		return fmt.Errorf("%w: %s", ErrNotRemovable, c.uid)
	}
	if err := l.removeFilesLocked(c); err != nil {
		l.log.Error("failed to remove component files", "instance", l.name, "uid", c.uid, "error", err)
		return err
	}

	delete(l.oldConfig, c.uid)
	l.components = append(l.components[:index], l.components[index+1:]...)
	delete(l.byID, c.uid)
	l.emit(Event{Kind: EventRemoved, Index: index})
	_ = l.reapplyLocked()
	l.scheduleSaveLocked()
	return nil
}

// removeFilesLocked deletes the override file and the local jars it
// references. The patch data is captured before the override file goes.
func (l *List) removeFilesLocked(c *Component) error {
	vf := c.VersionFile()
	if c.filename != "" {
		if err := fsutil.RemoveIfExists(c.filename); err != nil {
			return fmt.Errorf("removing override file: %w", err)
		}
	}
	if vf == nil {
		return nil
	}
	for _, mod := range vf.JarMods {
		if !mod.IsLocal() {
			continue
		}
		if err := l.removeLocalFileLocked(c, paths.JarModsDir(l.dir), mod.StorageFilename()); err != nil {
			return fmt.Errorf("removing jar mod: %w", err)
		}
	}
	if vf.MainJar != nil && vf.MainJar.IsLocal() {
		if err := l.removeLocalFileLocked(c, paths.LibrariesDir(l.dir), vf.MainJar.StorageFilename()); err != nil {
			return fmt.Errorf("removing custom jar: %w", err)
		}
	}
	return nil
}

// removeLocalFileLocked deletes name from dir. Names that are empty or
// reach outside dir are skipped.
func (l *List) removeLocalFileLocked(c *Component, dir, name string) error {
	if name == "" {
		return nil
	}
	if filepath.Base(name) != name || name == "." || name == ".." {
		l.log.Warn("refusing to delete local file outside the instance", "instance", l.name, "uid", c.uid, "file", name)
		return nil
	}
	return fsutil.RemoveIfExists(filepath.Join(dir, name))
}

// Move swaps the component at index with its neighbor in direction. The
// neighbor index is clamped to the list; when it equals index, nothing
// happens. It reports whether the list changed.
func (l *List) Move(index int, direction Direction) bool {
	l.lock()
	defer l.unlock()

	c := l.componentAtLocked(index)
	if c == nil {
		return false
	}
	if !c.movable {
		l.log.Debug("attempt to move a non-movable component", "instance", l.name, "uid", c.uid)
		return false
	}
	other := index + 1
	if direction == Up {
		other = index - 1
	}
	other = max(0, min(other, len(l.components)-1))
	if other == index {
		return false
	}
	if !l.components[other].movable {
		return false
	}

	l.components[index], l.components[other] = l.components[other], l.components[index]
	l.emit(Event{Kind: EventMoved, Index: index, To: other})
	_ = l.reapplyLocked()
	l.scheduleSaveLocked()
	return true
}

// MoveUp moves the component at index one place toward the start.
func (l *List) MoveUp(index int) bool { return l.Move(index, Up) }

// MoveDown moves the component at index one place toward the end.
func (l *List) MoveDown(index int) bool { return l.Move(index, Down) }

// Customize writes the metadata of the component at index to an override
// file and reloads the list so the component becomes custom.
func (l *List) Customize(index int) error {
	l.lock()
	defer l.unlock()

	c := l.componentAtLocked(index)
	if c == nil {
		return fmt.Errorf("%w: index %d", ErrNotFound, index)
	}
	if !c.IsCustomizable() {
		return fmt.Errorf("%w: %s", ErrNotCustomizable, c.uid)
	}
	if err := l.flushLocked(); err != nil {
		return err
	}

	filename := paths.PatchFile(l.dir, c.uid)
	data := *c.VersionFile()
	data.UID = c.uid
	if err := patch.WriteFile(filename, &data); err != nil {
		l.log.Error("failed to write override file", "instance", l.name, "uid", c.uid, "error", err)
		return fmt.Errorf("customizing %s: %w", c.uid, err)
	}
	l.log.Info("customized component", "instance", l.name, "uid", c.uid, "file", filename)

	if err := l.loadLocked(); err != nil {
		return err
	}
	_ = l.reapplyLocked()
	l.scheduleSaveLocked()
	return nil
}

// RevertToBase deletes the override file of the component at index so the
// component falls back to metadata. A component without an override file is
// left alone.
func (l *List) RevertToBase(index int) error {
	l.lock()
	defer l.unlock()
	return l.revertLocked(index)
}

func (l *List) revertLocked(index int) error {
	c := l.componentAtLocked(index)
	if c == nil {
		return fmt.Errorf("%w: index %d", ErrNotFound, index)
	}
	if !c.revertible {
		return fmt.Errorf("%w: %s", ErrNotRevertible, c.uid)
	}
	if !c.IsCustom() || !fsutil.Exists(c.filename) {
		return nil
	}
	if err := l.flushLocked(); err != nil {
		return err
	}
	if err := os.Remove(c.filename); err != nil {
		l.log.Error("failed to remove override file", "instance", l.name, "uid", c.uid, "error", err)
		return fmt.Errorf("reverting %s: %w", c.uid, err)
	}
	l.log.Info("reverted component", "instance", l.name, "uid", c.uid)

	if err := l.loadLocked(); err != nil {
		return err
	}
	_ = l.reapplyLocked()
	l.scheduleSaveLocked()
	return nil
}

// RevertToVanilla undoes every customization: removable custom components
// are removed, custom components that cannot be removed but are revertible
// fall back to metadata. It stops at the first failure, keeping what was
// already undone.
func (l *List) RevertToVanilla() error {
	l.lock()
	defer l.unlock()

	var custom []string
	for _, c := range l.components {
		if c.IsCustom() && (c.revertible || c.removable) {
			custom = append(custom, c.uid)
		}
	}
	for _, uid := range custom {
		index := l.indexOfLocked(uid)
		if index < 0 {
			continue
		}
		var err error
		if l.components[index].removable {
			err = l.removeLocked(index)
		} else {
			err = l.revertLocked(index)
		}
		if err != nil {
			l.log.Warn("couldn't revert component to vanilla", "instance", l.name, "uid", uid, "error", err)
			_ = l.reapplyLocked()
			l.scheduleSaveLocked()
			return err
		}
	}
	_ = l.reapplyLocked()
	l.scheduleSaveLocked()
	return nil
}

// SetComponentVersion selects version for the metadata-backed component uid.
func (l *List) SetComponentVersion(uid, version string) error {
	l.lock()
	defer l.unlock()

	index := l.indexOfLocked(uid)
	if index < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, uid)
	}
	c := l.components[index]
	if !c.IsVersionChangeable() {
		return fmt.Errorf("%w: %s", ErrVersionNotChangeable, uid)
	}
	v := l.resolver.Version(uid, version)
	if v == nil {
		return fmt.Errorf("%w: %s %s", ErrNotFound, uid, version)
	}

	c.src = metaSource{version: v}
	c.currentVersion = version
	c.vanilla = true
	if name := v.Name(); name != "" {
		c.cachedName = name
	}
	l.emit(Event{Kind: EventChanged, Index: index})
	_ = l.reapplyLocked()
	l.scheduleSaveLocked()
	return nil
}

// FreeOrderNumber returns an order number above every component's and at
// least 101.
func (l *List) FreeOrderNumber() int {
	l.lock()
	defer l.unlock()
	return l.freeOrderLocked()
}

func (l *List) freeOrderLocked() int {
	largest := 100
	for _, c := range l.components {
		largest = max(largest, c.Order())
	}
	return largest + 1
}
