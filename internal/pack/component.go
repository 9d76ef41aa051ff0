package pack

import (
	"fmt"
	"time"

	"github.com/ruminaider/mcpack/internal/launch"
	"github.com/ruminaider/mcpack/internal/meta"
	"github.com/ruminaider/mcpack/internal/patch"
)

// source is where a component's patch data comes from: an override file in
// the instance, resolver metadata, or nothing yet.
type source interface {
	isSource()
}

type fileSource struct {
	path string
	file *patch.VersionFile
	err  error
}

type metaSource struct {
	version *meta.Version
}

func (fileSource) isSource() {}
func (metaSource) isSource() {}

// Component is one entry of the pack.
type Component struct {
	uid            string
	cachedName     string
	currentVersion string
	filename       string

	movable    bool
	removable  bool
	revertible bool
	vanilla    bool

	orderOverride bool
	order         int

	src      source
	resolver meta.Resolver
}

// NewComponent returns an unresolved component. filename is the override
// file location it would use if customized.
func NewComponent(uid, filename string) *Component {
	return &Component{uid: uid, filename: filename}
}

// NewMetaComponent returns a component backed by resolver metadata.
func NewMetaComponent(v *meta.Version) *Component {
	return &Component{
		uid:            v.UID(),
		cachedName:     v.Name(),
		currentVersion: v.Version(),
		src:            metaSource{version: v},
	}
}

// NewFileComponent returns a component backed by an override file read from
// filename.
func NewFileComponent(uid string, file *patch.VersionFile, filename string) *Component {
	c := &Component{uid: uid, filename: filename, src: fileSource{path: filename, file: file}}
	if file != nil {
		c.cachedName = file.Name
		c.currentVersion = file.Version
	}
	return c
}

// newBrokenFileComponent returns a custom component whose override file
// exists but could not be parsed.
func newBrokenFileComponent(uid, filename string, err error) *Component {
	return &Component{uid: uid, filename: filename, src: fileSource{path: filename, err: err}}
}

// ID returns the component uid.
func (c *Component) ID() string { return c.uid }

// Filename returns the override file path, if any.
func (c *Component) Filename() string { return c.filename }

func (c *Component) IsMovable() bool    { return c.movable }
func (c *Component) IsRemovable() bool  { return c.removable }
func (c *Component) IsRevertible() bool { return c.revertible }
func (c *Component) IsVanilla() bool    { return c.vanilla }

// SetMovable marks whether the component may be reordered.
func (c *Component) SetMovable(v bool) { c.movable = v }

// SetRemovable marks whether the component may be removed.
func (c *Component) SetRemovable(v bool) { c.removable = v }

// SetRevertible marks whether a customized component has a base to revert to.
func (c *Component) SetRevertible(v bool) { c.revertible = v }

// SetVanilla marks the component as coming straight from metadata.
func (c *Component) SetVanilla(v bool) { c.vanilla = v }

// IsCustom reports whether an override file backs the component.
func (c *Component) IsCustom() bool {
	_, ok := c.src.(fileSource)
	return ok
}

// IsCustomizable reports whether the component can be copied into an
// override file: it must be metadata-backed and its data loadable.
func (c *Component) IsCustomizable() bool {
	ms, ok := c.src.(metaSource)
	if !ok {
		return false
	}
	if !ms.version.IsLoaded() {
		_ = ms.version.Load()
	}
	return ms.version.Data() != nil
}

// IsVersionChangeable reports whether a different version may be selected.
func (c *Component) IsVersionChangeable() bool {
	if c.IsCustom() {
		return false
	}
	list := c.VersionList()
	if list == nil {
		return false
	}
	if !list.IsLoaded() {
		if err := list.Load(); err != nil {
			return false
		}
	}
	return list.Count() != 0
}

// VersionList returns the selectable versions for the component, or nil.
func (c *Component) VersionList() *meta.VersionList {
	if c.resolver == nil {
		return nil
	}
	return c.resolver.VersionList(c.uid)
}

// Meta returns the backing metadata version, or nil.
func (c *Component) Meta() *meta.Version {
	if ms, ok := c.src.(metaSource); ok {
		return ms.version
	}
	return nil
}

// VersionFile returns the patch data, loading metadata on demand. It is nil
// for unresolved components and for override files that failed to parse.
func (c *Component) VersionFile() *patch.VersionFile {
	switch s := c.src.(type) {
	case fileSource:
		return s.file
	case metaSource:
		if !s.version.IsLoaded() {
			_ = s.version.Load()
		}
		return s.version.Data()
	}
	return nil
}

// Name returns the display name, falling back to the uid.
func (c *Component) Name() string {
	if c.cachedName != "" {
		return c.cachedName
	}
	return c.uid
}

// Version returns the component's effective version.
func (c *Component) Version() string {
	switch s := c.src.(type) {
	case metaSource:
		return s.version.Version()
	case fileSource:
		if s.file != nil && s.file.Version != "" {
			return s.file.Version
		}
	}
	return c.currentVersion
}

// PinnedVersion returns the version recorded in the pack file.
func (c *Component) PinnedVersion() string { return c.currentVersion }

// SetPinnedVersion sets the version recorded in the pack file.
func (c *Component) SetPinnedVersion(version string) { c.currentVersion = version }

// ReleaseTime returns the release time of the component's version.
func (c *Component) ReleaseTime() time.Time {
	if ms, ok := c.src.(metaSource); ok {
		return ms.version.Time()
	}
	if vf := c.VersionFile(); vf != nil {
		return vf.ReleaseTimeValue()
	}
	return time.Time{}
}

// Order returns the explicit order if one was set, otherwise the patch's.
func (c *Component) Order() int {
	if c.orderOverride {
		return c.order
	}
	if vf := c.VersionFile(); vf != nil {
		return vf.Order
	}
	return 0
}

// SetOrder overrides the patch's order.
func (c *Component) SetOrder(order int) {
	c.orderOverride = true
	c.order = order
}

// Problems returns the patch's diagnostics.
func (c *Component) Problems() []launch.Problem {
	if vf := c.VersionFile(); vf != nil {
		return vf.Problems()
	}
	if fs, ok := c.src.(fileSource); ok && fs.err != nil {
		return []launch.Problem{{Severity: launch.SeverityError, Message: fmt.Sprintf("Patch could not be read: %v", fs.err)}}
	}
	return []launch.Problem{{Severity: launch.SeverityError, Message: "Patch is not loaded yet."}}
}

// ProblemSeverity returns the worst severity among Problems.
func (c *Component) ProblemSeverity() launch.Severity {
	return launch.MaxSeverity(c.Problems())
}

// ApplyTo merges the component into profile. A component without data only
// contributes its problem severity.
func (c *Component) ApplyTo(profile *launch.Profile) error {
	if vf := c.VersionFile(); vf != nil {
		return vf.ApplyTo(profile)
	}
	profile.ApplyProblemSeverity(c.ProblemSeverity())
	return nil
}

// Record returns the persisted form of the component.
func (c *Component) Record() Record {
	return Record{UID: c.uid, CurrentVersion: c.currentVersion, CachedName: c.cachedName}
}
