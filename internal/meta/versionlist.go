package meta

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// VersionList holds every selectable version of one component.
type VersionList struct {
	uid      string
	name     string
	versions []*Version
	loader   func() ([]*Version, error)
	loaded   bool
}

// NewVersionList returns a list populated by loader on first Load.
func NewVersionList(uid, name string, loader func() ([]*Version, error)) *VersionList {
	return &VersionList{uid: uid, name: name, loader: loader}
}

// NewLoadedVersionList returns a list that already holds versions.
func NewLoadedVersionList(uid, name string, versions []*Version) *VersionList {
	l := &VersionList{uid: uid, name: name, loaded: true}
	l.setVersions(versions)
	return l
}

func (l *VersionList) UID() string { return l.uid }
func (l *VersionList) Name() string { return l.name }
func (l *VersionList) IsLoaded() bool { return l.loaded }

// Load populates the list once.
func (l *VersionList) Load() error {
	if l.loaded {
		return nil
	}
	if l.loader == nil {
		l.loaded = true
		return nil
	}
	versions, err := l.loader()
	if err != nil {
		return err
	}
	l.setVersions(versions)
	l.loaded = true
	return nil
}

// Count returns the number of loaded versions.
func (l *VersionList) Count() int {
	return len(l.versions)
}

// Versions returns the loaded versions, newest first.
func (l *VersionList) Versions() []*Version {
	return l.versions
}

// Get returns the named version or nil.
func (l *VersionList) Get(version string) *Version {
	for _, v := range l.versions {
		if v.version == version {
			return v
		}
	}
	return nil
}

// Recommended returns the newest recommended version, falling back to the
// newest version. Nil for an empty list.
func (l *VersionList) Recommended() *Version {
	for _, v := range l.versions {
		if v.recommended {
			return v
		}
	}
	if len(l.versions) > 0 {
		return l.versions[0]
	}
	return nil
}

func (l *VersionList) setVersions(versions []*Version) {
	sorted := append([]*Version(nil), versions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return newer(sorted[i], sorted[j])
	})
	l.versions = sorted
}

// newer orders by semantic version when both parse, ranks parseable versions
// above unparseable ones, then falls back to release time and finally to the
// descending version string.
func newer(a, b *Version) bool {
	av, aerr := semver.NewVersion(a.version)
	bv, berr := semver.NewVersion(b.version)
	switch {
	case aerr == nil && berr == nil:
		if !av.Equal(bv) {
			return av.GreaterThan(bv)
		}
	case aerr == nil:
		return true
	case berr == nil:
		return false
	}
	if !a.releaseTime.Equal(b.releaseTime) {
		return a.releaseTime.After(b.releaseTime)
	}
	return a.version > b.version
}
