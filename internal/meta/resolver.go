// Package meta resolves component ids and versions to patches. The pack only
// depends on the Resolver interface; Index is the filesystem-backed
// implementation used by the CLI.
package meta

import (
	"fmt"
	"time"

	"github.com/ruminaider/mcpack/internal/patch"
)

// Resolver looks up version metadata. Unknown uids yield nil rather than an
// error. Implementations may load lazily and are used from a single goroutine.
type Resolver interface {
	Version(uid, version string) *Version
	VersionList(uid string) *VersionList
	HasUID(uid string) bool
}

// Version is one resolvable version of a component. Its patch data is loaded
// on demand.
type Version struct {
	uid         string
	version     string
	name        string
	releaseTime time.Time
	recommended bool

	loader  func() (*patch.VersionFile, error)
	data    *patch.VersionFile
	loaded  bool
	loadErr error
}

// NewVersion returns a version whose data is produced by loader on first Load.
func NewVersion(uid, version, name string, releaseTime time.Time, loader func() (*patch.VersionFile, error)) *Version {
	return &Version{uid: uid, version: version, name: name, releaseTime: releaseTime, loader: loader}
}

// NewLoadedVersion returns a version that already carries its data.
func NewLoadedVersion(uid, version, name string, data *patch.VersionFile) *Version {
	return &Version{uid: uid, version: version, name: name, data: data, loaded: data != nil, releaseTime: releaseTimeOf(data)}
}

func releaseTimeOf(data *patch.VersionFile) time.Time {
	if data == nil {
		return time.Time{}
	}
	return data.ReleaseTimeValue()
}

func (v *Version) UID() string { return v.uid }
func (v *Version) Version() string { return v.version }
func (v *Version) Name() string { return v.name }
func (v *Version) Time() time.Time { return v.releaseTime }
func (v *Version) IsLoaded() bool { return v.loaded }
func (v *Version) IsRecommended() bool { return v.recommended }
func (v *Version) LoadError() error { return v.loadErr }
func (v *Version) Data() *patch.VersionFile { return v.data }

// Load fetches the patch data once. A failed load is retried on the next call.
func (v *Version) Load() error {
	if v.loaded {
		return nil
	}
	if v.loader == nil {
		v.loadErr = fmt.Errorf("no data source for %s %s", v.uid, v.version)
		return v.loadErr
	}
	data, err := v.loader()
	if err != nil {
		v.loadErr = err
		return err
	}
	if data.UID == "" {
		data.UID = v.uid
	}
	if data.Version == "" {
		data.Version = v.version
	}
	if v.name == "" {
		v.name = data.Name
	}
	v.data, v.loaded, v.loadErr = data, true, nil
	return nil
}
