package meta

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ruminaider/mcpack/internal/patch"
)

// indexFile is <root>/<uid>/index.json.
type indexFile struct {
	FormatVersion int          `json:"formatVersion"`
	UID           string       `json:"uid"`
	Name          string       `json:"name"`
	Versions      []indexEntry `json:"versions"`
}

type indexEntry struct {
	Version     string `json:"version"`
	ReleaseTime string `json:"releaseTime,omitempty"`
	Recommended bool   `json:"recommended,omitempty"`
}

// Index resolves metadata from a local directory laid out as
// <root>/<uid>/index.json plus one <root>/<uid>/<version>.json patch per
// version. Nothing is read until a uid is asked for.
type Index struct {
	root  string
	lists map[string]*VersionList
}

// NewIndex returns an index rooted at root.
func NewIndex(root string) *Index {
	return &Index{root: root, lists: make(map[string]*VersionList)}
}

// Root returns the metadata directory.
func (x *Index) Root() string {
	return x.root
}

// HasUID reports whether metadata exists for uid.
func (x *Index) HasUID(uid string) bool {
	if uid == "" || x.root == "" {
		return false
	}
	info, err := os.Stat(x.indexPath(uid))
	return err == nil && !info.IsDir()
}

// VersionList returns the (unloaded) version list for uid, or nil when the
// uid is unknown.
func (x *Index) VersionList(uid string) *VersionList {
	if l, ok := x.lists[uid]; ok {
		return l
	}
	if !x.HasUID(uid) {
		return nil
	}
	l := NewVersionList(uid, "", func() ([]*Version, error) {
		return x.readIndex(uid)
	})
	x.lists[uid] = l
	return l
}

// Version returns the named version of uid, or nil when the uid is unknown.
// An empty version resolves to the recommended one when the list can be
// loaded. The returned version may not exist on disk; that surfaces as a
// load failure.
func (x *Index) Version(uid, version string) *Version {
	l := x.VersionList(uid)
	if l == nil {
		return nil
	}
	if err := l.Load(); err == nil {
		if version == "" {
			if rec := l.Recommended(); rec != nil {
				return rec
			}
		}
		if v := l.Get(version); v != nil {
			return v
		}
	}
	return NewVersion(uid, version, l.Name(), time.Time{}, x.versionLoader(uid, version))
}

func (x *Index) indexPath(uid string) string {
	return filepath.Join(x.root, uid, "index.json")
}

func (x *Index) versionLoader(uid, version string) func() (*patch.VersionFile, error) {
	return func() (*patch.VersionFile, error) {
		if version == "" {
			return nil, fmt.Errorf("no version selected for %s", uid)
		}
		return patch.ParseFile(filepath.Join(x.root, uid, version+".json"), false)
	}
}

func (x *Index) readIndex(uid string) ([]*Version, error) {
	data, err := os.ReadFile(x.indexPath(uid))
	if err != nil {
		return nil, fmt.Errorf("reading metadata index: %w", err)
	}
	var idx indexFile
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing metadata index for %s: %w", uid, err)
	}
	if idx.FormatVersion != 1 {
		return nil, fmt.Errorf("metadata index for %s: unsupported formatVersion %d", uid, idx.FormatVersion)
	}
	if l, ok := x.lists[uid]; ok {
		l.name = idx.Name
	}

	versions := make([]*Version, 0, len(idx.Versions))
	for _, e := range idx.Versions {
		released, _ := time.Parse(time.RFC3339, e.ReleaseTime)
		v := NewVersion(uid, e.Version, idx.Name, released, x.versionLoader(uid, e.Version))
		v.recommended = e.Recommended
		versions = append(versions, v)
	}
	return versions, nil
}
