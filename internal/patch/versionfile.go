// Package patch reads, writes and applies component patches ("version
// files"): the JSON documents that describe what a single component
// contributes to the launch profile.
package patch

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ruminaider/mcpack/internal/fsutil"
	"github.com/ruminaider/mcpack/internal/launch"
)

// FormatVersion is the only patch format this package reads and writes.
const FormatVersion = 1

// MinecraftUID is the uid of the base game component.
const MinecraftUID = "net.minecraft"

// Require declares a dependency on another component.
type Require struct {
	UID      string `json:"uid"`
	Equals   string `json:"equals,omitempty"`
	Suggests string `json:"suggests,omitempty"`
}

// VersionFile is one component's contribution to the launch profile.
type VersionFile struct {
	FormatVersion      int              `json:"formatVersion"`
	UID                string           `json:"uid,omitempty"`
	Name               string           `json:"name,omitempty"`
	Version            string           `json:"version,omitempty"`
	Order              int              `json:"order"`
	ReleaseTime        string           `json:"releaseTime,omitempty"`
	MinecraftVersion   string           `json:"minecraftVersion,omitempty"`
	MainClass          string           `json:"mainClass,omitempty"`
	AppletClass        string           `json:"appletClass,omitempty"`
	MinecraftArguments string           `json:"minecraftArguments,omitempty"`
	AssetIndex         string           `json:"assetIndex,omitempty"`
	Tweakers           []string         `json:"+tweakers,omitempty"`
	Traits             []string         `json:"+traits,omitempty"`
	Libraries          []launch.Library `json:"libraries,omitempty"`
	MainJar            *launch.Library  `json:"mainJar,omitempty"`
	JarMods            []launch.Library `json:"+jarMods,omitempty"`
	Requires           []Require        `json:"requires,omitempty"`

	problems []launch.Problem
}

// Parse decodes and validates a patch. When requireOrder is set, a patch
// without an "order" field is rejected; legacy patch directories relied on it
// for sorting.
func Parse(data []byte, requireOrder bool) (*VersionFile, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing patch: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	if requireOrder {
		obj, _ := doc.(map[string]any)
		if _, ok := obj["order"]; !ok {
			return nil, fmt.Errorf("invalid patch: missing order")
		}
	}

	var f VersionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing patch: %w", err)
	}
	if f.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("invalid patch: unsupported formatVersion %d, expected %d", f.FormatVersion, FormatVersion)
	}
	return &f, nil
}

// ParseFile reads and parses the patch at path.
func ParseFile(path string, requireOrder bool) (*VersionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading patch: %w", err)
	}
	f, err := Parse(data, requireOrder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Marshal serializes a patch as indented JSON.
func Marshal(f *VersionFile) ([]byte, error) {
	out := *f
	out.FormatVersion = FormatVersion
	data, err := json.MarshalIndent(&out, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshaling patch: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile atomically writes the patch to path.
func WriteFile(path string, f *VersionFile) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(path, data)
}

// ReleaseTimeValue parses ReleaseTime. The zero time is returned when the
// field is empty or malformed.
func (f *VersionFile) ReleaseTimeValue() time.Time {
	t, err := time.Parse(time.RFC3339, f.ReleaseTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddProblem records a problem found while loading the patch.
func (f *VersionFile) AddProblem(severity launch.Severity, message string) {
	f.problems = append(f.problems, launch.Problem{Severity: severity, Message: message})
}

// Problems returns the recorded problems.
func (f *VersionFile) Problems() []launch.Problem {
	return f.problems
}

// ProblemSeverity returns the worst recorded problem severity.
func (f *VersionFile) ProblemSeverity() launch.Severity {
	return launch.MaxSeverity(f.problems)
}

// RemoveLibraryGroups drops every library whose group is in groups.
func (f *VersionFile) RemoveLibraryGroups(groups ...string) {
	kept := f.Libraries[:0]
	for _, lib := range f.Libraries {
		spec, ok := lib.Specifier()
		if ok && containsString(groups, spec.Group) {
			continue
		}
		kept = append(kept, lib)
	}
	f.Libraries = kept
}

// AddRequire adds a dependency unless one on the same uid exists.
func (f *VersionFile) AddRequire(r Require) {
	for _, existing := range f.Requires {
		if existing.UID == r.UID {
			return
		}
	}
	f.Requires = append(f.Requires, r)
}

// ApplyTo merges the patch into profile. A requirement on the base game
// version that contradicts the already applied game version aborts the merge.
func (f *VersionFile) ApplyTo(profile *launch.Profile) error {
	for _, r := range f.Requires {
		if r.UID != MinecraftUID || r.Equals == "" || profile.MinecraftVersion == "" {
			continue
		}
		if r.Equals != profile.MinecraftVersion {
			return &launch.ApplyError{
				UID:    f.UID,
				Reason: fmt.Sprintf("requires %s %s, profile has %s", MinecraftUID, r.Equals, profile.MinecraftVersion),
			}
		}
	}

	gameVersion := f.MinecraftVersion
	if gameVersion == "" && f.UID == MinecraftUID {
		gameVersion = f.Version
	}
	profile.ApplyMinecraftVersion(gameVersion)
	profile.ApplyMainClass(f.MainClass)
	profile.ApplyAppletClass(f.AppletClass)
	profile.ApplyMinecraftArguments(f.MinecraftArguments)
	profile.ApplyAssetIndex(f.AssetIndex)
	profile.ApplyTweakers(f.Tweakers)
	profile.ApplyTraits(f.Traits)
	profile.ApplyMainJar(f.MainJar)
	profile.ApplyJarMods(f.JarMods)
	for _, lib := range f.Libraries {
		profile.ApplyLibrary(lib)
	}
	profile.ApplyProblemSeverity(f.ProblemSeverity())
	return nil
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
