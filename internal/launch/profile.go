// Package launch holds the merged launch profile that component patches are
// applied to, plus the library and problem types shared by every patch.
package launch

import "fmt"

// Profile is the result of applying every component patch of a pack in order.
// It is rebuilt from scratch on every structural change and never persisted.
type Profile struct {
	MinecraftVersion   string    `json:"minecraftVersion,omitempty" yaml:"minecraft_version,omitempty"`
	MainClass          string    `json:"mainClass,omitempty" yaml:"main_class,omitempty"`
	AppletClass        string    `json:"appletClass,omitempty" yaml:"applet_class,omitempty"`
	MinecraftArguments string    `json:"minecraftArguments,omitempty" yaml:"minecraft_arguments,omitempty"`
	AssetIndex         string    `json:"assetIndex,omitempty" yaml:"asset_index,omitempty"`
	Tweakers           []string  `json:"tweakers,omitempty" yaml:"tweakers,omitempty"`
	Traits             []string  `json:"traits,omitempty" yaml:"traits,omitempty"`
	Libraries          []Library `json:"libraries,omitempty" yaml:"libraries,omitempty"`
	MainJar            *Library  `json:"mainJar,omitempty" yaml:"main_jar,omitempty"`
	JarMods            []Library `json:"jarMods,omitempty" yaml:"jar_mods,omitempty"`
	Severity           Severity  `json:"problemSeverity" yaml:"problem_severity"`
}

// New returns an empty profile.
func New() *Profile {
	return &Profile{}
}

// ApplyError aborts a merge. Unlike a recorded problem, it leaves the pack
// without any launchable profile.
type ApplyError struct {
	UID    string
	Reason string
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("applying %s: %s", e.UID, e.Reason)
}

// ApplyProblemSeverity raises the profile severity; it never lowers it.
func (p *Profile) ApplyProblemSeverity(s Severity) {
	if s > p.Severity {
		p.Severity = s
	}
}

// ApplyMinecraftVersion records the game version.
func (p *Profile) ApplyMinecraftVersion(v string) {
	if v != "" {
		p.MinecraftVersion = v
	}
}

// ApplyMainClass overrides the main class when v is non-empty.
func (p *Profile) ApplyMainClass(v string) {
	if v != "" {
		p.MainClass = v
	}
}

// ApplyAppletClass overrides the applet class when v is non-empty.
func (p *Profile) ApplyAppletClass(v string) {
	if v != "" {
		p.AppletClass = v
	}
}

// ApplyMinecraftArguments overrides the game arguments when v is non-empty.
func (p *Profile) ApplyMinecraftArguments(v string) {
	if v != "" {
		p.MinecraftArguments = v
	}
}

// ApplyAssetIndex overrides the asset index when v is non-empty.
func (p *Profile) ApplyAssetIndex(v string) {
	if v != "" {
		p.AssetIndex = v
	}
}

// ApplyTweakers appends tweakers not yet present.
func (p *Profile) ApplyTweakers(tweakers []string) {
	for _, t := range tweakers {
		if !contains(p.Tweakers, t) {
			p.Tweakers = append(p.Tweakers, t)
		}
	}
}

// ApplyTraits adds traits not yet present.
func (p *Profile) ApplyTraits(traits []string) {
	for _, t := range traits {
		if !contains(p.Traits, t) {
			p.Traits = append(p.Traits, t)
		}
	}
}

// HasTrait reports whether any applied patch declared the trait.
func (p *Profile) HasTrait(trait string) bool {
	return contains(p.Traits, trait)
}

// ApplyLibrary adds a library, replacing in place any earlier library with
// the same group:artifact.
func (p *Profile) ApplyLibrary(lib Library) {
	spec, ok := lib.Specifier()
	if !ok {
		p.Libraries = append(p.Libraries, lib)
		return
	}
	for i, existing := range p.Libraries {
		other, ok := existing.Specifier()
		if ok && other.ArtifactPrefix() == spec.ArtifactPrefix() && other.Classifier == spec.Classifier {
			p.Libraries[i] = lib
			return
		}
	}
	p.Libraries = append(p.Libraries, lib)
}

// ApplyMainJar replaces the main jar.
func (p *Profile) ApplyMainJar(lib *Library) {
	if lib != nil {
		copied := *lib
		p.MainJar = &copied
	}
}

// ApplyJarMods appends jar mods in order.
func (p *Profile) ApplyJarMods(mods []Library) {
	p.JarMods = append(p.JarMods, mods...)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
