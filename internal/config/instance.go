package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// InstanceConfig holds the fields of a legacy instance.cfg that still matter:
// the component versions pinned before packs existed.
type InstanceConfig struct {
	Name              string
	IntendedVersion   string
	LWJGLVersion      string
	ForgeVersion      string
	LiteloaderVersion string
}

// ReadInstanceConfig reads instance.cfg, a section-less key=value file.
func ReadInstanceConfig(path string) (InstanceConfig, error) {
	f, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return InstanceConfig{}, fmt.Errorf("reading instance config: %w", err)
	}
	sec := f.Section("")
	return InstanceConfig{
		Name:              sec.Key("name").String(),
		IntendedVersion:   sec.Key("IntendedVersion").String(),
		LWJGLVersion:      sec.Key("LWJGLVersion").String(),
		ForgeVersion:      sec.Key("ForgeVersion").String(),
		LiteloaderVersion: sec.Key("LiteloaderVersion").String(),
	}, nil
}

// ComponentVersions maps component uids to the versions recorded in the
// config. Empty versions are left out.
func (c InstanceConfig) ComponentVersions() map[string]string {
	out := make(map[string]string, 4)
	add := func(uid, version string) {
		if version != "" {
			out[uid] = version
		}
	}
	add("net.minecraft", c.IntendedVersion)
	add("org.lwjgl", c.LWJGLVersion)
	add("net.minecraftforge", c.ForgeVersion)
	add("com.mumfrey.liteloader", c.LiteloaderVersion)
	return out
}
