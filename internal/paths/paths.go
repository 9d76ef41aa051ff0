package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ToolDir returns ~/.mcpack.
func ToolDir() string {
	return filepath.Join(home(), ".mcpack")
}

// SettingsFile returns ~/.mcpack/settings.yaml.
func SettingsFile() string {
	return filepath.Join(ToolDir(), "settings.yaml")
}

// DefaultMetaDir returns ~/.mcpack/meta.
func DefaultMetaDir() string {
	return filepath.Join(ToolDir(), "meta")
}

// PackFile returns <instance>/mmc-pack.json.
func PackFile(instanceDir string) string {
	return filepath.Join(instanceDir, "mmc-pack.json")
}

// PatchesDir returns <instance>/patches.
func PatchesDir(instanceDir string) string {
	return filepath.Join(instanceDir, "patches")
}

// PatchFile returns <instance>/patches/<uid>.json.
func PatchFile(instanceDir, uid string) string {
	return filepath.Join(PatchesDir(instanceDir), uid+".json")
}

// JarModsDir returns <instance>/jarmods.
func JarModsDir(instanceDir string) string {
	return filepath.Join(instanceDir, "jarmods")
}

// LibrariesDir returns <instance>/libraries.
func LibrariesDir(instanceDir string) string {
	return filepath.Join(instanceDir, "libraries")
}

// OrderFile returns the legacy <instance>/order.json.
func OrderFile(instanceDir string) string {
	return filepath.Join(instanceDir, "order.json")
}

// InstanceConfigFile returns <instance>/instance.cfg.
func InstanceConfigFile(instanceDir string) string {
	return filepath.Join(instanceDir, "instance.cfg")
}

// LegacyVersionFile returns the pre-patch <instance>/version.json.
func LegacyVersionFile(instanceDir string) string {
	return filepath.Join(instanceDir, "version.json")
}

// LegacyCustomFile returns the pre-patch <instance>/custom.json.
func LegacyCustomFile(instanceDir string) string {
	return filepath.Join(instanceDir, "custom.json")
}
