package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/mcpack/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestToolDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.ToolDir(), home))
	assert.True(t, strings.HasSuffix(paths.ToolDir(), ".mcpack"))
}

func TestSettingsFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.SettingsFile(), "settings.yaml"))
}

func TestDefaultMetaDir(t *testing.T) {
	assert.Equal(t, filepath.Join(paths.ToolDir(), "meta"), paths.DefaultMetaDir())
}

func TestInstanceLayout(t *testing.T) {
	root := filepath.Join("srv", "instances", "survival")

	assert.Equal(t, filepath.Join(root, "mmc-pack.json"), paths.PackFile(root))
	assert.Equal(t, filepath.Join(root, "patches", "net.minecraftforge.json"), paths.PatchFile(root, "net.minecraftforge"))
	assert.Equal(t, filepath.Join(root, "jarmods"), paths.JarModsDir(root))
	assert.Equal(t, filepath.Join(root, "libraries"), paths.LibrariesDir(root))
	assert.Equal(t, filepath.Join(root, "order.json"), paths.OrderFile(root))
	assert.Equal(t, filepath.Join(root, "instance.cfg"), paths.InstanceConfigFile(root))
	assert.Equal(t, filepath.Join(root, "version.json"), paths.LegacyVersionFile(root))
	assert.Equal(t, filepath.Join(root, "custom.json"), paths.LegacyCustomFile(root))
}
