package patch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/mcpack/internal/launch"
	"github.com/ruminaider/mcpack/internal/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forgePatch = `{
    "formatVersion": 1,
    "uid": "net.minecraftforge",
    "name": "Forge",
    "version": "14.23.5.2847",
    "order": 5,
    "mainClass": "net.minecraft.launchwrapper.Launch",
    "+tweakers": ["net.minecraftforge.fml.common.launcher.FMLTweaker"],
    "libraries": [
        {"name": "net.minecraft:launchwrapper:1.12"},
        {"name": "org.ow2.asm:asm-all:5.2"}
    ],
    "requires": [{"uid": "net.minecraft", "equals": "1.12.2"}]
}`

func TestParse(t *testing.T) {
	t.Run("valid patch", func(t *testing.T) {
		f, err := patch.Parse([]byte(forgePatch), true)
		require.NoError(t, err)
		assert.Equal(t, "net.minecraftforge", f.UID)
		assert.Equal(t, "Forge", f.Name)
		assert.Equal(t, 5, f.Order)
		assert.Len(t, f.Libraries, 2)
		assert.Equal(t, []string{"net.minecraftforge.fml.common.launcher.FMLTweaker"}, f.Tweakers)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := patch.Parse([]byte(`{{{`), false)
		assert.Error(t, err)
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := patch.Parse([]byte(`{"formatVersion": 1, "libraries": [{"url": "x"}]}`), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid patch")
	})

	t.Run("missing formatVersion", func(t *testing.T) {
		_, err := patch.Parse([]byte(`{"uid": "a"}`), false)
		assert.Error(t, err)
	})

	t.Run("unsupported formatVersion", func(t *testing.T) {
		_, err := patch.Parse([]byte(`{"formatVersion": 2, "uid": "a"}`), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "formatVersion")
	})

	t.Run("order required", func(t *testing.T) {
		_, err := patch.Parse([]byte(`{"formatVersion": 1, "uid": "a"}`), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order")

		f, err := patch.Parse([]byte(`{"formatVersion": 1, "uid": "a"}`), false)
		require.NoError(t, err)
		assert.Equal(t, 0, f.Order)
	})
}

func TestWriteFileAndParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patches", "org.example.json")
	f := &patch.VersionFile{
		UID:     "org.example",
		Name:    "Example",
		Version: "1.0",
		Order:   101,
		JarMods: []launch.Library{{Name: "org.multimc.jarmods:abc:1", Hint: launch.HintLocal, Filename: "abc.jar"}},
	}

	require.NoError(t, patch.WriteFile(path, f))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"formatVersion": 1`)
	assert.Contains(t, string(raw), `"+jarMods"`)

	loaded, err := patch.ParseFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, "org.example", loaded.UID)
	assert.Equal(t, 101, loaded.Order)
	require.Len(t, loaded.JarMods, 1)
	assert.True(t, loaded.JarMods[0].IsLocal())
}

func TestParseFile_Missing(t *testing.T) {
	_, err := patch.ParseFile(filepath.Join(t.TempDir(), "nope.json"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyTo(t *testing.T) {
	game := &patch.VersionFile{
		FormatVersion: 1,
		UID:           patch.MinecraftUID,
		Version:       "1.12.2",
		MainClass:     "net.minecraft.client.main.Main",
		Libraries:     []launch.Library{{Name: "net.minecraft:launchwrapper:1.5"}},
		Traits:        []string{"legacyLaunch"},
	}
	forge, err := patch.Parse([]byte(forgePatch), false)
	require.NoError(t, err)

	profile := launch.New()
	require.NoError(t, game.ApplyTo(profile))
	require.NoError(t, forge.ApplyTo(profile))

	assert.Equal(t, "1.12.2", profile.MinecraftVersion)
	assert.Equal(t, "net.minecraft.launchwrapper.Launch", profile.MainClass)
	assert.True(t, profile.HasTrait("legacyLaunch"))
	require.Len(t, profile.Libraries, 2)
	assert.Equal(t, "net.minecraft:launchwrapper:1.12", profile.Libraries[0].Name, "later patch replaces library in place")
	assert.Equal(t, launch.SeverityNone, profile.Severity)
}

func TestApplyTo_VersionMismatch(t *testing.T) {
	game := &patch.VersionFile{UID: patch.MinecraftUID, Version: "1.7.10"}
	forge, err := patch.Parse([]byte(forgePatch), false)
	require.NoError(t, err)

	profile := launch.New()
	require.NoError(t, game.ApplyTo(profile))

	err = forge.ApplyTo(profile)
	var applyErr *launch.ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, "net.minecraftforge", applyErr.UID)
}

func TestApplyTo_ProblemSeverity(t *testing.T) {
	f := &patch.VersionFile{UID: "org.example"}
	f.AddProblem(launch.SeverityWarning, "deprecated field")

	profile := launch.New()
	require.NoError(t, f.ApplyTo(profile))
	assert.Equal(t, launch.SeverityWarning, profile.Severity)
	assert.Equal(t, launch.SeverityWarning, f.ProblemSeverity())
}

func TestRemoveLibraryGroups(t *testing.T) {
	f := &patch.VersionFile{Libraries: []launch.Library{
		{Name: "org.lwjgl.lwjgl:lwjgl:2.9.4"},
		{Name: "net.java.jinput:jinput:2.0.5"},
		{Name: "com.mojang:realms:1.10.22"},
	}}

	f.RemoveLibraryGroups("org.lwjgl.lwjgl", "net.java.jinput")

	require.Len(t, f.Libraries, 1)
	assert.Equal(t, "com.mojang:realms:1.10.22", f.Libraries[0].Name)
}

func TestAddRequire(t *testing.T) {
	f := &patch.VersionFile{}
	f.AddRequire(patch.Require{UID: "org.lwjgl"})
	f.AddRequire(patch.Require{UID: "org.lwjgl", Suggests: "2.9.4"})
	assert.Len(t, f.Requires, 1)
}
