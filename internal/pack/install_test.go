package pack_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/mcpack/internal/fsutil"
	"github.com/ruminaider/mcpack/internal/launch"
	"github.com/ruminaider/mcpack/internal/pack"
	"github.com/ruminaider/mcpack/internal/patch"
	"github.com/ruminaider/mcpack/internal/paths"
)

func TestInstallJarMods(t *testing.T) {
	dir := t.TempDir()
	src := t.TempDir()
	first := filepath.Join(src, "OptiFine_1.7.10.jar")
	second := filepath.Join(src, "extra.zip")
	writeFile(t, first, "optifine")
	writeFile(t, second, "extra")
	l := loadList(t, dir, vanillaRecords()...)

	require.NoError(t, l.InstallJarMods([]string{first, second}))
	require.Equal(t, 4, l.Len())

	mod := l.ComponentAt(2)
	assert.True(t, strings.HasPrefix(mod.ID(), pack.JarModUIDPrefix))
	assert.Equal(t, "OptiFine_1.7.10 (jar mod)", mod.Name())
	assert.True(t, mod.IsCustom())
	assert.True(t, mod.IsMovable())
	assert.True(t, mod.IsRemovable())
	assert.Equal(t, 101, mod.Order())
	assert.Equal(t, 102, l.ComponentAt(3).Order())
	assert.Equal(t, "extra (jar mod)", l.ComponentAt(3).Name())
	assert.True(t, fsutil.Exists(mod.Filename()))

	id := strings.TrimPrefix(mod.ID(), pack.JarModUIDPrefix)
	data, err := os.ReadFile(filepath.Join(paths.JarModsDir(dir), id+".jar"))
	require.NoError(t, err)
	assert.Equal(t, "optifine", string(data))

	profile := l.Profile()
	require.NotNil(t, profile)
	require.Len(t, profile.JarMods, 2)
	assert.Equal(t, "OptiFine_1.7.10", profile.JarMods[0].DisplayName)
	assert.Equal(t, "org.multimc.jarmods:"+id+":1", profile.JarMods[0].Name)

	require.NoError(t, l.Close())
	assert.Len(t, readRecords(t, dir), 4)
}

func TestInstallJarMods_MissingSource(t *testing.T) {
	dir := t.TempDir()
	l := loadList(t, dir, vanillaRecords()...)

	err := l.InstallJarMods([]string{filepath.Join(dir, "missing.jar")})
	require.Error(t, err)
	assert.Equal(t, 2, l.Len())
}

func TestInstallCustomJar(t *testing.T) {
	dir := t.TempDir()
	src := t.TempDir()
	first := filepath.Join(src, "mycraft.jar")
	second := filepath.Join(src, "othercraft.jar")
	writeFile(t, first, "first")
	writeFile(t, second, "second")
	l := loadList(t, dir, vanillaRecords()...)
	target := filepath.Join(paths.LibrariesDir(dir), "customjar-1.jar")

	require.NoError(t, l.InstallCustomJar(first))
	c := l.Component(pack.CustomJarUID)
	require.NotNil(t, c)
	assert.Equal(t, "mycraft (custom jar)", c.Name())
	assert.Equal(t, 101, c.Order())
	require.NotNil(t, l.Profile())
	require.NotNil(t, l.Profile().MainJar)
	assert.Equal(t, "org.multimc:customjar:1", l.Profile().MainJar.Name)

	require.NoError(t, l.InstallCustomJar(second))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "othercraft (custom jar)", l.Component(pack.CustomJarUID).Name())
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	require.NoError(t, l.RemoveByID(pack.CustomJarUID))
	assert.False(t, fsutil.Exists(target))
	assert.False(t, fsutil.Exists(paths.PatchFile(dir, pack.CustomJarUID)))
	assert.Nil(t, l.Profile().MainJar)
}

func TestInstallCustomJar_ReplacesExistingInstanceJar(t *testing.T) {
	dir := t.TempDir()
	writePatch(t, dir, &patch.VersionFile{
		UID:   "customjar",
		Name:  "old (custom jar)",
		Order: 150,
		MainJar: &launch.Library{
			Name: "org.multimc:customjar:1",
			Hint: launch.HintLocal,
		},
	})
	writeFile(t, filepath.Join(paths.LibrariesDir(dir), "customjar-1.jar"), "old")
	l := loadList(t, dir, append(vanillaRecords(), pack.Record{UID: "customjar"})...)
	require.True(t, l.Component(pack.CustomJarUID).IsCustom())

	src := filepath.Join(t.TempDir(), "newcraft.jar")
	writeFile(t, src, "new")
	require.NoError(t, l.InstallCustomJar(src))

	assert.Equal(t, []string{"net.minecraft", "org.lwjgl", "customjar"}, uids(l))
	c := l.Component(pack.CustomJarUID)
	assert.Equal(t, "newcraft (custom jar)", c.Name())
	assert.Equal(t, 150, c.Order())
	assert.Equal(t, paths.PatchFile(dir, "customjar"), c.Filename())
}

func TestRemove_KeepsFilesOutsideInstanceDirs(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "keep.jar")
	writeFile(t, outside, "keep")
	writePatch(t, dir, &patch.VersionFile{
		UID:   pack.JarModUIDPrefix + "evil",
		Name:  "evil (jar mod)",
		Order: 101,
		JarMods: []launch.Library{{
			Name:     "org.multimc.jarmods:evil:1",
			Filename: "../keep.jar",
			Hint:     launch.HintLocal,
		}},
		MainJar: &launch.Library{
			Name:     "org.multimc:customjar:1",
			Filename: "../keep.jar",
			Hint:     launch.HintLocal,
		},
	})
	l := loadList(t, dir, append(vanillaRecords(), pack.Record{UID: pack.JarModUIDPrefix + "evil"})...)

	require.NoError(t, l.RemoveByID(pack.JarModUIDPrefix + "evil"))
	assert.Equal(t, []string{"net.minecraft", "org.lwjgl"}, uids(l))
	assert.False(t, fsutil.Exists(paths.PatchFile(dir, pack.JarModUIDPrefix+"evil")))
	assert.True(t, fsutil.Exists(outside))
}
