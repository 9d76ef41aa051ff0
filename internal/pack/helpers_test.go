package pack_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ruminaider/mcpack/internal/meta"
	"github.com/ruminaider/mcpack/internal/pack"
	"github.com/ruminaider/mcpack/internal/patch"
	"github.com/ruminaider/mcpack/internal/paths"
)

// fakeResolver serves versions from memory. The first version added for a
// uid is its recommended one.
type fakeResolver struct {
	versions map[string][]*meta.Version
}

func newFakeResolver() *fakeResolver {
	r := &fakeResolver{versions: map[string][]*meta.Version{}}
	r.add("net.minecraft", "1.7.10", &patch.VersionFile{
		Name:      "Minecraft",
		MainClass: "net.minecraft.client.main.Main",
		Order:     -2,
		Requires:  []patch.Require{{UID: "org.lwjgl"}},
	})
	r.add("net.minecraft", "1.12.2", &patch.VersionFile{
		Name:      "Minecraft",
		MainClass: "net.minecraft.client.main.Main",
		Order:     -2,
	})
	r.add("org.lwjgl", "2.9.1", &patch.VersionFile{
		Name:  "LWJGL 2",
		Order: -1,
	})
	r.add("net.minecraftforge", "10.13.4.1614", &patch.VersionFile{
		Name:      "Forge",
		MainClass: "net.minecraft.launchwrapper.Launch",
		Order:     5,
		Tweakers:  []string{"cpw.mods.fml.common.launcher.FMLTweaker"},
		Requires:  []patch.Require{{UID: "net.minecraft", Equals: "1.7.10"}},
	})
	return r
}

func (r *fakeResolver) add(uid, version string, f *patch.VersionFile) {
	f.FormatVersion = patch.FormatVersion
	f.UID = uid
	f.Version = version
	r.versions[uid] = append(r.versions[uid], meta.NewLoadedVersion(uid, version, f.Name, f))
}

func (r *fakeResolver) Version(uid, version string) *meta.Version {
	versions := r.versions[uid]
	if len(versions) == 0 {
		return nil
	}
	if version == "" {
		return versions[0]
	}
	for _, v := range versions {
		if v.Version() == version {
			return v
		}
	}
	return nil
}

func (r *fakeResolver) VersionList(uid string) *meta.VersionList {
	versions, ok := r.versions[uid]
	if !ok {
		return nil
	}
	return meta.NewLoadedVersionList(uid, uid, versions)
}

func (r *fakeResolver) HasUID(uid string) bool {
	_, ok := r.versions[uid]
	return ok
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writePack writes an mmc-pack.json with the given records into dir.
func writePack(t *testing.T, dir string, records ...pack.Record) {
	t.Helper()
	require.NoError(t, pack.WritePackFile(paths.PackFile(dir), records))
}

// writePatch writes an override file for f.UID into dir.
func writePatch(t *testing.T, dir string, f *patch.VersionFile) string {
	t.Helper()
	path := paths.PatchFile(dir, f.UID)
	f.FormatVersion = patch.FormatVersion
	require.NoError(t, patch.WriteFile(path, f))
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// vanillaRecords is the pack of a fresh 1.7.10 instance.
func vanillaRecords() []pack.Record {
	return []pack.Record{
		{UID: "net.minecraft", CurrentVersion: "1.7.10"},
		{UID: "org.lwjgl", CurrentVersion: "2.9.1"},
	}
}

// loadList writes records, loads them and closes the list at test end. The
// save delay is long so tests control when saves happen.
func loadList(t *testing.T, dir string, records ...pack.Record) *pack.List {
	t.Helper()
	writePack(t, dir, records...)
	l := pack.New(dir, newFakeResolver(), pack.WithLogger(discardLogger()), pack.WithSaveDelay(time.Hour))
	require.NoError(t, l.Load())
	require.NoError(t, l.ReapplyPatches())
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func uids(l *pack.List) []string {
	var out []string
	for _, c := range l.Components() {
		out = append(out, c.ID())
	}
	return out
}

func readRecords(t *testing.T, dir string) []pack.Record {
	t.Helper()
	records, err := pack.ReadPackFile(paths.PackFile(dir))
	require.NoError(t, err)
	return records
}
