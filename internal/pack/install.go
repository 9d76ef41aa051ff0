package pack

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ruminaider/mcpack/internal/fsutil"
	"github.com/ruminaider/mcpack/internal/launch"
	"github.com/ruminaider/mcpack/internal/patch"
	"github.com/ruminaider/mcpack/internal/paths"
)

const (
	// JarModUIDPrefix prefixes the uid of every installed jar mod.
	JarModUIDPrefix = "org.multimc.jarmod."
	// CustomJarUID is the uid of the component that replaces the game jar,
	// the artifact of its library coordinate.
	CustomJarUID = "customjar"

	jarModGroup = "org.multimc.jarmods"
)

var customJarSpecifier = launch.Specifier{Group: "org.multimc", Artifact: CustomJarUID, Version: "1", Extension: "jar"}

// InstallJarMods copies each jar into jarmods/ and adds one custom component
// per jar, ordered after everything already present. It stops at the first
// failure; jars installed before it stay installed.
func (l *List) InstallJarMods(files []string) error {
	l.lock()
	defer l.unlock()

	if err := fsutil.EnsureDir(paths.PatchesDir(l.dir)); err != nil {
		return fmt.Errorf("creating patches directory: %w", err)
	}
	modsDir := paths.JarModsDir(l.dir)
	if err := fsutil.EnsureDir(modsDir); err != nil {
		return fmt.Errorf("creating jar mods directory: %w", err)
	}

	var installErr error
	for _, src := range files {
		if installErr = l.installJarModLocked(src, modsDir); installErr != nil {
			break
		}
	}
	_ = l.reapplyLocked()
	l.scheduleSaveLocked()
	return installErr
}

func (l *List) installJarModLocked(src, modsDir string) error {
	id := uuid.NewString()
	uid := JarModUIDPrefix + id
	target := id + ".jar"
	dst := filepath.Join(modsDir, target)
	if fsutil.Exists(dst) {
		return fmt.Errorf("jar mod %s already exists", dst)
	}
	if err := fsutil.CopyFile(src, dst); err != nil {
		return fmt.Errorf("installing jar mod %s: %w", src, err)
	}

	base := baseName(src)
	f := &patch.VersionFile{
		FormatVersion: patch.FormatVersion,
		UID:           uid,
		Name:          base + " (jar mod)",
		Order:         l.freeOrderLocked(),
		JarMods: []launch.Library{{
			Name:        jarModGroup + ":" + id + ":1",
			Filename:    target,
			DisplayName: base,
			Hint:        launch.HintLocal,
		}},
	}
	filename := paths.PatchFile(l.dir, uid)
	if err := patch.WriteFile(filename, f); err != nil {
		return fmt.Errorf("writing jar mod patch: %w", err)
	}

	c := NewFileComponent(uid, f, filename)
	c.movable = true
	c.removable = true
	l.log.Info("installed jar mod", "instance", l.name, "uid", uid, "source", src)
	return l.appendLocked(c)
}

// InstallCustomJar copies src into libraries/ and makes it the game jar via
// a custom component. Installing again replaces the previous custom jar.
func (l *List) InstallCustomJar(src string) error {
	l.lock()
	defer l.unlock()

	if err := fsutil.EnsureDir(paths.PatchesDir(l.dir)); err != nil {
		return fmt.Errorf("creating patches directory: %w", err)
	}
	libDir := paths.LibrariesDir(l.dir)
	if err := fsutil.EnsureDir(libDir); err != nil {
		return fmt.Errorf("creating libraries directory: %w", err)
	}
	dst := filepath.Join(libDir, customJarSpecifier.FileName())
	if err := fsutil.RemoveIfExists(dst); err != nil {
		return fmt.Errorf("replacing custom jar: %w", err)
	}
	if err := fsutil.CopyFile(src, dst); err != nil {
		return fmt.Errorf("installing custom jar %s: %w", src, err)
	}

	base := baseName(src)
	existing := l.byID[CustomJarUID]
	order := l.freeOrderLocked()
	if existing != nil {
		order = existing.Order()
	}
	f := &patch.VersionFile{
		FormatVersion: patch.FormatVersion,
		UID:           CustomJarUID,
		Name:          base + " (custom jar)",
		Order:         order,
		MainJar: &launch.Library{
			Name:        customJarSpecifier.String(),
			DisplayName: base,
			Hint:        launch.HintLocal,
		},
	}
	filename := paths.PatchFile(l.dir, CustomJarUID)
	if err := patch.WriteFile(filename, f); err != nil {
		return fmt.Errorf("writing custom jar patch: %w", err)
	}
	l.log.Info("installed custom jar", "instance", l.name, "source", src)

	if existing != nil {
		existing.src = fileSource{path: filename, file: f}
		existing.filename = filename
		existing.cachedName = f.Name
		existing.orderOverride = false
		l.emit(Event{Kind: EventChanged, Index: l.indexOfLocked(CustomJarUID)})
	} else {
		c := NewFileComponent(CustomJarUID, f, filename)
		c.movable = true
		c.removable = true
		if err := l.appendLocked(c); err != nil {
			return err
		}
	}
	_ = l.reapplyLocked()
	l.scheduleSaveLocked()
	return nil
}

// baseName strips the directory and last extension from path.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
