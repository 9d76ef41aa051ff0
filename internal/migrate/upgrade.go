package migrate

import (
	"fmt"

	"github.com/ruminaider/mcpack/internal/fsutil"
	"github.com/ruminaider/mcpack/internal/patch"
	"github.com/ruminaider/mcpack/internal/paths"
)

// lwjglGroups are the library groups that moved from the game patch into the
// separate LWJGL component.
var lwjglGroups = []string{"org.lwjgl.lwjgl", "net.java.jinput", "net.java.jutils"}

// upgradeDeprecatedFiles turns a single-file legacy instance (custom.json or
// version.json) into patches/net.minecraft.json. The sources are renamed to
// .old, never deleted. Nothing happens when the game patch already exists.
func upgradeDeprecatedFiles(dir string) (bool, error) {
	versionPath := paths.LegacyVersionFile(dir)
	customPath := paths.LegacyCustomFile(dir)
	target := paths.PatchFile(dir, patch.MinecraftUID)

	var source, superseded string
	switch {
	case fsutil.Exists(customPath):
		source, superseded = customPath, versionPath
	case fsutil.Exists(versionPath):
		source = versionPath
	}
	if source == "" || fsutil.Exists(target) {
		return false, nil
	}

	if err := fsutil.EnsureDir(paths.PatchesDir(dir)); err != nil {
		return false, err
	}
	if superseded != "" && fsutil.Exists(superseded) {
		if err := fsutil.RenameBackup(superseded); err != nil {
			return false, err
		}
	}

	f, err := patch.ParseFile(source, false)
	if err != nil {
		return false, err
	}
	f.RemoveLibraryGroups(lwjglGroups...)
	f.UID = patch.MinecraftUID
	f.Version = f.MinecraftVersion
	f.Name = "Minecraft"
	f.AddRequire(patch.Require{UID: lwjglUID})
	if err := patch.WriteFile(target, f); err != nil {
		return false, fmt.Errorf("writing game patch: %w", err)
	}
	if err := fsutil.RenameBackup(source); err != nil {
		return false, err
	}
	return true, nil
}
