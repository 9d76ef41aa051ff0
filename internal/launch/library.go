package launch

// HintLocal marks a library whose file lives inside the instance rather than
// in the shared library store.
const HintLocal = "local"

// Library is a single classpath entry, jar mod or main jar contributed by a patch.
type Library struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	Hint        string `json:"MMC-hint,omitempty" yaml:"hint,omitempty"`
	Filename    string `json:"MMC-filename,omitempty" yaml:"filename,omitempty"`
	DisplayName string `json:"MMC-displayname,omitempty" yaml:"display_name,omitempty"`
}

// IsLocal reports whether the library file is stored in the instance.
func (l Library) IsLocal() bool {
	return l.Hint == HintLocal
}

// Specifier parses the library name. ok is false for malformed names.
func (l Library) Specifier() (Specifier, bool) {
	return ParseSpecifier(l.Name)
}

// StorageFilename is the file name the library is stored under: the explicit
// filename when set, otherwise the one derived from the coordinate.
func (l Library) StorageFilename() string {
	if l.Filename != "" {
		return l.Filename
	}
	if spec, ok := l.Specifier(); ok {
		return spec.FileName()
	}
	return ""
}
