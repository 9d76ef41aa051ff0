package launch

import "strings"

// Specifier is a parsed Gradle-style library coordinate:
// group:artifact:version[:classifier][@extension].
type Specifier struct {
	Group      string
	Artifact   string
	Version    string
	Classifier string
	Extension  string
}

// ParseSpecifier parses a library coordinate. ok is false when fewer than
// three colon-separated parts are present.
func ParseSpecifier(raw string) (Specifier, bool) {
	spec := Specifier{Extension: "jar"}
	if at := strings.LastIndex(raw, "@"); at >= 0 {
		spec.Extension = raw[at+1:]
		raw = raw[:at]
	}
	parts := strings.Split(raw, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return Specifier{}, false
	}
	for _, p := range parts {
		if p == "" {
			return Specifier{}, false
		}
	}
	spec.Group, spec.Artifact, spec.Version = parts[0], parts[1], parts[2]
	if len(parts) == 4 {
		spec.Classifier = parts[3]
	}
	return spec, true
}

// String reassembles the coordinate.
func (s Specifier) String() string {
	out := s.Group + ":" + s.Artifact + ":" + s.Version
	if s.Classifier != "" {
		out += ":" + s.Classifier
	}
	if s.Extension != "" && s.Extension != "jar" {
		out += "@" + s.Extension
	}
	return out
}

// ArtifactPrefix is group:artifact, the identity used when a later patch
// replaces a library from an earlier one.
func (s Specifier) ArtifactPrefix() string {
	return s.Group + ":" + s.Artifact
}

// FileName returns artifact-version[-classifier].extension.
func (s Specifier) FileName() string {
	name := s.Artifact + "-" + s.Version
	if s.Classifier != "" {
		name += "-" + s.Classifier
	}
	ext := s.Extension
	if ext == "" {
		ext = "jar"
	}
	return name + "." + ext
}
