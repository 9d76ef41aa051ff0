package launch

// Severity ranks how badly a patch or profile is broken.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the decoration name used by list views ("warning", "error")
// or an empty string for SeverityNone.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return ""
	}
}

// Problem is a single issue found while loading or applying a patch.
type Problem struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// MaxSeverity returns the worst severity among problems.
func MaxSeverity(problems []Problem) Severity {
	worst := SeverityNone
	for _, p := range problems {
		if p.Severity > worst {
			worst = p.Severity
		}
	}
	return worst
}
