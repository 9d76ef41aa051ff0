package pack

import "github.com/ruminaider/mcpack/internal/launch"

// Column headers of the tabular view.
var headers = []string{"Name", "Version"}

// Row is one line of the tabular view of the list.
type Row struct {
	UID      string
	Name     string
	Version  string
	Custom   bool
	Severity launch.Severity
}

// Cells returns the row's column values. Custom components are marked in
// the version column.
func (r Row) Cells() []string {
	version := r.Version
	if r.Custom {
		version += " (Custom)"
	}
	return []string{r.Name, version}
}

// Decoration names the row's problem marker: "error", "warning" or "".
func (r Row) Decoration() string {
	return r.Severity.String()
}

// Headers returns the column titles.
func (l *List) Headers() []string {
	out := make([]string, len(headers))
	copy(out, headers)
	return out
}

// ColumnCount returns the number of columns in the tabular view.
func (l *List) ColumnCount() int { return len(headers) }

// RowCount returns the number of rows in the tabular view.
func (l *List) RowCount() int { return l.Len() }

// Row returns the view of the component at index.
func (l *List) Row(index int) (Row, bool) {
	l.lock()
	defer l.unlock()
	c := l.componentAtLocked(index)
	if c == nil {
		return Row{}, false
	}
	return rowOf(c), true
}

// Rows returns the view of every component in order.
func (l *List) Rows() []Row {
	l.lock()
	defer l.unlock()
	rows := make([]Row, 0, len(l.components))
	for _, c := range l.components {
		rows = append(rows, rowOf(c))
	}
	return rows
}

func rowOf(c *Component) Row {
	return Row{
		UID:      c.uid,
		Name:     c.Name(),
		Version:  c.Version(),
		Custom:   c.IsCustom(),
		Severity: c.ProblemSeverity(),
	}
}
