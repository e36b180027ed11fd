package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Table is an ordered collection of rows for one theme, together with the
// columns derived from them (result labels and boolean flags).
//
// Table has value semantics: every operation returns a new Table and leaves
// the receiver untouched, so each stage of an investigation can be kept
// and inspected.
type Table struct {
	entries   []entry
	labelled  bool
	flagNames []Column
}

type entry struct {
	row   Row
	label string
	flags []bool
}

// Entry is a read-only view of one table row and its derived columns.
type Entry struct {
	Row   Row
	Label string
	Flags map[Column]bool
}

// NewTable builds a table from rows in the given order.
func NewTable(rows []Row) Table {
	entries := make([]entry, len(rows))
	for i, r := range rows {
		entries[i] = entry{row: r}
	}
	return Table{entries: entries}
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.entries) }

// Labelled reports whether result labels have been assigned.
func (t Table) Labelled() bool { return t.labelled }

// Rows returns a copy of the table's rows.
func (t Table) Rows() []Row {
	rows := make([]Row, len(t.entries))
	for i, e := range t.entries {
		rows[i] = e.row
	}
	return rows
}

// Entries returns every row with its label and flags.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = t.view(e)
	}
	return out
}

func (t Table) view(e entry) Entry {
	v := Entry{Row: e.row, Label: e.label}
	if len(t.flagNames) > 0 {
		v.Flags = make(map[Column]bool, len(t.flagNames))
		for i, name := range t.flagNames {
			v.Flags[name] = e.flags[i]
		}
	}
	return v
}

// FlagColumns returns the names of the boolean columns in insertion order.
func (t Table) FlagColumns() []Column {
	return append([]Column(nil), t.flagNames...)
}

// Columns returns the full column header: the label column when assigned,
// the fixed row columns, then any flag columns.
func (t Table) Columns() []Column {
	cols := make([]Column, 0, len(RowColumns)+len(t.flagNames)+1)
	if t.labelled {
		cols = append(cols, ColResultLabel)
	}
	cols = append(cols, RowColumns...)
	return append(cols, t.flagNames...)
}

// Record returns row i as cell values matching Columns. Row fields and
// labels are strings; flag columns are bools.
func (t Table) Record(i int) []any {
	e := t.entries[i]
	rec := make([]any, 0, len(RowColumns)+len(t.flagNames)+1)
	if t.labelled {
		rec = append(rec, e.label)
	}
	for _, v := range e.row.Values() {
		rec = append(rec, v)
	}
	for _, f := range e.flags {
		rec = append(rec, f)
	}
	return rec
}

// Dedup removes rows that are wholly identical to an earlier row,
// including derived columns. The first occurrence is kept.
func (t Table) Dedup() Table {
	out := t.shell(len(t.entries))
	seen := make(map[string]struct{}, len(t.entries))
	for _, e := range t.entries {
		key := e.key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out.entries = append(out.entries, e.clone())
	}
	return out
}

func (e entry) key() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(e.row.Values(), "\x00"))
	sb.WriteString("\x00")
	sb.WriteString(e.label)
	for _, f := range e.flags {
		sb.WriteString(strconv.FormatBool(f))
	}
	return sb.String()
}

// SortByReportID orders rows by report identifier, ascending. Rows with
// equal identifiers keep their relative order.
func (t Table) SortByReportID() Table {
	out := t.copy()
	sort.SliceStable(out.entries, func(i, j int) bool {
		return out.entries[i].row.ReportID < out.entries[j].row.ReportID
	})
	return out
}

// Filter keeps the rows for which keep returns true.
func (t Table) Filter(keep func(Row) bool) Table {
	out := t.shell(len(t.entries))
	for _, e := range t.entries {
		if keep(e.row) {
			out.entries = append(out.entries, e.clone())
		}
	}
	return out
}

// FilterFlag keeps the rows whose flag column is true.
// Filtering on a column the table does not have removes every row.
func (t Table) FilterFlag(name Column) Table {
	idx := t.flagIndex(name)
	out := t.shell(len(t.entries))
	if idx < 0 {
		return out
	}
	for _, e := range t.entries {
		if e.flags[idx] {
			out.entries = append(out.entries, e.clone())
		}
	}
	return out
}

// WithFlag adds a boolean column computed from each row. Adding a column
// that already exists recomputes it in place of the old values.
func (t Table) WithFlag(name Column, fn func(Row) bool) Table {
	out := t.copy()
	idx := out.flagIndex(name)
	if idx < 0 {
		out.flagNames = append(out.flagNames, name)
		idx = len(out.flagNames) - 1
		for i := range out.entries {
			out.entries[i].flags = append(out.entries[i].flags, false)
		}
	}
	for i := range out.entries {
		out.entries[i].flags[idx] = fn(out.entries[i].row)
	}
	return out
}

// CountFlag returns how many rows have the flag column set.
func (t Table) CountFlag(name Column) int {
	idx := t.flagIndex(name)
	if idx < 0 {
		return 0
	}
	n := 0
	for _, e := range t.entries {
		if e.flags[idx] {
			n++
		}
	}
	return n
}

// WithLabels assigns 1-based result labels in current row order, formatted
// as prefix-number with the number zero-padded to the digit count of the
// table's row count. Labels encode final position, so apply this only once
// sorting and filtering are complete.
func (t Table) WithLabels(prefix string) Table {
	out := t.copy()
	out.labelled = true
	width := len(strconv.Itoa(len(out.entries)))
	for i := range out.entries {
		out.entries[i].label = ResultLabel(prefix, width, i+1)
	}
	return out
}

// ResultLabel formats a single label, e.g. ResultLabel("KG", 2, 1) == "KG-01".
func ResultLabel(prefix string, width, n int) string {
	return fmt.Sprintf("%s-%0*d", prefix, width, n)
}

func (t Table) flagIndex(name Column) int {
	for i, n := range t.flagNames {
		if n == name {
			return i
		}
	}
	return -1
}

// shell returns an empty table with the receiver's column layout.
func (t Table) shell(capacity int) Table {
	return Table{
		entries:   make([]entry, 0, capacity),
		labelled:  t.labelled,
		flagNames: append([]Column(nil), t.flagNames...),
	}
}

// copy returns a deep copy of the table.
func (t Table) copy() Table {
	out := t.shell(len(t.entries))
	for _, e := range t.entries {
		out.entries = append(out.entries, e.clone())
	}
	return out
}

func (e entry) clone() entry {
	e.flags = append([]bool(nil), e.flags...)
	return e
}
