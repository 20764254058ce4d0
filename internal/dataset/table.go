// backend-go/internal/dataset/table.go
package dataset

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Row is one record of the masked dataset, keyed by column name. Values stay
// as raw strings; typed access goes through Float and Time.
type Row map[string]string

// missing reports the blank and NA-style markers seen in the exports.
func missing(v string) bool {
	switch strings.TrimSpace(strings.ToLower(v)) {
	case "", "na", "nan", "null", "none":
		return true
	}
	return false
}

// Float parses the cell as a number. Missing or unparsable cells report false.
func (r Row) Float(col string) (float64, bool) {
	v, ok := r[col]
	if !ok || missing(v) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
}

// Time parses the cell against the accepted date formats.
func (r Row) Time(col string) (time.Time, bool) {
	v, ok := r[col]
	if !ok || missing(v) {
		return time.Time{}, false
	}
	v = strings.TrimSpace(v)
	for _, format := range dateFormats {
		if t, err := time.Parse(format, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Table is an immutable in-memory view of the dataset. It is built once at
// load time and shared read-only; filters and sorts return new Tables over
// the same backing rows.
type Table struct {
	columns []string
	rows    []Row
}

func NewTable(columns []string, rows []Row) *Table {
	return &Table{columns: columns, rows: rows}
}

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) Row(i int) Row { return t.rows[i] }

// Columns returns a copy of the header in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

func (t *Table) Has(col string) bool {
	for _, c := range t.columns {
		if c == col {
			return true
		}
	}
	return false
}

// Resolve picks the first candidate column present in this table.
func (t *Table) Resolve(candidates []string) (string, bool) {
	return ResolveColumn(t.columns, candidates)
}

// FilterEq returns the rows whose col equals value.
func (t *Table) FilterEq(col, value string) *Table {
	var rows []Row
	for _, r := range t.rows {
		if strings.TrimSpace(r[col]) == value {
			rows = append(rows, r)
		}
	}
	return &Table{columns: t.columns, rows: rows}
}

// SortedByDate returns the rows sorted ascending by the parsed date in col.
// Rows without a parsable date keep their relative order and sort last.
func (t *Table) SortedByDate(col string) *Table {
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)
	sort.SliceStable(rows, func(i, j int) bool {
		ti, iok := rows[i].Time(col)
		tj, jok := rows[j].Time(col)
		if iok && jok {
			return ti.Before(tj)
		}
		return iok && !jok
	})
	return &Table{columns: t.columns, rows: rows}
}

// DistinctValues returns the unique non-blank values of col in first-seen
// order.
func (t *Table) DistinctValues(col string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range t.rows {
		v := strings.TrimSpace(r[col])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
