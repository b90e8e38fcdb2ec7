package table

import (
	"github.com/pkg/errors"
)

var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrLengthMismatch  = errors.New("column length mismatch")
)

// Table is an ordered set of named columns sharing the same row count.
// Operations never modify the receiver: they return a new Table.
type Table struct {
	columns []*Column
	rows    int
}

// New creates a table from the given columns. Columns are used as is.
func New(columns ...*Column) (*Table, error) {
	t := &Table{}
	if len(columns) > 0 {
		t.rows = columns[0].Len()
	}
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, ok := seen[col.Name()]; ok {
			return nil, errors.Wrapf(ErrDuplicateColumn, "column %q", col.Name())
		}
		seen[col.Name()] = struct{}{}
		if col.Len() != t.rows {
			return nil, errors.Wrapf(ErrLengthMismatch, "column %q has %d rows, expected %d", col.Name(), col.Len(), t.rows)
		}
	}
	t.columns = columns

	return t, nil
}

// MustNew is like New but panics on error. It is meant for literal tables.
func MustNew(columns ...*Column) *Table {
	t, err := New(columns...)
	if err != nil {
		panic(err)
	}

	return t
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Shape returns the number of rows and columns.
func (t *Table) Shape() (rows, cols int) { return t.rows, len(t.columns) }

// Columns returns the columns in order.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)

	return out
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name()
	}

	return names
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, col := range t.columns {
		if col.Name() == name {
			return i
		}
	}

	return -1
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, error) {
	idx := t.Index(name)
	if idx < 0 {
		return nil, errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}

	return t.columns[idx], nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	cols := make([]*Column, len(t.columns))
	for i, col := range t.columns {
		cols[i] = col.Clone()
	}

	return &Table{columns: cols, rows: t.rows}
}

// Filter returns a table holding the rows for which keep returns true, in
// their original order.
func (t *Table) Filter(keep func(row int) bool) *Table {
	rows := make([]int, 0, t.rows)
	for i := 0; i < t.rows; i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	cols := make([]*Column, len(t.columns))
	for i, col := range t.columns {
		cols[i] = col.subset(rows)
	}

	return &Table{columns: cols, rows: len(rows)}
}

// Replace returns a table where the named column is replaced, at the same
// position, by the given columns.
func (t *Table) Replace(name string, columns ...*Column) (*Table, error) {
	idx := t.Index(name)
	if idx < 0 {
		return nil, errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}
	cols := make([]*Column, 0, len(t.columns)-1+len(columns))
	cols = append(cols, t.columns[:idx]...)
	cols = append(cols, columns...)
	cols = append(cols, t.columns[idx+1:]...)

	return New(cols...)
}

// Drop returns a table without the named columns.
func (t *Table) Drop(names ...string) (*Table, error) {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		if t.Index(name) < 0 {
			return nil, errors.Wrapf(ErrColumnNotFound, "column %q", name)
		}
		drop[name] = struct{}{}
	}
	cols := make([]*Column, 0, len(t.columns))
	for _, col := range t.columns {
		if _, ok := drop[col.Name()]; !ok {
			cols = append(cols, col)
		}
	}

	return &Table{columns: cols, rows: t.rows}, nil
}

// Append returns a table with the given columns added at the end.
func (t *Table) Append(columns ...*Column) (*Table, error) {
	cols := make([]*Column, 0, len(t.columns)+len(columns))
	cols = append(cols, t.columns...)
	cols = append(cols, columns...)

	return New(cols...)
}

// Select returns a table holding only the named columns, in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]*Column, 0, len(names))
	for _, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	out, err := New(cols...)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		out.rows = t.rows
	}

	return out, nil
}
