package table

import (
	"math"
	"strconv"
)

// Kind is the logical type of a column.
type Kind int

const (
	// Numeric holds continuous float64 values.
	Numeric Kind = iota
	// Integer holds integer codes, such as label encoded categories.
	Integer
	// Bool holds indicator values stored as 0 or 1.
	Bool
	// Categorical holds string values.
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "float"
	case Integer:
		return "int"
	case Bool:
		return "bool"
	case Categorical:
		return "string"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether the values of the kind can be used as numbers.
func (k Kind) IsNumeric() bool {
	return k == Numeric || k == Integer || k == Bool
}

// Column is a named sequence of cells of one kind. Any cell can be missing,
// which is tracked apart from the value itself.
type Column struct {
	name  string
	kind  Kind
	nums  []float64
	strs  []string
	valid []bool
}

func allValid(n int) []bool {
	valid := make([]bool, n)
	for i := range valid {
		valid[i] = true
	}

	return valid
}

// NewNumeric creates a numeric column. All cells are valid.
func NewNumeric(name string, values []float64) *Column {
	nums := make([]float64, len(values))
	copy(nums, values)

	return &Column{name: name, kind: Numeric, nums: nums, valid: allValid(len(values))}
}

// NewInteger creates an integer column. All cells are valid.
func NewInteger(name string, values []int) *Column {
	nums := make([]float64, len(values))
	for i, v := range values {
		nums[i] = float64(v)
	}

	return &Column{name: name, kind: Integer, nums: nums, valid: allValid(len(values))}
}

// NewBool creates an indicator column. All cells are valid.
func NewBool(name string, values []bool) *Column {
	nums := make([]float64, len(values))
	for i, v := range values {
		if v {
			nums[i] = 1
		}
	}

	return &Column{name: name, kind: Bool, nums: nums, valid: allValid(len(values))}
}

// NewCategorical creates a categorical column. All cells are valid.
func NewCategorical(name string, values []string) *Column {
	strs := make([]string, len(values))
	copy(strs, values)

	return &Column{name: name, kind: Categorical, strs: strs, valid: allValid(len(values))}
}

// WithMissing marks the given rows as missing and returns the column.
func (c *Column) WithMissing(rows ...int) *Column {
	for _, row := range rows {
		c.SetMissing(row)
	}

	return c
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the column kind.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.valid) }

// IsMissing reports whether the cell at row is missing.
func (c *Column) IsMissing(row int) bool { return !c.valid[row] }

// MissingCount returns the number of missing cells.
func (c *Column) MissingCount() int {
	count := 0
	for _, ok := range c.valid {
		if !ok {
			count++
		}
	}

	return count
}

// Float returns the numeric value at row. Missing cells and categorical
// columns return NaN.
func (c *Column) Float(row int) float64 {
	if c.kind == Categorical || !c.valid[row] {
		return math.NaN()
	}

	return c.nums[row]
}

// Value returns the categorical value at row, or "" when missing.
func (c *Column) Value(row int) string {
	if c.kind != Categorical || !c.valid[row] {
		return ""
	}

	return c.strs[row]
}

// Floats returns a copy of the numeric values, NaN for missing cells.
func (c *Column) Floats() []float64 {
	out := make([]float64, c.Len())
	for i := range out {
		out[i] = c.Float(i)
	}

	return out
}

// ValidFloats returns a copy of the non-missing numeric values in row order.
func (c *Column) ValidFloats() []float64 {
	if c.kind == Categorical {
		return nil
	}
	out := make([]float64, 0, c.Len())
	for i, ok := range c.valid {
		if ok {
			out = append(out, c.nums[i])
		}
	}

	return out
}

// Values returns a copy of the categorical values, "" for missing cells.
func (c *Column) Values() []string {
	out := make([]string, c.Len())
	for i := range out {
		out[i] = c.Value(i)
	}

	return out
}

// Format renders the cell at row. Missing cells render as NaN.
func (c *Column) Format(row int) string {
	if !c.valid[row] {
		return "NaN"
	}
	switch c.kind {
	case Categorical:
		return c.strs[row]
	case Bool:
		return strconv.FormatBool(c.nums[row] != 0)
	case Integer:
		return strconv.FormatInt(int64(c.nums[row]), 10)
	default:
		return strconv.FormatFloat(c.nums[row], 'g', -1, 64)
	}
}

// SetFloat stores a valid numeric value at row.
func (c *Column) SetFloat(row int, v float64) {
	c.nums[row] = v
	c.valid[row] = true
}

// SetValue stores a valid categorical value at row.
func (c *Column) SetValue(row int, v string) {
	c.strs[row] = v
	c.valid[row] = true
}

// SetMissing marks the cell at row as missing.
func (c *Column) SetMissing(row int) {
	c.valid[row] = false
	if c.kind == Categorical {
		c.strs[row] = ""
	} else {
		c.nums[row] = 0
	}
}

// Rename returns a copy of the column with a new name.
func (c *Column) Rename(name string) *Column {
	out := c.Clone()
	out.name = name

	return out
}

// AsNumeric returns a copy of a numeric-typed column with the Numeric kind.
func (c *Column) AsNumeric() *Column {
	out := c.Clone()
	if out.kind.IsNumeric() {
		out.kind = Numeric
	}

	return out
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	out := &Column{name: c.name, kind: c.kind, valid: make([]bool, len(c.valid))}
	copy(out.valid, c.valid)
	if c.nums != nil {
		out.nums = make([]float64, len(c.nums))
		copy(out.nums, c.nums)
	}
	if c.strs != nil {
		out.strs = make([]string, len(c.strs))
		copy(out.strs, c.strs)
	}

	return out
}

func (c *Column) subset(rows []int) *Column {
	out := &Column{name: c.name, kind: c.kind, valid: make([]bool, len(rows))}
	if c.nums != nil {
		out.nums = make([]float64, len(rows))
	}
	if c.strs != nil {
		out.strs = make([]string, len(rows))
	}
	for i, row := range rows {
		out.valid[i] = c.valid[row]
		if c.nums != nil {
			out.nums[i] = c.nums[row]
		}
		if c.strs != nil {
			out.strs[i] = c.strs[row]
		}
	}

	return out
}
