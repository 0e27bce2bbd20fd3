package frame

import (
	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Column is a named sequence of categorical values. A Column is also the
// shape of the label vector handed to the feature selector.
type Column struct {
	Name   string
	Values []string
}

// Frame is an ordered collection of equal-length categorical columns.
// A Frame is never mutated in place: every shape-changing operation
// returns a fresh copy, so callers can safely share one Frame across
// concurrent selections.
type Frame struct {
	names []string
	cols  map[string][]string
}

// New builds a Frame from the given columns, preserving their order.
// Duplicate names and ragged column lengths are rejected.
func New(cols ...Column) (*Frame, error) {
	f := &Frame{cols: make(map[string][]string, len(cols))}
	for _, c := range cols {
		if _, ok := f.cols[c.Name]; ok {
			return nil, errors.Newf("frame: duplicate column %q", c.Name)
		}
		if len(f.names) > 0 && len(c.Values) != f.Rows() {
			return nil, errors.Newf("frame: column %q has %d rows, want %d", c.Name, len(c.Values), f.Rows())
		}
		f.names = append(f.names, c.Name)
		f.cols[c.Name] = append([]string(nil), c.Values...)
	}
	return f, nil
}

// Rows returns the number of rows. An empty Frame has zero rows.
func (f *Frame) Rows() int {
	if len(f.names) == 0 {
		return 0
	}
	return len(f.cols[f.names[0]])
}

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.names) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	return append([]string(nil), f.names...)
}

// Has reports whether a column with the given name exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Column returns the values of the named column.
func (f *Frame) Column(name string) ([]string, error) {
	vals, ok := f.cols[name]
	if !ok {
		return nil, errors.Newf("frame: no column %q", name)
	}
	return vals, nil
}

// Copy returns a deep copy of the Frame.
func (f *Frame) Copy() *Frame {
	c := &Frame{
		names: append([]string(nil), f.names...),
		cols:  make(map[string][]string, len(f.cols)),
	}
	for name, vals := range f.cols {
		c.cols[name] = append([]string(nil), vals...)
	}
	return c
}

// Insert returns a copy of the Frame with col inserted at position pos.
// Inserting a name that already exists is an error: the original data
// must never be silently overwritten.
func (f *Frame) Insert(pos int, col Column) (*Frame, error) {
	if f.Has(col.Name) {
		return nil, errors.Newf("frame: column %q already exists", col.Name)
	}
	if len(f.names) > 0 && len(col.Values) != f.Rows() {
		return nil, errors.Newf("frame: column %q has %d rows, want %d", col.Name, len(col.Values), f.Rows())
	}
	if pos < 0 || pos > len(f.names) {
		return nil, errors.Newf("frame: insert position %d out of range", pos)
	}
	c := f.Copy()
	c.names = append(c.names[:pos], append([]string{col.Name}, c.names[pos:]...)...)
	c.cols[col.Name] = append([]string(nil), col.Values...)
	return c, nil
}

// Drop returns a copy of the Frame without the named column. Dropping a
// column that does not exist is a no-op copy.
func (f *Frame) Drop(name string) *Frame {
	c := &Frame{cols: make(map[string][]string, len(f.cols))}
	for _, n := range f.names {
		if n == name {
			continue
		}
		c.names = append(c.names, n)
		c.cols[n] = append([]string(nil), f.cols[n]...)
	}
	return c
}

// Filter returns the subframe of rows where the named column equals
// value. Row order is preserved.
func (f *Frame) Filter(name, value string) (*Frame, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	c := &Frame{
		names: append([]string(nil), f.names...),
		cols:  make(map[string][]string, len(f.cols)),
	}
	for _, n := range c.names {
		c.cols[n] = []string{}
	}
	for i, v := range col {
		if v != value {
			continue
		}
		for _, n := range c.names {
			c.cols[n] = append(c.cols[n], f.cols[n][i])
		}
	}
	return c, nil
}

// Distinct returns the distinct values of the named column in first-seen
// order. The stable order keeps downstream floating-point accumulation
// reproducible across runs.
func (f *Frame) Distinct(name string) ([]string, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	set := linkedhashset.New()
	for _, v := range col {
		set.Add(v)
	}
	out := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(string))
	}
	return out, nil
}

// Group is one partition of a Frame: the rows holding a single distinct
// value of the grouped column.
type Group struct {
	Value string
	Frame *Frame
}

// GroupBy partitions the Frame by the named column, one Group per
// distinct value, in first-seen value order.
func (f *Frame) GroupBy(name string) ([]Group, error) {
	values, err := f.Distinct(name)
	if err != nil {
		return nil, err
	}
	groups := make([]Group, 0, len(values))
	for _, v := range values {
		sub, err := f.Filter(name, v)
		if err != nil {
			return nil, err
		}
		groups = append(groups, Group{Value: v, Frame: sub})
	}
	return groups, nil
}
