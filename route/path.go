// SPDX-License-Identifier: EPL-2.0

package route

import "fmt"

// Setting pairs a control with the integer value a path assigns to it.
// For enumerated controls the value is a label index.
type Setting struct {
	Control Control
	Value   int
}

// Path is a named, ordered sequence of settings. Within one path at most
// one setting may reference a given control. Paths are built during
// configuration load and are immutable afterwards; order is preserved for
// diagnostics only, since applying is a set operation over the registry.
type Path struct {
	name     string
	settings []Setting
}

// Name returns the path's unique name.
func (p *Path) Name() string { return p.name }

// Settings returns the path's flattened settings in insertion order.
// The returned slice must not be modified.
func (p *Path) Settings() []Setting { return p.settings }

func (p *Path) contains(c Control) bool {
	for _, s := range p.settings {
		if s.Control == c {
			return true
		}
	}
	return false
}

// AddSetting appends a setting for c. It fails with ErrDuplicateControl
// when the path already holds a setting for the same control; a second
// value for a control is a composition error, never a silent overwrite.
func (p *Path) AddSetting(c Control, value int) error {
	if p.contains(c) {
		return fmt.Errorf("%w: %q in path %q", ErrDuplicateControl, c.Name(), p.name)
	}
	p.settings = append(p.settings, Setting{Control: c, Value: value})
	return nil
}

// Apply stages every setting of the path as a pending value in reg.
// It performs no hardware I/O; combine with Registry.Commit to realize
// the change. Later applies win on shared controls.
func (p *Path) Apply(reg *Registry) error {
	for _, s := range p.settings {
		if err := reg.SetPending(s.Control, s.Value); err != nil {
			return err
		}
	}
	return nil
}

// Table owns all paths of one routing session and enforces global name
// uniqueness. The zero value is ready to use.
type Table struct {
	paths []*Path
}

// NewTable returns an empty path table.
func NewTable() *Table { return &Table{} }

// Len returns the number of paths in the table.
func (t *Table) Len() int { return len(t.paths) }

// Names returns the path names in definition order.
func (t *Table) Names() []string {
	names := make([]string, len(t.paths))
	for i, p := range t.paths {
		names[i] = p.name
	}
	return names
}

// Get returns the path with the given name. Lookup is exact, never a
// partial match; it fails with ErrUnknownPath when absent.
func (t *Table) Get(name string) (*Path, error) {
	for _, p := range t.paths {
		if p.name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, name)
}

// Create allocates a new empty path and appends it to the table. It fails
// with ErrDuplicatePath when the name is already taken.
func (t *Table) Create(name string) (*Path, error) {
	if _, err := t.Get(name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, name)
	}
	p := &Path{name: name}
	t.paths = append(t.paths, p)
	return p, nil
}

// Compose merges the settings of the named sub-path into p. The sub-path
// must already exist in the table (forward references fail with
// ErrUnknownPath, which also rules out cycles). Composition inherits the
// duplicate-control rule and is atomic: when any merged control collides
// with one already in p, p is left untouched.
func (t *Table) Compose(p *Path, subName string) error {
	sub, err := t.Get(subName)
	if err != nil {
		return err
	}
	for _, s := range sub.settings {
		if p.contains(s.Control) {
			return fmt.Errorf("%w: %q from sub-path %q", ErrDuplicateControl, s.Control.Name(), subName)
		}
	}
	p.settings = append(p.settings, sub.settings...)
	return nil
}
