// SPDX-License-Identifier: EPL-2.0

// Package mixertest provides a fake mixer endpoint for testing the
// routing engine without hardware. Controls record every slot write, so
// tests can assert that a commit touched exactly the controls it should
// have, and individual controls can be made to reject writes.
package mixertest

import (
	"errors"

	"github.com/snd-tools/audioroute/route"
)

// ErrWriteRejected is returned by controls configured with FailWrites.
var ErrWriteRejected = errors.New("write rejected")

// Ctl is a fake mixer control implementing route.Control.
type Ctl struct {
	name   string
	typ    route.ControlType
	values []int
	enums  []string

	// FailWrites makes every SetValue call fail without changing state.
	FailWrites bool

	writes int
}

// NewBool creates a switch control with n slots, all initialized to init.
func NewBool(name string, n, init int) *Ctl {
	return newCtl(name, route.ControlBool, n, init, nil)
}

// NewInt creates an integer control with n slots, all initialized to init.
func NewInt(name string, n, init int) *Ctl {
	return newCtl(name, route.ControlInt, n, init, nil)
}

// NewEnum creates an enumerated control with n slots, the given ordered
// labels, and every slot initialized to label index init.
func NewEnum(name string, n, init int, labels ...string) *Ctl {
	return newCtl(name, route.ControlEnum, n, init, labels)
}

func newCtl(name string, typ route.ControlType, n, init int, labels []string) *Ctl {
	values := make([]int, n)
	for i := range values {
		values[i] = init
	}
	return &Ctl{name: name, typ: typ, values: values, enums: labels}
}

func (c *Ctl) Name() string            { return c.name }
func (c *Ctl) Type() route.ControlType { return c.typ }
func (c *Ctl) NumValues() int          { return len(c.values) }
func (c *Ctl) NumEnums() int           { return len(c.enums) }

func (c *Ctl) EnumName(i int) (string, error) {
	if i < 0 || i >= len(c.enums) {
		return "", errors.New("enum index out of range")
	}
	return c.enums[i], nil
}

func (c *Ctl) Value(i int) (int, error) {
	if i < 0 || i >= len(c.values) {
		return 0, errors.New("slot index out of range")
	}
	return c.values[i], nil
}

func (c *Ctl) SetValue(i, v int) error {
	if i < 0 || i >= len(c.values) {
		return errors.New("slot index out of range")
	}
	c.writes++
	if c.FailWrites {
		return ErrWriteRejected
	}
	c.values[i] = v
	return nil
}

// Writes returns the number of SetValue calls seen so far, including
// rejected ones.
func (c *Ctl) Writes() int { return c.writes }

// ResetWrites clears the write counter.
func (c *Ctl) ResetWrites() { c.writes = 0 }

// Slots returns a copy of the control's current per-slot values.
func (c *Ctl) Slots() []int {
	out := make([]int, len(c.values))
	copy(out, c.values)
	return out
}

// SetLive overwrites every slot without counting a write, simulating a
// value change made outside the engine.
func (c *Ctl) SetLive(v int) {
	for i := range c.values {
		c.values[i] = v
	}
}

// Mixer is a fake mixer endpoint implementing route.Mixer.
type Mixer struct {
	ctls []*Ctl
}

// New creates a fake endpoint exposing the given controls.
func New(ctls ...*Ctl) *Mixer { return &Mixer{ctls: ctls} }

func (m *Mixer) NumControls() int { return len(m.ctls) }

func (m *Mixer) Control(i int) route.Control { return m.ctls[i] }

func (m *Mixer) ControlByName(name string) (route.Control, bool) {
	for _, c := range m.ctls {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// TotalWrites sums the write counters of every control.
func (m *Mixer) TotalWrites() int {
	total := 0
	for _, c := range m.ctls {
		total += c.writes
	}
	return total
}

// ResetWrites clears every control's write counter.
func (m *Mixer) ResetWrites() {
	for _, c := range m.ctls {
		c.writes = 0
	}
}
