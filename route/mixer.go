// SPDX-License-Identifier: EPL-2.0

package route

import "fmt"

// ControlType classifies the value kind of a mixer control.
type ControlType int

const (
	// ControlBool is an on/off switch carrying 0 or 1 per slot.
	ControlBool ControlType = iota
	// ControlInt is an integer control (volume, gain).
	ControlInt
	// ControlEnum selects one of an ordered list of string labels.
	ControlEnum
	// ControlOther covers control kinds the engine cannot represent
	// (byte arrays, IEC958 frames). The registry skips them.
	ControlOther
)

// String returns the control type name.
func (t ControlType) String() string {
	switch t {
	case ControlBool:
		return "bool"
	case ControlInt:
		return "int"
	case ControlEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Control is one addressable hardware mixer parameter. Implementations
// are provided by the hardware backend (or a test fake); the engine holds
// non-owning references and compares controls by interface identity.
type Control interface {
	// Name returns the control's hardware name.
	Name() string
	// Type returns the control's value kind.
	Type() ControlType
	// NumValues returns the number of per-channel slots the control holds.
	NumValues() int
	// NumEnums returns the number of enum labels; 0 for non-enum controls.
	NumEnums() int
	// EnumName returns the label at index i.
	EnumName(i int) (string, error)
	// Value reads the live hardware value of slot i.
	Value(i int) (int, error)
	// SetValue writes v to slot i on hardware.
	SetValue(i, v int) error
}

// Mixer is one hardware mixer endpoint exposing a fixed set of controls.
type Mixer interface {
	// NumControls returns the number of controls on the endpoint.
	NumControls() int
	// Control returns the control at index i.
	Control(i int) Control
	// ControlByName returns the first control whose name matches exactly.
	ControlByName(name string) (Control, bool)
}

// EnumIndex resolves an enum label against the control's label list and
// returns the first matching label's index. It fails with ErrWrongType on
// non-enum controls and ErrInvalidLabel when nothing matches.
func EnumIndex(c Control, label string) (int, error) {
	if c.Type() != ControlEnum {
		return 0, fmt.Errorf("%w: %q is %s, not enum", ErrWrongType, c.Name(), c.Type())
	}
	for i := 0; i < c.NumEnums(); i++ {
		name, err := c.EnumName(i)
		if err != nil {
			return 0, fmt.Errorf("reading enum label %d of %q: %w", i, c.Name(), err)
		}
		if name == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q on control %q", ErrInvalidLabel, label, c.Name())
}
