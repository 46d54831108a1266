// SPDX-License-Identifier: EPL-2.0

package route

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// loadState carries the streaming parser's position: the nesting level and
// the path currently being defined. Tags have a dual meaning keyed on the
// level: directly under the document root (level 1) a path tag defines a
// new path and a ctl tag stages an initial value; anywhere deeper a path
// tag composes a previously defined path into the current one and a ctl
// tag appends a setting to it.
type loadState struct {
	level int
	path  *Path
}

// Load consumes an XML mixer description from r, building table and
// staging initial control values in reg. After the whole document is
// consumed it performs one commit and captures the reset baseline, so a
// successful load leaves hardware in the document's initial state.
//
// Any grammar violation aborts the load: duplicate path names, references
// to paths not yet fully defined, control names absent from the mixer,
// and enum values that match no label. The returned count is the number
// of controls whose initial-value writes failed (non-fatal, see
// Registry.Commit).
func Load(r io.Reader, m Mixer, reg *Registry, table *Table) (failed int, err error) {
	dec := xml.NewDecoder(r)
	state := &loadState{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("parsing mixer description: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := startTag(state, t, m, reg, table); err != nil {
				return 0, err
			}
			state.level++
		case xml.EndElement:
			state.level--
			if state.level <= 1 {
				state.path = nil
			}
		}
	}

	failed = reg.Commit()
	if err := reg.SaveReset(); err != nil {
		return failed, err
	}
	return failed, nil
}

func startTag(state *loadState, el xml.StartElement, m Mixer, reg *Registry, table *Table) error {
	var name, value string
	var hasValue bool
	for _, a := range el.Attr {
		switch a.Name.Local {
		case "name":
			name = a.Value
		case "value":
			value = a.Value
			hasValue = true
		}
	}

	switch el.Name.Local {
	case "path":
		if name == "" {
			return fmt.Errorf("unnamed path tag at level %d", state.level)
		}
		if state.level == 1 {
			p, err := table.Create(name)
			if err != nil {
				return err
			}
			state.path = p
			return nil
		}
		if state.path == nil {
			return fmt.Errorf("%w: path reference %q outside a path", ErrUnknownPath, name)
		}
		if name == state.path.Name() {
			// The current path is in the table but its definition is not
			// closed yet; referencing it is a forward reference.
			return fmt.Errorf("%w: %q references itself", ErrUnknownPath, name)
		}
		return table.Compose(state.path, name)

	case "ctl":
		if name == "" {
			return fmt.Errorf("unnamed ctl tag at level %d", state.level)
		}
		ctl, ok := m.ControlByName(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnresolvedControl, name)
		}
		v, err := ctlValue(ctl, value, hasValue)
		if err != nil {
			return err
		}
		if state.level == 1 {
			// Initial value directive: staged directly, realized by the
			// commit at the end of the load.
			return reg.SetPending(ctl, v)
		}
		if state.path == nil {
			return fmt.Errorf("ctl %q nested outside a path", name)
		}
		return state.path.AddSetting(ctl, v)
	}
	return nil
}

// ctlValue interprets a value attribute according to the control's type.
// Boolean and integer controls parse a decimal literal, defaulting to 0
// when absent; enumerated controls require a matching label.
func ctlValue(ctl Control, value string, hasValue bool) (int, error) {
	switch ctl.Type() {
	case ControlBool, ControlInt:
		if !hasValue {
			return 0, nil
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("control %q: bad value %q: %w", ctl.Name(), value, err)
		}
		return v, nil
	case ControlEnum:
		if !hasValue {
			return 0, fmt.Errorf("%w: control %q requires a value", ErrInvalidLabel, ctl.Name())
		}
		return EnumIndex(ctl, value)
	}
	return 0, fmt.Errorf("%w: %q", ErrWrongType, ctl.Name())
}
