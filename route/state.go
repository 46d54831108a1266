// SPDX-License-Identifier: EPL-2.0

package route

import "fmt"

// controlState tracks the value triple for one control. applied only ever
// changes inside Commit, and only to the value pending held at that time.
type controlState struct {
	ctl     Control
	applied int // value currently believed to be on hardware
	pending int // value queued for the next commit
	reset   int // baseline captured once after load
}

// Registry tracks the state triple for every supported control of one
// mixer endpoint. Controls whose type is not bool, int or enum are left
// out: the engine cannot represent their values.
type Registry struct {
	states []controlState
	index  map[Control]int
}

func supported(t ControlType) bool {
	return t == ControlBool || t == ControlInt || t == ControlEnum
}

// NewRegistry enumerates every control on m and seeds each state triple
// from the control's current live value. Only the first per-channel slot
// is read; multiple slots are assumed to hold the same value.
func NewRegistry(m Mixer) (*Registry, error) {
	n := m.NumControls()
	r := &Registry{
		states: make([]controlState, 0, n),
		index:  make(map[Control]int, n),
	}
	for i := 0; i < n; i++ {
		ctl := m.Control(i)
		if !supported(ctl.Type()) {
			continue
		}
		v, err := ctl.Value(0)
		if err != nil {
			return nil, fmt.Errorf("reading control %q: %w", ctl.Name(), err)
		}
		r.index[ctl] = len(r.states)
		r.states = append(r.states, controlState{ctl: ctl, applied: v, pending: v, reset: v})
	}
	return r, nil
}

// NumControls returns the number of tracked controls.
func (r *Registry) NumControls() int { return len(r.states) }

// Pending returns the queued value for c.
func (r *Registry) Pending(c Control) (int, error) {
	i, ok := r.index[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvedControl, c.Name())
	}
	return r.states[i].pending, nil
}

// SetPending queues value for the next commit, overwriting any previously
// queued value for the same control. Which path a value came from does not
// matter: the last writer before a commit wins.
func (r *Registry) SetPending(c Control, value int) error {
	i, ok := r.index[c]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnresolvedControl, c.Name())
	}
	r.states[i].pending = value
	return nil
}

// SaveReset re-reads every control's live value into its reset baseline.
// Called once, immediately after the initial load commit; Reset restores
// to this snapshot.
func (r *Registry) SaveReset() error {
	for i := range r.states {
		v, err := r.states[i].ctl.Value(0)
		if err != nil {
			return fmt.Errorf("reading control %q: %w", r.states[i].ctl.Name(), err)
		}
		r.states[i].reset = v
	}
	return nil
}

// Reset queues the reset baseline on every control, to be realized by the
// next Commit.
func (r *Registry) Reset() {
	for i := range r.states {
		r.states[i].pending = r.states[i].reset
	}
}

// Commit writes, for every control whose pending value differs from the
// last-applied one, the pending value to each per-channel slot, then
// advances last-applied. Unchanged controls are untouched, so hardware
// writes are proportional to the number of actually changed controls.
//
// Per-control write failures are non-fatal: the control's last-applied
// value is not advanced (it stays marked as needing a future commit) and
// the count of failed controls is returned.
func (r *Registry) Commit() (failed int) {
	for i := range r.states {
		st := &r.states[i]
		if st.pending == st.applied {
			continue
		}
		ok := true
		for slot := 0; slot < st.ctl.NumValues(); slot++ {
			if err := st.ctl.SetValue(slot, st.pending); err != nil {
				ok = false
			}
		}
		if ok {
			st.applied = st.pending
		} else {
			failed++
		}
	}
	return failed
}
