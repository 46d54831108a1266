// SPDX-License-Identifier: EPL-2.0

package audioroute

import (
	"fmt"

	"github.com/snd-tools/audioroute/alsa"
	"github.com/snd-tools/audioroute/route"
)

// enumSetter is implemented by backends that can write an enum label to
// every slot of a control in a single hardware call.
type enumSetter interface {
	SetEnum(label string) error
}

// SetControlNumeric locates the first control named name on the card's
// mixer and writes the literal value to every per-channel slot, outside
// any session and without pending/last-applied bookkeeping. It returns
// the number of slots that rejected the value. A missing control fails
// with route.ErrUnresolvedControl.
func SetControlNumeric(card uint, name string, value int) (failed int, err error) {
	m, err := alsa.OpenMixer(card)
	if err != nil {
		return 0, fmt.Errorf("opening mixer for card %d: %w", card, err)
	}
	defer m.Close()
	return setNumeric(newMixerAdapter(m), name, value)
}

// SetControlEnum locates the control named name and selects the given
// enum label on every slot, atomically where the backend supports it.
// Non-enum controls fail with route.ErrWrongType and unknown labels with
// route.ErrInvalidLabel; nothing is written in either case.
func SetControlEnum(card uint, name, label string) error {
	m, err := alsa.OpenMixer(card)
	if err != nil {
		return fmt.Errorf("opening mixer for card %d: %w", card, err)
	}
	defer m.Close()
	return setEnum(newMixerAdapter(m), name, label)
}

func setNumeric(m route.Mixer, name string, value int) (failed int, err error) {
	c, ok := m.ControlByName(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", route.ErrUnresolvedControl, name)
	}
	for i := 0; i < c.NumValues(); i++ {
		if err := c.SetValue(i, value); err != nil {
			failed++
		}
	}
	return failed, nil
}

func setEnum(m route.Mixer, name, label string) error {
	c, ok := m.ControlByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", route.ErrUnresolvedControl, name)
	}
	// Validate type and label before any write.
	idx, err := route.EnumIndex(c, label)
	if err != nil {
		return err
	}
	if es, ok := c.(enumSetter); ok {
		return es.SetEnum(label)
	}
	for i := 0; i < c.NumValues(); i++ {
		if err := c.SetValue(i, idx); err != nil {
			return fmt.Errorf("setting %q slot %d: %w", name, i, err)
		}
	}
	return nil
}
