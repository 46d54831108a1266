// SPDX-License-Identifier: EPL-2.0

package audioroute

import (
	"github.com/snd-tools/audioroute/alsa"
	"github.com/snd-tools/audioroute/route"
)

// mixerAdapter presents an ALSA mixer as a route.Mixer. Controls are
// wrapped once at construction so that the same interface value is
// returned for the same hardware control, which the registry relies on
// for identity comparison.
type mixerAdapter struct {
	m    *alsa.Mixer
	ctls []ctlAdapter
}

func newMixerAdapter(m *alsa.Mixer) *mixerAdapter {
	a := &mixerAdapter{m: m, ctls: make([]ctlAdapter, m.NumCtls())}
	for i := range a.ctls {
		a.ctls[i] = ctlAdapter{m.Ctl(i)}
	}
	return a
}

func (a *mixerAdapter) NumControls() int { return len(a.ctls) }

func (a *mixerAdapter) Control(i int) route.Control { return a.ctls[i] }

func (a *mixerAdapter) ControlByName(name string) (route.Control, bool) {
	for _, c := range a.ctls {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// ctlAdapter maps the ALSA control type tags onto the engine's. All
// other methods come straight from the embedded control.
type ctlAdapter struct {
	*alsa.Ctl
}

func (c ctlAdapter) Type() route.ControlType {
	switch c.Ctl.Type() {
	case alsa.CtlTypeBool:
		return route.ControlBool
	case alsa.CtlTypeInt:
		return route.ControlInt
	case alsa.CtlTypeEnum:
		return route.ControlEnum
	default:
		return route.ControlOther
	}
}

var _ route.Mixer = (*mixerAdapter)(nil)
var _ route.Control = ctlAdapter{}
