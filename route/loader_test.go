// SPDX-License-Identifier: EPL-2.0

package route_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/snd-tools/audioroute/internal/mixertest"
	"github.com/snd-tools/audioroute/route"
)

// newTestMixer builds the endpoint used across loader tests.
func newTestMixer() (*mixertest.Mixer, map[string]*mixertest.Ctl) {
	ctls := map[string]*mixertest.Ctl{
		"SPK_SW":  mixertest.NewBool("SPK_SW", 2, 0),
		"SPK_VOL": mixertest.NewInt("SPK_VOL", 2, 50),
		"MIC_SW":  mixertest.NewBool("MIC_SW", 1, 0),
		"MIC_SRC": mixertest.NewEnum("MIC_SRC", 1, 0, "Internal", "External"),
	}
	m := mixertest.New(ctls["SPK_SW"], ctls["SPK_VOL"], ctls["MIC_SW"], ctls["MIC_SRC"])
	return m, ctls
}

func load(t *testing.T, m *mixertest.Mixer, doc string) (*route.Registry, *route.Table, error) {
	t.Helper()
	reg, err := route.NewRegistry(m)
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}
	table := route.NewTable()
	_, err = route.Load(strings.NewReader(doc), m, reg, table)
	return reg, table, err
}

func TestLoad_PathsAndInitialValues(t *testing.T) {
	t.Parallel()

	const doc = `<mixer>
		<ctl name="SPK_VOL" value="75"/>
		<ctl name="MIC_SRC" value="External"/>
		<path name="speaker">
			<ctl name="SPK_SW" value="1"/>
		</path>
		<path name="voice-call">
			<path name="speaker"/>
			<ctl name="MIC_SW" value="1"/>
		</path>
	</mixer>`

	m, ctls := newTestMixer()
	_, table, err := load(t, m, doc)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Top-level ctl tags are initial value directives, realized by the
	// load's final commit.
	if v, _ := ctls["SPK_VOL"].Value(0); v != 75 {
		t.Errorf("SPK_VOL after load = %d, want 75", v)
	}
	if v, _ := ctls["MIC_SRC"].Value(0); v != 1 {
		t.Errorf("MIC_SRC after load = %d, want 1 (External)", v)
	}

	// Nested path tags compose; the composed path is flattened.
	vc, err := table.Get("voice-call")
	if err != nil {
		t.Fatalf("Get(voice-call) failed: %v", err)
	}
	settings := vc.Settings()
	if len(settings) != 2 {
		t.Fatalf("voice-call has %d settings, want 2", len(settings))
	}
	if settings[0].Control.Name() != "SPK_SW" || settings[0].Value != 1 {
		t.Errorf("settings[0] = {%s %d}, want {SPK_SW 1}", settings[0].Control.Name(), settings[0].Value)
	}
	if settings[1].Control.Name() != "MIC_SW" || settings[1].Value != 1 {
		t.Errorf("settings[1] = {%s %d}, want {MIC_SW 1}", settings[1].Control.Name(), settings[1].Value)
	}
}

func TestLoad_Deterministic(t *testing.T) {
	t.Parallel()

	const doc = `<mixer>
		<path name="a"><ctl name="SPK_SW" value="1"/></path>
		<path name="b"><ctl name="SPK_VOL" value="20"/></path>
		<path name="c"><path name="a"/><path name="b"/></path>
	</mixer>`

	m1, _ := newTestMixer()
	_, t1, err := load(t, m1, doc)
	if err != nil {
		t.Fatalf("first Load() failed: %v", err)
	}
	m2, _ := newTestMixer()
	_, t2, err := load(t, m2, doc)
	if err != nil {
		t.Fatalf("second Load() failed: %v", err)
	}

	n1, n2 := t1.Names(), t2.Names()
	if len(n1) != len(n2) {
		t.Fatalf("name sets differ: %v vs %v", n1, n2)
	}
	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("name sets differ: %v vs %v", n1, n2)
		}
		p1, _ := t1.Get(n1[i])
		p2, _ := t2.Get(n2[i])
		s1, s2 := p1.Settings(), p2.Settings()
		if len(s1) != len(s2) {
			t.Fatalf("path %q: %d vs %d settings", n1[i], len(s1), len(s2))
		}
		for j := range s1 {
			if s1[j].Control.Name() != s2[j].Control.Name() || s1[j].Value != s2[j].Value {
				t.Errorf("path %q setting %d differs", n1[i], j)
			}
		}
	}
}

func TestLoad_IntValueDefaultsToZero(t *testing.T) {
	t.Parallel()

	const doc = `<mixer><path name="mute"><ctl name="SPK_VOL"/></path></mixer>`

	m, _ := newTestMixer()
	_, table, err := load(t, m, doc)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	p, _ := table.Get("mute")
	if p.Settings()[0].Value != 0 {
		t.Errorf("omitted int value = %d, want 0", p.Settings()[0].Value)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "duplicate path name",
			doc:  `<mixer><path name="a"/><path name="a"/></mixer>`,
			want: route.ErrDuplicatePath,
		},
		{
			name: "forward path reference",
			doc:  `<mixer><path name="a"><path name="b"/></path><path name="b"/></mixer>`,
			want: route.ErrUnknownPath,
		},
		{
			// The name is already in the table but its definition is not
			// closed; it must be treated as a forward reference.
			name: "self reference",
			doc:  `<mixer><path name="a"><path name="a"/></path></mixer>`,
			want: route.ErrUnknownPath,
		},
		{
			name: "unresolved control",
			doc:  `<mixer><ctl name="NOPE" value="1"/></mixer>`,
			want: route.ErrUnresolvedControl,
		},
		{
			name: "unresolved control in path",
			doc:  `<mixer><path name="a"><ctl name="NOPE" value="1"/></path></mixer>`,
			want: route.ErrUnresolvedControl,
		},
		{
			name: "duplicate control via composition",
			doc: `<mixer>
				<path name="a"><ctl name="SPK_SW" value="1"/></path>
				<path name="b"><ctl name="SPK_SW" value="0"/></path>
				<path name="c"><path name="a"/><path name="b"/></path>
			</mixer>`,
			want: route.ErrDuplicateControl,
		},
		{
			name: "enum label unmatched",
			doc:  `<mixer><ctl name="MIC_SRC" value="Bogus"/></mixer>`,
			want: route.ErrInvalidLabel,
		},
		{
			name: "enum value absent",
			doc:  `<mixer><ctl name="MIC_SRC"/></mixer>`,
			want: route.ErrInvalidLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, _ := newTestMixer()
			_, _, err := load(t, m, tt.doc)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_MalformedXML(t *testing.T) {
	t.Parallel()

	m, _ := newTestMixer()
	_, _, err := load(t, m, `<mixer><path name="a">`)
	if err == nil {
		t.Error("Load() succeeded on truncated document")
	}
}
