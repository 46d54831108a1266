// SPDX-License-Identifier: EPL-2.0

package audioroute

import (
	"errors"
	"strings"
	"testing"

	"github.com/snd-tools/audioroute/internal/mixertest"
	"github.com/snd-tools/audioroute/route"
)

const sessionDoc = `<mixer>
	<ctl name="MASTER_VOL" value="100"/>
	<path name="speaker">
		<ctl name="SPK_SW" value="1"/>
	</path>
	<path name="headset">
		<ctl name="SPK_SW" value="0"/>
	</path>
</mixer>`

func newSessionMixer() (*mixertest.Mixer, *mixertest.Ctl, *mixertest.Ctl) {
	spk := mixertest.NewBool("SPK_SW", 2, 0)
	master := mixertest.NewInt("MASTER_VOL", 2, 50)
	return mixertest.New(spk, master), spk, master
}

func TestNewSession_InitialCommitAndBaseline(t *testing.T) {
	t.Parallel()

	m, _, master := newSessionMixer()
	ses, err := NewSession(m, strings.NewReader(sessionDoc))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	// The top-level ctl directive was committed during load.
	if v, _ := master.Value(0); v != 100 {
		t.Errorf("MASTER_VOL after open = %d, want 100", v)
	}

	// The baseline was captured after that commit: reset restores the
	// post-load state, not the pre-load one.
	if err := ses.ApplyPath("speaker"); err != nil {
		t.Fatalf("ApplyPath() failed: %v", err)
	}
	ses.Commit()
	ses.Reset()
	ses.Commit()
	if v, _ := master.Value(0); v != 100 {
		t.Errorf("MASTER_VOL after reset = %d, want 100", v)
	}
}

func TestSession_ApplyPathThenCommit(t *testing.T) {
	t.Parallel()

	m, spk, master := newSessionMixer()
	ses, err := NewSession(m, strings.NewReader(sessionDoc))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	m.ResetWrites()

	if err := ses.ApplyPath("speaker"); err != nil {
		t.Fatalf("ApplyPath(speaker) failed: %v", err)
	}
	ses.Commit()
	if v, _ := spk.Value(0); v != 1 {
		t.Errorf("SPK_SW = %d after speaker, want 1", v)
	}
	if master.Writes() != 0 {
		t.Errorf("MASTER_VOL written %d times, want 0", master.Writes())
	}

	if err := ses.ApplyPath("headset"); err != nil {
		t.Fatalf("ApplyPath(headset) failed: %v", err)
	}
	ses.Commit()
	if v, _ := spk.Value(0); v != 0 {
		t.Errorf("SPK_SW = %d after headset, want 0", v)
	}
	if master.Writes() != 0 {
		t.Errorf("MASTER_VOL written %d times, want 0", master.Writes())
	}
}

func TestSession_CommitIsIdempotent(t *testing.T) {
	t.Parallel()

	m, _, _ := newSessionMixer()
	ses, err := NewSession(m, strings.NewReader(sessionDoc))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	_ = ses.ApplyPath("speaker")
	ses.Commit()

	m.ResetWrites()
	ses.Commit()
	if m.TotalWrites() != 0 {
		t.Errorf("second Commit() performed %d writes, want 0", m.TotalWrites())
	}
}

func TestSession_ApplyUnknownPath(t *testing.T) {
	t.Parallel()

	m, _, _ := newSessionMixer()
	ses, err := NewSession(m, strings.NewReader(sessionDoc))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	m.ResetWrites()

	err = ses.ApplyPath("bluetooth")
	if !errors.Is(err, route.ErrUnknownPath) {
		t.Errorf("ApplyPath() error = %v, want ErrUnknownPath", err)
	}

	// Nothing was staged: the next commit writes nothing.
	ses.Commit()
	if m.TotalWrites() != 0 {
		t.Errorf("commit after failed apply performed %d writes, want 0", m.TotalWrites())
	}
}

func TestSession_Paths(t *testing.T) {
	t.Parallel()

	m, _, _ := newSessionMixer()
	ses, err := NewSession(m, strings.NewReader(sessionDoc))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	got := ses.Paths()
	want := []string{"speaker", "headset"}
	if len(got) != len(want) {
		t.Fatalf("Paths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Paths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewSession_LoadErrorLeavesNoSession(t *testing.T) {
	t.Parallel()

	m, _, _ := newSessionMixer()
	ses, err := NewSession(m, strings.NewReader(`<mixer><ctl name="NOPE"/></mixer>`))
	if !errors.Is(err, route.ErrUnresolvedControl) {
		t.Errorf("NewSession() error = %v, want ErrUnresolvedControl", err)
	}
	if ses != nil {
		t.Error("NewSession() returned a session alongside an error")
	}
}

func TestSession_CloseWithoutHandle(t *testing.T) {
	t.Parallel()

	m, _, _ := newSessionMixer()
	ses, err := NewSession(m, strings.NewReader(sessionDoc))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := ses.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}
