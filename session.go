// SPDX-License-Identifier: EPL-2.0

package audioroute

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/snd-tools/audioroute/alsa"
	"github.com/snd-tools/audioroute/route"
)

// Session aggregates one mixer endpoint, its control registry and its
// path table. It is the unit of initialization and teardown; nothing is
// shared across sessions.
type Session struct {
	mixer  route.Mixer
	closer io.Closer
	reg    *route.Registry
	table  *route.Table
}

// OpenSession opens the mixer of the given card, loads its description
// file (see ConfigPath), writes the initial values and captures the reset
// baseline. Any load error releases all partially built state: a session
// is never left half-initialized.
func OpenSession(card uint) (*Session, error) {
	return OpenSessionConfig(card, ConfigPath(card))
}

// OpenSessionConfig is OpenSession with an explicit description file.
func OpenSessionConfig(card uint, configPath string) (*Session, error) {
	m, err := alsa.OpenMixer(card)
	if err != nil {
		return nil, fmt.Errorf("opening mixer for card %d: %w", card, err)
	}
	f, err := os.Open(configPath)
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("opening mixer description: %w", err)
	}
	defer f.Close()

	slog.Debug("loading mixer paths", "card", card, "config", configPath)

	ses, err := NewSession(newMixerAdapter(m), f)
	if err != nil {
		m.Close()
		return nil, err
	}
	ses.closer = m
	return ses, nil
}

// NewSession builds a session over an already-open mixer endpoint and a
// description document. It is the seam for custom backends and tests;
// the caller keeps ownership of the endpoint's underlying handle.
func NewSession(m route.Mixer, config io.Reader) (*Session, error) {
	reg, err := route.NewRegistry(m)
	if err != nil {
		return nil, fmt.Errorf("reading mixer state: %w", err)
	}
	table := route.NewTable()
	failed, err := route.Load(config, m, reg, table)
	if err != nil {
		return nil, err
	}
	if failed > 0 {
		slog.Warn("initial mixer commit left controls unwritten", "failed", failed)
	}
	return &Session{mixer: m, reg: reg, table: table}, nil
}

// ApplyPath stages every setting of the named path as a pending value.
// It performs no hardware I/O; call Commit to realize the change. An
// unknown name fails with route.ErrUnknownPath and leaves the registry
// untouched.
func (s *Session) ApplyPath(name string) error {
	p, err := s.table.Get(name)
	if err != nil {
		return err
	}
	return p.Apply(s.reg)
}

// Commit writes every staged value that differs from the last-applied
// one and returns the number of controls whose writes failed; failed
// controls stay marked as needing a future commit.
func (s *Session) Commit() int {
	return s.reg.Commit()
}

// Reset stages the reset baseline on every control. Combined with Commit
// it restores the hardware state captured right after the initial load.
func (s *Session) Reset() {
	s.reg.Reset()
}

// Paths returns the names of all loaded paths in definition order.
func (s *Session) Paths() []string {
	return s.table.Names()
}

// Close releases the hardware handle held by the session, if any. The
// session must not be used afterwards.
func (s *Session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
