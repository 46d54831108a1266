// SPDX-License-Identifier: EPL-2.0

// Package audioroute configures hardware mixer controls from declarative
// XML descriptions and applies named, composable routing paths.
//
// A routing session binds one sound card's mixer to one description file.
// Opening the session enumerates the card's controls, loads the
// description, writes the document's initial values and captures a reset
// baseline:
//
//	ses, err := audioroute.OpenSession(0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ses.Close()
//
// Paths stage control values; an explicit commit writes only the controls
// whose staged value differs from what is already on hardware:
//
//	if err := ses.ApplyPath("speaker"); err != nil {
//	    log.Fatal(err)
//	}
//	ses.Commit()
//
// Several paths can be staged before one commit; the last-staged value
// wins on shared controls. Reset followed by a commit restores every
// control to its post-load value:
//
//	ses.Reset()
//	ses.Commit()
//
// # Description files
//
// The description for a card is selected by its codec vendor identifier:
// mixer_paths_<vendor>.xml under ConfigDir, where <vendor> is read from
// the card's sysfs chip_name with spaces replaced by underscores. See the
// route package for the document grammar and composition rules.
//
// # Direct control access
//
// SetControlNumeric and SetControlEnum set one control by name outside
// any session, for one-shot administrative use:
//
//	failed, err := audioroute.SetControlNumeric(0, "Speaker Volume", 120)
//	err = audioroute.SetControlEnum(0, "Mic Source", "Internal")
//
// They open their own mixer handle per call and keep no state; do not
// call them concurrently with a commit on the same card.
//
// Sessions are not safe for concurrent use: callers driving one session
// from several goroutines must serialize load/apply/commit/reset
// sequences, typically with one mutex per session.
package audioroute
