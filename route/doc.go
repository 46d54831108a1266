// SPDX-License-Identifier: EPL-2.0

// Package route implements the mixer-path routing engine.
//
// The engine models a bank of hardware mixer controls and named,
// composable bundles of control values ("paths"). It is built from
// three pieces:
//
//   - Registry tracks, per control, the value last written to hardware,
//     the value queued for the next commit, and a reset baseline captured
//     once after load.
//   - Table owns the named paths; a path is an ordered list of
//     (control, value) settings with at most one setting per control.
//     Paths may be composed from previously defined paths at load time;
//     composition flattens the sub-path's settings into the parent.
//   - Load builds both from an XML description and stages the document's
//     initial values.
//
// # Staging and committing
//
// Applying a path stages its settings as pending values; nothing touches
// hardware until Commit, which writes exactly the controls whose pending
// value differs from the last-applied one:
//
//	path, _ := table.Get("speaker")
//	path.Apply(reg)          // stage, no I/O
//	failed, _ := reg.Commit() // write only what changed
//
// Later-applied paths override earlier ones on shared controls; commit
// cost is proportional to the number of actually changed controls, no
// matter how much configuration was processed.
//
// # Hardware independence
//
// The engine talks to hardware only through the Mixer and Control
// interfaces, so it can be driven against a fake endpoint in tests and
// against the alsa package in production.
//
// The engine is single-threaded per Registry/Table pair: callers that
// share one across goroutines must serialize access themselves.
package route
