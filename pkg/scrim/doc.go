// Package scrim is a small terminal UI toolkit built around a tree of
// views and a single-threaded event loop.
//
// Views implement the [View] capability set: measure, commit a layout,
// draw through a [Printer], react to an [Event], and answer lookups by
// [Selector]. Containers own their children outright; the tree is
// composed once and then addressed by name or path rather than by
// holding references into it.
//
// An [App] ties a tree to a [Backend]. It polls input, routes each
// event through the menubar and the active screen's top layer, runs
// whatever [Callback] the handling view returned, and redraws. Other
// goroutines feed work to the loop through [App.CbSink]; everything
// else happens on the loop goroutine.
//
// The termback and tcellback subpackages provide real terminal
// backends. [DummyBackend] runs the same machinery against an
// in-memory grid, which is how the package tests itself.
package scrim
