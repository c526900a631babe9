// Package handler declares what the interpreter chain needs from a window.
//
// Each sequence grammar talks to its own small interface, named after the
// control function it performs:
//
// - handler.SGR with the attribute methods (attrset, attron, attroff)
//
// - handler.CUP with MoveCursor
//
// - handler.ED with EraseDisplay
//
// Handler bundles all of them; a window implements it.
package handler
