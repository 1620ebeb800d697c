// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, the screen stack and its dismiss continuations
// - the message bus, per-screen inboxes and correlated message contracts
// - command and key registries, theme and chrome (header, status bar, footer)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
package core
