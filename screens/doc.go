// Package screens contains stock modal screens pushed on top of the base
// screen.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (command palette, forms)
// - modal-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
