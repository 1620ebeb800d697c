// Package widgets contains render primitives and small stateful controls.
//
// Allowed here:
// - stateless drawing/composition helpers (boxes, stacks, popup overlay compositor)
// - self-contained controls that own only their own state (button bar, labeled input, up/down)
//
// Not allowed here:
// - screen stack access, app state transitions, scope logic or message routing
package widgets
