// Package dialog pushes modal question screens and delivers the user's
// choice back to the screen that asked, as a core.Correlated[Result] tagged
// with the caller's correlation key.
//
// Calls return as soon as the dialog is queued. A requester with several
// dialogs in flight tells the answers apart by switching on the key.
package dialog
