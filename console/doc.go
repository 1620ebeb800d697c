// Package console provides the Terminal screen, which runs one task at a time
// off the UI loop and shows its output in a scrollable log, and the Console
// relay that forwards log calls from anywhere in the program into it.
//
// Worker code never touches the log directly. Everything it produces travels
// as a WriteMsg through the Terminal's inbox and is applied on the UI loop in
// post order.
package console
