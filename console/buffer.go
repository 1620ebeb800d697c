package console

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "normal"
	}
}

// Line is one log record.
type Line struct {
	Text     string
	Severity Severity
}

// WriteMsg carries a log line to a Terminal. NoNewline leaves the line open so
// the next write continues it.
type WriteMsg struct {
	Text      string
	Severity  Severity
	NoNewline bool
}

// Buffer is an append-only list of lines. The last line may be open, meaning
// the next Write continues it.
type Buffer struct {
	lines []Line
	open  bool
}

// Write appends text without terminating the current line. Embedded newlines
// start new lines of the same severity. An open line of another severity is
// terminated first, so tagged lines always start a line of their own.
func (b *Buffer) Write(text string, sev Severity) {
	if n := len(b.lines); b.open && n > 0 && b.lines[n-1].Severity != sev {
		if b.lines[n-1].Text == "" {
			b.lines[n-1].Severity = sev
		} else {
			b.open = false
		}
	}
	for i, part := range strings.Split(text, "\n") {
		if i == 0 && b.open && len(b.lines) > 0 {
			b.lines[len(b.lines)-1].Text += part
			continue
		}
		b.lines = append(b.lines, Line{Text: part, Severity: sev})
	}
	b.open = true
}

// WriteLine appends text and terminates the line.
func (b *Buffer) WriteLine(text string, sev Severity) {
	b.Write(text, sev)
	b.open = false
}

func (b *Buffer) Clear() {
	b.lines = nil
	b.open = false
}

// Lines returns a copy of the buffer. An open line that is still empty is
// left out.
func (b *Buffer) Lines() []Line {
	n := len(b.lines)
	if b.open && n > 0 && b.lines[n-1].Text == "" {
		n--
	}
	out := make([]Line, n)
	copy(out, b.lines[:n])
	return out
}

func (b *Buffer) Len() int { return len(b.Lines()) }

// Last returns the final line, if any.
func (b *Buffer) Last() (Line, bool) {
	lines := b.Lines()
	if len(lines) == 0 {
		return Line{}, false
	}
	return lines[len(lines)-1], true
}

// Save writes every line followed by "\n" to path, replacing any existing
// file.
func (b *Buffer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, l := range b.Lines() {
		if _, err := w.WriteString(l.Text + "\n"); err != nil {
			_ = f.Close()
			return fmt.Errorf("write log file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}
