package demo

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const aboutMarkdown = `# termkit demo

Runs a long task in the **console** without freezing the screen, and asks
questions through **modal dialogs** whose answers come back tagged with the
key they were asked under.

| Key | Action |
|-----|--------|
| r | run the demo task |
| v | yes/no question |
| c | yes/no/cancel question |
| m | message |
| f | form |
| o | open the console |
| ctrl+k | command palette |
| q | quit |
`

// Renderer turns markdown into terminal text.
type Renderer func(markdown string) (string, error)

// NewRenderer returns a glamour renderer. An empty style picks one from the
// terminal background.
func NewRenderer(style string, width int) (Renderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(20, width))}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render, nil
}

// PlainRenderer returns markdown unchanged.
func PlainRenderer(markdown string) (string, error) {
	return markdown, nil
}
