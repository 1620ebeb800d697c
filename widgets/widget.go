package widgets

// Widget renders itself into a width x height cell area.
type Widget interface {
	Render(width, height int) string
}

// Text is a Widget for pre-rendered content.
type Text string

func (t Text) Render(width, height int) string {
	return string(t)
}
