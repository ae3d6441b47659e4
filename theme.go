package clamp

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the widget
// automatically matches any color scheme. An index of -1 means "terminal
// default".
type Theme struct {
	Body    int // widget body text
	Heading int // heading elements
	Code    int // inline code spans
	Accent  int // links, show-less affordance
	Muted   int // collapsed indicator, status bar
	Error   int // error messages
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Body:    -1,
		Heading: 4,
		Code:    3,
		Accent:  5,
		Muted:   8,
		Error:   1,
	}
}
