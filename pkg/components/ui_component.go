package components

// UIState represents the current interaction state of a widget.
type UIState int

const (
	// UINormal indicates the pointer is outside the widget.
	UINormal UIState = iota
	// UIHovered indicates the pointer is hovering over the widget.
	UIHovered
	// UIClicked indicates the widget is being held down.
	UIClicked
)

// String returns a readable name for logging.
func (s UIState) String() string {
	switch s {
	case UINormal:
		return "normal"
	case UIHovered:
		return "hovered"
	case UIClicked:
		return "clicked"
	}
	return "unknown"
}
