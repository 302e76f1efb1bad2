// video_events.go - Input and window events delivered through the scheduler's drain step

package main

// EventKind discriminates the events a display surface can deliver. Window
// lifecycle notifications (resize, visibility, fullscreen, close) travel the
// same queue as input so the main loop stays single-threaded and
// non-blocking.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseMove
	EventMouseButton
	EventText
	EventResize
	EventVisibility
	EventFullscreen
	EventCloseRequested
)

// Translated key codes for the non-printable keys the client reacts to.
// Printable input arrives as EventText runes instead.
const (
	KeyUnknown = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// InputEvent is a decoded, discrete event from the windowing layer. Only the
// fields relevant to Kind are populated.
type InputEvent struct {
	Kind EventKind

	Key     int  // EventKeyDown/EventKeyUp: backend key code
	Rune    rune // EventText: decoded character
	X, Y    int  // EventMouseMove/EventMouseButton: surface coordinates
	Button  int  // EventMouseButton
	Pressed bool // EventMouseButton

	Width, Height int  // EventResize
	Visible       bool // EventVisibility
	Fullscreen    bool // EventFullscreen
}

// ModifierState is the current modifier-key snapshot, queried once per loop
// iteration. Holding Shift outside menus and networked sessions engages
// fast-forward.
type ModifierState struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}
