// video_constants.go - Presentation core constants and supported display modes

package main

const (
	// Bytes per pixel of the true-colour output frame (RGBA).
	BYTES_PER_PIXEL = 4

	// Rows of the true-colour frame are padded to a 16-byte boundary for
	// the presentation layer, so the pitch is aligned to 4 pixels.
	SURFACE_PITCH_ALIGN = 4

	// Hardware/software palette size in indexed-colour mode.
	PALETTE_SIZE = 256

	// Dirty rectangles tracked between presentations before the tracker
	// falls back to a full-surface repaint.
	DIRTY_RECT_CAPACITY = 32

	// Fixed simulation cadence in milliseconds.
	DEFAULT_TICK_MS = 30

	// Default window resolution at startup.
	DEFAULT_WIDTH  = 640
	DEFAULT_HEIGHT = 480
)

// ColorDepth selects which backing buffer exists and whether the compositor
// runs. In Indexed8 mode the simulation writes 8-bit palette indices and the
// compositor resolves them through the palette table; in TrueColor32 mode the
// simulation writes RGBA pixels directly and the compositor must not run.
type ColorDepth int

const (
	ColorDepthIndexed8 ColorDepth = iota
	ColorDepthTrueColor32
)

func (d ColorDepth) String() string {
	switch d {
	case ColorDepthIndexed8:
		return "indexed-8"
	case ColorDepthTrueColor32:
		return "truecolor-32"
	}
	return "unknown"
}

// SupportedModes lists the window resolutions the client offers, smallest
// first. The display backend filters this against the monitor size so a
// window never exceeds the bounding display surface.
var SupportedModes = []Resolution{
	{Width: 320, Height: 200},
	{Width: 320, Height: 240},
	{Width: 640, Height: 400},
	{Width: 640, Height: 480},
	{Width: 800, Height: 600},
	{Width: 1024, Height: 768},
	{Width: 1280, Height: 720},
	{Width: 1366, Height: 768},
	{Width: 1920, Height: 1080},
}
