// video_interface.go - Display surface and collaborator contracts for VideoCore

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/VideoCore
License: GPLv3 or later
*/

package main

import "fmt"

// VideoError provides detailed error context for video operations
type VideoError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Operation, e.Details)
}

func (e *VideoError) Unwrap() error {
	return e.Err
}

// Resolution is a window resolution in pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// DisplayConfig contains hardware-independent configuration
type DisplayConfig struct {
	Width       int
	Height      int
	Scale       int // Integer scaling factor for output
	RefreshRate int // Target refresh rate in Hz
	Fullscreen  bool
	VSync       bool // Whether to sync frame updates to display refresh
}

// DisplaySurface is the minimal contract a display backend must implement.
// The presentation loop never blocks on it except inside a forced Flush,
// which the backend must keep time-bounded.
type DisplaySurface interface {
	// Lifecycle management
	Start() error
	Stop() error
	Close() error
	IsStarted() bool

	SetDisplayConfig(config DisplayConfig) error
	GetDisplayConfig() DisplayConfig

	// UpdateRegion pushes tightly-packed RGBA pixels for one changed
	// rectangle. Flush(true) blocks until the surface has redrawn;
	// Flush(false) defers to the surface's own refresh cycle.
	UpdateRegion(x, y, width, height int, pixels []byte) error
	Flush(force bool) error

	// IsVisible reports whether presenting would reach the user at all
	// (false while minimized or occluded). OriginBottomLeft reports
	// whether the surface's coordinate origin differs from the backing
	// store's top-left, in which case the presenter flips rows.
	IsVisible() bool
	OriginBottomLeft() bool

	// PollEvents drains all pending events without blocking; it returns
	// nil when none are pending. ModifierState is the live modifier-key
	// snapshot.
	PollEvents() []InputEvent
	ModifierState() ModifierState

	// ListModes returns the supported window resolutions in ascending
	// order, none exceeding the bounding monitor size.
	ListModes() []Resolution
}

// Simulation is the game-state collaborator. It writes pixels through the
// draw-surface descriptor and reports palette changes; it never touches the
// presentation state directly.
type Simulation interface {
	StepSimulation()
	HandleControlStateChanged(mods ModifierState)
	UpdateOverlays(vc *VideoContext)

	ColorDepth() ColorDepth
	// Palette returns the authoritative palette as 256 RGB byte triples.
	Palette() []uint8
	// TakePaletteDirty reports and clears the pending dirty palette range.
	TakePaletteDirty() (first, count int, dirty bool)

	Paused() bool
	Networked() bool
	InMenu() bool
}

// InputHandler receives the decoded input events the scheduler does not
// consume structurally.
type InputHandler interface {
	HandleEvent(ev InputEvent)
}

// Predefined video backend types
const (
	VIDEO_BACKEND_EBITEN = iota // Pure Go Ebiten backend (headless under the headless build tag)
)

// NewDisplaySurface creates a new display surface using the specified backend
func NewDisplaySurface(backend int) (DisplaySurface, error) {
	switch backend {
	case VIDEO_BACKEND_EBITEN:
		return NewEbitenSurface()
	}
	return nil, &VideoError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %d", backend),
	}
}
