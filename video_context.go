// video_context.go - Owned video subsystem context (store, palette, tracker, presenter)

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

// VideoContext is the single owned context object for the video subsystem:
// backing store, palette table, dirty tracker, compositor and presenter,
// bound to one display surface. It replaces ambient driver globals with a
// single-writer lifecycle: created at startup, owned by the tick scheduler's
// thread, destroyed at shutdown. Nothing here is safe for concurrent use.
type VideoContext struct {
	surface    DisplaySurface
	store      *BackingStore
	palette    *PaletteTable
	dirty      *DirtyTracker
	compositor *Compositor
	presenter  *FramePresenter
}

// NewVideoContext allocates the backing store at the requested resolution
// and depth and binds the presentation pipeline to the surface. The
// resolution must not exceed the bounding display surface; allocation
// failure here is fatal to the caller.
func NewVideoContext(surface DisplaySurface, width, height int, depth ColorDepth) (*VideoContext, error) {
	if !fitsDisplay(surface, width, height) {
		return nil, &VideoError{
			Operation: "context creation",
			Details:   fmt.Sprintf("resolution %dx%d exceeds the bounding display surface", width, height),
		}
	}

	vc := &VideoContext{
		surface: surface,
		store:   &BackingStore{},
		palette: NewPaletteTable(),
		dirty:   NewDirtyTracker(DIRTY_RECT_CAPACITY),
	}
	vc.compositor = NewCompositor(vc.store, vc.palette)
	vc.presenter = NewFramePresenter(surface, vc.store, vc.compositor)

	if err := surface.SetDisplayConfig(DisplayConfig{
		Width:  width,
		Height: height,
		Scale:  1,
		VSync:  true,
	}); err != nil {
		return nil, &VideoError{Operation: "context creation", Details: "display configuration rejected", Err: err}
	}
	if err := vc.store.Allocate(width, height, depth); err != nil {
		return nil, err
	}
	vc.dirty.Resize(width, height)
	vc.dirty.MarkAll()
	return vc, nil
}

// fitsDisplay reports whether the resolution fits inside the largest mode
// the surface offers. A surface reporting no modes places no bound.
func fitsDisplay(surface DisplaySurface, width, height int) bool {
	modes := surface.ListModes()
	if len(modes) == 0 {
		return width >= 1 && height >= 1
	}
	max := modes[len(modes)-1]
	return width >= 1 && height >= 1 && width <= max.Width && height <= max.Height
}

// Start brings up the display surface.
func (vc *VideoContext) Start() error {
	return vc.surface.Start()
}

// Close tears down the display surface.
func (vc *VideoContext) Close() error {
	return vc.surface.Close()
}

// MarkDirty records a changed region of the draw surface; the simulation
// calls this whenever it writes pixels.
func (vc *VideoContext) MarkDirty(left, top, width, height int) {
	vc.dirty.MarkDirty(left, top, width, height)
}

// MarkAllDirty schedules a full-surface repaint.
func (vc *VideoContext) MarkAllDirty() {
	vc.dirty.MarkAll()
}

// DrawSurface returns the descriptor the simulation writes pixels through.
func (vc *VideoContext) DrawSurface() SurfaceDescriptor {
	return vc.store.Descriptor()
}

// ColorDepth returns the active colour depth.
func (vc *VideoContext) ColorDepth() ColorDepth {
	return vc.store.Depth()
}

// Resolution returns the current backing-store resolution.
func (vc *VideoContext) Resolution() Resolution {
	return Resolution{Width: vc.store.Width(), Height: vc.store.Height()}
}

// UpdatePalette pulls count entries starting at first from the authoritative
// simulation palette and re-tags the whole surface dirty. A palette change
// affects every pixel whose index falls in the range; the full-surface
// re-tag is deliberately conservative. Returns the entries applied after
// clamping.
func (vc *VideoContext) UpdatePalette(src []uint8, first, count int) int {
	applied := vc.palette.Update(src, first, count)
	if applied > 0 {
		vc.dirty.MarkAll()
	}
	return applied
}

// SupportedResolutions lists the resolutions the surface can switch to.
func (vc *VideoContext) SupportedResolutions() []Resolution {
	return vc.surface.ListModes()
}

// ChangeResolution switches the window resolution, reallocating the backing
// store. It returns false, leaving all buffers in their prior valid state,
// when the resolution is unsupported or the surface rejects it.
func (vc *VideoContext) ChangeResolution(width, height int) bool {
	supported := false
	for _, m := range vc.surface.ListModes() {
		if m.Width == width && m.Height == height {
			supported = true
			break
		}
	}
	if !supported {
		return false
	}

	cfg := vc.surface.GetDisplayConfig()
	cfg.Width = width
	cfg.Height = height
	if err := vc.surface.SetDisplayConfig(cfg); err != nil {
		return false
	}
	// The surface accepted the mode; from here an allocation failure is
	// fatal and must unwind through the scheduler's shutdown path.
	if err := vc.store.Allocate(width, height, vc.store.Depth()); err != nil {
		fmt.Printf("VideoContext: fatal: %v\n", err)
		return false
	}
	vc.dirty.Resize(width, height)
	vc.dirty.MarkAll()
	return true
}

// handleResized reallocates the backing store after an external resize
// notification. It must complete before the next Present on the same buffer.
func (vc *VideoContext) handleResized(width, height int) error {
	if width < 1 || height < 1 {
		return nil
	}
	if width == vc.store.Width() && height == vc.store.Height() {
		return nil
	}
	cfg := vc.surface.GetDisplayConfig()
	cfg.Width = width
	cfg.Height = height
	if err := vc.surface.SetDisplayConfig(cfg); err != nil {
		return &VideoError{Operation: "resize", Details: "display configuration rejected", Err: err}
	}
	if err := vc.store.Allocate(width, height, vc.store.Depth()); err != nil {
		return err
	}
	vc.dirty.Resize(width, height)
	vc.dirty.MarkAll()
	return nil
}

// ToggleFullscreen asks the surface to enter or leave fullscreen. A surface
// that cannot satisfy the request reports false and every buffer stays in
// its prior valid state.
func (vc *VideoContext) ToggleFullscreen(enable bool) bool {
	cfg := vc.surface.GetDisplayConfig()
	if cfg.Fullscreen == enable {
		return true
	}
	cfg.Fullscreen = enable
	if err := vc.surface.SetDisplayConfig(cfg); err != nil {
		return false
	}
	vc.dirty.MarkAll()
	return true
}

// Fullscreen reports the surface's current fullscreen state.
func (vc *VideoContext) Fullscreen() bool {
	return vc.surface.GetDisplayConfig().Fullscreen
}

// Present takes the accumulated dirty rectangles and pushes them to the
// surface. While the surface is invisible the rectangles keep accumulating
// instead of being consumed, so nothing is under-painted when visibility
// returns. The dirty set resets only on a presentation that actually ran.
func (vc *VideoContext) Present(force bool) error {
	if !vc.surface.IsVisible() {
		return nil
	}
	rects := vc.dirty.Take()
	if len(rects) == 0 {
		return nil
	}
	return vc.presenter.Present(rects, force)
}
