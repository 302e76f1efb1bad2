// video_context_test.go - Context lifecycle, resolution and palette plumbing

package main

import (
	"errors"
	"testing"
)

func newTestContext(t *testing.T, surface DisplaySurface, width, height int, depth ColorDepth) *VideoContext {
	t.Helper()
	ctx, err := NewVideoContext(surface, width, height, depth)
	if err != nil {
		t.Fatalf("NewVideoContext: %v", err)
	}
	return ctx
}

func TestNewContextRejectsOversizedResolution(t *testing.T) {
	surface := newStubSurface()
	surface.modes = []Resolution{{Width: 640, Height: 480}}
	if _, err := NewVideoContext(surface, 1920, 1080, ColorDepthIndexed8); err == nil {
		t.Fatalf("resolution beyond the display surface accepted")
	}
}

func TestNewContextStartsFullyDirty(t *testing.T) {
	surface := newStubSurface()
	ctx := newTestContext(t, surface, 320, 200, ColorDepthIndexed8)
	if ctx.dirty.Pending() == 0 {
		t.Errorf("fresh context has no pending repaint")
	}
	if err := ctx.Present(false); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if len(surface.regions) != 1 {
		t.Fatalf("initial present uploaded %d regions, want 1", len(surface.regions))
	}
	reg := surface.regions[0]
	if reg.w != 320 || reg.h != 200 {
		t.Errorf("initial region = %dx%d, want 320x200", reg.w, reg.h)
	}
}

func TestChangeResolution(t *testing.T) {
	surface := newStubSurface()
	ctx := newTestContext(t, surface, 640, 480, ColorDepthIndexed8)

	if !ctx.ChangeResolution(800, 600) {
		t.Fatalf("supported resolution rejected")
	}
	if got := ctx.Resolution(); got.Width != 800 || got.Height != 600 {
		t.Errorf("Resolution = %v, want 800x600", got)
	}
	if len(ctx.DrawSurface().Pixels) != 800*600 {
		t.Errorf("indexed buffer not reallocated for the new mode")
	}
	if ctx.dirty.Pending() == 0 {
		t.Errorf("mode switch did not schedule a full repaint")
	}
}

func TestChangeResolutionRejectsUnsupportedMode(t *testing.T) {
	surface := newStubSurface()
	ctx := newTestContext(t, surface, 640, 480, ColorDepthIndexed8)

	if ctx.ChangeResolution(641, 481) {
		t.Fatalf("unsupported resolution accepted")
	}
	if got := ctx.Resolution(); got.Width != 640 || got.Height != 480 {
		t.Errorf("failed switch changed the resolution to %v", got)
	}
}

func TestChangeResolutionSurfaceRejection(t *testing.T) {
	surface := newStubSurface()
	ctx := newTestContext(t, surface, 640, 480, ColorDepthIndexed8)

	surface.configErr = errors.New("mode set failed")
	if ctx.ChangeResolution(800, 600) {
		t.Fatalf("switch reported success despite surface rejection")
	}
	if got := ctx.Resolution(); got.Width != 640 || got.Height != 480 {
		t.Errorf("failed switch left resolution at %v", got)
	}
	if len(ctx.DrawSurface().Pixels) != 640*480 {
		t.Errorf("failed switch reallocated the backing store")
	}
}

func TestToggleFullscreen(t *testing.T) {
	surface := newStubSurface()
	ctx := newTestContext(t, surface, 640, 480, ColorDepthIndexed8)
	ctx.dirty.Take() // drain the initial repaint

	if !ctx.ToggleFullscreen(true) {
		t.Fatalf("fullscreen request failed")
	}
	if !ctx.Fullscreen() {
		t.Errorf("Fullscreen() false after successful toggle")
	}
	if ctx.dirty.Pending() == 0 {
		t.Errorf("fullscreen switch did not schedule a repaint")
	}

	// Toggling to the current state is a no-op success.
	ctx.dirty.Take()
	if !ctx.ToggleFullscreen(true) {
		t.Errorf("no-op toggle reported failure")
	}
	if ctx.dirty.Pending() != 0 {
		t.Errorf("no-op toggle scheduled a repaint")
	}
}

func TestToggleFullscreenFailureLeavesState(t *testing.T) {
	surface := newStubSurface()
	ctx := newTestContext(t, surface, 640, 480, ColorDepthIndexed8)
	ctx.dirty.Take()

	surface.configErr = errors.New("no fullscreen here")
	if ctx.ToggleFullscreen(true) {
		t.Fatalf("toggle reported success despite surface rejection")
	}
	if ctx.Fullscreen() {
		t.Errorf("failed toggle flipped the fullscreen flag")
	}
	if ctx.dirty.Pending() != 0 {
		t.Errorf("failed toggle scheduled a repaint")
	}
}

func TestUpdatePaletteDirtiesWholeSurface(t *testing.T) {
	surface := newStubSurface()
	ctx := newTestContext(t, surface, 320, 200, ColorDepthIndexed8)
	ctx.dirty.Take()

	src := make([]uint8, PALETTE_SIZE*3)
	if n := ctx.UpdatePalette(src, 16, 8); n != 8 {
		t.Fatalf("UpdatePalette applied %d, want 8", n)
	}
	rects := ctx.dirty.Take()
	if len(rects) != 1 || rects[0] != (DirtyRect{Right: 320, Bottom: 200}) {
		t.Errorf("palette update dirtied %+v, want the full surface", rects)
	}
}

func TestUpdatePaletteNoOpLeavesDirtyAlone(t *testing.T) {
	surface := newStubSurface()
	ctx := newTestContext(t, surface, 320, 200, ColorDepthIndexed8)
	ctx.dirty.Take()

	if n := ctx.UpdatePalette(nil, 0, 16); n != 0 {
		t.Fatalf("empty-source UpdatePalette applied %d", n)
	}
	if ctx.dirty.Pending() != 0 {
		t.Errorf("no-op palette update dirtied the surface")
	}
}

func TestPresentWhileInvisiblePreservesRects(t *testing.T) {
	surface := newStubSurface()
	ctx := newTestContext(t, surface, 320, 200, ColorDepthIndexed8)
	ctx.dirty.Take()
	ctx.MarkDirty(10, 10, 20, 20)

	surface.visible = false
	if err := ctx.Present(false); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if ctx.dirty.Pending() == 0 {
		t.Fatalf("invisible present consumed the dirty set")
	}

	surface.visible = true
	if err := ctx.Present(false); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if len(surface.regions) != 1 {
		t.Fatalf("visible present uploaded %d regions, want 1", len(surface.regions))
	}
	if ctx.dirty.Pending() != 0 {
		t.Errorf("completed present left the dirty set populated")
	}
}

func TestHandleResizedReallocates(t *testing.T) {
	surface := newStubSurface()
	ctx := newTestContext(t, surface, 640, 480, ColorDepthIndexed8)

	if err := ctx.handleResized(320, 240); err != nil {
		t.Fatalf("handleResized: %v", err)
	}
	if got := ctx.Resolution(); got.Width != 320 || got.Height != 240 {
		t.Errorf("Resolution = %v after resize, want 320x240", got)
	}
	cfg := surface.GetDisplayConfig()
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("surface config = %dx%d, want 320x240", cfg.Width, cfg.Height)
	}

	// Same-size and degenerate notifications are no-ops.
	gen := ctx.store.Generation()
	if err := ctx.handleResized(320, 240); err != nil {
		t.Fatalf("handleResized same size: %v", err)
	}
	if err := ctx.handleResized(0, -3); err != nil {
		t.Fatalf("handleResized degenerate: %v", err)
	}
	if ctx.store.Generation() != gen {
		t.Errorf("no-op resize reallocated the backing store")
	}
}
