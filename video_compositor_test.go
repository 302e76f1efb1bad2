// video_compositor_test.go - Indexed-to-truecolor resolve correctness

package main

import "testing"

func newIndexedPipeline(t *testing.T, width, height int) (*BackingStore, *PaletteTable, *Compositor) {
	t.Helper()
	store := &BackingStore{}
	if err := store.Allocate(width, height, ColorDepthIndexed8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	palette := NewPaletteTable()
	return store, palette, NewCompositor(store, palette)
}

func TestResolveAppliesPalette(t *testing.T) {
	store, palette, comp := newIndexedPipeline(t, 4, 4)
	src := make([]uint8, PALETTE_SIZE*3)
	src[9*3+0] = 0x12
	src[9*3+1] = 0x34
	src[9*3+2] = 0x56
	palette.Update(src, 0, PALETTE_SIZE)

	store.Indexed()[2*4+1] = 9 // pixel (1,2)
	if err := comp.Resolve(store.FullRect()); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	o := (2*store.Pitch() + 1) * BYTES_PER_PIXEL
	frame := store.Frame()
	if frame[o] != 0x12 || frame[o+1] != 0x34 || frame[o+2] != 0x56 || frame[o+3] != 0xFF {
		t.Errorf("resolved pixel = % x, want 12 34 56 ff", frame[o:o+4])
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	store, palette, comp := newIndexedPipeline(t, 8, 8)
	src := make([]uint8, PALETTE_SIZE*3)
	for i := 0; i < PALETTE_SIZE; i++ {
		src[i*3] = uint8(i)
	}
	palette.Update(src, 0, PALETTE_SIZE)
	for i := range store.Indexed() {
		store.Indexed()[i] = uint8(i)
	}

	if err := comp.Resolve(store.FullRect()); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	first := make([]byte, len(store.Frame()))
	copy(first, store.Frame())

	if err := comp.Resolve(store.FullRect()); err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	for i := range first {
		if first[i] != store.Frame()[i] {
			t.Fatalf("frame byte %d changed on repeat resolve", i)
		}
	}
}

func TestResolveWritesOnlyInsideRect(t *testing.T) {
	store, palette, comp := newIndexedPipeline(t, 8, 8)
	src := make([]uint8, PALETTE_SIZE*3)
	src[1*3+0] = 0xFF
	palette.Update(src, 0, PALETTE_SIZE)
	for i := range store.Indexed() {
		store.Indexed()[i] = 1
	}

	r := DirtyRect{Left: 2, Top: 2, Right: 4, Bottom: 4}
	if err := comp.Resolve(r); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	frame := store.Frame()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			o := (y*store.Pitch() + x) * BYTES_PER_PIXEL
			inside := x >= 2 && x < 4 && y >= 2 && y < 4
			if inside && frame[o] != 0xFF {
				t.Fatalf("pixel (%d,%d) inside rect not resolved", x, y)
			}
			if !inside && frame[o] != 0 {
				t.Fatalf("pixel (%d,%d) outside rect was written", x, y)
			}
		}
	}
}

func TestResolveClampsRect(t *testing.T) {
	_, _, comp := newIndexedPipeline(t, 4, 4)
	if err := comp.Resolve(DirtyRect{Left: -5, Top: -5, Right: 50, Bottom: 50}); err != nil {
		t.Errorf("out-of-bounds rect not clamped: %v", err)
	}
}

func TestResolveRejectsTrueColorStore(t *testing.T) {
	store := &BackingStore{}
	if err := store.Allocate(4, 4, ColorDepthTrueColor32); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	comp := NewCompositor(store, NewPaletteTable())
	if err := comp.Resolve(store.FullRect()); err == nil {
		t.Errorf("Resolve on a truecolor store did not fail")
	}
}
