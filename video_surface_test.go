// video_surface_test.go - Backing store allocation and descriptor behaviour

package main

import "testing"

func TestAlignUp(t *testing.T) {
	cases := []struct{ v, align, want int }{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 4, 8},
		{638, 4, 640},
		{640, 4, 640},
	}
	for _, c := range cases {
		if got := alignUp(c.v, c.align); got != c.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", c.v, c.align, got, c.want)
		}
	}
}

func TestAllocatePitchAndSize(t *testing.T) {
	store := &BackingStore{}
	if err := store.Allocate(638, 480, ColorDepthTrueColor32); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if store.Pitch() < store.Width() {
		t.Errorf("pitch %d < width %d", store.Pitch(), store.Width())
	}
	if store.Pitch()%SURFACE_PITCH_ALIGN != 0 {
		t.Errorf("pitch %d not aligned to %d pixels", store.Pitch(), SURFACE_PITCH_ALIGN)
	}
	want := store.Pitch() * store.Height() * BYTES_PER_PIXEL
	if len(store.Frame()) != want {
		t.Errorf("frame size = %d, want %d", len(store.Frame()), want)
	}
}

func TestAllocateFillsOpaqueBlack(t *testing.T) {
	store := &BackingStore{}
	if err := store.Allocate(8, 8, ColorDepthTrueColor32); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	frame := store.Frame()
	for i := 0; i < len(frame); i += BYTES_PER_PIXEL {
		if frame[i] != 0 || frame[i+1] != 0 || frame[i+2] != 0 || frame[i+3] != 0xFF {
			t.Fatalf("pixel at byte %d = % x, want 00 00 00 ff", i, frame[i:i+4])
		}
	}
}

func TestAllocateIndexedBufferByDepth(t *testing.T) {
	store := &BackingStore{}
	if err := store.Allocate(10, 5, ColorDepthIndexed8); err != nil {
		t.Fatalf("Allocate indexed: %v", err)
	}
	if got := len(store.Indexed()); got != 50 {
		t.Errorf("indexed buffer = %d bytes, want 50", got)
	}
	if err := store.Allocate(10, 5, ColorDepthTrueColor32); err != nil {
		t.Fatalf("Allocate truecolor: %v", err)
	}
	if store.Indexed() != nil {
		t.Errorf("truecolor store kept an indexed buffer")
	}
}

func TestAllocateRejectsBadArguments(t *testing.T) {
	store := &BackingStore{}
	if err := store.Allocate(0, 480, ColorDepthIndexed8); err == nil {
		t.Errorf("zero width accepted")
	}
	if err := store.Allocate(640, -1, ColorDepthIndexed8); err == nil {
		t.Errorf("negative height accepted")
	}
	if err := store.Allocate(640, 480, ColorDepth(99)); err == nil {
		t.Errorf("bogus depth accepted")
	}
}

func TestAllocateBumpsGeneration(t *testing.T) {
	store := &BackingStore{}
	if err := store.Allocate(4, 4, ColorDepthIndexed8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	gen := store.Generation()
	if err := store.Allocate(8, 8, ColorDepthIndexed8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if store.Generation() == gen {
		t.Errorf("generation unchanged across reallocation")
	}
}

func TestDescriptorByDepth(t *testing.T) {
	store := &BackingStore{}
	if err := store.Allocate(638, 4, ColorDepthIndexed8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	desc := store.Descriptor()
	if desc.Pitch != 638 {
		t.Errorf("indexed descriptor pitch = %d, want the width 638", desc.Pitch)
	}
	if &desc.Pixels[0] != &store.Indexed()[0] {
		t.Errorf("indexed descriptor does not alias the index buffer")
	}

	if err := store.Allocate(638, 4, ColorDepthTrueColor32); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	desc = store.Descriptor()
	if desc.Pitch != store.Pitch() {
		t.Errorf("truecolor descriptor pitch = %d, want %d", desc.Pitch, store.Pitch())
	}
	if &desc.Pixels[0] != &store.Frame()[0] {
		t.Errorf("truecolor descriptor does not alias the frame")
	}
}
