// video_palette_test.go - Palette table packing and range clamping

package main

import "testing"

func TestPaletteDefaultsOpaqueBlack(t *testing.T) {
	p := NewPaletteTable()
	for i := 0; i < PALETTE_SIZE; i++ {
		if p.Entry(i) != 0xFF000000 {
			t.Fatalf("entry %d = %08X, want FF000000", i, p.Entry(i))
		}
	}
}

func TestPaletteUpdatePacksARGB(t *testing.T) {
	p := NewPaletteTable()
	src := make([]uint8, PALETTE_SIZE*3)
	src[5*3+0] = 0xAB
	src[5*3+1] = 0xCD
	src[5*3+2] = 0xEF
	if n := p.Update(src, 5, 1); n != 1 {
		t.Fatalf("Update applied %d entries, want 1", n)
	}
	if got := p.Entry(5); got != 0xFFABCDEF {
		t.Errorf("entry 5 = %08X, want FFABCDEF", got)
	}
}

func TestPaletteUpdateTouchesOnlyRange(t *testing.T) {
	p := NewPaletteTable()
	src := make([]uint8, PALETTE_SIZE*3)
	for i := range src {
		src[i] = 0x7F
	}
	p.Update(src, 100, 10)
	for i := 0; i < PALETTE_SIZE; i++ {
		want := uint32(0xFF000000)
		if i >= 100 && i < 110 {
			want = 0xFF7F7F7F
		}
		if p.Entry(i) != want {
			t.Fatalf("entry %d = %08X, want %08X", i, p.Entry(i), want)
		}
	}
}

func TestPaletteUpdateClampsRange(t *testing.T) {
	p := NewPaletteTable()
	src := make([]uint8, PALETTE_SIZE*3)
	for i := range src {
		src[i] = 0x10
	}

	// Past the end of the table.
	if n := p.Update(src, 250, 20); n != 6 {
		t.Errorf("Update(250, 20) applied %d, want 6", n)
	}
	// Negative start.
	if n := p.Update(src, -4, 8); n != 4 {
		t.Errorf("Update(-4, 8) applied %d, want 4", n)
	}
	// Source shorter than the requested range.
	short := make([]uint8, 10*3)
	if n := p.Update(short, 0, 20); n != 10 {
		t.Errorf("short-source Update applied %d, want 10", n)
	}
	// Degenerate count.
	if n := p.Update(src, 0, 0); n != 0 {
		t.Errorf("Update(0, 0) applied %d, want 0", n)
	}
}

func TestPaletteEntryMasksIndex(t *testing.T) {
	p := NewPaletteTable()
	src := make([]uint8, PALETTE_SIZE*3)
	src[3*3] = 0xFF
	p.Update(src, 3, 1)
	if p.Entry(259) != p.Entry(3) {
		t.Errorf("Entry(259) = %08X, want Entry(3) = %08X", p.Entry(259), p.Entry(3))
	}
}
