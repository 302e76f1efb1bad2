// video_dirty_test.go - Dirty tracker ordering, clipping and overflow

package main

import "testing"

func TestDirtyTakePreservesOrder(t *testing.T) {
	dt := NewDirtyTracker(DIRTY_RECT_CAPACITY)
	dt.Resize(100, 100)
	dt.MarkDirty(10, 10, 5, 5)
	dt.MarkDirty(20, 20, 5, 5)
	dt.MarkDirty(30, 30, 5, 5)

	rects := dt.Take()
	if len(rects) != 3 {
		t.Fatalf("got %d rects, want 3", len(rects))
	}
	for i, left := range []int{10, 20, 30} {
		if rects[i].Left != left {
			t.Errorf("rect %d Left = %d, want %d", i, rects[i].Left, left)
		}
	}
}

func TestDirtyTakeResets(t *testing.T) {
	dt := NewDirtyTracker(DIRTY_RECT_CAPACITY)
	dt.Resize(100, 100)
	dt.MarkDirty(0, 0, 10, 10)
	if dt.Take() == nil {
		t.Fatalf("first Take returned nil")
	}
	if dt.Pending() != 0 {
		t.Errorf("Pending = %d after Take, want 0", dt.Pending())
	}
	if rects := dt.Take(); rects != nil {
		t.Errorf("second Take returned %d rects, want nil", len(rects))
	}
}

func TestDirtyOverflowCollapsesToFullSurface(t *testing.T) {
	dt := NewDirtyTracker(4)
	dt.Resize(64, 32)
	for i := 0; i < 10; i++ {
		dt.MarkDirty(i, i, 2, 2)
	}
	if dt.Pending() != 10 {
		t.Errorf("Pending = %d, want the running count 10", dt.Pending())
	}
	rects := dt.Take()
	if len(rects) != 1 {
		t.Fatalf("overflow produced %d rects, want 1", len(rects))
	}
	want := DirtyRect{Left: 0, Top: 0, Right: 64, Bottom: 32}
	if rects[0] != want {
		t.Errorf("overflow rect = %+v, want %+v", rects[0], want)
	}
}

func TestDirtyMarkAll(t *testing.T) {
	dt := NewDirtyTracker(DIRTY_RECT_CAPACITY)
	dt.Resize(320, 200)
	dt.MarkDirty(5, 5, 1, 1)
	dt.MarkAll()
	rects := dt.Take()
	if len(rects) != 1 || rects[0] != (DirtyRect{Right: 320, Bottom: 200}) {
		t.Errorf("MarkAll produced %+v", rects)
	}
}

func TestDirtyClipsToSurface(t *testing.T) {
	dt := NewDirtyTracker(DIRTY_RECT_CAPACITY)
	dt.Resize(100, 100)
	dt.MarkDirty(-10, -10, 30, 30)
	dt.MarkDirty(90, 90, 50, 50)

	rects := dt.Take()
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(rects))
	}
	if rects[0] != (DirtyRect{Left: 0, Top: 0, Right: 20, Bottom: 20}) {
		t.Errorf("clipped rect 0 = %+v", rects[0])
	}
	if rects[1] != (DirtyRect{Left: 90, Top: 90, Right: 100, Bottom: 100}) {
		t.Errorf("clipped rect 1 = %+v", rects[1])
	}
}

func TestDirtyIgnoresEmptyRects(t *testing.T) {
	dt := NewDirtyTracker(DIRTY_RECT_CAPACITY)
	dt.Resize(100, 100)
	dt.MarkDirty(10, 10, 0, 5)
	dt.MarkDirty(10, 10, 5, 0)
	dt.MarkDirty(200, 200, 10, 10) // fully outside
	if dt.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", dt.Pending())
	}
}

func TestDirtyResizeDiscardsPending(t *testing.T) {
	dt := NewDirtyTracker(DIRTY_RECT_CAPACITY)
	dt.Resize(100, 100)
	dt.MarkDirty(0, 0, 10, 10)
	dt.Resize(50, 50)
	if dt.Pending() != 0 {
		t.Errorf("Pending = %d after Resize, want 0", dt.Pending())
	}
}
