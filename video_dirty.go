// video_dirty.go - Dirty rectangle tracker with full-surface overflow fallback

package main

// DirtyRect is an axis-aligned rectangle in backing-store pixel coordinates,
// half-open on the right and bottom edges: Left < Right, Top < Bottom.
type DirtyRect struct {
	Left, Top, Right, Bottom int
}

func (r DirtyRect) Width() int  { return r.Right - r.Left }
func (r DirtyRect) Height() int { return r.Bottom - r.Top }
func (r DirtyRect) Empty() bool { return r.Left >= r.Right || r.Top >= r.Bottom }

// DirtyTracker accumulates changed rectangles between presentations. The
// rectangle list is bounded; once the running count exceeds capacity the set
// collapses to a single full-surface rectangle. That fallback is a
// correctness requirement, not an optimisation: partial coverage after
// overflow would under-paint, and merging overlapping rectangles is not
// guaranteed to bring the count back under the cap.
type DirtyTracker struct {
	width, height int
	capacity      int
	rects         []DirtyRect
	count         int
}

// NewDirtyTracker creates a tracker bounded at capacity rectangles.
func NewDirtyTracker(capacity int) *DirtyTracker {
	if capacity < 1 {
		capacity = 1
	}
	return &DirtyTracker{
		capacity: capacity,
		rects:    make([]DirtyRect, 0, capacity),
	}
}

// Resize sets the surface bounds used for clipping and for the full-surface
// fallback, and discards any pending rectangles (the caller repaints in full
// after a reallocation anyway).
func (dt *DirtyTracker) Resize(width, height int) {
	dt.width = width
	dt.height = height
	dt.rects = dt.rects[:0]
	dt.count = 0
}

// MarkDirty records a changed rectangle. Rectangles are clipped to the
// surface; empty results are ignored. The running count keeps incrementing
// past capacity so overflow is detected even though the excess rectangles
// themselves are dropped.
func (dt *DirtyTracker) MarkDirty(left, top, width, height int) {
	r := DirtyRect{Left: left, Top: top, Right: left + width, Bottom: top + height}
	if r.Left < 0 {
		r.Left = 0
	}
	if r.Top < 0 {
		r.Top = 0
	}
	if r.Right > dt.width {
		r.Right = dt.width
	}
	if r.Bottom > dt.height {
		r.Bottom = dt.height
	}
	if r.Empty() {
		return
	}
	dt.count++
	if dt.count <= dt.capacity {
		dt.rects = append(dt.rects, r)
	}
}

// MarkAll collapses the pending set to a full-surface repaint.
func (dt *DirtyTracker) MarkAll() {
	dt.count = dt.capacity + 1
}

// Pending returns the running count of rectangles recorded since the last
// Take, including any dropped past capacity.
func (dt *DirtyTracker) Pending() int {
	return dt.count
}

// Take returns the accumulated rectangles in submission order, or a single
// full-surface rectangle if the running count overflowed capacity, and
// resets the tracker either way. It returns nil when nothing is pending.
func (dt *DirtyTracker) Take() []DirtyRect {
	defer func() {
		dt.rects = dt.rects[:0]
		dt.count = 0
	}()
	if dt.count == 0 {
		return nil
	}
	if dt.count > dt.capacity {
		return []DirtyRect{{Left: 0, Top: 0, Right: dt.width, Bottom: dt.height}}
	}
	out := make([]DirtyRect, len(dt.rects))
	copy(out, dt.rects)
	return out
}
