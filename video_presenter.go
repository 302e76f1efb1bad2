// video_presenter.go - Frame presenter pushing dirty rectangles to the display surface

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

// FramePresenter pushes the backing store's dirty rectangles to the display
// surface. In indexed mode it runs the compositor over each rectangle first,
// so the surface never reads unresolved indices.
type FramePresenter struct {
	surface    DisplaySurface
	store      *BackingStore
	compositor *Compositor

	// boundGen is the backing-store generation the scratch buffer was
	// sized for; a mismatch means the store was reallocated underneath
	// us and we must rebind before touching it.
	boundGen uint64
	scratch  []byte
}

// NewFramePresenter binds a presenter to a surface, store and compositor.
func NewFramePresenter(surface DisplaySurface, store *BackingStore, compositor *Compositor) *FramePresenter {
	return &FramePresenter{
		surface:    surface,
		store:      store,
		compositor: compositor,
	}
}

func (fp *FramePresenter) rebind() {
	fp.scratch = make([]byte, fp.store.Width()*fp.store.Height()*BYTES_PER_PIXEL)
	fp.boundGen = fp.store.Generation()
}

// Present pushes each dirty rectangle to the display surface, resolving
// indexed pixels first, then flushes. With forceNow it blocks until the
// surface has redrawn; otherwise presentation is deferred to the surface's
// own refresh cycle. Zero rectangles or an invisible surface is a no-op.
func (fp *FramePresenter) Present(rects []DirtyRect, forceNow bool) error {
	if len(rects) == 0 || !fp.surface.IsVisible() {
		return nil
	}
	if fp.boundGen != fp.store.Generation() {
		fp.rebind()
	}

	flip := fp.surface.OriginBottomLeft()
	pitch := fp.store.Pitch()
	frame := fp.store.Frame()
	indexed := fp.store.Depth() == ColorDepthIndexed8

	for _, r := range rects {
		r = fp.store.clamp(r)
		if r.Empty() {
			continue
		}
		if indexed {
			if err := fp.compositor.Resolve(r); err != nil {
				return err
			}
		}

		w := r.Width()
		h := r.Height()
		rowBytes := w * BYTES_PER_PIXEL
		for y := 0; y < h; y++ {
			srcY := r.Top + y
			dstY := y
			if flip {
				dstY = h - 1 - y
			}
			src := (srcY*pitch + r.Left) * BYTES_PER_PIXEL
			copy(fp.scratch[dstY*rowBytes:(dstY+1)*rowBytes], frame[src:src+rowBytes])
		}

		top := r.Top
		if flip {
			top = fp.store.Height() - r.Bottom
		}
		if err := fp.surface.UpdateRegion(r.Left, top, w, h, fp.scratch[:h*rowBytes]); err != nil {
			return &VideoError{Operation: "present", Details: "region update rejected", Err: err}
		}
	}

	return fp.surface.Flush(forceNow)
}
