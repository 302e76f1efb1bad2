// video_compositor.go - Indexed-to-true-colour compositor

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

/*
video_compositor.go - Indexed-to-True-Colour Compositor

In 8-bit mode the simulation writes palette indices; this module is the only
path by which those indices become visible pixels. It must run strictly
before the presenter reads the affected rectangle.

Signal Flow:
1. Simulation writes indices into the backing store's indexed buffer
2. Dirty tracker records the touched rectangles
3. Resolve(rect) blits rect through the palette into the true-colour frame
4. Frame presenter pushes the resolved rectangle to the display surface

In true-colour mode the simulation writes RGBA pixels directly and Resolve
must not be invoked at all.
*/

package main

// Compositor resolves indexed pixels through the palette table into the
// backing store's true-colour frame.
type Compositor struct {
	store   *BackingStore
	palette *PaletteTable
}

// NewCompositor binds a compositor to a backing store and palette.
func NewCompositor(store *BackingStore, palette *PaletteTable) *Compositor {
	return &Compositor{store: store, palette: palette}
}

// Resolve writes palette[indexed[y*width+x]] into the true-colour frame for
// every pixel of r, clamped to the surface. Repeated calls with no
// intervening writes are idempotent. Calling it outside Indexed8 mode is a
// contract violation and reports an error rather than corrupting the frame.
func (c *Compositor) Resolve(r DirtyRect) error {
	if c.store.Depth() != ColorDepthIndexed8 {
		return &VideoError{
			Operation: "resolve",
			Details:   "compositor invoked outside indexed-colour mode",
		}
	}

	r = c.store.clamp(r)
	if r.Empty() {
		return nil
	}

	width := c.store.Width()
	pitch := c.store.Pitch()
	indexed := c.store.Indexed()
	frame := c.store.Frame()

	for y := r.Top; y < r.Bottom; y++ {
		srcRow := y * width
		dstRow := y * pitch * BYTES_PER_PIXEL
		for x := r.Left; x < r.Right; x++ {
			argb := c.palette.Entry(int(indexed[srcRow+x]))
			o := dstRow + x*BYTES_PER_PIXEL
			frame[o+0] = byte(argb >> 16) // R
			frame[o+1] = byte(argb >> 8)  // G
			frame[o+2] = byte(argb)       // B
			frame[o+3] = 0xFF
		}
	}
	return nil
}
