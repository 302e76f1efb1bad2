// video_surface.go - Backing store owning the off-screen pixel memory

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

// SurfaceDescriptor hands the simulation layer a window into the active
// drawing surface: the indexed buffer in 8-bit mode, the true-colour frame
// otherwise. Pitch is the row stride in pixels of Pixels. The descriptor is
// invalidated by the next Allocate; callers must re-fetch it after any
// resolution or depth change.
type SurfaceDescriptor struct {
	Width  int
	Height int
	Pitch  int
	Depth  ColorDepth
	Pixels []byte
}

// BackingStore owns the resident pixel memory the presenter reads from: a
// pitch*height*4-byte true-colour frame, plus a width*height indexed buffer
// when running at 8-bit depth. Both are reallocated, never resized in place,
// on every resolution change.
type BackingStore struct {
	width  int
	height int
	pitch  int // row stride of the true-colour frame, in pixels
	depth  ColorDepth

	frame   []byte // RGBA, pitch*height*4 bytes
	indexed []byte // width*height palette indices, nil unless Indexed8

	// generation increments on every Allocate so the compositor and
	// presenter can detect that their bindings went stale.
	generation uint64
}

func alignUp(v, align int) int {
	return (v + align - 1) &^ (align - 1)
}

// Allocate releases any previous buffers and allocates fresh ones for the
// given resolution and depth. The true-colour frame is filled with opaque
// black; the indexed buffer (8-bit mode only) is zero-filled. The old
// buffers are dropped before the new ones are published, so stale
// descriptors never alias live memory.
func (bs *BackingStore) Allocate(width, height int, depth ColorDepth) error {
	if width < 1 || height < 1 {
		return &VideoError{
			Operation: "allocate",
			Details:   fmt.Sprintf("invalid resolution %dx%d", width, height),
		}
	}
	if depth != ColorDepthIndexed8 && depth != ColorDepthTrueColor32 {
		return &VideoError{
			Operation: "allocate",
			Details:   fmt.Sprintf("unsupported color depth %d", depth),
		}
	}

	// Release before reallocating; nothing may dereference the old frame
	// once a new allocation has begun.
	bs.frame = nil
	bs.indexed = nil

	pitch := alignUp(width, SURFACE_PITCH_ALIGN)
	frame := make([]byte, pitch*height*BYTES_PER_PIXEL)
	for i := 3; i < len(frame); i += BYTES_PER_PIXEL {
		frame[i] = 0xFF // opaque black
	}

	bs.width = width
	bs.height = height
	bs.pitch = pitch
	bs.depth = depth
	bs.frame = frame
	if depth == ColorDepthIndexed8 {
		bs.indexed = make([]byte, width*height)
	}
	bs.generation++
	return nil
}

func (bs *BackingStore) Width() int        { return bs.width }
func (bs *BackingStore) Height() int       { return bs.height }
func (bs *BackingStore) Pitch() int        { return bs.pitch }
func (bs *BackingStore) Depth() ColorDepth { return bs.depth }

// Frame returns the true-colour output frame the presenter reads.
func (bs *BackingStore) Frame() []byte { return bs.frame }

// Indexed returns the 8-bit index buffer, nil outside Indexed8 mode.
func (bs *BackingStore) Indexed() []byte { return bs.indexed }

// Generation identifies the current allocation; it changes whenever the
// buffers are replaced.
func (bs *BackingStore) Generation() uint64 { return bs.generation }

// FullRect is the rectangle covering the whole surface.
func (bs *BackingStore) FullRect() DirtyRect {
	return DirtyRect{Left: 0, Top: 0, Right: bs.width, Bottom: bs.height}
}

// Descriptor returns the drawing surface the simulation writes into.
func (bs *BackingStore) Descriptor() SurfaceDescriptor {
	if bs.depth == ColorDepthIndexed8 {
		return SurfaceDescriptor{
			Width:  bs.width,
			Height: bs.height,
			Pitch:  bs.width,
			Depth:  bs.depth,
			Pixels: bs.indexed,
		}
	}
	return SurfaceDescriptor{
		Width:  bs.width,
		Height: bs.height,
		Pitch:  bs.pitch,
		Depth:  bs.depth,
		Pixels: bs.frame,
	}
}

// clamp restricts r to the surface bounds.
func (bs *BackingStore) clamp(r DirtyRect) DirtyRect {
	if r.Left < 0 {
		r.Left = 0
	}
	if r.Top < 0 {
		r.Top = 0
	}
	if r.Right > bs.width {
		r.Right = bs.width
	}
	if r.Bottom > bs.height {
		r.Bottom = bs.height
	}
	return r
}
