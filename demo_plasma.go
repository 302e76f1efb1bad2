// demo_plasma.go - 32-bit truecolor plasma demo, no palette involved

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

import "math"

// PlasmaDemo renders interference-pattern plasma straight into the 32-bit
// frame buffer, bypassing the palette path entirely. It exists to exercise
// the truecolor branch of the presenter where no indexed resolve happens.
type PlasmaDemo struct {
	ctx    *VideoContext
	phase  float64
	paused bool
	onQuit func()

	// Precomputed sine table keeps the per-pixel loop at integer cost.
	sine [256]float64
}

func NewPlasmaDemo() *PlasmaDemo {
	d := &PlasmaDemo{}
	for i := range d.sine {
		d.sine[i] = math.Sin(float64(i) * 2 * math.Pi / 256)
	}
	return d
}

func (d *PlasmaDemo) Attach(ctx *VideoContext) {
	d.ctx = ctx
}

func (d *PlasmaDemo) OnQuit(fn func()) {
	d.onQuit = fn
}

func (d *PlasmaDemo) sin(v float64) float64 {
	idx := int(v*256/(2*math.Pi)) & 0xFF
	return d.sine[idx]
}

func (d *PlasmaDemo) StepSimulation() {
	if d.paused {
		return
	}
	desc := d.ctx.DrawSurface()
	d.phase += 0.07

	for y := 0; y < desc.Height; y++ {
		row := y * desc.Pitch * BYTES_PER_PIXEL
		fy := float64(y)
		for x := 0; x < desc.Width; x++ {
			fx := float64(x)
			v := d.sin(fx*0.04+d.phase) +
				d.sin(fy*0.03-d.phase) +
				d.sin((fx+fy)*0.02+d.phase*0.5)
			o := row + x*BYTES_PER_PIXEL
			desc.Pixels[o+0] = uint8(128 + 127*d.sin(v+d.phase))
			desc.Pixels[o+1] = uint8(128 + 127*d.sin(v+2))
			desc.Pixels[o+2] = uint8(128 + 127*d.sin(v+4))
			desc.Pixels[o+3] = 0xFF
		}
	}
	d.ctx.MarkDirty(0, 0, desc.Width, desc.Height)
}

func (d *PlasmaDemo) HandleControlStateChanged(mods ModifierState) {}

func (d *PlasmaDemo) UpdateOverlays(vc *VideoContext) {}

func (d *PlasmaDemo) HandleEvent(ev InputEvent) {
	switch ev.Kind {
	case EventKeyDown:
		if ev.Key == KeyEscape && d.onQuit != nil {
			d.onQuit()
		}
	case EventText:
		if ev.Rune == 'p' {
			d.paused = !d.paused
		}
	}
}

func (d *PlasmaDemo) ColorDepth() ColorDepth {
	return ColorDepthTrueColor32
}

// Palette returns an identity greyscale ramp; the truecolor path never
// consults it but the contract still wants 256 RGB triples.
func (d *PlasmaDemo) Palette() []uint8 {
	p := make([]uint8, PALETTE_SIZE*3)
	for i := 0; i < PALETTE_SIZE; i++ {
		p[i*3+0] = uint8(i)
		p[i*3+1] = uint8(i)
		p[i*3+2] = uint8(i)
	}
	return p
}

func (d *PlasmaDemo) TakePaletteDirty() (int, int, bool) {
	return 0, 0, false
}

func (d *PlasmaDemo) Paused() bool    { return d.paused }
func (d *PlasmaDemo) Networked() bool { return false }
func (d *PlasmaDemo) InMenu() bool    { return false }
