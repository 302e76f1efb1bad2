// demo_fire.go - Indexed-colour fire demo exercising the full presentation loop

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

import "math/rand"

// FireDemo is a self-contained game-simulation collaborator running at 8-bit
// depth: classic fire propagation written through the draw-surface
// descriptor, a cycling ember range in the palette, a mouse cursor overlay
// and a chat-entry overlay. Escape quits, Enter toggles chat, 'p' pauses.
type FireDemo struct {
	ctx *VideoContext

	width  int
	height int
	heat   [][]uint8

	palette      [PALETTE_SIZE * 3]uint8
	palDirtyAt   int
	palDirtyLen  int
	palDirty     bool
	emberPhase   int
	tick         int

	mouseX, mouseY int
	cursorMoved    bool

	chatting bool
	chatLen  int

	paused bool
	onQuit func()
	rng    *rand.Rand
}

// Ember indices animated every few ticks to make the hottest colours
// shimmer. The range stays well inside the 256-entry table.
const (
	emberFirst = 224
	emberCount = 32
)

func NewFireDemo(seed int64) *FireDemo {
	d := &FireDemo{
		rng:    rand.New(rand.NewSource(seed)),
		mouseX: -1,
		mouseY: -1,
	}
	d.buildPalette()
	return d
}

// Attach binds the demo to the video context it draws through.
func (d *FireDemo) Attach(ctx *VideoContext) {
	d.ctx = ctx
}

// OnQuit registers the callback fired when the user asks to leave.
func (d *FireDemo) OnQuit(fn func()) {
	d.onQuit = fn
}

// buildPalette ramps black through red and yellow to white.
func (d *FireDemo) buildPalette() {
	for i := 0; i < PALETTE_SIZE; i++ {
		r := min(255, i*2)
		g := max(0, min(255, (i-64)*4))
		b := max(0, min(255, (i-128)*4))
		d.palette[i*3+0] = uint8(r)
		d.palette[i*3+1] = uint8(g)
		d.palette[i*3+2] = uint8(b)
	}
}

// resizeHeat follows the backing store across resolution changes.
func (d *FireDemo) resizeHeat(width, height int) {
	d.width = width
	d.height = height
	d.heat = make([][]uint8, height)
	for i := range d.heat {
		d.heat[i] = make([]uint8, width)
	}
}

func (d *FireDemo) StepSimulation() {
	if d.paused {
		return
	}
	desc := d.ctx.DrawSurface()
	if desc.Width != d.width || desc.Height != d.height {
		d.resizeHeat(desc.Width, desc.Height)
	}

	// Random noise at the bottom feeds the flames.
	bottom := d.heat[d.height-1]
	for x := range bottom {
		bottom[x] = uint8(d.rng.Intn(256))
	}

	// Propagate upward: average the three pixels below, then decay.
	for y := 0; y < d.height-1; y++ {
		row := d.heat[y]
		below := d.heat[y+1]
		for x := 0; x < d.width; x++ {
			sum := int(below[x])
			count := 1
			if x > 0 {
				sum += int(below[x-1])
				count++
			}
			if x < d.width-1 {
				sum += int(below[x+1])
				count++
			}
			value := sum / count
			if value > 0 {
				value--
			}
			row[x] = uint8(value)
		}
	}

	for y := 0; y < d.height; y++ {
		copy(desc.Pixels[y*desc.Pitch:y*desc.Pitch+d.width], d.heat[y])
	}
	d.ctx.MarkDirty(0, 0, d.width, d.height)

	// Shimmer the ember range every fourth tick.
	d.tick++
	if d.tick%4 == 0 {
		d.emberPhase++
		for i := 0; i < emberCount; i++ {
			idx := emberFirst + (i+d.emberPhase)%emberCount
			src := emberFirst + i
			d.palette[idx*3+1] = uint8(min(255, int(d.palette[src*3+1])+8))
		}
		d.palDirtyAt = emberFirst
		d.palDirtyLen = emberCount
		d.palDirty = true
	}
}

func (d *FireDemo) HandleControlStateChanged(mods ModifierState) {
	// Fast-forward feedback could go here; the scheduler already acts on
	// the modifier itself.
}

func (d *FireDemo) UpdateOverlays(vc *VideoContext) {
	desc := vc.DrawSurface()
	if desc.Depth != ColorDepthIndexed8 {
		return
	}

	if d.cursorMoved && d.mouseX >= 0 && d.mouseX < desc.Width && d.mouseY >= 0 && d.mouseY < desc.Height {
		d.cursorMoved = false
		const arm = 4
		for dx := -arm; dx <= arm; dx++ {
			x := d.mouseX + dx
			if x >= 0 && x < desc.Width {
				desc.Pixels[d.mouseY*desc.Pitch+x] = 0xFF
			}
		}
		for dy := -arm; dy <= arm; dy++ {
			y := d.mouseY + dy
			if y >= 0 && y < desc.Height {
				desc.Pixels[y*desc.Pitch+d.mouseX] = 0xFF
			}
		}
		vc.MarkDirty(d.mouseX-arm, d.mouseY-arm, 2*arm+1, 2*arm+1)
	}

	if d.chatting {
		// Chat-entry strip along the top edge: one filled cell per
		// typed character plus a caret cell.
		const cellW, cellH = 6, 10
		cells := d.chatLen + 1
		maxCells := desc.Width / cellW
		if cells > maxCells {
			cells = maxCells
		}
		for c := 0; c < cells; c++ {
			shade := uint8(200)
			if c == cells-1 && d.tick%2 == 0 {
				shade = 0 // blinking caret
			}
			for y := 0; y < cellH && y < desc.Height; y++ {
				row := y * desc.Pitch
				for x := c * cellW; x < (c+1)*cellW && x < desc.Width; x++ {
					desc.Pixels[row+x] = shade
				}
			}
		}
		vc.MarkDirty(0, 0, cells*cellW, cellH)
	}
}

func (d *FireDemo) HandleEvent(ev InputEvent) {
	switch ev.Kind {
	case EventMouseMove:
		d.mouseX = ev.X
		d.mouseY = ev.Y
		d.cursorMoved = true
	case EventKeyDown:
		switch ev.Key {
		case KeyEscape:
			if d.chatting {
				d.chatting = false
				d.chatLen = 0
				d.ctx.MarkAllDirty()
			} else if d.onQuit != nil {
				d.onQuit()
			}
		case KeyEnter:
			d.chatting = !d.chatting
			d.chatLen = 0
			d.ctx.MarkAllDirty()
		case KeyBackspace:
			if d.chatting && d.chatLen > 0 {
				d.chatLen--
				d.ctx.MarkAllDirty()
			}
		}
	case EventText:
		if d.chatting {
			d.chatLen++
		} else if ev.Rune == 'p' {
			d.paused = !d.paused
		}
	}
}

func (d *FireDemo) ColorDepth() ColorDepth {
	return ColorDepthIndexed8
}

func (d *FireDemo) Palette() []uint8 {
	return d.palette[:]
}

func (d *FireDemo) TakePaletteDirty() (int, int, bool) {
	if !d.palDirty {
		return 0, 0, false
	}
	d.palDirty = false
	return d.palDirtyAt, d.palDirtyLen, true
}

func (d *FireDemo) Paused() bool    { return d.paused }
func (d *FireDemo) Networked() bool { return false }
func (d *FireDemo) InMenu() bool    { return false }
