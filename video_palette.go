// video_palette.go - 256-entry hardware/software palette table

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

// PaletteTable maps 8-bit colour indices to packed 32-bit ARGB values with
// full opacity. It is mutated only through explicit range updates pulled
// from the simulation's authoritative palette; any update conservatively
// dirties the whole surface at the caller.
type PaletteTable struct {
	entries [PALETTE_SIZE]uint32
}

// NewPaletteTable returns a palette with every entry opaque black.
func NewPaletteTable() *PaletteTable {
	p := &PaletteTable{}
	for i := range p.entries {
		p.entries[i] = 0xFF000000
	}
	return p
}

// Update recomputes entries [first, first+count) from src, a sequence of RGB
// byte triples indexed by palette entry. The range is clamped so the table is
// never indexed past entry 255 and src is never read out of bounds. It
// returns the number of entries actually updated.
func (p *PaletteTable) Update(src []uint8, first, count int) int {
	if first < 0 {
		count += first
		first = 0
	}
	if count > PALETTE_SIZE-first {
		count = PALETTE_SIZE - first
	}
	if avail := len(src)/3 - first; count > avail {
		count = avail
	}
	if count <= 0 {
		return 0
	}
	for i := first; i < first+count; i++ {
		r := uint32(src[i*3+0])
		g := uint32(src[i*3+1])
		b := uint32(src[i*3+2])
		p.entries[i] = 0xFF000000 | r<<16 | g<<8 | b
	}
	return count
}

// Entry returns the packed ARGB value for a palette index.
func (p *PaletteTable) Entry(index int) uint32 {
	return p.entries[index&0xFF]
}
