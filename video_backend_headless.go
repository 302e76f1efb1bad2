//go:build headless

package main

import "sync/atomic"

// HeadlessSurface stands in for the Ebiten window in headless builds: it
// accepts region uploads, counts flushes, and lets a harness inject events.
type HeadlessSurface struct {
	started bool
	visible bool
	config  DisplayConfig

	flushCount  uint64
	forcedCount uint64
	regionCount uint64

	pending []InputEvent
	mods    ModifierState
}

func NewEbitenSurface() (DisplaySurface, error) {
	return &HeadlessSurface{visible: true}, nil
}

func (h *HeadlessSurface) Start() error {
	h.started = true
	return nil
}

func (h *HeadlessSurface) Stop() error {
	h.started = false
	return nil
}

func (h *HeadlessSurface) Close() error {
	h.started = false
	return nil
}

func (h *HeadlessSurface) IsStarted() bool {
	return h.started
}

func (h *HeadlessSurface) SetDisplayConfig(config DisplayConfig) error {
	h.config = config
	return nil
}

func (h *HeadlessSurface) GetDisplayConfig() DisplayConfig {
	return h.config
}

func (h *HeadlessSurface) UpdateRegion(x, y, width, height int, pixels []byte) error {
	atomic.AddUint64(&h.regionCount, 1)
	return nil
}

func (h *HeadlessSurface) Flush(force bool) error {
	atomic.AddUint64(&h.flushCount, 1)
	if force {
		atomic.AddUint64(&h.forcedCount, 1)
	}
	return nil
}

func (h *HeadlessSurface) IsVisible() bool {
	return h.started && h.visible
}

func (h *HeadlessSurface) SetVisible(visible bool) {
	h.visible = visible
}

func (h *HeadlessSurface) OriginBottomLeft() bool {
	return false
}

// InjectEvent queues an event for the next PollEvents drain.
func (h *HeadlessSurface) InjectEvent(ev InputEvent) {
	h.pending = append(h.pending, ev)
}

func (h *HeadlessSurface) PollEvents() []InputEvent {
	if len(h.pending) == 0 {
		return nil
	}
	out := h.pending
	h.pending = nil
	return out
}

func (h *HeadlessSurface) SetModifierState(mods ModifierState) {
	h.mods = mods
}

func (h *HeadlessSurface) ModifierState() ModifierState {
	return h.mods
}

func (h *HeadlessSurface) ListModes() []Resolution {
	return SupportedModes
}

func (h *HeadlessSurface) RegionCount() uint64 {
	return atomic.LoadUint64(&h.regionCount)
}

func (h *HeadlessSurface) FlushCount() (total, forced uint64) {
	return atomic.LoadUint64(&h.flushCount), atomic.LoadUint64(&h.forcedCount)
}
