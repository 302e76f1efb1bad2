//go:build !headless

// video_backend_ebiten.go - Ebiten display surface backend for VideoCore

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

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

const pasteCap = 4096

// EbitenSurface implements DisplaySurface on an Ebiten window. The render
// thread (Update/Draw) and the presentation loop meet only through the
// staging frame buffer and the event queue, both mutex-guarded; everything
// else belongs to one side or the other.
type EbitenSurface struct {
	running     bool
	window      *ebiten.Image
	width       int
	height      int
	scale       int
	fullscreen  bool
	windowedW   int
	windowedH   int
	frameBuffer []byte
	bufferMutex sync.RWMutex
	frameCount  uint64
	refreshRate int
	vsyncChan   chan struct{}
	done        chan struct{}

	events       []InputEvent
	eventMutex   sync.Mutex
	lastMouseX   int
	lastMouseY   int
	lastOutsideW int
	lastOutsideH int

	clipboardOnce sync.Once
	clipboardOK   bool
	showStatusBar bool
}

func NewEbitenSurface() (DisplaySurface, error) {
	return &EbitenSurface{
		width:       DEFAULT_WIDTH,
		height:      DEFAULT_HEIGHT,
		scale:       1,
		windowedW:   DEFAULT_WIDTH,
		windowedH:   DEFAULT_HEIGHT,
		frameBuffer: make([]byte, DEFAULT_WIDTH*DEFAULT_HEIGHT*BYTES_PER_PIXEL),
		refreshRate: 60,
		vsyncChan:   make(chan struct{}, 1),
		done:        make(chan struct{}),
		lastMouseX:  -1,
		lastMouseY:  -1,
	}, nil
}

func clampScale(scale int) int {
	if scale < 1 {
		return 1
	}
	if scale > 4 {
		return 4
	}
	return scale
}

func (es *EbitenSurface) Start() error {
	if es.running {
		return nil
	}
	es.bufferMutex.Lock()
	es.done = make(chan struct{})
	es.bufferMutex.Unlock()
	es.running = true
	ebiten.SetWindowSize(es.windowedW, es.windowedH)
	ebiten.SetWindowTitle("VideoCore (c) 2024 - 2026 Zayn Otley")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowClosingHandled(true)
	if es.fullscreen {
		ebiten.SetFullscreen(true)
	}

	go func() {
		defer func() {
			es.running = false
			es.bufferMutex.RLock()
			done := es.done
			es.bufferMutex.RUnlock()
			select {
			case <-done:
			default:
				close(done)
			}
		}()
		if err := ebiten.RunGame(es); err != nil {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()

	// Wait for first Draw call to ensure Ebiten is ready
	<-es.vsyncChan
	return nil
}

func (es *EbitenSurface) Stop() error {
	es.running = false
	return nil
}

func (es *EbitenSurface) Close() error {
	return es.Stop()
}

func (es *EbitenSurface) IsStarted() bool {
	return es.running
}

func (es *EbitenSurface) Done() <-chan struct{} {
	es.bufferMutex.RLock()
	done := es.done
	es.bufferMutex.RUnlock()
	return done
}

func (es *EbitenSurface) SetDisplayConfig(config DisplayConfig) error {
	es.bufferMutex.Lock()
	defer es.bufferMutex.Unlock()

	width := config.Width
	height := config.Height
	if width <= 0 {
		width = es.width
	}
	if height <= 0 {
		height = es.height
	}
	es.width = width
	es.height = height
	es.scale = clampScale(config.Scale)
	newSize := es.width * es.height * BYTES_PER_PIXEL

	if len(es.frameBuffer) != newSize {
		es.frameBuffer = make([]byte, newSize)
	}

	es.windowedW = es.width * es.scale
	es.windowedH = es.height * es.scale
	es.fullscreen = config.Fullscreen
	if es.running {
		ebiten.SetFullscreen(es.fullscreen)
		if !es.fullscreen {
			ebiten.SetWindowSize(es.windowedW, es.windowedH)
		}
	}
	if es.window != nil {
		es.window.Dispose()
		es.window = nil
	}
	return nil
}

func (es *EbitenSurface) GetDisplayConfig() DisplayConfig {
	es.bufferMutex.RLock()
	defer es.bufferMutex.RUnlock()
	return DisplayConfig{
		Width:       es.width,
		Height:      es.height,
		Scale:       es.scale,
		RefreshRate: es.refreshRate,
		Fullscreen:  es.fullscreen,
		VSync:       true,
	}
}

func (es *EbitenSurface) UpdateRegion(x, y, width, height int, pixels []byte) error {
	es.bufferMutex.Lock()
	defer es.bufferMutex.Unlock()

	if x < 0 || y < 0 || x+width > es.width || y+height > es.height {
		return fmt.Errorf("region coordinates out of bounds")
	}
	if len(pixels) < width*height*BYTES_PER_PIXEL {
		return fmt.Errorf("region pixel data too short")
	}

	for dy := 0; dy < height; dy++ {
		dstOffset := ((y+dy)*es.width + x) * BYTES_PER_PIXEL
		srcOffset := dy * width * BYTES_PER_PIXEL
		copy(es.frameBuffer[dstOffset:], pixels[srcOffset:srcOffset+width*BYTES_PER_PIXEL])
	}
	return nil
}

// Flush is deferred to Ebiten's own refresh cycle unless forced, in which
// case it waits for the next Draw with a hard upper bound so the loop can
// never hang on an occluded window.
func (es *EbitenSurface) Flush(force bool) error {
	if !force || !es.running {
		return nil
	}
	select {
	case <-es.vsyncChan:
		return nil
	case <-time.After(250 * time.Millisecond):
		return nil
	}
}

func (es *EbitenSurface) IsVisible() bool {
	return es.running && !ebiten.IsWindowMinimized()
}

func (es *EbitenSurface) OriginBottomLeft() bool {
	return false
}

func (es *EbitenSurface) ModifierState() ModifierState {
	return ModifierState{
		Shift: ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight),
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight),
	}
}

func (es *EbitenSurface) ListModes() []Resolution {
	monW, monH := ebiten.ScreenSizeInFullscreen()
	if monW <= 0 || monH <= 0 {
		return SupportedModes
	}
	modes := make([]Resolution, 0, len(SupportedModes))
	for _, m := range SupportedModes {
		if m.Width <= monW && m.Height <= monH {
			modes = append(modes, m)
		}
	}
	return modes
}

func (es *EbitenSurface) pushEvent(ev InputEvent) {
	es.eventMutex.Lock()
	es.events = append(es.events, ev)
	es.eventMutex.Unlock()
}

func (es *EbitenSurface) PollEvents() []InputEvent {
	es.eventMutex.Lock()
	defer es.eventMutex.Unlock()
	if len(es.events) == 0 {
		return nil
	}
	out := es.events
	es.events = nil
	return out
}

func (es *EbitenSurface) Update() error {
	if !es.running {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		es.pushEvent(InputEvent{Kind: EventCloseRequested})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		es.bufferMutex.Lock()
		es.fullscreen = !es.fullscreen
		fs := es.fullscreen
		ebiten.SetFullscreen(fs)
		if !fs {
			ebiten.SetWindowSize(es.windowedW, es.windowedH)
		}
		es.bufferMutex.Unlock()
		es.pushEvent(InputEvent{Kind: EventFullscreen, Fullscreen: fs})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		es.bufferMutex.Lock()
		es.showStatusBar = !es.showStatusBar
		es.bufferMutex.Unlock()
	}

	es.collectKeyboard()
	es.collectMouse()
	return nil
}

func (es *EbitenSurface) collectKeyboard() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	// Clipboard paste: Ctrl+Shift+V
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		es.handleClipboardPaste()
	}

	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		es.pushEvent(InputEvent{Kind: EventKeyDown, Key: translateKey(key)})
	}
	for _, key := range inpututil.AppendJustReleasedKeys(nil) {
		es.pushEvent(InputEvent{Kind: EventKeyUp, Key: translateKey(key)})
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		es.pushEvent(InputEvent{Kind: EventText, Rune: r})
	}
}

func (es *EbitenSurface) collectMouse() {
	x, y := ebiten.CursorPosition()
	if x != es.lastMouseX || y != es.lastMouseY {
		es.lastMouseX = x
		es.lastMouseY = y
		es.pushEvent(InputEvent{Kind: EventMouseMove, X: x, Y: y})
	}
	buttons := []ebiten.MouseButton{
		ebiten.MouseButtonLeft,
		ebiten.MouseButtonRight,
		ebiten.MouseButtonMiddle,
	}
	for i, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b) {
			es.pushEvent(InputEvent{Kind: EventMouseButton, Button: i, Pressed: true, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			es.pushEvent(InputEvent{Kind: EventMouseButton, Button: i, Pressed: false, X: x, Y: y})
		}
	}
}

func translateKey(key ebiten.Key) int {
	switch key {
	case ebiten.KeyEscape:
		return KeyEscape
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return KeyEnter
	case ebiten.KeyBackspace:
		return KeyBackspace
	case ebiten.KeyTab:
		return KeyTab
	case ebiten.KeyArrowUp:
		return KeyArrowUp
	case ebiten.KeyArrowDown:
		return KeyArrowDown
	case ebiten.KeyArrowLeft:
		return KeyArrowLeft
	case ebiten.KeyArrowRight:
		return KeyArrowRight
	default:
		return KeyUnknown
	}
}

func normalizePasteText(raw []byte) []byte {
	norm := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\r' {
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			norm = append(norm, '\n')
			continue
		}
		norm = append(norm, raw[i])
	}
	return norm
}

func (es *EbitenSurface) handleClipboardPaste() {
	es.clipboardOnce.Do(func() {
		es.clipboardOK = clipboard.Init() == nil
	})
	if !es.clipboardOK {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	data = normalizePasteText(data)
	if len(data) > pasteCap {
		data = data[:pasteCap]
	}
	for _, r := range string(data) {
		es.pushEvent(InputEvent{Kind: EventText, Rune: r})
	}
}

func (es *EbitenSurface) Draw(screen *ebiten.Image) {
	es.bufferMutex.RLock()
	if es.window == nil || es.window.Bounds().Dx() != es.width || es.window.Bounds().Dy() != es.height {
		es.bufferMutex.RUnlock()
		es.bufferMutex.Lock()
		if es.window != nil {
			es.window.Dispose()
		}
		es.window = ebiten.NewImage(es.width, es.height)
		es.bufferMutex.Unlock()
		es.bufferMutex.RLock()
	}
	es.window.WritePixels(es.frameBuffer)
	showStatusBar := es.showStatusBar
	es.bufferMutex.RUnlock()

	screen.DrawImage(es.window, nil)
	if showStatusBar {
		es.drawStatusBar(screen)
	}

	es.frameCount++
	select {
	case es.vsyncChan <- struct{}{}:
	default:
	}
}

func (es *EbitenSurface) Layout(outsideWidth, outsideHeight int) (int, int) {
	if es.running && !es.fullscreen &&
		outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != es.lastOutsideW || outsideHeight != es.lastOutsideH) {
		es.lastOutsideW = outsideWidth
		es.lastOutsideH = outsideHeight
		w := outsideWidth / es.scale
		h := outsideHeight / es.scale
		if w != es.width || h != es.height {
			es.pushEvent(InputEvent{Kind: EventResize, Width: w, Height: h})
		}
	}
	return es.width, es.height
}

func (es *EbitenSurface) drawStatusBar(screen *ebiten.Image) {
	barHeight := 16
	if barHeight >= es.height {
		return
	}
	y := es.height - barHeight
	ebitenutil.DrawRect(screen, 0, float64(y), float64(es.width), float64(barHeight), color.RGBA{0, 0, 0, 180})

	face := basicfont.Face7x13
	info := fmt.Sprintf("%dx%d  FPS %0.1f  frame %d", es.width, es.height, ebiten.CurrentFPS(), es.frameCount)
	text.Draw(screen, info, face, 6, y+12, color.RGBA{190, 190, 190, 255})

	legend := "F11 Fullscreen  F12 Status Bar"
	legendW := text.BoundString(face, legend).Dx()
	legendX := es.width - legendW - 6
	if legendX < 6 {
		legendX = 6
	}
	text.Draw(screen, legend, face, legendX, y+12, color.RGBA{160, 160, 160, 255})
}
