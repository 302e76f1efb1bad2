// video_scheduler.go - Fixed-cadence tick scheduler and main presentation loop

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
video_scheduler.go - Tick Scheduler / Main Loop

The scheduler arbitrates three independent timing domains without tearing or
starving any of them:
- a fixed-rate simulation tick (DEFAULT_TICK_MS)
- the event-driven input/windowing layer (drained non-blockingly)
- the variable-rate display refresh (presented lazily, forced on demand)

One loop iteration:
1. Read the clock; detect wraparound (counter moved backward)
2. Drain all pending surface events, never waiting for one
3. On the termination signal, drop back to windowed mode if fullscreen
   and leave the loop; nothing is composited after that point
4. Step the simulation when due (deadline reached, fast-forward held, or
   wraparound - wraparound is conservatively "due" to rule out a stall),
   then composite and present; otherwise sleep 1ms and refresh only the
   transient overlays

Holding Shift outside menus and networked sessions engages fast-forward:
every iteration is treated as due, uncapping the simulation rate.
*/

package main

import "time"

// Clock is the scheduler's time source: a millisecond counter that is
// monotonic in normal operation but may wrap, and a bounded sleep. Tests
// substitute a synthetic clock.
type Clock interface {
	Now() uint32
	Sleep(d time.Duration)
}

type systemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock counting milliseconds since creation.
func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Now() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

func (c *systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// idleSleep bounds the wait when no tick is due, so the loop neither
// busy-spins nor sleeps past the next deadline.
const idleSleep = time.Millisecond

// TickScheduler owns the presentation loop. It is strictly single-threaded:
// one goroutine runs the loop and is the only writer of every component the
// context owns.
type TickScheduler struct {
	ctx   *VideoContext
	sim   Simulation
	input InputHandler
	clock Clock

	tickMS uint32

	started  bool
	lastNow  uint32
	nextTick uint32

	// lastStep is the clock reading of the previous simulation step,
	// used for the elapsed-real-time accumulator. uint32 subtraction
	// stays correct across wraparound.
	lastStep  uint32
	elapsedMS uint64
	stepCount uint64

	prevMods ModifierState
	quit     bool
}

// NewTickScheduler wires the loop to a context, simulation and input
// handler. input may be nil when the simulation consumes no raw events.
func NewTickScheduler(ctx *VideoContext, sim Simulation, input InputHandler, clock Clock) *TickScheduler {
	return &TickScheduler{
		ctx:    ctx,
		sim:    sim,
		input:  input,
		clock:  clock,
		tickMS: DEFAULT_TICK_MS,
	}
}

// SetTickPeriod overrides the simulation cadence in milliseconds.
func (ts *TickScheduler) SetTickPeriod(ms uint32) {
	if ms >= 1 {
		ts.tickMS = ms
	}
}

// RequestQuit arms the termination signal; the loop observes it at the top
// of the next iteration and unwinds without presenting anything further.
func (ts *TickScheduler) RequestQuit() {
	ts.quit = true
}

// ElapsedMS is the accumulated real time consumed by simulation steps.
func (ts *TickScheduler) ElapsedMS() uint64 {
	return ts.elapsedMS
}

// StepCount is the number of simulation steps taken so far.
func (ts *TickScheduler) StepCount() uint64 {
	return ts.stepCount
}

func (ts *TickScheduler) handleEvent(ev InputEvent) error {
	switch ev.Kind {
	case EventCloseRequested:
		ts.quit = true
	case EventResize:
		if err := ts.ctx.handleResized(ev.Width, ev.Height); err != nil {
			return err
		}
	default:
		if ts.input != nil {
			ts.input.HandleEvent(ev)
		}
	}
	return nil
}

// RunOnce executes a single loop iteration. It returns false when the loop
// has reached its terminal state. The only errors it returns are fatal ones
// (buffer reallocation or surface failure); everything recoverable is
// handled in place.
func (ts *TickScheduler) RunOnce() (bool, error) {
	now := ts.clock.Now()
	wrapped := ts.started && now < ts.lastNow
	if !ts.started {
		ts.started = true
		ts.nextTick = now + ts.tickMS
		ts.lastStep = now
	}
	ts.lastNow = now

	for _, ev := range ts.ctx.surface.PollEvents() {
		if err := ts.handleEvent(ev); err != nil {
			return false, err
		}
	}

	if ts.quit {
		if ts.ctx.Fullscreen() {
			// Restore the windowed resolution before the surface is
			// torn down, matching what the settings layer persists.
			ts.ctx.ToggleFullscreen(false)
		}
		return false, nil
	}

	mods := ts.ctx.surface.ModifierState()
	fastForward := mods.Shift && !ts.sim.Networked() && !ts.sim.InMenu()

	due := now >= ts.nextTick || wrapped || (fastForward && !ts.sim.Paused())
	if !due {
		ts.clock.Sleep(idleSleep)
		// Chat and cursor overlays can change without a simulation
		// step; keep them fresh while idling.
		ts.sim.UpdateOverlays(ts.ctx)
		return true, ts.ctx.Present(false)
	}

	switch {
	case wrapped:
		// The deadline from before the wrap is unreachable; resync
		// instead of stalling until the counter catches up.
		ts.nextTick = now + ts.tickMS
	case now >= ts.nextTick:
		ts.nextTick += ts.tickMS
	default:
		// Fast-forward fired before the deadline; leave the deadline
		// alone so releasing the modifier restores normal pacing
		// immediately.
	}

	ts.elapsedMS += uint64(now - ts.lastStep)
	ts.lastStep = now

	if mods != ts.prevMods {
		ts.sim.HandleControlStateChanged(mods)
		ts.prevMods = mods
	}

	ts.sim.StepSimulation()
	ts.stepCount++
	ts.sim.UpdateOverlays(ts.ctx)

	if first, count, dirty := ts.sim.TakePaletteDirty(); dirty {
		ts.ctx.UpdatePalette(ts.sim.Palette(), first, count)
	}

	return true, ts.ctx.Present(false)
}

// Run iterates until the termination signal is observed or a fatal error
// unwinds the surface.
func (ts *TickScheduler) Run() error {
	for {
		cont, err := ts.RunOnce()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
