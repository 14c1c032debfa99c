// Package driveloop paces Console.Step against wall-clock time so the
// emulator runs at the LR35902's real speed instead of as fast as the
// host can execute (spec.md §5).
//
// Grounded on original_source/src/gameboy.rs's GameBoy.run(): an
// Instant-based elapsed-time accumulator that catches the CPU/PPU up to
// real time in a burst, then sleeps one machine-cycle period, rather than
// sleeping between every single step.
package driveloop

import (
	"time"

	"gbcore"
)

// mCycleNanos is the real-hardware duration of one machine cycle (4 dots
// at CPUClockHz), matching original_source/src/gameboy.rs's
// M_CYCLE_NANOS constant.
const mCycleNanos = gbcore.MCycleClocks * 1_000_000_000 / gbcore.CPUClockHz

// Renderer is the narrow sink the loop draws completed frames to. It is
// satisfied by internal/render's ASCIIRenderer, PNGRenderer and Multi
// without that package importing this one.
type Renderer interface {
	Draw(frame []byte) error
}

// Loop wires a Console to a Renderer and drives both at real-time pace.
type Loop struct {
	Console  *gbcore.Console
	Renderer Renderer
}

func New(console *gbcore.Console, r Renderer) *Loop {
	return &Loop{Console: console, Renderer: r}
}

// Run drives the console until Step or the renderer returns an error
// (either way a *gbcore.FatalError per spec.md §7) or the process is killed. It never
// returns nil on its own; a clean shutdown is the caller's job (e.g. a
// signal handler stopping the loop from outside), matching the teacher's
// main loop shape of an unconditional `for {}`.
func (l *Loop) Run() error {
	start := time.Now()
	var elapsed int64

	for {
		e := time.Since(start).Nanoseconds()
		for ; elapsed+mCycleNanos <= e; elapsed += mCycleNanos {
			if err := l.Console.Step(); err != nil {
				return err
			}
			if l.Console.ConsumeFrameReady() {
				if err := l.Renderer.Draw(l.Console.FrameBuffer()); err != nil {
					return &gbcore.FatalError{PC: l.Console.CPU.Regs.PC, Err: err}
				}
			}
		}
		time.Sleep(time.Duration(mCycleNanos))
	}
}
