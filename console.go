package gbcore

import (
	"gbcore/internal/bus"
	"gbcore/internal/cartridge"
	"gbcore/internal/cpu"
	"gbcore/internal/interrupt"
	"gbcore/internal/memory"
	"gbcore/internal/ppu"
	"gbcore/internal/register"
)

// LCDWidth and LCDHeight are the display dimensions a Renderer consumes
// (spec.md §6).
const (
	LCDWidth  = ppu.LCDWidth
	LCDHeight = ppu.LCDHeight
)

// CPUClockHz and MCycleClocks describe the LR35902's real clock, grounded
// on original_source/src/gameboy.rs's CPU_CLOCK_HZ/M_CYCLE_CLOCK
// constants: the drive loop paces itself against these, not against
// CPU.Step call count alone.
const (
	CPUClockHz   = 4_194_304
	MCycleClocks = 4
)

// Console is the top-level aggregate spec.md §6 describes: it wires the
// CPU, bus, PPU, and cartridge together and exposes the single Step
// entry point the drive loop calls once per machine cycle.
//
// Grounded on _examples/LJS360d-RoBA/main.go's construction order (boot
// overlay, work RAM, PPU, cartridge, bus, CPU) collapsed into one
// constructor the way original_source/src/gameboy.rs's GameBoy struct
// does, since this repo has no separate "GBA-style main wires everything"
// file to keep that logic in.
type Console struct {
	CPU       *cpu.CPU
	Bus       *bus.Bus
	PPU       *ppu.PPU
	Cartridge *cartridge.Cartridge
	Interrupt *interrupt.Controller
}

// New constructs a Console from a ROM image and a boot-ROM image. Either
// failing to parse is an InitError (spec.md §7): the caller must not
// start the drive loop.
func New(romData, bootROMImage []byte) (*Console, error) {
	cart, err := cartridge.New(romData)
	if err != nil {
		return nil, NewInitError("cartridge", err)
	}

	bootROM, err := memory.NewBootROM(bootROMImage)
	if err != nil {
		return nil, NewInitError("bootrom", err)
	}

	irq := interrupt.New()
	p := ppu.New(irq)
	b := bus.New(bootROM, cart, p, memory.NewWRAM(), memory.NewHRAM(), irq)
	regs := register.New()
	c := cpu.New(regs, irq)

	return &Console{CPU: c, Bus: b, PPU: p, Cartridge: cart, Interrupt: irq}, nil
}

// Step advances the whole system by one machine cycle: the CPU and the
// PPU both tick once, matching original_source/src/gameboy.rs's
// "emulate_cycle the CPU, emulate_cycle the PPU" pairing inside its
// per-M-cycle loop. An undefined opcode surfaces as a *FatalError instead
// of the CPU's plain decode error, carrying the PC/opcode diagnostic
// spec.md §7 asks for.
func (console *Console) Step() error {
	if err := console.CPU.Step(console.Bus); err != nil {
		pc, opcode := console.CPU.Fault()
		return NewFatalError(pc, opcode, err)
	}
	console.PPU.Step()
	return nil
}

// FrameBuffer exposes the PPU's completed-or-in-progress palette-index
// buffer; conversion to a displayable form is the Renderer's job
// (spec.md §4.7).
func (console *Console) FrameBuffer() []byte { return console.PPU.FrameBuffer() }

// ConsumeFrameReady reports whether a frame completed since the last
// call, clearing the flag either way.
func (console *Console) ConsumeFrameReady() bool { return console.PPU.ConsumeFrameReady() }
