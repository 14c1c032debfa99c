package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbcore/internal/bus"
	"gbcore/internal/cartridge"
	"gbcore/internal/interrupt"
	"gbcore/internal/memory"
	"gbcore/internal/ppu"
	"gbcore/internal/register"
)

// testSystem wires a CPU to a real Bus over a cartridge-only ROM, with
// the boot ROM pre-disabled so PC=0x0000 is the cartridge's own code.
// Grounded on spec.md §8's end-to-end scenarios.
type testSystem struct {
	cpu *CPU
	bus *bus.Bus
	irq *interrupt.Controller
}

func newTestSystem(t *testing.T, program []byte) *testSystem {
	t.Helper()
	rom := make([]byte, 0x8000)
	copy(rom, program)
	rom[0x0147] = 0x00 // ROM only
	rom[0x0148] = 0x00
	rom[0x0149] = 0x00

	cart, err := cartridge.New(rom)
	require.NoError(t, err)

	bootImg := make([]byte, memory.BootROMSize)
	bootROM, err := memory.NewBootROM(bootImg)
	require.NoError(t, err)
	bootROM.Write(0xFF50, 1) // disabled: PC=0 reads the cartridge

	irq := interrupt.New()
	p := ppu.New(irq)
	b := bus.New(bootROM, cart, p, memory.NewWRAM(), memory.NewHRAM(), irq)

	regs := register.New()
	c := New(regs, irq)
	return &testSystem{cpu: c, bus: b, irq: irq}
}

func (s *testSystem) run(cycles int) {
	for i := 0; i < cycles; i++ {
		err := s.cpu.Step(s.bus)
		if err != nil {
			panic(err)
		}
	}
}

func TestFlagLaws(t *testing.T) {
	regs := register.New()
	regs.WriteAF(0x1234)
	assert.Equal(t, byte(0x12), regs.A)
	assert.Equal(t, byte(0x30), regs.F, "low nibble of F is always masked to zero")
	assert.False(t, regs.FlagN())
	assert.True(t, regs.FlagH())
	assert.False(t, regs.FlagZ())
	assert.True(t, regs.FlagC())
}

func TestLDRRConsumesOneCycle(t *testing.T) {
	sys := newTestSystem(t, []byte{0x41, 0x00}) // LD B,C ; NOP
	sys.cpu.Regs.C = 0x42
	sys.run(1) // prime: fetch 0x41
	sys.run(1) // execute LD B,C and fetch NOP in the same external call set?
	assert.Equal(t, byte(0x42), sys.cpu.Regs.B)
}

func TestLDMemImmConsumesThreeCycles(t *testing.T) {
	sys := newTestSystem(t, []byte{0x36, 0x99, 0x00}) // LD (HL),0x99
	sys.cpu.Regs.WriteHL(0xC000)
	sys.run(1) // fetch 0x36
	sys.run(1) // read imm8 0x99
	sys.run(1) // write (HL),0x99
	assert.Equal(t, byte(0x99), sys.bus.Read8(0xC000))
}

// Per-instruction cycle costs below are the standard LR35902 M-cycle
// counts (spec.md §8); run() always includes the leading call that primes
// the CPU with its very first opcode fetch.
func TestStackRoundTrip(t *testing.T) {
	sys := newTestSystem(t, []byte{
		0x01, 0xCD, 0xAB, // LD BC,0xABCD  (3)
		0xC5,       // PUSH BC            (4)
		0x01, 0, 0, // LD BC,0x0000       (3)
		0xC1, // POP BC                   (3)
	})
	sys.cpu.Regs.SP = 0xFFFE
	sys.run(1 + 3 + 4 + 3 + 3)
	assert.Equal(t, uint16(0xABCD), sys.cpu.Regs.BC())
}

func TestConditionalCallAndReturn(t *testing.T) {
	sys := newTestSystem(t, []byte{
		0xAF,             // XOR A          (1) -> Z=1
		0xCC, 0x08, 0x00, // CALL Z,0x0008  (6, taken)
		0x00, 0x00, 0x00, 0x00,
		0x3E, 0x07, // 0x0008: LD A,0x07    (2)
		0xC9, // RET                       (4)
	})
	sys.cpu.Regs.SP = 0xFFFE
	sys.run(1 + 1 + 6 + 2 + 4)
	assert.Equal(t, byte(0x07), sys.cpu.Regs.A)
}

func TestCountedLoop(t *testing.T) {
	sys := newTestSystem(t, []byte{
		0x06, 0x05, // LD B,5      (2)
		0x05,       // loop: DEC B (1)
		0x20, 0xFD, // JR NZ,loop  (3 taken / 2 not taken)
		0x00, // NOP
	})
	// LD B,5 + 4x(DEC B taken-JR) + final DEC B + not-taken JR
	sys.run(1 + 2 + 4*(1+3) + 1 + 2)
	assert.Equal(t, byte(0), sys.cpu.Regs.B)
	assert.True(t, sys.cpu.Regs.FlagZ())
}

func TestUndefinedOpcodeIsFatal(t *testing.T) {
	sys := newTestSystem(t, []byte{0xD3})
	sys.run(1)
	err := sys.cpu.Step(sys.bus)
	assert.Error(t, err)
}

func TestEIDelaysInterruptByOneInstruction(t *testing.T) {
	sys := newTestSystem(t, []byte{
		0xFB, // EI
		0x00, // NOP  <- interrupt must not fire until after this retires
		0x00, // NOP  <- would execute here if the interrupt didn't preempt it
	})
	sys.irq.WriteIE(interrupt.VBlank)
	sys.run(1) // prime: fetch EI
	sys.run(1) // execute EI, fetch NOP #1 (imeDelay=2)
	sys.irq.Raise(interrupt.VBlank)
	assert.False(t, sys.cpu.IME, "IME is not yet active immediately after EI")

	sys.run(1) // boundary decrement 2->1 (still false); execute NOP #1, fetch NOP #2
	assert.False(t, sys.cpu.IME, "IME must not enable until the instruction after EI has fully retired")

	sys.run(1) // boundary decrement 1->0 -> IME true; pending VBlank preempts NOP #2
	assert.False(t, sys.cpu.IME, "starting interrupt dispatch clears IME again")
	assert.True(t, sys.cpu.servicingInterrupt, "the pending interrupt must preempt NOP #2")

	// 4 more cycles complete the 5-cycle interrupt dispatch sequence.
	sys.run(4)
	assert.Equal(t, uint16(0x40), sys.cpu.fetchPC, "dispatch must land on the VBlank vector")
	assert.Equal(t, byte(0), sys.irq.IF&interrupt.VBlank, "IF must be cleared once the interrupt is serviced")
}

func TestHaltWakesOnPendingInterrupt(t *testing.T) {
	sys := newTestSystem(t, []byte{0x76, 0x00}) // HALT ; NOP
	sys.irq.WriteIE(interrupt.VBlank)
	sys.run(1) // prime fetch HALT
	sys.run(1) // execute HALT
	assert.True(t, sys.cpu.Halted)

	sys.run(1) // still halted, no pending interrupt
	assert.True(t, sys.cpu.Halted)

	sys.irq.Raise(interrupt.VBlank)
	sys.run(1)
	assert.False(t, sys.cpu.Halted)
}

func TestVRAMGatingThroughFullStack(t *testing.T) {
	sys := newTestSystem(t, []byte{
		0x21, 0x00, 0x80, // LD HL,0x8000 (3)
		0x3E, 0xAB, // LD A,0xAB         (2)
		0x77, // LD (HL),A               (2)
	})
	sys.bus.PPU.WriteRegister(0xFF40, 0x80) // LCD enable; starts in OAMScan
	for i := 0; i < 20; i++ {
		sys.bus.PPU.Step() // advance into Drawing, where VRAM is gated
	}
	require.Equal(t, ppu.Drawing, sys.bus.PPU.Mode())

	sys.run(1 + 3 + 2 + 2)
	assert.Equal(t, byte(0xFF), sys.bus.Read8(0x8000), "VRAM reads as 0xFF during Drawing")

	for i := 0; i < 43; i++ {
		sys.bus.PPU.Step() // finish Drawing; VRAM is readable again in HBlank
	}
	require.Equal(t, ppu.HBlank, sys.bus.PPU.Mode())
	assert.Equal(t, byte(0x00), sys.bus.Read8(0x8000), "VRAM write during Drawing must be dropped")
}

func TestBootROMLatchViaWriteInstruction(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0147], rom[0x0148], rom[0x0149] = 0, 0, 0
	cart, err := cartridge.New(rom)
	require.NoError(t, err)

	bootImg := make([]byte, memory.BootROMSize)
	bootImg[0] = 0x3E // LD A,n       (2)
	bootImg[1] = 0x01
	bootImg[2] = 0xE0 // LDH (0x50),A -> disables the boot ROM (3)
	bootImg[3] = 0x50
	bootROM, err := memory.NewBootROM(bootImg)
	require.NoError(t, err)

	irq := interrupt.New()
	p := ppu.New(irq)
	b := bus.New(bootROM, cart, p, memory.NewWRAM(), memory.NewHRAM(), irq)
	regs := register.New()
	c := New(regs, irq)
	sys := &testSystem{cpu: c, bus: b, irq: irq}

	sys.run(1 + 2 + 3)
	assert.False(t, bootROM.Active())
}

func TestFrameReadySignalAfterOneFrame(t *testing.T) {
	sys := newTestSystem(t, []byte{0x00})
	sys.bus.PPU.WriteRegister(0xFF40, 0x80)
	for i := 0; i < 154*114; i++ {
		sys.bus.PPU.Step()
	}
	assert.True(t, sys.bus.PPU.ConsumeFrameReady())
}
