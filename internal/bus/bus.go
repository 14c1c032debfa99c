// Package bus implements the memory-mapped address decoder described in
// spec.md §3/§4.4: a pure dispatcher that owns no state of its own and
// holds references to the peripherals it routes transactions to.
//
// Grounded on _examples/LJS360d-RoBA/internal/bus/bus.go's range-switch
// shape, cut down from the GBA's 32-bit flat map to the LR35902's 16-bit
// one described in original_source/src/peripherals.rs.
package bus

import (
	"gbcore/internal/dbg"
	"gbcore/internal/interfaces"
	"gbcore/internal/interrupt"
	"gbcore/internal/memory"
	"gbcore/internal/ppu"
)

// Bus wires together every peripheral the CPU can address. It implements
// no behavior of its own beyond address decode.
type Bus struct {
	BootROM   *memory.BootROM
	Cartridge interfaces.Cartridge
	PPU       *ppu.PPU
	WRAM      *memory.WRAM
	HRAM      *memory.HRAM
	Interrupt *interrupt.Controller
}

// New wires a Bus from already-constructed peripherals. None may be nil;
// a nil peripheral is a wiring bug in the caller, not a runtime
// condition this package absorbs.
func New(bootROM *memory.BootROM, cart interfaces.Cartridge, p *ppu.PPU, wram *memory.WRAM, hram *memory.HRAM, irq *interrupt.Controller) *Bus {
	return &Bus{
		BootROM:   bootROM,
		Cartridge: cart,
		PPU:       p,
		WRAM:      wram,
		HRAM:      hram,
		Interrupt: irq,
	}
}

// Read8 decodes addr per spec.md §3's bus map.
func (b *Bus) Read8(addr uint16) byte {
	switch {
	case addr <= 0x00FF:
		if b.BootROM.Active() {
			return b.BootROM.Read(addr)
		}
		return b.Cartridge.ReadROM(addr)
	case addr <= 0x7FFF:
		return b.Cartridge.ReadROM(addr)
	case addr <= 0x9FFF:
		return b.PPU.ReadVRAM(addr - 0x8000)
	case addr <= 0xBFFF:
		return b.Cartridge.ReadRAM(addr)
	case addr <= 0xDFFF:
		return b.WRAM.Read8(addr - 0xC000)
	case addr <= 0xFDFF:
		return b.WRAM.Read8(addr - 0xE000)
	case addr <= 0xFE9F:
		return b.PPU.ReadOAM(addr - 0xFE00)
	case addr <= 0xFEFF:
		return 0xFF
	case addr == 0xFF0F:
		return b.Interrupt.ReadIF()
	case addr >= 0xFF40 && addr <= 0xFF4B:
		return b.PPU.ReadRegister(addr)
	case addr == 0xFFFF:
		return b.Interrupt.ReadIE()
	case addr >= 0xFF80 && addr <= 0xFFFE:
		return b.HRAM.Read8(addr - 0xFF80)
	default:
		dbg.Printf("bus: read from unmapped address 0x%04X", addr)
		return 0xFF
	}
}

// Write8 decodes addr per spec.md §3/§4.4. Writes into unmapped regions
// are discarded, matching real hardware's open-bus behavior, and logged
// through dbg.
func (b *Bus) Write8(addr uint16, val byte) {
	switch {
	case addr <= 0x7FFF:
		b.Cartridge.WriteROM(addr, val)
	case addr <= 0x9FFF:
		b.PPU.WriteVRAM(addr-0x8000, val)
	case addr <= 0xBFFF:
		b.Cartridge.WriteRAM(addr, val)
	case addr <= 0xDFFF:
		b.WRAM.Write8(addr-0xC000, val)
	case addr <= 0xFDFF:
		b.WRAM.Write8(addr-0xE000, val)
	case addr <= 0xFE9F:
		b.PPU.WriteOAM(addr-0xFE00, val)
	case addr <= 0xFEFF:
		// prohibited region; writes are ignored
	case addr == 0xFF0F:
		b.Interrupt.WriteIF(val)
	case addr == 0xFF50:
		b.BootROM.Write(addr, val)
	case addr >= 0xFF40 && addr <= 0xFF4B:
		b.PPU.WriteRegister(addr, val)
	case addr == 0xFFFF:
		b.Interrupt.WriteIE(val)
	case addr >= 0xFF80 && addr <= 0xFFFE:
		b.HRAM.Write8(addr-0xFF80, val)
	default:
		// other I/O (timer/serial/joypad/audio) is out of the core's
		// scope per spec.md §1; ignore the write rather than fault.
		dbg.Printf("bus: write 0x%02X to unmapped address 0x%04X", val, addr)
	}
}
