// Package interfaces holds the small, closed set of collaborator contracts
// shared between the bus and its peripherals, mirroring the role
// _examples/LJS360d-RoBA/internal/interfaces played for the GBA bus. The
// bus reaches the cartridge only through Cartridge; its other peripherals
// (boot ROM, PPU, WRAM, HRAM, interrupt controller) are concrete types.
package interfaces

// Device is a flat, masked-addressing memory region (WRAM, HRAM) owned
// directly by the bus.
type Device interface {
	Read8(addr uint16) byte
	Write8(addr uint16, value byte)
}

// Cartridge is the external collaborator described in spec.md §6: the bus
// demands only a read/write port over the ROM and cartridge-RAM windows.
// Bank switching, if any, is entirely the cartridge's business.
type Cartridge interface {
	ReadROM(addr uint16) byte
	WriteROM(addr uint16, value byte)
	ReadRAM(addr uint16) byte
	WriteRAM(addr uint16, value byte)
}

// InterruptSource is implemented by the interrupt controller handed to the
// PPU at construction so the PPU can raise VBlank/STAT without importing
// the bus.
type InterruptSource interface {
	Raise(bit byte)
}
