package memory

import "gbcore/internal/interfaces"

// HRAMSize is the 128-byte high-RAM window at 0xFF80-0xFFFE.
const HRAMSize = 0x80

// HRAM is always readable/writable by the CPU regardless of PPU mode
// (spec.md §3 invariants). Grounded on
// _examples/LJS360d-RoBA/internal/memory/iwram.go's shape and
// _examples/original_source/src/hram.rs's masking.
type HRAM struct {
	data [HRAMSize]byte
}

var _ interfaces.Device = (*HRAM)(nil)

func NewHRAM() *HRAM {
	return &HRAM{}
}

func (h *HRAM) Read8(addr uint16) byte {
	return h.data[addr&(HRAMSize-1)]
}

func (h *HRAM) Write8(addr uint16, value byte) {
	h.data[addr&(HRAMSize-1)] = value
}
