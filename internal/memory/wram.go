package memory

import "gbcore/internal/interfaces"

// WRAMSize is the 8 KiB work-RAM window at 0xC000-0xDFFF. The echo region
// at 0xE000-0xFDFF aliases it by masking the low 13 bits, so no separate
// mirror storage is needed (spec.md §4.2).
const WRAMSize = 0x2000

// WRAM is the Game Boy's work RAM, grounded on the byte-array-plus-mask
// shape of _examples/LJS360d-RoBA/internal/memory/{ewram,iwram}.go and the
// exact masking of _examples/original_source/src/wram.rs.
type WRAM struct {
	data [WRAMSize]byte
}

var _ interfaces.Device = (*WRAM)(nil)

func NewWRAM() *WRAM {
	return &WRAM{}
}

func (w *WRAM) Read8(addr uint16) byte {
	return w.data[addr&(WRAMSize-1)]
}

func (w *WRAM) Write8(addr uint16, value byte) {
	w.data[addr&(WRAMSize-1)] = value
}
