package memory

import "fmt"

// BootROMSize is the fixed size of the boot-ROM overlay (spec.md §6).
const BootROMSize = 0x100

// BootROM is a 256-byte overlay at 0x0000-0x00FF with a one-way disable
// latch: once a non-zero value is written to 0xFF50, Active is false for
// the remainder of the process lifetime (spec.md §4.3, §3 invariants).
//
// Grounded on _examples/LJS360d-RoBA/internal/memory/bios.go for the
// "peripheral holds its own read-only blob" shape, and the latch semantics
// come from _examples/original_source/src/bootrom.rs's write().
type BootROM struct {
	rom    [BootROMSize]byte
	active bool
}

// NewBootROM wraps a 256-byte boot ROM image. The image must be exactly
// BootROMSize bytes — this is an initialization error (spec.md §7), not a
// panic, since it is detected before the run loop starts.
func NewBootROM(image []byte) (*BootROM, error) {
	if len(image) != BootROMSize {
		return nil, fmt.Errorf("memory: boot ROM must be exactly %d bytes, got %d", BootROMSize, len(image))
	}
	b := &BootROM{active: true}
	copy(b.rom[:], image)
	return b, nil
}

func (b *BootROM) Active() bool {
	return b.active
}

func (b *BootROM) Read(addr uint16) byte {
	return b.rom[addr]
}

// Write implements the disable latch at 0xFF50. Any non-zero value
// permanently clears Active; it can never be re-armed, and a write of 0 is
// a no-op either way.
func (b *BootROM) Write(_ uint16, val byte) {
	if val != 0 {
		b.active = false
	}
}
