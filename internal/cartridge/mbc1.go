package cartridge

// MBC1 implements the MBC1 bank controller: a 5-bit ROM bank register
// (bank 0 silently reads as bank 1), a 2-bit secondary register that
// selects either the upper ROM-bank bits or a RAM bank depending on
// banking mode, and a RAM-enable latch. Ported directly from
// _examples/original_source/src/cartridge.rs's Mbc1, including the
// large-ROM (>512KiB) special case where the secondary register still
// contributes to the effective bank in ROM-banking mode.
type MBC1 struct {
	rom []byte
	ram []byte

	romBank byte // 5 bits, default 1 (spec.md §9 Open Questions)
	ramBank byte // 2 bits
	enabled bool
	mode    bool // false = ROM banking mode, true = RAM banking mode
}

func newMBC1(rom []byte, ramSize int) *MBC1 {
	return &MBC1{
		rom:     rom,
		ram:     make([]byte, ramSize),
		romBank: 1,
	}
}

func (m *MBC1) ReadROM(addr uint16) byte {
	switch {
	case addr <= 0x3FFF:
		bank := byte(0)
		if m.mode && len(m.rom) > 0x80000 {
			bank = (m.ramBank << 5) & 0x60
		}
		offset := int(bank)*0x4000 + int(addr)
		return m.romByte(offset)
	case addr <= 0x7FFF:
		bank := m.romBank
		if len(m.rom) > 0x80000 {
			bank |= (m.ramBank << 5) & 0x60
		}
		if bank == 0 {
			bank = 1
		}
		offset := int(bank)*0x4000 + int(addr-0x4000)
		return m.romByte(offset)
	default:
		return 0xFF
	}
}

func (m *MBC1) romByte(offset int) byte {
	if offset < len(m.rom) {
		return m.rom[offset]
	}
	return 0xFF
}

func (m *MBC1) WriteROM(addr uint16, value byte) {
	switch {
	case addr <= 0x1FFF:
		m.enabled = value&0x0F == 0x0A
	case addr <= 0x3FFF:
		bank := value & 0x1F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case addr <= 0x5FFF:
		m.ramBank = value & 0x03
	case addr <= 0x7FFF:
		m.mode = value&0x01 != 0
	}
}

func (m *MBC1) ReadRAM(addr uint16) byte {
	if !m.enabled || len(m.ram) == 0 {
		return 0xFF
	}
	offset := m.ramOffset(addr)
	if offset < len(m.ram) {
		return m.ram[offset]
	}
	return 0xFF
}

func (m *MBC1) WriteRAM(addr uint16, value byte) {
	if !m.enabled || len(m.ram) == 0 {
		return
	}
	offset := m.ramOffset(addr)
	if offset < len(m.ram) {
		m.ram[offset] = value
	}
}

func (m *MBC1) ramOffset(addr uint16) int {
	bank := byte(0)
	if m.mode {
		bank = m.ramBank
	}
	return int(bank)*0x2000 + int(addr&0x1FFF)
}
