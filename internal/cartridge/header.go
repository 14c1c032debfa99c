package cartridge

import "strings"

// Type identifies the cartridge's memory-bank controller, read from header
// byte 0x147. Grounded on _examples/original_source/src/cartridge.rs's
// CartridgeType enum.
type Type byte

const (
	TypeROMOnly         Type = 0x00
	TypeMBC1            Type = 0x01
	TypeMBC1RAM         Type = 0x02
	TypeMBC1RAMBattery  Type = 0x03
	TypeMBC3TimerRAM    Type = 0x10
	TypeMBC3            Type = 0x11
	TypeMBC3RAM         Type = 0x12
	TypeMBC3RAMBattery  Type = 0x13
	TypeMBC3TimerRAMBat Type = 0x0F
	TypeMBC5            Type = 0x19
	TypeMBC5RAM         Type = 0x1A
	TypeMBC5RAMBattery  Type = 0x1B
)

// Header is the subset of the 0x100-0x14F cartridge header this core
// cares about: title and the fields needed to size and pick a bank
// controller.
type Header struct {
	Title    string
	CartType Type
	ROMSize  byte // raw header byte at 0x148
	RAMSize  byte // raw header byte at 0x149
}

// ramSizeBytes maps the header's RAM-size code to an actual byte count.
func ramSizeBytes(code byte) int {
	switch code {
	case 0x00:
		return 0
	case 0x01:
		return 0x800
	case 0x02:
		return 0x2000
	case 0x03:
		return 0x8000
	case 0x04:
		return 0x20000
	case 0x05:
		return 0x10000
	default:
		return 0
	}
}

// parseHeader reads the header out of a full ROM image. The header lives
// at a fixed offset regardless of cartridge size, so this never needs
// bank-aware addressing.
func parseHeader(rom []byte) (Header, error) {
	if len(rom) < 0x150 {
		return Header{}, errROMTooSmall
	}
	title := strings.TrimRight(string(rom[0x134:0x144]), "\x00")
	return Header{
		Title:    title,
		CartType: Type(rom[0x147]),
		ROMSize:  rom[0x148],
		RAMSize:  rom[0x149],
	}, nil
}
