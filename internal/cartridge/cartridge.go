// Package cartridge implements the external collaborator spec.md §6 calls
// the "cartridge port": read(addr)/write(addr, val) over the 0x0000-0x7FFF
// ROM window and the 0xA000-0xBFFF cartridge-RAM window. The core's
// contract stops at that port (spec.md §1 Non-goals); everything in this
// package is the supplementary, out-of-core reference implementation that
// makes a real ROM bootable end to end.
//
// Grounded on _examples/original_source/src/cartridge.rs: ROM-only and
// MBC1 bank controllers behind a small interface, selected from the header
// byte at 0x147, with unsupported types falling back to ROM-only exactly
// as the Rust source does. The struct/constructor shape follows
// _examples/LJS360d-RoBA/internal/cartridge/cartridge.go.
package cartridge

import (
	"errors"
	"fmt"

	"gbcore/internal/dbg"
	"gbcore/internal/interfaces"
)

var errROMTooSmall = errors.New("cartridge: ROM image smaller than header region")

// bankController is the internal strategy interface a Cartridge delegates
// to; RomOnly and MBC1 both implement it.
type bankController interface {
	ReadROM(addr uint16) byte
	WriteROM(addr uint16, value byte)
	ReadRAM(addr uint16) byte
	WriteRAM(addr uint16, value byte)
}

// Cartridge wraps a bank controller selected by the header's declared
// type. It satisfies interfaces.Cartridge.
type Cartridge struct {
	header Header
	mbc    bankController
}

var _ interfaces.Cartridge = (*Cartridge)(nil)

// New parses romData's header and constructs the matching bank
// controller. Malformed headers are an initialization error per spec.md
// §7: the caller must not enter the run loop on error.
func New(romData []byte) (*Cartridge, error) {
	header, err := parseHeader(romData)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	ramSize := ramSizeBytes(header.RAMSize)

	var mbc bankController
	switch header.CartType {
	case TypeROMOnly:
		mbc = newRomOnly(romData)
	case TypeMBC1, TypeMBC1RAM, TypeMBC1RAMBattery:
		mbc = newMBC1(romData, ramSize)
	default:
		// Any other MBC is explicitly unsupported by the core's contract
		// (spec.md §9 Open Questions); fall back to ROM-only rather than
		// reject the cartridge outright.
		dbg.Printf("cartridge: unsupported type 0x%02X (%q), falling back to ROM-only", header.CartType, header.Title)
		mbc = newRomOnly(romData)
	}

	return &Cartridge{header: header, mbc: mbc}, nil
}

func (c *Cartridge) Header() Header { return c.header }

func (c *Cartridge) ReadROM(addr uint16) byte         { return c.mbc.ReadROM(addr) }
func (c *Cartridge) WriteROM(addr uint16, value byte) { c.mbc.WriteROM(addr, value) }
func (c *Cartridge) ReadRAM(addr uint16) byte         { return c.mbc.ReadRAM(addr) }
func (c *Cartridge) WriteRAM(addr uint16, value byte) { c.mbc.WriteRAM(addr, value) }

// RomOnly is a cartridge with no bank controller: 32 KiB of ROM mapped
// directly, no cartridge RAM.
type RomOnly struct {
	rom []byte
}

func newRomOnly(rom []byte) *RomOnly {
	return &RomOnly{rom: rom}
}

func (r *RomOnly) ReadROM(addr uint16) byte {
	if int(addr) < len(r.rom) {
		return r.rom[addr]
	}
	return 0xFF
}

func (r *RomOnly) WriteROM(uint16, byte) {}
func (r *RomOnly) ReadRAM(uint16) byte   { return 0xFF }
func (r *RomOnly) WriteRAM(uint16, byte) {}
