// Package register implements the LR35902 register file: eight 8-bit
// cells (A, F, B, C, D, E, H, L), two 16-bit cells (PC, SP), and the
// big-endian pair views (AF, BC, DE, HL) over the 8-bit cells.
//
// Grounded on _examples/LJS360d-RoBA/internal/cpu/registers.go (struct of
// named cells + getter/setter pairs) and the exact field layout and flag
// semantics of _examples/original_source/src/cpu/registers.rs.
package register

// Flag bit positions within F. The low nibble of F is always zero.
const (
	FlagZ = 1 << 7 // Zero
	FlagN = 1 << 6 // Subtract
	FlagH = 1 << 5 // Half carry
	FlagC = 1 << 4 // Carry
)

// File is the LR35902 register file.
type File struct {
	A, F byte
	B, C byte
	D, E byte
	H, L byte
	PC   uint16
	SP   uint16
}

// New returns a zeroed register file. Real hardware leaves post-boot-ROM
// register contents to the boot ROM that ran; callers that skip the boot
// ROM are responsible for seeding whatever state their scenario needs.
func New() *File {
	return &File{}
}

func (r *File) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }
func (r *File) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r *File) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r *File) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// WriteAF masks the low nibble of F: the status register's low 4 bits are
// hardwired to zero on the real CPU.
func (r *File) WriteAF(v uint16) {
	r.A = byte(v >> 8)
	r.F = byte(v) & 0xF0
}

func (r *File) WriteBC(v uint16) { r.B = byte(v >> 8); r.C = byte(v) }
func (r *File) WriteDE(v uint16) { r.D = byte(v >> 8); r.E = byte(v) }
func (r *File) WriteHL(v uint16) { r.H = byte(v >> 8); r.L = byte(v) }

func (r *File) FlagZ() bool { return r.F&FlagZ != 0 }
func (r *File) FlagN() bool { return r.F&FlagN != 0 }
func (r *File) FlagH() bool { return r.F&FlagH != 0 }
func (r *File) FlagC() bool { return r.F&FlagC != 0 }

func (r *File) SetFlagZ(v bool) { r.setFlag(FlagZ, v) }
func (r *File) SetFlagN(v bool) { r.setFlag(FlagN, v) }
func (r *File) SetFlagH(v bool) { r.setFlag(FlagH, v) }
func (r *File) SetFlagC(v bool) { r.setFlag(FlagC, v) }

func (r *File) setFlag(bit byte, v bool) {
	if v {
		r.F |= bit
	} else {
		r.F &^= bit
	}
}
