package cpu

// Operand tags, grounded on _examples/original_source/src/cpu/operand.rs's
// IO8/IO16 capability traits. Each tag implements src8/dst8 (or src16/
// dst16); a register-only tag resolves for free, while a bus-touching tag
// spends exactly one machine cycle per bus transaction, tracked through a
// small per-kind step state living on the CPU (spec.md §4.5, §9 "per-
// instruction state value... stored in the CPU struct, not global scope").
type src8 interface {
	read8(c *CPU, bus Bus) (byte, bool)
}

type dst8 interface {
	write8(c *CPU, bus Bus, val byte) bool
}

type src16 interface {
	read16(c *CPU, bus Bus) (uint16, bool)
}

type dst16 interface {
	write16(c *CPU, bus Bus, val uint16) bool
}

// opState is the scratch a single multi-cycle operand kind needs across
// calls. Different operand kinds get independent fields on the CPU so a
// Direct8 resolution (its own phases) can nest an Imm8 resolution (a
// different phase counter) without clobbering each other.
type opState struct {
	step int
	val8 byte
	val  uint16
}

// Reg8 is a direct register operand: zero cycles, always resolves.
type Reg8 byte

const (
	RegA Reg8 = iota
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

func (r Reg8) read8(c *CPU, _ Bus) (byte, bool) {
	switch r {
	case RegA:
		return c.Regs.A, true
	case RegB:
		return c.Regs.B, true
	case RegC:
		return c.Regs.C, true
	case RegD:
		return c.Regs.D, true
	case RegE:
		return c.Regs.E, true
	case RegH:
		return c.Regs.H, true
	default:
		return c.Regs.L, true
	}
}

func (r Reg8) write8(c *CPU, _ Bus, val byte) bool {
	switch r {
	case RegA:
		c.Regs.A = val
	case RegB:
		c.Regs.B = val
	case RegC:
		c.Regs.C = val
	case RegD:
		c.Regs.D = val
	case RegE:
		c.Regs.E = val
	case RegH:
		c.Regs.H = val
	default:
		c.Regs.L = val
	}
	return true
}

// Reg16 is a direct register-pair operand: zero cycles.
type Reg16 byte

const (
	RegAF Reg16 = iota
	RegBC
	RegDE
	RegHL
	RegSP
)

func (r Reg16) read16(c *CPU, _ Bus) (uint16, bool) {
	switch r {
	case RegAF:
		return c.Regs.AF(), true
	case RegBC:
		return c.Regs.BC(), true
	case RegDE:
		return c.Regs.DE(), true
	case RegHL:
		return c.Regs.HL(), true
	default:
		return c.Regs.SP, true
	}
}

func (r Reg16) write16(c *CPU, _ Bus, val uint16) bool {
	switch r {
	case RegAF:
		c.Regs.WriteAF(val)
	case RegBC:
		c.Regs.WriteBC(val)
	case RegDE:
		c.Regs.WriteDE(val)
	case RegHL:
		c.Regs.WriteHL(val)
	default:
		c.Regs.SP = val
	}
	return true
}

// imm8Tag reads bus[PC] and increments PC; 1 machine cycle.
type imm8Tag struct{}

// Imm8 is the singleton 1-cycle immediate-byte operand.
var Imm8 = imm8Tag{}

func (imm8Tag) read8(c *CPU, bus Bus) (byte, bool) {
	st := &c.opImm8
	if st.step == 0 {
		st.val8 = c.busRead8(bus, c.Regs.PC)
		c.Regs.PC++
		st.step = 1
		return 0, false
	}
	st.step = 0
	return st.val8, true
}

// imm16Tag reads two Imm8s little-endian; 2 machine cycles.
type imm16Tag struct{}

// Imm16 is the singleton 2-cycle immediate-word operand.
var Imm16 = imm16Tag{}

func (imm16Tag) read16(c *CPU, bus Bus) (uint16, bool) {
	st := &c.opImm16
	switch st.step {
	case 0:
		lo, ok := Imm8.read8(c, bus)
		if !ok {
			return 0, false
		}
		st.val8 = lo
		st.step = 1
		return 0, false
	default:
		hi, ok := Imm8.read8(c, bus)
		if !ok {
			return 0, false
		}
		st.step = 0
		return uint16(hi)<<8 | uint16(st.val8), true
	}
}

// Indirect is a bus address taken from a register pair (or 0xFF00+C);
// 1 machine cycle. HLI/HLD post-increment/decrement HL.
type Indirect byte

const (
	IndBC Indirect = iota
	IndDE
	IndHL
	IndCFF
	IndHLD
	IndHLI
)

func (k Indirect) addr(c *CPU) uint16 {
	switch k {
	case IndBC:
		return c.Regs.BC()
	case IndDE:
		return c.Regs.DE()
	case IndHL:
		return c.Regs.HL()
	case IndCFF:
		return 0xFF00 | uint16(c.Regs.C)
	case IndHLD:
		addr := c.Regs.HL()
		c.Regs.WriteHL(addr - 1)
		return addr
	default: // IndHLI
		addr := c.Regs.HL()
		c.Regs.WriteHL(addr + 1)
		return addr
	}
}

func (k Indirect) read8(c *CPU, bus Bus) (byte, bool) {
	st := &c.opIndirect
	if st.step == 0 {
		st.val8 = c.busRead8(bus, k.addr(c))
		st.step = 1
		return 0, false
	}
	st.step = 0
	return st.val8, true
}

func (k Indirect) write8(c *CPU, bus Bus, val byte) bool {
	st := &c.opIndirect
	if st.step == 0 {
		c.busWrite8(bus, k.addr(c), val)
		st.step = 1
		return false
	}
	st.step = 0
	return true
}

// Direct8 addresses memory by a trailing Imm8/Imm16 in the instruction
// stream: D is a full 16-bit address (3 cycles), DFF is 0xFF00+imm8
// (2 cycles).
type Direct8 byte

const (
	DirectD Direct8 = iota
	DirectDFF
)

func (k Direct8) resolveAddr(c *CPU, bus Bus) (uint16, bool) {
	st := &c.opDirect8
	switch st.step {
	case 0:
		lo, ok := Imm8.read8(c, bus)
		if !ok {
			return 0, false
		}
		if k == DirectDFF {
			st.val = 0xFF00 | uint16(lo)
			st.step = 2
			return 0, false
		}
		st.val8 = lo
		st.step = 1
		return 0, false
	case 1:
		hi, ok := Imm8.read8(c, bus)
		if !ok {
			return 0, false
		}
		st.val = uint16(hi)<<8 | uint16(st.val8)
		st.step = 2
		return 0, false
	default:
		return st.val, true
	}
}

func (k Direct8) read8(c *CPU, bus Bus) (byte, bool) {
	st := &c.opDirect8
	addr, ok := k.resolveAddr(c, bus)
	if !ok {
		return 0, false
	}
	if st.step == 2 {
		st.val8 = c.busRead8(bus, addr)
		st.step = 3
		return 0, false
	}
	st.step = 0
	return st.val8, true
}

func (k Direct8) write8(c *CPU, bus Bus, val byte) bool {
	st := &c.opDirect8
	addr, ok := k.resolveAddr(c, bus)
	if !ok {
		return false
	}
	if st.step == 2 {
		c.busWrite8(bus, addr, val)
		st.step = 3
		return false
	}
	st.step = 0
	return true
}

// Direct16 writes a 16-bit value to a trailing Imm16 address, low byte
// first; 4 cycles. Only used as a write destination (LD (nn),SP).
type Direct16 struct{}

func (Direct16) write16(c *CPU, bus Bus, val uint16) bool {
	st := &c.opDirect16
	switch st.step {
	case 0, 1:
		addr, ok := Imm16.read16(c, bus)
		if !ok {
			return false
		}
		st.val = addr
		st.step = 2
		return false
	case 2:
		c.busWrite8(bus, st.val, byte(val))
		st.step = 3
		return false
	case 3:
		c.busWrite8(bus, st.val+1, byte(val>>8))
		st.step = 0
		return true
	default:
		st.step = 0
		return true
	}
}
