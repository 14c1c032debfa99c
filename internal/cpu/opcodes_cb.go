package cpu

// CB-prefixed opcode table: rotates/shifts (0x00-0x3F), BIT (0x40-0x7F),
// RES (0x80-0xBF), SET (0xC0-0xFF), each crossed with the eight 8-bit
// operands. The CB space has no undefined opcodes, unlike the primary
// table, so no fallback entry is needed.
var cbTable [256]opHandler

func init() {
	rotateFns := [8]func(c *CPU, v byte) byte{
		func(c *CPU, v byte) byte { return c.rlc(v) },
		func(c *CPU, v byte) byte { return c.rrc(v) },
		func(c *CPU, v byte) byte { return c.rl(v) },
		func(c *CPU, v byte) byte { return c.rr(v) },
		func(c *CPU, v byte) byte { return c.sla(v) },
		func(c *CPU, v byte) byte { return c.sra(v) },
		func(c *CPU, v byte) byte { return c.swap(v) },
		func(c *CPU, v byte) byte { return c.srl(v) },
	}
	for row := byte(0); row < 8; row++ {
		for reg := byte(0); reg < 8; reg++ {
			cbTable[row*8+reg] = rmw8(rotateFns[row], r8Operand(reg))
		}
	}

	for n := byte(0); n < 8; n++ {
		for reg := byte(0); reg < 8; reg++ {
			cbTable[0x40+n*8+reg] = bitOp(n, r8Operand(reg))
		}
	}

	for n := byte(0); n < 8; n++ {
		for reg := byte(0); reg < 8; reg++ {
			cbTable[0x80+n*8+reg] = resOp(n, r8Operand(reg))
		}
	}

	for n := byte(0); n < 8; n++ {
		for reg := byte(0); reg < 8; reg++ {
			cbTable[0xC0+n*8+reg] = setOp(n, r8Operand(reg))
		}
	}
}
