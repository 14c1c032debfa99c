package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeIRQ struct {
	raised []byte
}

func (f *fakeIRQ) Raise(bit byte) { f.raised = append(f.raised, bit) }

func enable(p *PPU) {
	p.WriteRegister(0xFF40, lcdcEnable)
}

func TestModeSequenceOneScanline(t *testing.T) {
	p := New(&fakeIRQ{})
	enable(p)

	assert.Equal(t, OAMScan, p.Mode())
	for i := 0; i < 20; i++ {
		p.Step()
	}
	assert.Equal(t, Drawing, p.Mode())

	for i := 0; i < 43; i++ {
		p.Step()
	}
	assert.Equal(t, HBlank, p.Mode())

	for i := 0; i < 51; i++ {
		p.Step()
	}
	assert.Equal(t, OAMScan, p.Mode())
	assert.Equal(t, byte(1), p.LY())
}

func TestFrameCycleCount(t *testing.T) {
	p := New(&fakeIRQ{})
	enable(p)

	for i := 0; i < 144*114; i++ {
		p.Step()
	}
	assert.Equal(t, VBlank, p.Mode())
	assert.Equal(t, byte(144), p.LY())

	for i := 0; i < 10*114; i++ {
		p.Step()
	}
	assert.Equal(t, OAMScan, p.Mode())
	assert.Equal(t, byte(0), p.LY())
	assert.True(t, p.ConsumeFrameReady())
	assert.False(t, p.ConsumeFrameReady(), "the flag must clear once consumed")
}

func TestLYMonotonicWithinFrame(t *testing.T) {
	p := New(&fakeIRQ{})
	enable(p)

	prev := p.LY()
	for i := 0; i < 153*114; i++ {
		p.Step()
		cur := p.LY()
		assert.True(t, cur >= prev || cur == 0)
		prev = cur
	}
}

func TestVRAMGatedDuringDrawing(t *testing.T) {
	p := New(&fakeIRQ{})
	enable(p)
	for i := 0; i < 20; i++ {
		p.Step()
	}
	assert.Equal(t, Drawing, p.Mode())

	p.WriteVRAM(0x0000, 0xAB)
	assert.Equal(t, byte(0xFF), p.ReadVRAM(0x0000))

	for i := 0; i < 43; i++ {
		p.Step()
	}
	assert.Equal(t, HBlank, p.Mode())
	p.WriteVRAM(0x0000, 0xAB)
	assert.Equal(t, byte(0xAB), p.ReadVRAM(0x0000))
}

func TestDisabledPPUFreezesModeAndLY(t *testing.T) {
	p := New(&fakeIRQ{})
	for i := 0; i < 1000; i++ {
		p.Step()
	}
	assert.Equal(t, OAMScan, p.Mode())
	assert.Equal(t, byte(0), p.LY())
}

func TestVBlankRaisesInterrupt(t *testing.T) {
	irq := &fakeIRQ{}
	p := New(irq)
	enable(p)

	for i := 0; i < 144*114; i++ {
		p.Step()
	}
	assert.Contains(t, irq.raised, byte(1))
}

func TestLYCStatInterruptEdge(t *testing.T) {
	irq := &fakeIRQ{}
	p := New(irq)
	enable(p)
	p.WriteRegister(0xFF41, statLYCInterrupt)
	p.WriteRegister(0xFF45, 1) // LYC=1, no match yet at LY=0

	for i := 0; i < 114; i++ { // advance to LY=1
		p.Step()
	}
	assert.Contains(t, irq.raised, byte(2))
}

func TestAllPaletteZeroFrameWhenBGPZero(t *testing.T) {
	p := New(&fakeIRQ{})
	enable(p)
	p.WriteRegister(0xFF40, lcdcEnable|lcdcBGWindowEnable)

	for i := 0; i < 17556; i++ {
		p.Step()
	}

	for _, v := range p.FrameBuffer() {
		assert.Equal(t, byte(0), v)
	}
}
