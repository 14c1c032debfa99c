package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbcore/internal/interrupt"
	"gbcore/internal/memory"
	"gbcore/internal/ppu"
)

type fakeCart struct {
	rom [0x8000]byte
	ram [0x2000]byte
}

func (c *fakeCart) ReadROM(addr uint16) byte         { return c.rom[addr] }
func (c *fakeCart) WriteROM(addr uint16, value byte) { c.rom[addr] = value }
func (c *fakeCart) ReadRAM(addr uint16) byte         { return c.ram[addr-0xA000] }
func (c *fakeCart) WriteRAM(addr uint16, value byte) { c.ram[addr-0xA000] = value }

func newTestBus(t *testing.T) (*Bus, *fakeCart) {
	t.Helper()
	bootImg := make([]byte, memory.BootROMSize)
	bootImg[0] = 0x31
	bootROM, err := memory.NewBootROM(bootImg)
	require.NoError(t, err)

	cart := &fakeCart{}
	irq := interrupt.New()
	p := ppu.New(irq)
	b := New(bootROM, cart, p, memory.NewWRAM(), memory.NewHRAM(), irq)
	return b, cart
}

func TestWRAMEchoRegion(t *testing.T) {
	b, _ := newTestBus(t)
	for addr := uint32(0xE000); addr <= 0xFDFF; addr++ {
		b.Write8(uint16(addr), byte(addr))
		assert.Equal(t, byte(addr), b.Read8(uint16(addr-0x2000)))
	}
}

func TestBootROMLatchRoutesToCartridge(t *testing.T) {
	b, cart := newTestBus(t)
	cart.rom[0] = 0x42

	assert.Equal(t, byte(0x31), b.Read8(0x0000), "boot ROM is active at reset")

	b.Write8(0xFF50, 1)
	assert.Equal(t, byte(0x42), b.Read8(0x0000))

	b.Write8(0xFF50, 0)
	assert.Equal(t, byte(0x42), b.Read8(0x0000), "the latch must never re-arm")
}

func TestProhibitedRegionAlwaysFF(t *testing.T) {
	b, _ := newTestBus(t)
	assert.Equal(t, byte(0xFF), b.Read8(0xFEA0))
	b.Write8(0xFEA0, 0x77) // must be a no-op
	assert.Equal(t, byte(0xFF), b.Read8(0xFEA0))
}

func TestHRAMAlwaysAccessible(t *testing.T) {
	b, _ := newTestBus(t)
	b.Write8(0xFF80, 0x99)
	assert.Equal(t, byte(0x99), b.Read8(0xFF80))
}

func TestInterruptRegisters(t *testing.T) {
	b, _ := newTestBus(t)
	b.Write8(0xFFFF, 0x1F)
	assert.Equal(t, byte(0x1F), b.Read8(0xFFFF))

	b.Write8(0xFF0F, 0x03)
	assert.Equal(t, byte(0xE3), b.Read8(0xFF0F), "unused IF bits read back as 1")
}
