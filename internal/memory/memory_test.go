package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWRAMWraps(t *testing.T) {
	w := NewWRAM()
	w.Write8(0x1FFF, 0x42)
	assert.Equal(t, byte(0x42), w.Read8(0x1FFF))
	// an address one window above wraps back onto the same cell.
	assert.Equal(t, byte(0x42), w.Read8(0x1FFF+WRAMSize))
}

func TestHRAMMask(t *testing.T) {
	h := NewHRAM()
	h.Write8(0xFF80, 0x7A)
	assert.Equal(t, byte(0x7A), h.Read8(0x00))
}

func TestBootROMSizeValidation(t *testing.T) {
	_, err := NewBootROM(make([]byte, 0x50))
	assert.Error(t, err)

	img := make([]byte, BootROMSize)
	img[0] = 0x31
	b, err := NewBootROM(img)
	assert.NoError(t, err)
	assert.True(t, b.Active())
	assert.Equal(t, byte(0x31), b.Read(0))
}

func TestBootROMLatchIsOneWay(t *testing.T) {
	b, _ := NewBootROM(make([]byte, BootROMSize))
	assert.True(t, b.Active())

	b.Write(0xFF50, 0)
	assert.True(t, b.Active(), "writing zero must not disable the boot ROM")

	b.Write(0xFF50, 1)
	assert.False(t, b.Active())

	b.Write(0xFF50, 0)
	assert.False(t, b.Active(), "the latch must never re-arm")
}
