// Package render provides reference implementations of the Renderer port
// spec.md's core treats as an external sink ("LCD renderer is a sink
// consuming completed frames"). Neither implementation is part of the
// CPU/bus/PPU kernel; both exist so the CLI is runnable out of the box.
package render

// Renderer consumes a completed LCDWidth*LCDHeight palette-index frame
// (values 0-3, shade indices with BGP/OBP already applied by the PPU). Grounded on
// original_source/src/renderer.rs's Renderer trait (`fn draw(&mut self,
// pixel_buffer: &[u8])`).
type Renderer interface {
	Draw(frame []byte) error
}

const (
	width  = 160
	height = 144
)
