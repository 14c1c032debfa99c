package render

import (
	"fmt"
	"io"
)

// shadeGlyphs maps a 2-bit palette index to a box-drawing character,
// darkest last. Grounded on original_source/src/renderer.rs's
// TerminalRenderer.pixel_to_ascii: 0 is the lightest shade, 3 the darkest.
var shadeGlyphs = [4]rune{' ', '░', '▒', '█'}

// ASCIIRenderer redraws the frame in place in a terminal using an ANSI
// clear-and-home escape before each frame, exactly as
// original_source/src/renderer.rs's TerminalRenderer does.
type ASCIIRenderer struct {
	w io.Writer
}

func NewASCIIRenderer(w io.Writer) *ASCIIRenderer {
	return &ASCIIRenderer{w: w}
}

var _ Renderer = (*ASCIIRenderer)(nil)

// Draw clears the screen and prints one glyph per pixel, row by row.
func (r *ASCIIRenderer) Draw(frame []byte) error {
	if _, err := fmt.Fprint(r.w, "\x1B[2J\x1B[H"); err != nil {
		return err
	}
	line := make([]rune, 0, width+1)
	for y := 0; y < height; y++ {
		line = line[:0]
		for x := 0; x < width; x++ {
			idx := y*width + x
			if idx >= len(frame) {
				line = append(line, ' ')
				continue
			}
			line = append(line, shadeGlyphs[frame[idx]&0x3])
		}
		line = append(line, '\n')
		if _, err := fmt.Fprint(r.w, string(line)); err != nil {
			return err
		}
	}
	return nil
}
