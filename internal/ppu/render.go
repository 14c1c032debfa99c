package ppu

// renderScanline draws row LY of the frame buffer: background, then
// window, then sprites, matching spec.md §4.7's per-scanline order.
// Grounded on original_source/src/ppu.rs's render_bg tile addressing,
// extended with window and sprite passes the source never implemented.
func (p *PPU) renderScanline() {
	var bgColor [LCDWidth]byte

	if p.lcdc&lcdcBGWindowEnable != 0 {
		p.renderBackground(&bgColor)
		p.renderWindow(&bgColor)
	}
	if p.lcdc&lcdcSpriteEnable != 0 {
		p.renderSprites(&bgColor)
	}
}

func (p *PPU) renderBackground(bgColor *[LCDWidth]byte) {
	y := p.ly + p.scy
	tileMap := p.lcdc&lcdcBGTileMap != 0

	for x := 0; x < LCDWidth; x++ {
		sx := byte(x) + p.scx
		tileID := p.tileIDAt(tileMap, y/8, sx/8)
		color := p.tilePixel(tileID, y%8, sx%8)

		bgColor[x] = color
		p.setPixel(x, paletteLookup(p.bgp, color))
	}
}

// renderWindow overlays the window layer where LY>=WY and x>=WX-7, using
// an internal line counter that only advances on scanlines the window
// actually draws (spec.md §4.7).
func (p *PPU) renderWindow(bgColor *[LCDWidth]byte) {
	if p.lcdc&lcdcWindowEnable == 0 || p.ly < p.wy {
		return
	}

	wxStart := int(p.wx) - 7
	if wxStart >= LCDWidth {
		return
	}

	tileMap := p.lcdc&lcdcWindowTileMap != 0
	drew := false

	for x := 0; x < LCDWidth; x++ {
		wx := x - wxStart
		if wx < 0 {
			continue
		}
		drew = true

		tileID := p.tileIDAt(tileMap, p.windowLine/8, byte(wx)/8)
		color := p.tilePixel(tileID, p.windowLine%8, byte(wx)%8)

		bgColor[x] = color
		p.setPixel(x, paletteLookup(p.bgp, color))
	}

	if drew {
		p.windowLine++
	}
}

// renderSprites scans OAM for up to 10 sprites intersecting LY and draws
// them in OAM order, lower index wins when two sprites cover the same
// pixel (spec.md §4.7).
func (p *PPU) renderSprites(bgColor *[LCDWidth]byte) {
	height := 8
	if p.lcdc&lcdcSpriteSize != 0 {
		height = 16
	}

	type sprite struct{ y, x, tile, attr byte }
	var visible []sprite

	for i := 0; i < 40 && len(visible) < 10; i++ {
		base := i * 4
		y := p.oam[base]
		top := int(y) - 16
		if int(p.ly) >= top && int(p.ly) < top+height {
			visible = append(visible, sprite{y: y, x: p.oam[base+1], tile: p.oam[base+2], attr: p.oam[base+3]})
		}
	}

	var drawn [LCDWidth]bool

	for _, s := range visible {
		left := int(s.x) - 8
		flipX := s.attr&0x20 != 0
		flipY := s.attr&0x40 != 0
		behindBG := s.attr&0x80 != 0
		palette := p.obp0
		if s.attr&0x10 != 0 {
			palette = p.obp1
		}

		row := int(p.ly) - (int(s.y) - 16)
		if flipY {
			row = height - 1 - row
		}

		tile := s.tile
		rowInTile := row
		if height == 16 {
			if row >= 8 {
				tile |= 1
				rowInTile = row - 8
			} else {
				tile &^= 1
				rowInTile = row
			}
		}

		for col := 0; col < 8; col++ {
			px := left + col
			if px < 0 || px >= LCDWidth || drawn[px] {
				continue
			}

			c := col
			if flipX {
				c = 7 - col
			}

			color := p.tilePixel(tile, byte(rowInTile), byte(c))
			if color == 0 {
				continue
			}
			if behindBG && bgColor[px] != 0 {
				continue
			}

			p.setPixel(px, paletteLookup(palette, color))
			drawn[px] = true
		}
	}
}

// tileIDAt looks up a tile ID from one of the two 32x32 tile maps.
func (p *PPU) tileIDAt(highMap bool, row, col byte) byte {
	base := uint16(0x1800)
	if highMap {
		base = 0x1C00
	}
	return p.vram[base+uint16(row)*32+uint16(col)]
}

// tileAddr resolves a tile ID to its byte offset within VRAM, honoring
// LCDC bit 4's signed/unsigned addressing mode (spec.md §4.7).
func (p *PPU) tileAddr(tileID byte) uint16 {
	if p.lcdc&lcdcTileDataMode != 0 {
		return uint16(tileID) * 16
	}
	return uint16(0x1000 + int(int8(tileID))*16)
}

// tilePixel returns the 2-bit color index for one pixel of a tile.
func (p *PPU) tilePixel(tileID, row, col byte) byte {
	addr := p.tileAddr(tileID) + uint16(row)*2
	lo := p.vram[addr&0x1FFF]
	hi := p.vram[(addr+1)&0x1FFF]
	bit := 7 - col
	return ((hi>>bit)&1)<<1 | ((lo >> bit) & 1)
}
