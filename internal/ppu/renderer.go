package ppu

import "sort"

// maxSpritesPerLine is the hardware OAM-search cap: only the first 10
// sprites found in OAM order that intersect the scanline are rendered.
const maxSpritesPerLine = 10

// renderScanline composes one row of the framebuffer at ly: background,
// then window, then sprites.
func (p *PPU) renderScanline(ly uint8) {
	var row [ScreenWidth]uint8

	if p.Controller.BackgroundEnabled {
		p.renderBackground(ly, &row)
	}
	if p.Controller.WindowEnabled && ly >= p.WY {
		p.renderWindow(ly, &row)
	}

	var bgColorZero [ScreenWidth]bool
	for x, idx := range row {
		bgColorZero[x] = idx == 0
		p.setPixel(uint8(x), ly, p.BGP.Color(idx))
	}

	if p.Controller.SpriteEnabled {
		p.renderSprites(ly, bgColorZero)
	}
}

func (p *PPU) renderBackground(ly uint8, row *[ScreenWidth]uint8) {
	mapBase := p.Controller.BackgroundTileMapAddress
	effY := (uint16(ly) + uint16(p.SCY)) & 0xFF
	tileRow, fineY := effY/8, effY%8

	for x := uint8(0); x < ScreenWidth; x++ {
		effX := (uint16(x) + uint16(p.SCX)) & 0xFF
		tileCol, fineX := effX/8, effX%8
		tileIndex := p.tileIndexAt(mapBase, tileRow, tileCol)
		row[x] = p.tilePixel(tileIndex, fineY, fineX)
	}
}

// renderWindow overwrites background pixels from px >= WX-7 onward,
// indexed by (LY-WY, px-(WX-7)); there is no separate internal
// window-line counter.
func (p *PPU) renderWindow(ly uint8, row *[ScreenWidth]uint8) {
	mapBase := p.Controller.WindowTileMapAddress
	winX0 := int(p.WX) - 7
	winY := uint16(ly - p.WY)
	tileRow, fineY := winY/8, winY%8

	for x := 0; x < ScreenWidth; x++ {
		if x < winX0 {
			continue
		}
		wx := uint16(x - winX0)
		tileCol, fineX := wx/8, wx%8
		tileIndex := p.tileIndexAt(mapBase, tileRow, tileCol)
		row[x] = p.tilePixel(tileIndex, fineY, fineX)
	}
}

func (p *PPU) tileIndexAt(mapBase uint16, tileRow, tileCol uint16) uint8 {
	addr := mapBase + (tileRow&0x1F)*32 + (tileCol & 0x1F)
	return p.vram[addr-0x8000]
}

// tilePixel extracts the 2-bit color index for one pixel of a tile row
// out of its two bitplane bytes; the leftmost pixel is bit 7 (MSB).
func (p *PPU) tilePixel(tileIndex uint8, fineY, fineX uint16) uint8 {
	addr := p.tileDataAddr(tileIndex) + fineY*2
	lo := p.vram[addr-0x8000]
	hi := p.vram[addr+1-0x8000]
	bit := 7 - fineX
	return (lo>>bit)&1 | (hi>>bit)&1<<1
}

func (p *PPU) tileDataAddr(tileIndex uint8) uint16 {
	if p.Controller.UsingSignedTileData() {
		return uint16(int32(0x9000) + int32(int8(tileIndex))*16)
	}
	return p.Controller.TileDataAddress + uint16(tileIndex)*16
}

// renderSprites selects up to 10 sprites intersecting ly in OAM order,
// then draws them front-to-back in ascending (X, OAM index) order; a
// column already drawn by a higher-priority sprite is not overwritten,
// so the highest-priority sprite at each column ends up on top.
func (p *PPU) renderSprites(ly uint8, bgColorZero [ScreenWidth]bool) {
	height := int(p.Controller.SpriteHeight)

	var visible []sprite
	for i := uint8(0); i < 40 && len(visible) < maxSpritesPerLine; i++ {
		s := readSprite(&p.oam, i)
		if int(ly) >= s.Y && int(ly) < s.Y+height {
			visible = append(visible, s)
		}
	}

	sort.SliceStable(visible, func(a, b int) bool {
		if visible[a].X != visible[b].X {
			return visible[a].X < visible[b].X
		}
		return visible[a].OAMIndex < visible[b].OAMIndex
	})

	var drawn [ScreenWidth]bool
	for _, s := range visible {
		p.drawSprite(s, ly, height, bgColorZero, &drawn)
	}
}

func (p *PPU) drawSprite(s sprite, ly uint8, height int, bgColorZero [ScreenWidth]bool, drawn *[ScreenWidth]bool) {
	line := int(ly) - s.Y
	if s.FlipY {
		line = height - 1 - line
	}

	tile := s.Tile
	if height == 16 {
		tile &^= 1
		if line >= 8 {
			tile++
			line -= 8
		}
	}

	addr := 0x8000 + uint16(tile)*16 + uint16(line)*2
	lo := p.vram[addr-0x8000]
	hi := p.vram[addr+1-0x8000]

	pal := &p.OBP0
	if s.Palette == 1 {
		pal = &p.OBP1
	}

	for col := 0; col < 8; col++ {
		x := s.X + col
		if x < 0 || x >= ScreenWidth || drawn[x] {
			continue
		}

		bit := 7 - col
		if s.FlipX {
			bit = col
		}
		colorIndex := (lo>>uint(bit))&1 | (hi>>uint(bit))&1<<1
		if colorIndex == 0 {
			continue // transparent: doesn't occlude a lower-priority sprite either
		}
		if s.Priority && !bgColorZero[x] {
			continue
		}

		drawn[x] = true
		p.setPixel(uint8(x), ly, pal.Color(colorIndex))
	}
}
