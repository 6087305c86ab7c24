// Package lcd holds the LCDC and STAT register models shared by the
// PPU's state machine and renderer.
package lcd

import "github.com/nfsu/gb/pkg/bits"

// ControlRegister is LCDC's bus address.
const ControlRegister = 0xFF40

// Controller decodes LCDC (0xFF40): the master display switches and the
// tile-map/tile-data base addresses the renderer reads from.
type Controller struct {
	Enabled                  bool
	WindowTileMapAddress     uint16
	WindowEnabled            bool
	TileDataAddress          uint16
	BackgroundTileMapAddress uint16
	SpriteHeight             uint8
	SpriteEnabled            bool
	BackgroundEnabled        bool

	raw uint8
}

// NewController returns the documented post-boot-ROM LCDC state
// (0x91): LCD on, BG on, tile data at 0x8000 (unsigned addressing),
// both tile maps at 0x9800.
func NewController() *Controller {
	c := &Controller{}
	c.Write(0x91)
	return c
}

// Write decodes a new LCDC value.
func (c *Controller) Write(value uint8) {
	c.raw = value
	c.Enabled = bits.Test(value, 7)
	c.WindowTileMapAddress = tileMapAddr(bits.Test(value, 6))
	c.WindowEnabled = bits.Test(value, 5)
	c.TileDataAddress = tileDataAddr(bits.Test(value, 4))
	c.BackgroundTileMapAddress = tileMapAddr(bits.Test(value, 3))
	c.SpriteHeight = 8 + uint8(bits.Val(value, 2))*8
	c.SpriteEnabled = bits.Test(value, 1)
	c.BackgroundEnabled = bits.Test(value, 0)
}

// Read returns the raw LCDC byte as last written.
func (c *Controller) Read() uint8 { return c.raw }

// UsingSignedTileData reports whether BG/window tile indices are signed
// (tile data base 0x8800, tile 0 at 0x9000) rather than unsigned
// (base 0x8000).
func (c *Controller) UsingSignedTileData() bool {
	return c.TileDataAddress == 0x8800
}

func tileMapAddr(high bool) uint16 {
	if high {
		return 0x9C00
	}
	return 0x9800
}

func tileDataAddr(high bool) uint16 {
	if high {
		return 0x8000
	}
	return 0x8800
}
