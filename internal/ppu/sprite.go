package ppu

// sprite is one decoded 4-byte OAM entry: Y/X already adjusted by the
// documented -16/-8 offset so they're directly comparable to LY/screen
// X, which on real hardware lets off-screen sprites (Y<16, e.g.) be
// expressed without wraparound.
type sprite struct {
	Y, X     int
	Tile     uint8
	Priority bool // true: sprite shows only over BG color 0
	FlipY    bool
	FlipX    bool
	Palette  uint8 // 0 -> OBP0, 1 -> OBP1
	OAMIndex uint8
}

func readSprite(oam *[0xA0]byte, index uint8) sprite {
	base := int(index) * 4
	attr := oam[base+3]
	return sprite{
		Y:        int(oam[base]) - 16,
		X:        int(oam[base+1]) - 8,
		Tile:     oam[base+2],
		Priority: attr&0x80 != 0,
		FlipY:    attr&0x40 != 0,
		FlipX:    attr&0x20 != 0,
		Palette:  attr >> 4 & 1,
		OAMIndex: index,
	}
}
