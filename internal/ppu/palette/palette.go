// Package palette maps the 2-bit DMG color indices produced by the
// renderer through BGP/OBP0/OBP1 into RGBA, using the fixed four-shade
// "pea soup" default palette.
package palette

// RGBA is a single opaque color.
type RGBA struct{ R, G, B, A uint8 }

// Default is the fixed palette tests and the default host use: shade 0
// (lightest) through shade 3 (darkest).
var Default = [4]RGBA{
	{0xE0, 0xF8, 0xD0, 0xFF},
	{0x88, 0xC0, 0x70, 0xFF},
	{0x34, 0x68, 0x56, 0xFF},
	{0x08, 0x18, 0x20, 0xFF},
}

// Palette is a BGP/OBP0/OBP1-style register: four 2-bit shade
// assignments packed into one byte, mapping a 2-bit color index to one
// of the four shades in Default.
type Palette struct {
	raw   uint8
	shade [4]uint8
}

// Set stores the raw register byte and unpacks the four 2-bit shade
// fields it encodes.
func (p *Palette) Set(value uint8) {
	p.raw = value
	for i := 0; i < 4; i++ {
		p.shade[i] = (value >> (uint(i) * 2)) & 0x3
	}
}

// Get returns the raw register byte.
func (p *Palette) Get() uint8 { return p.raw }

// Color maps a 2-bit color index through the palette to RGBA.
func (p *Palette) Color(index uint8) RGBA {
	return Default[p.shade[index&0x3]]
}
