package cartridge

// Cartridge owns a ROM image's parsed header and the MBC that resolves
// bus accesses against it.
type Cartridge struct {
	Header Header
	mbc    MBC
}

// New parses rom's header and constructs the appropriate MBC. It
// returns a *SetupError, never a panic, for every malformed-ROM case
// per the "setup errors reported to the caller" contract: too short, an
// unsupported mapper byte, or (under Strict policy) a header checksum
// mismatch.
func New(rom []byte, policy ChecksumPolicy) (*Cartridge, error) {
	if len(rom) < 0x0150 {
		return nil, &SetupError{Reason: "ROM shorter than minimum header size"}
	}

	header := ParseHeader(rom)
	if !header.SizeCodesValid() {
		return nil, &SetupError{Reason: "invalid ROM/RAM bank code in header"}
	}
	if policy == Strict && !header.ChecksumOK() {
		return nil, &SetupError{Reason: "header checksum mismatch"}
	}

	var mbc MBC
	switch header.CartridgeType {
	case ROM:
		mbc = newMBC0(rom, header.RAMSize)
	case MBC1, MBC1RAM, MBC1RAMBATT:
		mbc = newMBC1(rom, header.RAMSize)
	default:
		return nil, &SetupError{Reason: "unsupported mapper type"}
	}

	return &Cartridge{Header: header, mbc: mbc}, nil
}

// ReadROM reads from 0x0000-0x7FFF.
func (c *Cartridge) ReadROM(address uint16) uint8 { return c.mbc.ReadROM(address) }

// WriteROM routes a 0x0000-0x7FFF write to the mapper's control
// registers; it never touches ROM contents.
func (c *Cartridge) WriteROM(address uint16, value uint8) { c.mbc.WriteROM(address, value) }

// ReadRAM reads from 0xA000-0xBFFF.
func (c *Cartridge) ReadRAM(address uint16) uint8 { return c.mbc.ReadRAM(address) }

// WriteRAM writes to 0xA000-0xBFFF.
func (c *Cartridge) WriteRAM(address uint16, value uint8) { c.mbc.WriteRAM(address, value) }
