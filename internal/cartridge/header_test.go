package cartridge

import "testing"

func TestParseHeaderFields(t *testing.T) {
	rom := buildROM(MBC1, 0x01, 0x02, 4) // romSizeCode 1 = 64KiB, ramCode 2 = 8KiB
	h := ParseHeader(rom)

	if h.Title != "TESTROM" {
		t.Errorf("Title = %q, want TESTROM", h.Title)
	}
	if h.CartridgeType != MBC1 {
		t.Errorf("CartridgeType = 0x%02X, want MBC1", h.CartridgeType)
	}
	if h.ROMSize != 64*1024 {
		t.Errorf("ROMSize = %d, want 65536", h.ROMSize)
	}
	if h.RAMSize != 8*1024 {
		t.Errorf("RAMSize = %d, want 8192", h.RAMSize)
	}
	if !h.ChecksumOK() {
		t.Error("ChecksumOK() = false for a header buildROM computed itself")
	}
}

func TestChecksumMismatch(t *testing.T) {
	rom := buildROM(ROM, 0, 0, 2)
	rom[0x014D]++
	h := ParseHeader(rom)
	if h.ChecksumOK() {
		t.Error("ChecksumOK() = true after corrupting the checksum byte")
	}
}
