// Package cartridge parses the DMG cartridge header and provides the
// two supported memory bank controllers (none, and MBC1). Anything
// beyond that mapper's 2MiB ROM / 32KiB RAM ceiling is out of scope.
package cartridge

// MBC is a memory bank controller: it owns the ROM and external RAM
// images and resolves CPU addresses in 0x0000-0x7FFF and 0xA000-0xBFFF
// against whichever bank is currently selected.
type MBC interface {
	ReadROM(address uint16) uint8
	WriteROM(address uint16, value uint8) // bank-select writes
	ReadRAM(address uint16) uint8
	WriteRAM(address uint16, value uint8)
}

// ChecksumPolicy controls whether New rejects a ROM whose header
// checksum doesn't match.
type ChecksumPolicy uint8

const (
	Permissive ChecksumPolicy = iota
	Strict
)

// SetupError reports a malformed ROM or BIOS image rejected before any
// emulator state became observable.
type SetupError struct {
	Reason string
}

func (e *SetupError) Error() string { return "cartridge setup: " + e.Reason }
