package cartridge

// buildROM produces a minimal, header-valid ROM image of romBanks *
// 0x4000 bytes, with cartType/ramCode written into the header and a
// correct header checksum, bank N's first byte set to byte(n) so tests
// can tell which bank got selected.
func buildROM(cartType Type, romSizeCode, ramCode uint8, romBanks int) []byte {
	rom := make([]byte, romBanks*0x4000)
	for bank := 0; bank < romBanks; bank++ {
		rom[bank*0x4000] = byte(bank)
	}
	copy(rom[0x0134:], "TESTROM")
	rom[0x0147] = byte(cartType)
	rom[0x0148] = romSizeCode
	rom[0x0149] = ramCode

	sum := uint8(0)
	for _, b := range rom[0x0134:0x014D] {
		sum = sum - b - 1
	}
	rom[0x014D] = sum
	return rom
}
