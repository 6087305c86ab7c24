package cartridge

import "testing"

// TestMBC1BankZeroCollapse covers the documented MBC1 quirk: selecting
// ROM bank 0x00/0x20/0x40/0x60 via the 5-bit register actually selects
// bank 0x01/0x21/0x41/0x61 — bank 0 is never reachable at 0x4000-0x7FFF.
func TestMBC1BankZeroCollapse(t *testing.T) {
	rom := buildROM(MBC1, 0x06, 0, 128) // 2MiB, 128 banks: enough for bank 0x61
	cart, err := New(rom, Permissive)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct{ selected, wantBank uint8 }{
		{0x00, 0x01},
		{0x20, 0x21},
		{0x40, 0x41},
		{0x60, 0x61},
	}
	for _, tc := range cases {
		cart.WriteROM(0x2000, tc.selected&0x1F)
		cart.WriteROM(0x4000, tc.selected>>5)
		got := cart.ReadROM(0x4000)
		if got != tc.wantBank {
			t.Errorf("select bank 0x%02X -> read bank marker %d, want %d", tc.selected, got, tc.wantBank)
		}
	}
}

func TestMBC1RAMEnableGating(t *testing.T) {
	rom := buildROM(MBC1RAM, 0, 0x02, 2) // 8KiB RAM
	cart, err := New(rom, Permissive)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cart.WriteRAM(0xA000, 0x42)
	if got := cart.ReadRAM(0xA000); got != 0xFF {
		t.Errorf("RAM write before enable must be dropped, read back 0x%02X, want 0xFF", got)
	}

	cart.WriteROM(0x0000, 0x0A) // enable
	cart.WriteRAM(0xA000, 0x42)
	if got := cart.ReadRAM(0xA000); got != 0x42 {
		t.Errorf("RAM read after enable = 0x%02X, want 0x42", got)
	}
}

func TestMBC1RAMBanking(t *testing.T) {
	rom := buildROM(MBC1RAM, 0, 0x03, 2) // 32KiB RAM, 4 banks
	cart, err := New(rom, Permissive)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cart.WriteROM(0x0000, 0x0A) // RAM enable
	cart.WriteROM(0x6000, 0x01) // switch to RAM-banking mode

	cart.WriteROM(0x4000, 0x00) // RAM bank 0
	cart.WriteRAM(0xA000, 0x11)
	cart.WriteROM(0x4000, 0x01) // RAM bank 1
	cart.WriteRAM(0xA000, 0x22)

	cart.WriteROM(0x4000, 0x00)
	if got := cart.ReadRAM(0xA000); got != 0x11 {
		t.Errorf("RAM bank 0 byte = 0x%02X, want 0x11", got)
	}
	cart.WriteROM(0x4000, 0x01)
	if got := cart.ReadRAM(0xA000); got != 0x22 {
		t.Errorf("RAM bank 1 byte = 0x%02X, want 0x22", got)
	}
}
