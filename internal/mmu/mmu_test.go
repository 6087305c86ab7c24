package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfsu/gb/internal/boot"
	"github.com/nfsu/gb/internal/cartridge"
	"github.com/nfsu/gb/internal/cheats"
	"github.com/nfsu/gb/internal/interrupts"
	"github.com/nfsu/gb/internal/joypad"
	"github.com/nfsu/gb/internal/ppu"
	"github.com/nfsu/gb/internal/timer"
	"github.com/nfsu/gb/pkg/log"
)

// testROM builds a minimal header-valid 32KiB ROM-only image.
func testROM() []byte {
	rom := make([]byte, 0x8000)
	for i := range rom {
		rom[i] = byte(i)
	}
	rom[0x0147] = 0x00 // ROM only
	rom[0x0148] = 0x00 // 32KiB
	rom[0x0149] = 0x00 // no RAM

	sum := uint8(0)
	for _, b := range rom[0x0134:0x014D] {
		sum = sum - b - 1
	}
	rom[0x014D] = sum
	return rom
}

func newTestMMU(t *testing.T, bootROM *boot.ROM) *MMU {
	t.Helper()
	cart, err := cartridge.New(testROM(), cartridge.Permissive)
	require.NoError(t, err)

	irq := interrupts.NewService()
	if bootROM == nil {
		bootROM = boot.New()
	}
	return New(cart, bootROM, ppu.New(irq), irq, joypad.New(irq), timer.New(irq), log.NullLogger{})
}

func TestWRAMAndEchoMirror(t *testing.T) {
	m := newTestMMU(t, nil)

	m.Write(0xC123, 0x42)
	assert.EqualValues(t, 0x42, m.Read(0xC123))
	assert.EqualValues(t, 0x42, m.Read(0xE123), "echo RAM must mirror work RAM reads")

	m.Write(0xE234, 0x24)
	assert.EqualValues(t, 0x24, m.Read(0xC234), "echo RAM writes must land in work RAM")
}

func TestUnusableRegion(t *testing.T) {
	m := newTestMMU(t, nil)

	m.Write(0xFEA0, 0x55)
	assert.EqualValues(t, 0xFF, m.Read(0xFEA0), "unusable region must read 0xFF")
	assert.EqualValues(t, 0xFF, m.Read(0xFEFF))
}

func TestHRAM(t *testing.T) {
	m := newTestMMU(t, nil)

	m.Write(0xFF80, 0x11)
	m.Write(0xFFFE, 0x22)
	assert.EqualValues(t, 0x11, m.Read(0xFF80))
	assert.EqualValues(t, 0x22, m.Read(0xFFFE))
}

func TestBootOverlayAndDisable(t *testing.T) {
	image := make([]byte, boot.Size)
	for i := range image {
		image[i] = 0xAA
	}
	b, err := boot.Load(image)
	require.NoError(t, err)

	m := newTestMMU(t, b)
	assert.EqualValues(t, 0xAA, m.Read(0x0000), "boot overlay must shadow cartridge ROM")
	assert.EqualValues(t, 0xAA, m.Read(0x00FF))
	assert.EqualValues(t, 0x00, m.Read(0x0100), "overlay ends at 0x0100")

	m.Write(0xFF50, 0x01)
	assert.EqualValues(t, 0x00, m.Read(0x0000), "writing 0xFF50 must disable the overlay permanently")
}

func TestOAMDMACopies160Bytes(t *testing.T) {
	m := newTestMMU(t, nil)

	for i := uint16(0); i < 0xA0; i++ {
		m.Write(0xC000+i, uint8(i)+1)
	}
	m.Write(0xFF46, 0xC0)

	for i := uint16(0); i < 0xA0; i++ {
		require.EqualValues(t, uint8(i)+1, m.Read(0xFE00+i), "OAM byte %d", i)
	}
	assert.EqualValues(t, 0xC0, m.Read(0xFF46), "DMA register must read back its last written value")
}

func TestRead16Write16LittleEndian(t *testing.T) {
	m := newTestMMU(t, nil)

	m.Write16(0xC000, 0xBEEF)
	assert.EqualValues(t, 0xEF, m.Read(0xC000), "low byte first")
	assert.EqualValues(t, 0xBE, m.Read(0xC001))
	assert.EqualValues(t, 0xBEEF, m.Read16(0xC000))
}

func TestSerialAndSoundAreStorageOnly(t *testing.T) {
	m := newTestMMU(t, nil)

	m.Write(0xFF01, 0x41)
	m.Write(0xFF02, 0x81)
	assert.EqualValues(t, 0x41, m.Read(0xFF01))
	assert.EqualValues(t, 0x81, m.Read(0xFF02))

	m.Write(0xFF10, 0x77)
	assert.EqualValues(t, 0x77, m.Read(0xFF10), "sound registers store last written value")
}

func TestInterruptRegisterRouting(t *testing.T) {
	m := newTestMMU(t, nil)

	m.Write(0xFFFF, 0x1F)
	assert.EqualValues(t, 0x1F, m.Read(0xFFFF))

	m.Write(0xFF0F, 0x01)
	assert.EqualValues(t, 0xE1, m.Read(0xFF0F), "IF reads with bits 5-7 forced high")
}

func TestROMWritesReachBankController(t *testing.T) {
	m := newTestMMU(t, nil)

	// A ROM-only cart has no banking logic; the write must be silently
	// accepted and ROM contents left untouched.
	before := m.Read(0x2000)
	m.Write(0x2000, 0x01)
	assert.Equal(t, before, m.Read(0x2000))
}

func TestGameGeniePatchesROMReads(t *testing.T) {
	m := newTestMMU(t, nil)

	set := &cheats.Set{}
	// Patches address 0x0100 (stored ^0xF000 -> F100 -> C,D,E,F digits
	// "1","0","0","F"), old byte 0x00, new byte 0x3E.
	require.NoError(t, set.AddGameGenie("3E1-00F-B0A", "test"))
	m.SetCheats(set)

	assert.EqualValues(t, 0x3E, m.Read(0x0100), "matching old byte must be patched")
	assert.EqualValues(t, 0x01, m.Read(0x0101), "other addresses untouched")

	set.Disable("test")
	assert.EqualValues(t, 0x00, m.Read(0x0100), "disabled codes must not patch")
}
