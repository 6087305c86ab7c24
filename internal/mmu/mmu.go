// Package mmu provides the DMG memory management unit: the uniform
// 16-bit address space read/write the CPU operates through, cartridge
// dispatch, boot-ROM overlay, echo RAM mirroring, and IO register
// storage for the subsystems that don't own their own MMIO block.
package mmu

import (
	"github.com/nfsu/gb/internal/boot"
	"github.com/nfsu/gb/internal/cartridge"
	"github.com/nfsu/gb/internal/cheats"
	"github.com/nfsu/gb/pkg/log"
)

// Video is the subset of the PPU the MMU routes VRAM/OAM/register
// traffic to.
type Video interface {
	ReadVRAM(address uint16) uint8
	WriteVRAM(address uint16, value uint8)
	ReadOAM(address uint16) uint8
	WriteOAM(address uint16, value uint8)
	ReadRegister(address uint16) uint8
	WriteRegister(address uint16, value uint8)
}

// Interrupts is the register-storage slice of interrupts.Service the
// MMU needs for IF/IE at 0xFF0F/0xFFFF.
type Interrupts interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Joypad is the register slice of joypad.State the MMU routes 0xFF00
// through.
type Joypad interface {
	Read() uint8
	Write(value uint8)
}

// Timer is the register slice of timer.Timer the MMU routes
// 0xFF04-0xFF07 through.
type Timer interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the DMG's full 64KiB address space.
type MMU struct {
	Cart *cartridge.Cartridge
	Boot *boot.ROM
	PPU  Video
	IRQ  Interrupts
	Pad  Joypad
	Tim  Timer

	wram [0x2000]byte
	hram [0x7F]byte

	serial [2]byte
	sound  [0x30]byte
	dmaReg uint8

	cheats *cheats.Set

	log log.Logger
}

// SetCheats installs a cheat set whose Game Genie codes patch ROM reads
// as they're fetched. nil disables patching. GameShark codes are
// applied once, directly to cartridge RAM, via cheats.Set.Apply.
func (m *MMU) SetCheats(s *cheats.Set) { m.cheats = s }

// New wires an MMU to its subsystems. boot may have no image loaded
// (boot.New()), in which case the overlay is simply inactive and reads
// of 0x0000-0x00FF fall through to the cartridge.
func New(cart *cartridge.Cartridge, bootROM *boot.ROM, ppu Video, irq Interrupts, pad Joypad, tim Timer, logger log.Logger) *MMU {
	return &MMU{Cart: cart, Boot: bootROM, PPU: ppu, IRQ: irq, Pad: pad, Tim: tim, log: logger}
}

// Read returns the byte at address, per the hardware contract: unmapped
// reads return 0xFF, never panic.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address < 0x0100 && m.Boot.Active():
		return m.Boot.Read(address)
	case address < 0x8000:
		value := m.Cart.ReadROM(address)
		if m.cheats != nil {
			value = m.cheats.PatchROM(address, value)
		}
		return value
	case address < 0xA000:
		return m.PPU.ReadVRAM(address)
	case address < 0xC000:
		return m.Cart.ReadRAM(address)
	case address < 0xE000:
		return m.wram[address-0xC000]
	case address < 0xFE00: // echo RAM mirrors 0xC000-0xDDFF
		return m.wram[address-0xE000]
	case address < 0xFEA0:
		return m.PPU.ReadOAM(address)
	case address < 0xFF00: // unusable
		return 0xFF
	case address < 0xFF80:
		return m.readIO(address)
	case address < 0xFFFF:
		return m.hram[address-0xFF80]
	default: // 0xFFFF
		return m.IRQ.Read(address)
	}
}

// Write stores value at address, per the hardware contract: writes into
// ROM space are interpreted as bank-controller commands, writes to
// unmapped or read-only regions are silently dropped.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		m.Cart.WriteROM(address, value)
	case address < 0xA000:
		m.PPU.WriteVRAM(address, value)
	case address < 0xC000:
		m.Cart.WriteRAM(address, value)
	case address < 0xE000:
		m.wram[address-0xC000] = value
	case address < 0xFE00:
		m.wram[address-0xE000] = value
	case address < 0xFEA0:
		m.PPU.WriteOAM(address, value)
	case address < 0xFF00: // unusable
	case address < 0xFF80:
		m.writeIO(address, value)
	case address < 0xFFFF:
		m.hram[address-0xFF80] = value
	default: // 0xFFFF
		m.IRQ.Write(address, value)
	}
}

// Read16 reads a little-endian word: low byte at address, high byte at
// address+1.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 stores a little-endian word: low byte at address, high byte
// at address+1.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

func (m *MMU) readIO(address uint16) uint8 {
	switch {
	case address == 0xFF00:
		return m.Pad.Read()
	case address == 0xFF01 || address == 0xFF02:
		return m.serial[address-0xFF01]
	case address >= 0xFF04 && address <= 0xFF07:
		return m.Tim.Read(address)
	case address == 0xFF0F:
		return m.IRQ.Read(address)
	case address >= 0xFF10 && address <= 0xFF3F:
		return m.sound[address-0xFF10]
	case address == 0xFF46:
		return m.dmaReg
	case address >= 0xFF40 && address <= 0xFF4B:
		return m.PPU.ReadRegister(address)
	default:
		return 0xFF
	}
}

func (m *MMU) writeIO(address uint16, value uint8) {
	switch {
	case address == 0xFF00:
		m.Pad.Write(value)
	case address == 0xFF01:
		m.serial[0] = value
	case address == 0xFF02:
		m.serial[1] = value
		if value == 0x81 {
			m.log.Debugf("serial byte: 0x%02X (%q)", m.serial[0], rune(m.serial[0]))
		}
	case address >= 0xFF04 && address <= 0xFF07:
		m.Tim.Write(address, value)
	case address == 0xFF0F:
		m.IRQ.Write(address, value)
	case address >= 0xFF10 && address <= 0xFF3F:
		m.sound[address-0xFF10] = value
	case address == 0xFF46:
		m.dmaReg = value
		m.doDMA(value)
	case address >= 0xFF40 && address <= 0xFF4B:
		m.PPU.WriteRegister(address, value)
	case address == 0xFF50:
		m.Boot.Disable()
	default:
		m.log.Debugf("unhandled IO write 0x%02X -> 0x%04X", value, address)
	}
}

// doDMA performs the OAM DMA transfer triggered by a write to 0xFF46:
// 160 bytes are copied from value<<8 into OAM (0xFE00-0xFE9F). Real
// hardware takes 160 M-cycles and blocks CPU access to most memory for
// the duration; this module performs it instantaneously, a documented
// simplification of sub-instruction memory timing.
func (m *MMU) doDMA(value uint8) {
	src := uint16(value) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.PPU.WriteOAM(0xFE00+i, m.Read(src+i))
	}
}

