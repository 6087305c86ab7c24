// Package ppu implements the DMG pixel-processing unit: a cycle-driven
// scanline state machine (OAM search -> pixel transfer -> HBlank,
// repeated 144 times, then a 10-line VBlank) that composes background,
// window, and sprite tiles into a 160x144 RGBA framebuffer.
package ppu

import (
	"github.com/cespare/xxhash/v2"

	"github.com/nfsu/gb/internal/interrupts"
	"github.com/nfsu/gb/internal/ppu/lcd"
	"github.com/nfsu/gb/internal/ppu/palette"
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// Per-scanline mode durations in T-states. A line is always 456
// T-states regardless of how it's split; a full frame of 144 drawn
// lines plus the 10-line VBlank is 70224.
const (
	oamDuration      = 80
	transferDuration = 172
	hblankDuration   = 204
	lineDuration     = 456
	frameDuration    = 70224
)

// Frame is the row-major RGBA framebuffer the PPU owns and exposes by
// reference: 4 bytes (R,G,B,A) per pixel, A always 0xFF.
type Frame [ScreenWidth * ScreenHeight * 4]byte

// offColor is filled into the framebuffer while the LCD is switched
// off (LCDC bit 7 clear), approximating the powered-down panel.
var offColor = palette.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// requester is the narrow slice of interrupts.Service the PPU needs to
// raise VBlank and STAT interrupts.
type requester interface {
	Request(flag uint8)
}

// PPU is the DMG pixel-processing unit.
type PPU struct {
	Controller *lcd.Controller
	Status     *lcd.Status

	LY, LYC  uint8
	SCX, SCY uint8
	WX, WY   uint8

	BGP, OBP0, OBP1 palette.Palette

	vram [0x2000]byte
	oam  [0xA0]byte

	cycle    uint16 // T-states elapsed in the current line
	offCycle uint32 // T-states drained while the LCD is switched off

	frame Frame

	irq requester
}

// New constructs a PPU wired to irq for VBlank/STAT interrupt requests,
// in the documented post-boot-ROM state (LCDC=0x91: LCD on, BG on,
// unsigned tile data addressing, both tile maps at 0x9800; BGP=0xFC).
func New(irq requester) *PPU {
	p := &PPU{irq: irq}
	p.Controller = lcd.NewController()
	p.Status = lcd.NewStatus()
	p.BGP.Set(0xFC)
	p.OBP0.Set(0xFF)
	p.OBP1.Set(0xFF)
	return p
}

// Framebuffer returns a reference to the PPU-owned framebuffer. Callers
// must not read it until the Step/StepFrame call that last wrote it has
// returned; its contents are only complete at frame boundaries.
func (p *PPU) Framebuffer() *Frame { return &p.frame }

// FrameHash returns an xxhash digest of the current framebuffer,
// letting callers detect a changed frame without diffing 92,160 bytes
// by hand.
func (p *PPU) FrameHash() uint64 { return xxhash.Sum64(p.frame[:]) }

// Tick advances the PPU by mCycles M-cycles (4 T-states each),
// consumed from the same cycle accumulator the CPU produces, and
// reports whether a full frame (one VBlank entry) was just produced.
// While the LCD is switched off the clock is drained without raising
// VBlank; Tick still reports a frame boundary every 70224 T-states so
// frame-driven callers keep their pacing.
func (p *PPU) Tick(mCycles uint8) (frameComplete bool) {
	if !p.Controller.Enabled {
		p.offCycle += uint32(mCycles) * 4
		if p.offCycle >= frameDuration {
			p.offCycle -= frameDuration
			return true
		}
		return false
	}
	for i := uint16(0); i < uint16(mCycles)*4; i++ {
		if p.tickT() {
			frameComplete = true
		}
	}
	return frameComplete
}

func (p *PPU) tickT() (frameComplete bool) {
	p.cycle++
	switch p.Status.Mode {
	case lcd.OAMScan:
		if p.cycle == oamDuration {
			p.cycle = 0
			p.setMode(lcd.Transfer)
		}
	case lcd.Transfer:
		if p.cycle == transferDuration {
			p.cycle = 0
			p.renderScanline(p.LY)
			p.setMode(lcd.HBlank)
		}
	case lcd.HBlank:
		if p.cycle == hblankDuration {
			p.cycle = 0
			p.LY++
			if p.LY == 144 {
				p.setMode(lcd.VBlank)
				p.irq.Request(interrupts.VBlankFlag)
				frameComplete = true
			} else {
				p.setMode(lcd.OAMScan)
			}
			p.checkLYC()
		}
	case lcd.VBlank:
		if p.cycle == lineDuration {
			p.cycle = 0
			p.LY++
			if p.LY > 153 {
				p.LY = 0
				p.setMode(lcd.OAMScan)
			}
			p.checkLYC()
		}
	}
	return frameComplete
}

// setMode updates STAT's mode bits and, for the three mode-change
// interrupts STAT can enable, requests the LCD STAT interrupt.
func (p *PPU) setMode(mode lcd.Mode) {
	p.Status.Mode = mode
	switch mode {
	case lcd.OAMScan:
		if p.Status.OAMInterrupt {
			p.irq.Request(interrupts.LCDFlag)
		}
	case lcd.VBlank:
		if p.Status.VBlankInterrupt {
			p.irq.Request(interrupts.LCDFlag)
		}
	case lcd.HBlank:
		if p.Status.HBlankInterrupt {
			p.irq.Request(interrupts.LCDFlag)
		}
	}
}

// checkLYC raises the LCD STAT interrupt on the LY==LYC coincidence
// transition; the comparison is edge-triggered, not level-triggered.
func (p *PPU) checkLYC() {
	coincident := p.LY == p.LYC
	if coincident && !p.Status.Coincidence && p.Status.LYCInterrupt {
		p.irq.Request(interrupts.LCDFlag)
	}
	p.Status.Coincidence = coincident
}

// disable implements the LCDC-bit-7-clear contract: LY forced to 0,
// mode forced to HBlank, framebuffer filled with the off color.
func (p *PPU) disable() {
	p.LY = 0
	p.cycle = 0
	p.offCycle = 0
	p.Status.Mode = lcd.HBlank
	p.Status.Coincidence = false
	p.fillOff()
}

func (p *PPU) fillOff() {
	for y := uint8(0); y < ScreenHeight; y++ {
		for x := uint8(0); x < ScreenWidth; x++ {
			p.setPixel(x, y, offColor)
		}
	}
}

func (p *PPU) setPixel(x, y uint8, c palette.RGBA) {
	i := (int(y)*ScreenWidth + int(x)) * 4
	p.frame[i] = c.R
	p.frame[i+1] = c.G
	p.frame[i+2] = c.B
	p.frame[i+3] = c.A
}

// ReadVRAM/WriteVRAM/ReadOAM/WriteOAM satisfy mmu.Video's raw storage
// half; access-timing restrictions during OAM/Transfer modes are a
// documented non-goal (cycle-accurate sub-instruction memory timing).

func (p *PPU) ReadVRAM(address uint16) uint8         { return p.vram[address-0x8000] }
func (p *PPU) WriteVRAM(address uint16, value uint8) { p.vram[address-0x8000] = value }
func (p *PPU) ReadOAM(address uint16) uint8          { return p.oam[address-0xFE00] }
func (p *PPU) WriteOAM(address uint16, value uint8) { p.oam[address-0xFE00] = value }

// ReadRegister reads one of LCDC/STAT/SCY/SCX/LY/LYC/BGP/OBP0/OBP1/WY/WX.
// 0xFF46 (DMA) is handled by the MMU directly, not routed here.
func (p *PPU) ReadRegister(address uint16) uint8 {
	switch address {
	case lcd.ControlRegister:
		return p.Controller.Read()
	case lcd.StatusRegister:
		return p.Status.Read()
	case 0xFF42:
		return p.SCY
	case 0xFF43:
		return p.SCX
	case 0xFF44:
		return p.LY
	case 0xFF45:
		return p.LYC
	case 0xFF47:
		return p.BGP.Get()
	case 0xFF48:
		return p.OBP0.Get()
	case 0xFF49:
		return p.OBP1.Get()
	case 0xFF4A:
		return p.WY
	case 0xFF4B:
		return p.WX
	default:
		return 0xFF
	}
}

// WriteRegister writes one of the same registers ReadRegister handles.
// LY is read-only from the CPU side; writing it resets it to 0.
// Flipping LCDC's enable bit re-syncs the mode/LY state for the
// transition it causes.
func (p *PPU) WriteRegister(address uint16, value uint8) {
	switch address {
	case lcd.ControlRegister:
		wasEnabled := p.Controller.Enabled
		p.Controller.Write(value)
		if wasEnabled && !p.Controller.Enabled {
			p.disable()
		} else if !wasEnabled && p.Controller.Enabled {
			p.cycle = 0
			p.Status.Mode = lcd.OAMScan
		}
	case lcd.StatusRegister:
		p.Status.Write(value)
	case 0xFF42:
		p.SCY = value
	case 0xFF43:
		p.SCX = value
	case 0xFF44:
		p.LY = 0
	case 0xFF45:
		p.LYC = value
		p.checkLYC()
	case 0xFF47:
		p.BGP.Set(value)
	case 0xFF48:
		p.OBP0.Set(value)
	case 0xFF49:
		p.OBP1.Set(value)
	case 0xFF4A:
		p.WY = value
	case 0xFF4B:
		p.WX = value
	}
}
