// Package gameboy is the orchestrator: it wires the CPU, MMU, PPU,
// interrupt controller, timer and joypad into one emulator instance and
// drives the per-frame loop (decode-execute, feed cycles to the timer
// and PPU, service interrupts, repeat until a full frame is produced).
package gameboy

import (
	"time"

	"github.com/nfsu/gb/internal/boot"
	"github.com/nfsu/gb/internal/cartridge"
	"github.com/nfsu/gb/internal/cheats"
	"github.com/nfsu/gb/internal/cpu"
	"github.com/nfsu/gb/internal/interrupts"
	"github.com/nfsu/gb/internal/joypad"
	"github.com/nfsu/gb/internal/mmu"
	"github.com/nfsu/gb/internal/ppu"
	"github.com/nfsu/gb/internal/timer"
	"github.com/nfsu/gb/pkg/log"
)

// FrameInterval is the real time between successive frames at the
// DMG's actual refresh rate, 1/59.7275 s, used when StepFrame is asked
// to pace itself against the wall clock.
const FrameInterval = 16742 * time.Microsecond

// GameBoy owns every subsystem of one emulator instance: CPU, MMU, PPU,
// interrupt controller, timer, and joypad are created together by
// LoadROM and torn down together when the GameBoy is discarded. There
// is no separate handle to any of them that outlives the GameBoy.
type GameBoy struct {
	CPU    *cpu.CPU
	MMU    *mmu.MMU
	PPU    *ppu.PPU
	IRQ    *interrupts.Service
	Joypad *joypad.State
	Timer  *timer.Timer

	boot           *boot.ROM
	cheats         *cheats.Set
	checksumPolicy cartridge.ChecksumPolicy
	log            log.Logger

	lastFrame time.Time
}

// New returns a GameBoy with no ROM loaded yet; Step/StepFrame return a
// *FatalError until LoadROM succeeds.
func New(opts ...Option) *GameBoy {
	g := &GameBoy{
		boot:           boot.New(),
		checksumPolicy: cartridge.Permissive,
		log:            log.NullLogger{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LoadBoot installs a 256-byte boot ROM image that overlays
// 0x0000-0x00FF until the game disables it via 0xFF50. Call before
// LoadROM; LoadROM reads whether a boot ROM is active to decide the
// CPU's initial PC.
func (g *GameBoy) LoadBoot(image []byte) error {
	r, err := boot.Load(image)
	if err != nil {
		return err
	}
	g.boot = r
	return nil
}

// LoadROM parses rom's header, constructs the MBC it declares, and
// wires every subsystem together, ready to Step. This is where Setup
// errors (malformed ROM) surface; no emulator state is observable if it
// returns an error.
func (g *GameBoy) LoadROM(rom []byte) error {
	cart, err := cartridge.New(rom, g.checksumPolicy)
	if err != nil {
		return err
	}

	g.IRQ = interrupts.NewService()
	g.Joypad = joypad.New(g.IRQ)
	g.Timer = timer.New(g.IRQ)
	g.PPU = ppu.New(g.IRQ)
	g.MMU = mmu.New(cart, g.boot, g.PPU, g.IRQ, g.Joypad, g.Timer, g.log)

	if g.cheats != nil {
		// The MBC drops external-RAM writes until RAM is enabled, so the
		// one-time GameShark pokes run with RAM enabled, then it is
		// disabled again as at power-on.
		cart.WriteROM(0x0000, 0x0A)
		g.cheats.Apply(cart)
		cart.WriteROM(0x0000, 0x00)
		g.MMU.SetCheats(g.cheats)
	}

	g.CPU = cpu.New(g.MMU, g.IRQ, g.log)
	if !g.boot.Active() {
		// No boot ROM: start as if it had already run to completion.
		g.CPU.Reset()
	}
	// else: cpu.New leaves every register, SP, and PC at zero, which is
	// exactly the state real hardware is in when the boot ROM takes
	// over at address 0x0000.

	return nil
}

// Step advances the emulator by exactly one CPU instruction (or one
// idle tick while halted/stopped), feeds the M-cycles it cost to the
// timer and PPU, and reports whether that step completed a frame (the
// PPU's VBlank entry).
func (g *GameBoy) Step() (frameComplete bool, err error) {
	if g.CPU == nil {
		g.log.Errorf("step: no ROM loaded")
		return false, &FatalError{Reason: "no ROM loaded"}
	}

	cycles := g.CPU.Step()
	if g.CPU.Fault != nil {
		return false, &FatalError{Reason: g.CPU.Fault.Error()}
	}

	g.Timer.Tick(cycles)
	frameComplete = g.PPU.Tick(cycles)
	return frameComplete, nil
}

// StepFrame runs Step repeatedly until a full frame has been produced.
// When pace is true, it sleeps so that successive StepFrame calls are
// spaced roughly FrameInterval apart; the sleep only ever happens at
// this frame boundary, so canceling between calls is always correct.
func (g *GameBoy) StepFrame(pace bool) error {
	for {
		frameComplete, err := g.Step()
		if err != nil {
			return err
		}
		if frameComplete {
			break
		}
	}

	if pace {
		if elapsed := time.Since(g.lastFrame); elapsed < FrameInterval {
			time.Sleep(FrameInterval - elapsed)
		}
		g.lastFrame = time.Now()
	}
	return nil
}

// Framebuffer returns the PPU-owned framebuffer, borrowed for the
// duration of the Step/StepFrame call that last wrote it.
func (g *GameBoy) Framebuffer() *ppu.Frame { return g.PPU.Framebuffer() }

// PressKey and ReleaseKey latch joypad state for the MMU to read back
// the next time the game polls 0xFF00.
func (g *GameBoy) PressKey(b joypad.Button)   { g.Joypad.Press(b) }
func (g *GameBoy) ReleaseKey(b joypad.Button) { g.Joypad.Release(b) }
