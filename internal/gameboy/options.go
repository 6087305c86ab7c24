package gameboy

import (
	"github.com/nfsu/gb/internal/cartridge"
	"github.com/nfsu/gb/internal/cheats"
	"github.com/nfsu/gb/pkg/log"
)

// Option configures a GameBoy at construction time.
type Option func(*GameBoy)

// WithLogger injects the trace sink every subsystem logs through.
// Defaults to log.NullLogger{}.
func WithLogger(l log.Logger) Option {
	return func(g *GameBoy) { g.log = l }
}

// WithChecksumPolicy selects whether LoadROM rejects a ROM whose header
// checksum doesn't match. Defaults to cartridge.Permissive.
func WithChecksumPolicy(p cartridge.ChecksumPolicy) Option {
	return func(g *GameBoy) { g.checksumPolicy = p }
}

// WithCheats installs a cheat set: Game Genie codes patch ROM reads for
// the lifetime of the emulator, GameShark codes are poked into
// cartridge RAM once, at LoadROM time.
func WithCheats(s *cheats.Set) Option {
	return func(g *GameBoy) { g.cheats = s }
}
