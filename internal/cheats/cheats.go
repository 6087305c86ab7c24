// Package cheats parses Game Genie and GameShark cheat codes and
// applies them against a running cartridge/MMU: a Game Genie code
// patches ROM reads at one address, a GameShark code is a one-time
// poke into cartridge RAM. Neither alters the CPU or PPU contracts.
package cheats

import "fmt"

// Set holds every loaded cheat code, Game Genie and GameShark alike.
type Set struct {
	GameGenie []GameGenieCode
	GameShark []GameSharkCode
}

// RAMWriter is the slice of cartridge.Cartridge a GameShark poke needs.
type RAMWriter interface {
	WriteRAM(address uint16, value uint8)
}

// AddGameGenie parses and appends a Game Genie code (named for later
// Enable/Disable lookups), enabled by default.
func (s *Set) AddGameGenie(code, name string) error {
	c, err := ParseGameGenie(code)
	if err != nil {
		return fmt.Errorf("cheats: %w", err)
	}
	c.Name = name
	c.Enabled = true
	s.GameGenie = append(s.GameGenie, c)
	return nil
}

// AddGameShark parses and appends a GameShark code, enabled by default.
func (s *Set) AddGameShark(code, name string) error {
	c, err := ParseGameShark(code)
	if err != nil {
		return fmt.Errorf("cheats: %w", err)
	}
	c.Name = name
	c.Enabled = true
	s.GameShark = append(s.GameShark, c)
	return nil
}

// Enable/Disable toggle every code loaded under name, Game Genie and
// GameShark alike.
func (s *Set) Enable(name string)  { s.setEnabled(name, true) }
func (s *Set) Disable(name string) { s.setEnabled(name, false) }

func (s *Set) setEnabled(name string, enabled bool) {
	for i := range s.GameGenie {
		if s.GameGenie[i].Name == name {
			s.GameGenie[i].Enabled = enabled
		}
	}
	for i := range s.GameShark {
		if s.GameShark[i].Name == name {
			s.GameShark[i].Enabled = enabled
		}
	}
}

// PatchROM applies any enabled Game Genie patch targeting address to a
// freshly read ROM byte. A patch only takes effect when the verification
// byte (OldData) matches what's actually in ROM, same as the real
// cartridge adapter: a mismatch means the code was written for a
// different ROM revision, so it's left alone.
func (s *Set) PatchROM(address uint16, value uint8) uint8 {
	for _, c := range s.GameGenie {
		if c.Enabled && c.Address == address && c.OldData == value {
			return c.NewData
		}
	}
	return value
}

// Apply pokes every enabled GameShark code directly into cartridge RAM.
// It's a one-time write, not an intercept: real GameShark hardware
// patches RAM contents once, at activation time, not on every access.
// Codes targeting addresses outside the external-RAM window are skipped;
// they would need re-poking every frame to stick in work RAM. RAMBank
// is not consulted: each poke lands in whichever RAM bank the cartridge
// currently maps at that address.
func (s *Set) Apply(ram RAMWriter) {
	for _, c := range s.GameShark {
		if c.Enabled && c.Address >= 0xA000 && c.Address < 0xC000 {
			ram.WriteRAM(c.Address, c.NewData)
		}
	}
}
