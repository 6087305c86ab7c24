package gameboy

// Setup failures (malformed ROM, wrong-size boot image) surface from
// LoadROM/LoadBoot as the cartridge package's *SetupError; no emulator
// state is observable when they do.

// FatalError is returned by Step/StepFrame when a step cannot proceed:
// the CPU decoded an UNDEFINED opcode, or no ROM has been loaded yet.
// The emulator is left in a defined but halted state, not torn down.
type FatalError struct{ Reason string }

func (e *FatalError) Error() string { return "gameboy fatal: " + e.Reason }
