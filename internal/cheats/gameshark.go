package cheats

import (
	"fmt"
	"strconv"
)

// GameSharkCode is a parsed eight-digit GameShark code, formatted as
// ABCDEFGH: AB is the external RAM bank the poke targets, CD is the
// replacement byte, and GHEF (reordered) is the RAM address.
type GameSharkCode struct {
	RAMBank uint8
	Address uint16
	NewData uint8

	Name    string
	Enabled bool
}

// ParseGameShark decodes an eight-hex-digit code.
func ParseGameShark(code string) (GameSharkCode, error) {
	if len(code) != 8 {
		return GameSharkCode{}, fmt.Errorf("invalid GameShark code length: %d", len(code))
	}

	bank, err := strconv.ParseUint(code[0:2], 16, 8)
	if err != nil {
		return GameSharkCode{}, fmt.Errorf("invalid bank digits: %w", err)
	}
	newData, err := strconv.ParseUint(code[2:4], 16, 8)
	if err != nil {
		return GameSharkCode{}, fmt.Errorf("invalid new-data digits: %w", err)
	}

	// digits EFGH -> address GHEF
	ghef := code[4:8]
	efgh := ghef[2:4] + ghef[0:2]
	addr, err := strconv.ParseUint(efgh, 16, 16)
	if err != nil {
		return GameSharkCode{}, fmt.Errorf("invalid address digits: %w", err)
	}

	return GameSharkCode{
		RAMBank: uint8(bank),
		NewData: uint8(newData),
		Address: uint16(addr),
	}, nil
}
