package cheats

import (
	"fmt"
	"strconv"
	"strings"
)

// GameGenieCode is a parsed nine-digit Game Genie code, conventionally
// displayed hyphenated as ABC-DEF-GHI: AB is the replacement byte, FCDE
// (the digits at positions C,D,E,F reordered) is the target address
// XORed with 0xF000, and GI is a verification byte - XORed with 0xBA
// and rotated left two bits - that must match the ROM's actual contents
// for the patch to apply. H carries no decoded meaning.
type GameGenieCode struct {
	NewData uint8
	Address uint16
	OldData uint8

	Name    string
	Enabled bool
}

// ParseGameGenie decodes a code given with or without its conventional
// hyphens (ABC-DEF-GHI or ABCDEFGHI).
func ParseGameGenie(code string) (GameGenieCode, error) {
	digits := strings.ReplaceAll(code, "-", "")
	if len(digits) != 9 {
		return GameGenieCode{}, fmt.Errorf("invalid Game Genie code length: %d", len(digits))
	}

	newData, err := strconv.ParseUint(digits[0:2], 16, 8)
	if err != nil {
		return GameGenieCode{}, fmt.Errorf("invalid new-data digits: %w", err)
	}

	cdef := digits[2:6]
	fcde := cdef[3:4] + cdef[0:3]
	addr, err := strconv.ParseUint(fcde, 16, 16)
	if err != nil {
		return GameGenieCode{}, fmt.Errorf("invalid address digits: %w", err)
	}

	gi := digits[6:7] + digits[8:9]
	old, err := strconv.ParseUint(gi, 16, 8)
	if err != nil {
		return GameGenieCode{}, fmt.Errorf("invalid verification digits: %w", err)
	}
	rotated := uint8(old) ^ 0xBA

	return GameGenieCode{
		NewData: uint8(newData),
		Address: uint16(addr) ^ 0xF000,
		OldData: rotated<<2 | rotated>>6,
	}, nil
}
