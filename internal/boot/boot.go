// Package boot holds the optional 256-byte DMG boot ROM and the latch
// that overlays it onto 0x0000-0x00FF until the game disables it by
// writing to 0xFF50.
package boot

import "github.com/nfsu/gb/internal/cartridge"

const Size = 0x100

// ROM overlays the first 256 bytes of address space until Disable is
// called.
type ROM struct {
	data    [Size]byte
	present bool
	active  bool
}

// New returns an inactive overlay with no image loaded.
func New() *ROM {
	return &ROM{}
}

// Load installs a boot ROM image. data must be exactly Size bytes.
func Load(data []byte) (*ROM, error) {
	if len(data) != Size {
		return nil, &cartridge.SetupError{Reason: "boot ROM must be exactly 256 bytes"}
	}
	r := &ROM{present: true, active: true}
	copy(r.data[:], data)
	return r, nil
}

// Active reports whether the overlay currently shadows cartridge ROM.
func (r *ROM) Active() bool { return r.active }

// Read returns the overlay byte at address, which must be < Size.
func (r *ROM) Read(address uint16) uint8 { return r.data[address] }

// Disable permanently removes the overlay; writing any value to 0xFF50
// triggers this on real hardware.
func (r *ROM) Disable() { r.active = false }
