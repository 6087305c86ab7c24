package cpu

import "github.com/nfsu/gb/pkg/log"

// testBus is a flat 64KiB memory, enough to exercise decode/execute
// without pulling in the mmu package and its cartridge/PPU dependencies.
type testBus struct {
	mem [0x10000]byte
}

func (b *testBus) Read(address uint16) uint8         { return b.mem[address] }
func (b *testBus) Write(address uint16, value uint8) { b.mem[address] = value }
func (b *testBus) load(address uint16, bytes ...uint8) {
	copy(b.mem[address:], bytes)
}

// testIRQ is a no-op Interrupts implementation: IME is always false and
// nothing is ever pending, so CPU.Step never tries to service anything
// unless a test explicitly flips requested/enabled.
type testIRQ struct {
	ime       bool
	requested bool
	vector    uint16
	hasVector bool
}

func (t *testIRQ) Pending() (uint16, bool) {
	if t.hasVector {
		return t.vector, true
	}
	return 0, false
}
func (t *testIRQ) AnyRequested() bool { return t.requested }
func (t *testIRQ) Ack(uint16)         {}
func (t *testIRQ) IME() bool          { return t.ime }
func (t *testIRQ) SetIME(v bool)      { t.ime = v }

func newTestCPU() (*CPU, *testBus, *testIRQ) {
	bus := &testBus{}
	irq := &testIRQ{}
	c := New(bus, irq, log.NullLogger{})
	return c, bus, irq
}
