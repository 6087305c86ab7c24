package log

// NullLogger discards everything. Used by tests and by hosts that don't
// want emulator trace output.
type NullLogger struct{}

func (NullLogger) Infof(format string, args ...interface{})  {}
func (NullLogger) Errorf(format string, args ...interface{}) {}
func (NullLogger) Debugf(format string, args ...interface{}) {}

var _ Logger = NullLogger{}
