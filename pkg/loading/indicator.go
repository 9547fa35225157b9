package loading

// Indicator is what code reporting progress needs from a Loading. Accept it
// instead of *Loading so callers can pass Nop when there is no terminal.
type Indicator interface {
	Text(message string)
	Textf(format string, args ...interface{})
	Status(kind StatusKind, message string)
	Success(message string)
	Fail(message string)
	Warn(message string)
	Info(message string)
	Persist(kind StatusKind, message string)
	End()
}

var _ Indicator = (*Loading)(nil)
var _ Indicator = Nop{}

// Nop discards everything.
type Nop struct{}

func (Nop) Text(message string)                      {}
func (Nop) Textf(format string, args ...interface{}) {}
func (Nop) Status(kind StatusKind, message string)   {}
func (Nop) Success(message string)                   {}
func (Nop) Fail(message string)                      {}
func (Nop) Warn(message string)                      {}
func (Nop) Info(message string)                      {}
func (Nop) Persist(kind StatusKind, message string)  {}
func (Nop) End()                                     {}
