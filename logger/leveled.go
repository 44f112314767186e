package logger

// Leveled adapts a Logger to the key/value leveled logging style used by
// HTTP transport libraries (Error/Info/Debug/Warn with variadic pairs).
type Leveled struct {
	l *Logger
}

// Leveled returns a key/value adapter over l.
func (l *Logger) Leveled() *Leveled {
	return &Leveled{l: l}
}

func (a *Leveled) Error(msg string, keysAndValues ...interface{}) {
	a.l.Error(msg, Fields(keysAndValues...))
}

func (a *Leveled) Warn(msg string, keysAndValues ...interface{}) {
	a.l.Warn(msg, Fields(keysAndValues...))
}

func (a *Leveled) Info(msg string, keysAndValues ...interface{}) {
	a.l.Info(msg, Fields(keysAndValues...))
}

func (a *Leveled) Debug(msg string, keysAndValues ...interface{}) {
	a.l.Debug(msg, Fields(keysAndValues...))
}
