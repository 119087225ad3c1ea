package options

// Logger receives the diagnostics an Options emits, such as an entry being
// replaced by a value of a different type or being deleted.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DefaultLogger discards everything. It is used when no logger is configured.
type DefaultLogger struct{}

func (l *DefaultLogger) Debug(format string, args ...interface{}) {}
func (l *DefaultLogger) Info(format string, args ...interface{})  {}
func (l *DefaultLogger) Warn(format string, args ...interface{})  {}
func (l *DefaultLogger) Error(format string, args ...interface{}) {}

// NewDefaultLogger returns the no-op logger used by New.
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}
