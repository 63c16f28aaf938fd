package logging

// NullLogger drops every message. Documents use it when no logger is
// configured, so library callers get silent reads and writes by default.
// The zero value is ready to use.
type NullLogger struct{}

// NewNullLogger returns a logger that discards output.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}
func (*NullLogger) Info(string, ...interface{})    {}
func (*NullLogger) Error(string, ...interface{})   {}
