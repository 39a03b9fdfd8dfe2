package logsvc

import "log"

// TestLogger logs everything to the standard logger and never exits, so
// Fatal in code under test does not kill the test binary.
type TestLogger struct {
	std *log.Logger
}

func NewTestLogger(std *log.Logger) *TestLogger {
	return &TestLogger{std: std}
}

func (l TestLogger) log(lvl, msg string, args []interface{}) {
	l.std.Printf("[%s] %s", lvl, msg)
	for _, arg := range args {
		l.std.Printf("%+v", arg)
	}
}

func (l TestLogger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args) }
func (l TestLogger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args) }
func (l TestLogger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args) }
func (l TestLogger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args) }
func (l TestLogger) Fatal(msg string, args ...interface{}) { l.log("FATAL", msg, args) }
