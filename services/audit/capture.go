package auditsvc

import "sync"

// CaptureLogger keeps recorded entries in memory. It backs the test suites.
type CaptureLogger struct {
	mu      sync.Mutex
	Entries []string

	// Err, when set, is returned from Record after capturing the entry.
	Err error
}

func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{Entries: make([]string, 0)}
}

func (l *CaptureLogger) Record(msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Err != nil {
		return l.Err
	}
	l.Entries = append(l.Entries, msg)
	return nil
}

func (l *CaptureLogger) Recorded() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.Entries))
	copy(out, l.Entries)
	return out
}
