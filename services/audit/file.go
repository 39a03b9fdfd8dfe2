// Package auditsvc records application audit events to an append-only log
// file. Entries are timestamped lines; the file is only ever opened in
// append mode so history cannot be rewritten through this package.
package auditsvc

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core"
)

var ErrWriteFailed = errors.New("audit log write failed")

const timestampLayout = "2006-01-02 15:04:05"

type fileLogger struct {
	mu   sync.Mutex
	file *os.File
}

var _ core.AuditLogger = (*fileLogger)(nil)

func NewFileLogger(path string) (*fileLogger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "opening audit log "+path)
	}
	return &fileLogger{file: f}, nil
}

func (l *fileLogger) Record(msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("[%s] %s\n", time.Now().Format(timestampLayout), msg)
	if _, err := l.file.WriteString(line); err != nil {
		return errors.Wrap(ErrWriteFailed, err.Error())
	}
	return nil
}

func (l *fileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// Path returns the underlying file name, for handlers that stream the log.
func (l *fileLogger) Path() string {
	return l.file.Name()
}
