package core

import "fmt"

// AuditLogger is an append-only, timestamped write sink. Entries are never
// mutated, deleted or queried by this application; Record must be safe under
// concurrent writers.
type AuditLogger interface {
	Record(msg string) error
}

// Audit appends msg to the audit trail, best-effort: a write failure is
// reported to the app logger and swallowed so that it can never displace the
// primary result of the operation being audited.
func Audit(log Logger, audit AuditLogger, msg string) {
	if audit == nil {
		return
	}
	if err := audit.Record(msg); err != nil {
		log.Warn(fmt.Sprintf("audit write failed: %v", err), err)
	}
}
