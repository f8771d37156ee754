package auditlog

import (
	"fmt"
	"strings"
	"time"
)

// Status represents the recorded outcome of an audited statement.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusPending Status = "pending"
)

var AllStatuses = map[Status]struct{}{
	StatusSuccess: {},
	StatusError:   {},
	StatusPending: {},
}

// Entry is one append-only audit row describing a mutating API call.
type Entry struct {
	ID            int64
	OperationType string
	TableName     string
	Statement     string
	ExecutedAt    time.Time
	Status        Status
	ErrorMessage  string
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.Statement) == "" {
		return fmt.Errorf("audit entry statement is required")
	}
	if _, ok := AllStatuses[e.Status]; !ok {
		return fmt.Errorf("invalid audit entry status: %s", e.Status)
	}

	return nil
}
