package verify

import (
	"fmt"

	"github.com/trebuchet-org/scilla-check/internal/domain"
)

// Field names the part of a record that did not match.
type Field string

const (
	// FieldPresence means records were expected but none were emitted, or the reverse
	FieldPresence  Field = "presence"
	FieldName      Field = "name"
	FieldTag       Field = "tag"
	FieldAmount    Field = "amount"
	FieldRecipient Field = "recipient"
	FieldParams    Field = "params"
	FieldStatus    Field = "status"
	FieldException Field = "exception"
)

// Mismatch is one difference between an emitted record and its expectation.
// Index is the position of the record, or -1 for presence mismatches.
type Mismatch struct {
	Index    int    `json:"index"`
	Field    Field  `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

func (m Mismatch) String() string {
	if m.Index < 0 {
		return fmt.Sprintf("%s: expected %s, received %s", m.Field, m.Expected, m.Actual)
	}
	return fmt.Sprintf("record %d %s: expected %s, received %s", m.Index, m.Field, m.Expected, m.Actual)
}

// Result is the outcome of comparing a record sequence. Comparison stops at
// the first failing record, so a failed Result holds one mismatch.
type Result struct {
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// OK reports whether every checked record matched.
func (r Result) OK() bool {
	return len(r.Mismatches) == 0
}

// Err returns a *MismatchError for the first mismatch, or nil.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &MismatchError{Mismatch: r.Mismatches[0]}
}

// MismatchError wraps domain.ErrMismatch.
type MismatchError struct {
	Mismatch Mismatch
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %s", domain.ErrMismatch, e.Mismatch)
}

func (e *MismatchError) Unwrap() error {
	return domain.ErrMismatch
}
