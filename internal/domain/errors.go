package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrReceiptNotFound is returned when the node has no receipt for a transaction
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrNoNetwork is returned when a node is needed but no network is configured
	ErrNoNetwork = errors.New("no network configured")

	// ErrInvalidSuite is returned when a suite file cannot be used
	ErrInvalidSuite = errors.New("invalid suite")

	// ErrMismatch is returned when emitted records differ from expectations
	ErrMismatch = errors.New("expectation mismatch")

	// ErrVerificationFailed is returned when at least one case of a run failed
	ErrVerificationFailed = errors.New("verification failed")
)

type UnknownNetworkErr struct {
	Name      string
	Available []string
}

func (e UnknownNetworkErr) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("network '%s' not found: no [networks] configured in scilla-check.toml", e.Name)
	}

	available := make([]string, len(e.Available))
	copy(available, e.Available)
	sort.Strings(available)

	return fmt.Sprintf("network '%s' not found in scilla-check.toml, available: %s",
		e.Name, strings.Join(available, ", "))
}

func (e UnknownNetworkErr) Is(target error) bool {
	return target == ErrNotFound
}
