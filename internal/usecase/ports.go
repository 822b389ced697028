package usecase

import (
	"context"

	"github.com/trebuchet-org/scilla-check/internal/domain/config"
	"github.com/trebuchet-org/scilla-check/internal/domain/models"
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
	"github.com/trebuchet-org/scilla-check/internal/verify"
)

// ReceiptSource fetches transaction receipts from a node
type ReceiptSource interface {
	GetReceipt(ctx context.Context, txID string) (*models.Receipt, error)
}

// ReceiptReader reads receipts saved to disk
type ReceiptReader interface {
	ReadReceipt(ctx context.Context, path string) (*models.Receipt, error)
}

// SuiteLoader loads expectation suites
type SuiteLoader interface {
	LoadSuite(ctx context.Context, path string) (*models.Suite, error)
	// FindSuites lists the suite files below dir in lexical order
	FindSuites(ctx context.Context, dir string) ([]string, error)
}

// ArgsLoader loads typed argument files
type ArgsLoader interface {
	LoadArgs(ctx context.Context, path string) (scilla.Args, error)
}

// FixtureLoader loads the account and contract addresses of a test run
type FixtureLoader interface {
	LoadFixture(ctx context.Context, path string) (*models.Fixture, error)
}

// BlockClient reads and advances the block number of an isolated server
type BlockClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	IncreaseBlockNumber(ctx context.Context, delta uint64) error
}

// ParamsWriter writes an encoded parameter list
type ParamsWriter interface {
	WriteParams(ctx context.Context, path string, params []scilla.Param) error
}

// LocalConfigStore persists the local configuration
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, cfg *config.LocalConfig) error
	GetPath() string
}

// NetworkResolver resolves the networks of the project file
type NetworkResolver interface {
	Names() []string
	Resolve(name string) (*config.Network, error)
}

// NetworkProber checks that a network answers
type NetworkProber interface {
	Probe(ctx context.Context, network *config.Network) (uint64, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// Use case result types

// CheckKind names one of the checks run against a receipt
type CheckKind string

const (
	CheckReceipt      CheckKind = "receipt"
	CheckStatus       CheckKind = "status"
	CheckException    CheckKind = "exception"
	CheckEvents       CheckKind = "events"
	CheckRewardEvents CheckKind = "reward events"
	CheckTransitions  CheckKind = "transitions"
)

// CheckResult is the outcome of one check of a case
type CheckResult struct {
	Kind       CheckKind         `json:"kind"`
	Policy     string            `json:"policy,omitempty"`
	Passed     bool              `json:"passed"`
	Mismatches []verify.Mismatch `json:"mismatches,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// CaseResult is the outcome of one case
type CaseResult struct {
	Name   string        `json:"name"`
	TxID   string        `json:"tx,omitempty"`
	Source string        `json:"source,omitempty"`
	Checks []CheckResult `json:"checks"`
}

// Passed reports whether every check of the case passed
func (r *CaseResult) Passed() bool {
	for _, check := range r.Checks {
		if !check.Passed {
			return false
		}
	}
	return true
}

// SuiteResult is the outcome of one suite
type SuiteResult struct {
	Name  string        `json:"name"`
	Path  string        `json:"path"`
	Cases []*CaseResult `json:"cases"`
}

// Failed returns the number of failed cases
func (r *SuiteResult) Failed() int {
	failed := 0
	for _, c := range r.Cases {
		if !c.Passed() {
			failed++
		}
	}
	return failed
}

// VerifyResult is the outcome of a verify run
type VerifyResult struct {
	Suites  []*SuiteResult `json:"suites"`
	Total   int            `json:"total"`
	Passed  int            `json:"passed"`
	Failed  int            `json:"failed"`
	Skipped int            `json:"skipped"`
}

// EncodeResult is the encoded parameter list of an argument file
type EncodeResult struct {
	Path   string         `json:"path"`
	Output string         `json:"output,omitempty"`
	Params []scilla.Param `json:"params"`
}

// BlockNumberResult reports the block number of the node
type BlockNumberResult struct {
	Network  string  `json:"network"`
	Previous *uint64 `json:"previous,omitempty"` // set after an increase
	Current  uint64  `json:"current"`
}
