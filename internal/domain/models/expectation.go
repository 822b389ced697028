package models

import (
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
)

// ParamsFunc produces the expected arguments of an event or message.
type ParamsFunc func() scilla.Args

// StaticParams returns a ParamsFunc that always yields args.
func StaticParams(args scilla.Args) ParamsFunc {
	return func() scilla.Args { return args }
}

// ExpectedEvent describes an event a transaction should emit.
type ExpectedEvent struct {
	Name      string
	GetParams ParamsFunc
}

// ExpectedTransition describes an outgoing message a transaction should send.
// A nil Amount and an empty Recipient are not checked.
type ExpectedTransition struct {
	Tag       string
	Amount    any
	Recipient string
	GetParams ParamsFunc
}

// Params evaluates the expected arguments; a nil GetParams means none.
func (e ExpectedEvent) Params() scilla.Args {
	if e.GetParams == nil {
		return scilla.Args{}
	}
	return e.GetParams()
}

// Params evaluates the expected arguments; a nil GetParams means none.
func (e ExpectedTransition) Params() scilla.Args {
	if e.GetParams == nil {
		return scilla.Args{}
	}
	return e.GetParams()
}

// Suite is a named set of cases, usually loaded from a YAML file.
type Suite struct {
	Name  string
	Path  string
	Cases []*Case
}

// Case checks a single transaction receipt against expectations.
type Case struct {
	Name string

	// Exactly one of TxID and ReceiptFile locates the receipt.
	TxID        string
	ReceiptFile string

	// Success is the expected receipt status. nil means "true unless ErrorCode is set".
	Success *bool
	// ErrorCode, when set, is the code of the expected exception.
	ErrorCode *int

	// nil slices are not checked, except when ExpectNoEvents is set.
	Events         []ExpectedEvent
	ExpectNoEvents bool
	RewardEvents   []ExpectedEvent
	Transitions    []ExpectedTransition
}

// ExpectSuccess reports the receipt status the case expects.
func (c *Case) ExpectSuccess() bool {
	if c.Success != nil {
		return *c.Success
	}
	return c.ErrorCode == nil
}
