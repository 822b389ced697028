package models

import (
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
)

// Transaction is the subset of a GetTransaction response that is checked.
type Transaction struct {
	ID      string   `json:"ID"`
	Receipt *Receipt `json:"receipt"`
}

// Receipt is a transaction receipt as reported by the node.
// EventLogs and Transitions are nil when the receipt carries no such field.
type Receipt struct {
	Success       bool         `json:"success"`
	CumulativeGas string       `json:"cumulative_gas,omitempty"`
	EpochNum      string       `json:"epoch_num,omitempty"`
	EventLogs     []Event      `json:"event_logs,omitempty"`
	Transitions   []Transition `json:"transitions,omitempty"`
	Exceptions    []Exception  `json:"exceptions,omitempty"`
}

// Event is a contract-emitted event.
type Event struct {
	EventName string         `json:"_eventname"`
	Address   string         `json:"address,omitempty"`
	Params    []scilla.Param `json:"params"`
}

// Transition is an outgoing message sent while executing the transaction.
type Transition struct {
	Addr  string  `json:"addr,omitempty"`
	Depth int     `json:"depth"`
	Msg   Message `json:"msg"`
}

// Message is the message body of a Transition.
type Message struct {
	Tag       string         `json:"_tag"`
	Amount    string         `json:"_amount"`
	Recipient string         `json:"_recipient"`
	Params    []scilla.Param `json:"params"`
}

// Exception is an exception raised by the interpreter.
type Exception struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// FirstException returns the message of the first exception, if any.
func (r *Receipt) FirstException() (string, bool) {
	if r == nil || len(r.Exceptions) == 0 {
		return "", false
	}
	return r.Exceptions[0].Message, true
}
