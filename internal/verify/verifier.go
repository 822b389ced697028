package verify

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/scilla-check/internal/domain/models"
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
)

// Verifier compares emitted events and messages against expectations.
//
// Records are matched by position over the emitted sequence. Positions
// without an expectation, and placeholder expectations (no name or tag and
// nothing else set), are not checked. The first failing record ends the
// comparison.
type Verifier struct {
	log *slog.Logger
}

// NewVerifier creates a verifier that reports mismatches to log.
func NewVerifier(log *slog.Logger) *Verifier {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Verifier{log: log}
}

// Events compares emitted events with want.
func (v *Verifier) Events(actual []models.Event, want []models.ExpectedEvent) Result {
	return v.EventsWithPolicy(actual, want, Exact)
}

// RewardEvents compares emitted events with want, ignoring the order of
// list parameters whose entries are constructor values (reward lists).
func (v *Verifier) RewardEvents(actual []models.Event, want []models.ExpectedEvent) Result {
	return v.EventsWithPolicy(actual, want, DescendingByFirstArgument)
}

// EventsWithPolicy compares emitted events with want, canonicalizing both
// parameter lists with policy first.
func (v *Verifier) EventsWithPolicy(actual []models.Event, want []models.ExpectedEvent, policy Policy) Result {
	if actual == nil {
		return v.presence("events", want == nil, len(want))
	}

	for i, event := range actual {
		if i >= len(want) {
			break
		}
		exp := want[i]
		if exp.Name == "" && exp.GetParams == nil {
			continue
		}

		if event.EventName != exp.Name {
			return v.mismatch(i, FieldName, exp.Name, event.EventName)
		}

		if res, ok := v.compareParams(i, event.Params, exp.Params(), policy); !ok {
			return res
		}
	}

	return Result{}
}

// Transitions compares emitted messages with want. Amount and recipient are
// only checked when the expectation declares them.
func (v *Verifier) Transitions(actual []models.Transition, want []models.ExpectedTransition) Result {
	if actual == nil {
		return v.presence("transitions", want == nil, len(want))
	}

	for i, transition := range actual {
		if i >= len(want) {
			break
		}
		exp := want[i]
		if exp.Tag == "" && exp.Amount == nil && exp.Recipient == "" && exp.GetParams == nil {
			continue
		}
		msg := transition.Msg

		if exp.Amount != nil {
			amount := scilla.DecimalString(exp.Amount)
			if msg.Amount != amount {
				return v.mismatch(i, FieldAmount, amount, msg.Amount)
			}
		}

		if exp.Recipient != "" && msg.Recipient != exp.Recipient {
			return v.mismatch(i, FieldRecipient, exp.Recipient, msg.Recipient)
		}

		if msg.Tag != exp.Tag {
			return v.mismatch(i, FieldTag, exp.Tag, msg.Tag)
		}

		if res, ok := v.compareParams(i, msg.Params, exp.Params(), Exact); !ok {
			return res
		}
	}

	return Result{}
}

func (v *Verifier) compareParams(index int, actual []scilla.Param, args scilla.Args, policy Policy) (Result, bool) {
	expected := scilla.BuildParams(args)

	want := serialize(policy.Canonicalize(expected))
	got := serialize(policy.Canonicalize(actual))
	if want == got {
		return Result{}, true
	}

	return v.mismatch(index, FieldParams, want, got), false
}

func (v *Verifier) presence(kind string, ok bool, expected int) Result {
	if ok {
		return Result{}
	}
	return v.mismatch(-1, FieldPresence, fmt.Sprintf("%d %s", expected, kind), "none")
}

func (v *Verifier) mismatch(index int, field Field, expected, actual string) Result {
	v.log.Debug("expectation mismatch",
		"index", index,
		"field", string(field),
		"expected", expected,
		"received", actual,
	)
	return Result{Mismatches: []Mismatch{{
		Index:    index,
		Field:    field,
		Expected: expected,
		Actual:   actual,
	}}}
}

// serialize returns the canonical text form used for parameter equality.
func serialize(params []scilla.Param) string {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("<unserializable: %v>", err)
	}
	return string(raw)
}
