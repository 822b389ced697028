package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
)

const sampleTransaction = `{
  "ID": "4a7b3f",
  "receipt": {
    "cumulative_gas": "1205",
    "epoch_num": "42",
    "event_logs": [
      {
        "_eventname": "Deposit",
        "address": "0x1234567890abcdef1234567890abcdef12345678",
        "params": [
          {"vname": "user", "type": "ByStr20", "value": "0xabc"},
          {"vname": "amount", "type": "Uint128", "value": "100"}
        ]
      }
    ],
    "transitions": [
      {
        "addr": "0x1234567890abcdef1234567890abcdef12345678",
        "depth": 0,
        "msg": {
          "_tag": "TransferFrom",
          "_amount": "0",
          "_recipient": "0xfedcba",
          "params": [
            {"vname": "rewards", "type": "List (Pair (ByStr20) (Uint128))",
             "value": [{"argtypes": ["ByStr20", "Uint128"], "arguments": ["0xaa", "5"], "constructor": "Pair"}]}
          ]
        }
      }
    ],
    "success": true
  }
}`

func TestTransactionDecode(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(sampleTransaction), &tx))
	require.NotNil(t, tx.Receipt)

	r := tx.Receipt
	assert.True(t, r.Success)
	assert.Equal(t, "1205", r.CumulativeGas)
	require.Len(t, r.EventLogs, 1)
	assert.Equal(t, "Deposit", r.EventLogs[0].EventName)
	assert.Equal(t, scilla.Scalar("100"), r.EventLogs[0].Params[1].Value)

	require.Len(t, r.Transitions, 1)
	msg := r.Transitions[0].Msg
	assert.Equal(t, "TransferFrom", msg.Tag)
	assert.Equal(t, "0xfedcba", msg.Recipient)
	assert.Equal(t, scilla.List{
		scilla.ADT{
			Constructor: "Pair",
			ArgTypes:    []string{"ByStr20", "Uint128"},
			Arguments:   []scilla.Value{scilla.Scalar("0xaa"), scilla.Scalar("5")},
		},
	}, msg.Params[0].Value)

	assert.Nil(t, r.Exceptions)
	_, ok := r.FirstException()
	assert.False(t, ok)
}

func TestReceiptWithoutEvents(t *testing.T) {
	var r Receipt
	require.NoError(t, json.Unmarshal([]byte(`{"success":false,"exceptions":[{"line":12,"message":"boom"}]}`), &r))

	assert.Nil(t, r.EventLogs)
	assert.Nil(t, r.Transitions)
	msg, ok := r.FirstException()
	assert.True(t, ok)
	assert.Equal(t, "boom", msg)
}

func TestCaseExpectSuccess(t *testing.T) {
	code := 7
	no := false

	assert.True(t, (&Case{}).ExpectSuccess())
	assert.False(t, (&Case{ErrorCode: &code}).ExpectSuccess())
	assert.False(t, (&Case{Success: &no}).ExpectSuccess())
}

func TestExpectationParams(t *testing.T) {
	assert.Equal(t, scilla.Args{}, ExpectedEvent{Name: "Empty"}.Params())

	args := scilla.Args{{Name: "amount", Type: "Uint128", Value: 1}}
	assert.Equal(t, args, ExpectedTransition{Tag: "Transfer", GetParams: StaticParams(args)}.Params())
}

func TestFixtureExpand(t *testing.T) {
	f := &Fixture{
		Accounts:  map[string]string{"owner": "0xOWNER"},
		Contracts: map[string]string{"staking": "0xSTAKING"},
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"account", "${account.owner}", "0xOWNER"},
		{"contract", "${contract.staking}", "0xSTAKING"},
		{"embedded", "to ${contract.staking}!", "to 0xSTAKING!"},
		{"unknown reference kept", "${contract.missing}", "${contract.missing}"},
		{"other references kept", "${HOME}", "${HOME}"},
		{"plain string", "0xabc", "0xabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Expand(tt.input))
		})
	}

	t.Run("nested values", func(t *testing.T) {
		args := f.ExpandArgs(scilla.Args{
			{Name: "pairs", Type: "List (Pair (ByStr20) (Uint128))", Value: []any{[]any{"${account.owner}", 1}}},
			{Name: "amount", Type: "Uint128", Value: 5},
		})
		assert.Equal(t, []any{[]any{"0xOWNER", 1}}, args[0].Value)
		assert.Equal(t, 5, args[1].Value)
	})

	t.Run("nil fixture leaves values", func(t *testing.T) {
		var empty *Fixture
		assert.Equal(t, "${account.owner}", empty.Expand("${account.owner}"))
	})
}
