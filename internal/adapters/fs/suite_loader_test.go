package fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/scilla-check/internal/domain"
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const tokenSuite = `
name: fungible token
cases:
  - name: transfer
    tx: "0x1234"
    events:
      - name: TransferSuccess
        params:
          sender: [ByStr20, "${account.alice}"]
          recipient: [ByStr20, "${account.bob}"]
          amount: [Uint128, 340282366920938463463374607431768211455]
    transitions:
      - tag: RecipientAcceptTransfer
        amount: 0
        recipient: "${account.bob}"
        params:
          - {name: sender, type: ByStr20, value: "${account.alice}"}
      - null
  - receipt: receipts/paused.json
    error: -2
    expect_no_events: true
  - name: claim
    tx: "0x99"
    success: true
    reward_events:
      - name: Claimed
        params:
          rewards: ["List (Pair (ByStr20) (Uint128))", [["0xaa", 1], ["0xbb", 2]]]
`

func TestSuiteLoader_LoadSuite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "token.yaml", tokenSuite)

	suite, err := NewSuiteLoaderAdapter().LoadSuite(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "fungible token", suite.Name)
	assert.Equal(t, path, suite.Path)
	require.Len(t, suite.Cases, 3)

	t.Run("events keep argument order", func(t *testing.T) {
		c := suite.Cases[0]
		assert.Equal(t, "0x1234", c.TxID)
		assert.Nil(t, c.RewardEvents)
		require.Len(t, c.Events, 1)

		args := c.Events[0].Params()
		require.Len(t, args, 3)
		assert.Equal(t, []string{"sender", "recipient", "amount"}, []string{args[0].Name, args[1].Name, args[2].Name})
		assert.Equal(t, json.Number("340282366920938463463374607431768211455"), args[2].Value)
	})

	t.Run("transitions and placeholders", func(t *testing.T) {
		c := suite.Cases[0]
		require.Len(t, c.Transitions, 2)

		tr := c.Transitions[0]
		assert.Equal(t, "RecipientAcceptTransfer", tr.Tag)
		assert.Equal(t, json.Number("0"), tr.Amount)
		assert.Equal(t, "${account.bob}", tr.Recipient)
		assert.Equal(t, scilla.Args{{Name: "sender", Type: "ByStr20", Value: "${account.alice}"}}, tr.Params())

		placeholder := c.Transitions[1]
		assert.Empty(t, placeholder.Tag)
		assert.Nil(t, placeholder.Amount)
		assert.Nil(t, placeholder.GetParams)
	})

	t.Run("failure case defaults", func(t *testing.T) {
		c := suite.Cases[1]
		assert.Equal(t, "case 2", c.Name)
		assert.Equal(t, "receipts/paused.json", c.ReceiptFile)
		require.NotNil(t, c.ErrorCode)
		assert.Equal(t, -2, *c.ErrorCode)
		assert.False(t, c.ExpectSuccess())
		assert.True(t, c.ExpectNoEvents)
		assert.Nil(t, c.Events)
	})

	t.Run("reward events", func(t *testing.T) {
		c := suite.Cases[2]
		require.Len(t, c.RewardEvents, 1)
		args := c.RewardEvents[0].Params()
		assert.Equal(t, []any{[]any{"0xaa", json.Number("1")}, []any{"0xbb", json.Number("2")}}, args[0].Value)
	})
}

func TestSuiteLoader_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"missing source", "cases:\n  - name: x\n", "exactly one of tx and receipt"},
		{"both sources", "cases:\n  - {name: x, tx: '0x1', receipt: r.json}\n", "exactly one of tx and receipt"},
		{"event without name", "cases:\n  - tx: '0x1'\n    events:\n      - params: {}\n", "event needs a name"},
		{"bad argument", "cases:\n  - tx: '0x1'\n    events:\n      - name: E\n        params:\n          a: Uint128\n", "must be [type, value]"},
		{"events not a list", "cases:\n  - tx: '0x1'\n    events: {name: E}\n", "expected a list"},
		{"exclusive events", "cases:\n  - tx: '0x1'\n    expect_no_events: true\n    events: []\n", "exclusive"},
		{"not yaml", "cases: [", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "suite.yaml", tt.content)
			_, err := NewSuiteLoaderAdapter().LoadSuite(context.Background(), path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidSuite))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSuiteLoader_FindSuites(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "")
	writeFile(t, dir, "a/nested.yml", "")
	writeFile(t, dir, "receipts/r.json", "{}")

	paths, err := NewSuiteLoaderAdapter().FindSuites(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a", "nested.yml"), filepath.Join(dir, "b.yaml")}, paths)

	paths, err = NewSuiteLoaderAdapter().FindSuites(context.Background(), filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, paths)
}
