package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
	"github.com/trebuchet-org/scilla-check/internal/verify"
)

func init() {
	color.NoColor = true
}

func sampleResult() *usecase.VerifyResult {
	return &usecase.VerifyResult{
		Suites: []*usecase.SuiteResult{{
			Name: "token",
			Path: "tests/token.yaml",
			Cases: []*usecase.CaseResult{
				{Name: "mint", Checks: []usecase.CheckResult{{Kind: usecase.CheckStatus, Passed: true}}},
				{Name: "transfer", Checks: []usecase.CheckResult{
					{Kind: usecase.CheckStatus, Passed: true},
					{Kind: usecase.CheckTransitions, Mismatches: []verify.Mismatch{
						{Index: 0, Field: verify.FieldTag, Expected: "Transfer", Actual: "Transfer2"},
					}},
					{Kind: usecase.CheckRewardEvents, Policy: "descending-by-first-argument", Mismatches: []verify.Mismatch{
						{Index: 1, Field: verify.FieldParams, Expected: `[{"vname":"a","type":"Uint32","value":"1"}]`, Actual: `[{"vname":"a","type":"Uint32","value":"2"}]`},
					}},
				}},
				{Name: "missing", Checks: []usecase.CheckResult{{Kind: usecase.CheckReceipt, Error: "receipt not found"}}},
			},
		}},
		Total:   3,
		Passed:  1,
		Failed:  2,
		Skipped: 1,
	}
}

func TestVerifyRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewVerifyRenderer(&buf, false).Render(sampleResult()))
	out := buf.String()

	assert.Contains(t, out, "📋 token (tests/token.yaml)")
	assert.Contains(t, out, "✓ mint")
	assert.Contains(t, out, "✗ transfer")
	assert.Contains(t, out, "Transitions")
	assert.Contains(t, out, "record 0 tag")
	assert.Contains(t, out, "Expected: Transfer\n")
	assert.Contains(t, out, "Received: Transfer2\n")
	assert.Contains(t, out, "Reward Events [descending-by-first-argument]")
	assert.Contains(t, out, "Receipt: receipt not found")
	assert.Contains(t, out, "1 passed, 2 failed, 1 skipped")
	assert.NotContains(t, out, "Status", "passing checks are hidden")

	buf.Reset()
	require.NoError(t, NewVerifyRenderer(&buf, true).Render(sampleResult()))
	assert.Contains(t, buf.String(), "• Status")
}

func TestVerifyRenderer_AllPassed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewVerifyRenderer(&buf, false).Render(&usecase.VerifyResult{Total: 0}))
	assert.Contains(t, buf.String(), "✅ 0 passed, 0 failed")
}

func TestParamsDiff(t *testing.T) {
	expected := prettyJSON(`[{"vname":"a","type":"Uint32","value":"1"}]`)
	actual := prettyJSON(`[{"vname":"a","type":"Uint32","value":"2"}]`)

	diff := ParamsDiff(expected, actual)
	assert.Contains(t, diff, "--- Expected")
	assert.Contains(t, diff, "+++ Received")
	assert.Contains(t, diff, `-    "value": "1"`)
	assert.Contains(t, diff, `+    "value": "2"`)
}

func TestSummaryTable(t *testing.T) {
	out := renderSummaryTable(sampleResult())
	assert.Contains(t, out, "SUITE")
	assert.Contains(t, out, "token")
	assert.Contains(t, out, "TOTAL")
}

func TestEncodeRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewEncodeRenderer(&buf).Render(&usecase.EncodeResult{Params: scilla.BuildParams(scilla.Args{
		{Name: "owner", Type: "ByStr20", Value: "0xAB"},
	})})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"vname":"owner","type":"ByStr20","value":"0xab"}]`, buf.String())
}

func TestBlocksRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewBlocksRenderer(&buf).Render(&usecase.BlockNumberResult{Network: "isolated", Current: 0}))
	assert.Equal(t, "isolated block number: 0\n", buf.String())

	buf.Reset()
	prev := uint64(0)
	require.NoError(t, NewBlocksRenderer(&buf).Render(&usecase.BlockNumberResult{Network: "isolated", Previous: &prev, Current: 5}))
	assert.Equal(t, "isolated block number: 0 → 5\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer[*usecase.VerifyResult](&buf).Render(sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(2), decoded["failed"])
	assert.True(t, strings.Contains(buf.String(), `"field": "tag"`))
}

func TestNetworksRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewNetworksRenderer(&buf).RenderNetworksList(&usecase.ListNetworksResult{
		Networks: []usecase.NetworkStatus{
			{Name: "isolated", RPCURL: "http://localhost:5555", ChainID: 222, BlockNumber: 17},
			{Name: "testnet", RPCURL: "https://dev-api.zilliqa.com", Error: "connection refused"},
		},
	}))

	out := buf.String()
	assert.Contains(t, out, "isolated")
	assert.Contains(t, out, "222")
	assert.Contains(t, out, "17")
	assert.Contains(t, out, "connection refused")

	buf.Reset()
	require.NoError(t, NewNetworksRenderer(&buf).RenderNetworksList(&usecase.ListNetworksResult{}))
	assert.Contains(t, buf.String(), "No networks configured")
}

func TestConfigRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewConfigRenderer(&buf).RenderConfig(&usecase.ShowConfigResult{
		Local:       &config.LocalConfig{Network: "isolated"},
		LocalPath:   "/project/.scilla-check/config.local.json",
		LocalExists: true,
		ProjectRoot: "/project",
	}))
	assert.Contains(t, buf.String(), "Network:   isolated")
	assert.Contains(t, buf.String(), "Fixture:   (not set)")

	buf.Reset()
	require.NoError(t, NewConfigRenderer(&buf).RenderChange(&usecase.ConfigChangeResult{
		Key:        config.ConfigKeyFixture,
		Removed:    true,
		ConfigPath: "/project/.scilla-check/config.local.json",
	}))
	assert.Contains(t, buf.String(), "Removed fixture from config")
}
