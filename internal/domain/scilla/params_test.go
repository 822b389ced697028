package scilla

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParams(t *testing.T) {
	t.Run("single argument", func(t *testing.T) {
		params := BuildParams(Args{{"_scilla_version", "Uint32", 0}})
		assert.Equal(t, []Param{{VName: "_scilla_version", Type: "Uint32", Value: Scalar("0")}}, params)
	})

	t.Run("keeps argument order", func(t *testing.T) {
		params := BuildParams(Args{
			{"_scilla_version", "Uint32", 0},
			{"contract_owner", "ByStr20", "0xABCD"},
			{"name", "String", "Token0"},
			{"init_supply", "Uint128", "1000000000000000000000"},
		})

		require.Len(t, params, 4)
		assert.Equal(t, "_scilla_version", params[0].VName)
		assert.Equal(t, "contract_owner", params[1].VName)
		assert.Equal(t, Scalar("0xabcd"), params[1].Value)
		assert.Equal(t, "name", params[2].VName)
		assert.Equal(t, "init_supply", params[3].VName)
		assert.Equal(t, Scalar("1000000000000000000000"), params[3].Value)
	})

	t.Run("empty args give an empty list", func(t *testing.T) {
		params := BuildParams(nil)
		require.NotNil(t, params)

		raw, err := json.Marshal(params)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(raw))
	})
}

func TestParamJSON(t *testing.T) {
	params := BuildParams(Args{
		{"spender", "ByStr20", "0xAB"},
		{"amount", "Uint128", 100000000000000},
		{"flag", "Bool", true},
	})

	raw, err := json.Marshal(params)
	require.NoError(t, err)
	assert.Equal(t,
		`[{"vname":"spender","type":"ByStr20","value":"0xab"},`+
			`{"vname":"amount","type":"Uint128","value":"100000000000000"},`+
			`{"vname":"flag","type":"Bool","value":{"argtypes":[],"arguments":[],"constructor":"True"}}]`,
		string(raw),
	)

	var decoded []Param
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, params, decoded)
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Value
	}{
		{"string", `"0xab"`, Scalar("0xab")},
		{"list", `["1","2"]`, List{Scalar("1"), Scalar("2")}},
		{
			"adt",
			`{"constructor":"Some","argtypes":["Uint128"],"arguments":["5"]}`,
			ADT{Constructor: "Some", ArgTypes: []string{"Uint128"}, Arguments: []Value{Scalar("5")}},
		},
		{
			"adt without argument fields",
			`{"constructor":"True"}`,
			ADT{Constructor: "True", ArgTypes: []string{}, Arguments: []Value{}},
		},
		{
			"list of pairs",
			`[{"argtypes":["ByStr20","Uint128"],"arguments":["0xaa","1"],"constructor":"Pair"}]`,
			List{ADT{Constructor: "Pair", ArgTypes: []string{"ByStr20", "Uint128"}, Arguments: []Value{Scalar("0xaa"), Scalar("1")}}},
		},
		{"number keeps its text", `123456789012345678901234567890`, Raw{V: json.Number("123456789012345678901234567890")}},
		{"null", `null`, Raw{V: nil}},
		{"other object", `{"a":"b"}`, Raw{V: map[string]any{"a": "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := DecodeValue([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := DecodeValue([]byte(`{"constructor":1}`))
		assert.Error(t, err)
	})
}

func TestText(t *testing.T) {
	assert.Equal(t, "0xab", Text(Scalar("0xab")))
	assert.Equal(t, `["1"]`, Text(List{Scalar("1")}))
	assert.Equal(t, "null", Text(nil))
}
