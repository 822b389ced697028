package scilla

import (
	"encoding/json"
	"fmt"
)

// Arg is one named, typed argument before encoding.
type Arg struct {
	Name  string
	Type  string
	Value any
}

// Args is an ordered name -> (type, value) mapping. The order is the order
// of the resulting parameter list.
type Args []Arg

// Param is a parameter descriptor in wire form, as sent with transitions and
// deployments and as found in emitted events and messages.
type Param struct {
	VName string `json:"vname"`
	Type  string `json:"type"`
	Value Value  `json:"value"`
}

type rawParam struct {
	VName string          `json:"vname"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (p Param) MarshalJSON() ([]byte, error) {
	value, err := MarshalValue(p.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value of %s: %w", p.VName, err)
	}
	return json.Marshal(rawParam{VName: p.VName, Type: p.Type, Value: value})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Param) UnmarshalJSON(data []byte) error {
	var raw rawParam
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.VName = raw.VName
	p.Type = raw.Type
	p.Value = nil
	if len(raw.Value) == 0 {
		return nil
	}

	value, err := DecodeValue(raw.Value)
	if err != nil {
		return fmt.Errorf("failed to decode value of %s: %w", raw.VName, err)
	}
	p.Value = value
	return nil
}

// BuildParams encodes every argument with Encode, keeping the argument order.
// The result is never nil.
func BuildParams(args Args) []Param {
	params := make([]Param, 0, len(args))
	for _, arg := range args {
		params = append(params, Param{
			VName: arg.Name,
			Type:  arg.Type,
			Value: Encode(arg.Value, arg.Type),
		})
	}
	return params
}
