package scilla

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is a value in the Scilla JSON wire format. It is one of Scalar,
// ADT, List or Raw.
type Value interface {
	isValue()
}

// Scalar is a plain string on the wire (numbers, addresses, strings, block numbers).
type Scalar string

// ADT is an algebraic data type constructor application, e.g. Some, None,
// Pair, True, False.
type ADT struct {
	Constructor string
	ArgTypes    []string
	Arguments   []Value
}

// List is an ordered sequence of values. Lists are not ADT-wrapped on the wire.
type List []Value

// Raw holds a value that is already in wire form, or that no encoding rule
// applied to. It is marshalled as-is.
type Raw struct {
	V any
}

func (Scalar) isValue() {}
func (ADT) isValue()    {}
func (List) isValue()   {}
func (Raw) isValue()    {}

// adtJSON fixes the field order of the ADT wire form.
type adtJSON struct {
	ArgTypes    []string          `json:"argtypes"`
	Arguments   []json.RawMessage `json:"arguments"`
	Constructor string            `json:"constructor"`
}

// MarshalJSON implements json.Marshaler.
func (a ADT) MarshalJSON() ([]byte, error) {
	out := adtJSON{
		ArgTypes:    a.ArgTypes,
		Arguments:   make([]json.RawMessage, 0, len(a.Arguments)),
		Constructor: a.Constructor,
	}
	if out.ArgTypes == nil {
		out.ArgTypes = []string{}
	}
	for _, arg := range a.Arguments {
		raw, err := MarshalValue(arg)
		if err != nil {
			return nil, err
		}
		out.Arguments = append(out.Arguments, raw)
	}
	return json.Marshal(out)
}

// MarshalJSON implements json.Marshaler.
func (l List) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, 0, len(l))
	for _, v := range l {
		raw, err := MarshalValue(v)
		if err != nil {
			return nil, err
		}
		items = append(items, raw)
	}
	return json.Marshal(items)
}

// MarshalJSON implements json.Marshaler.
func (r Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.V)
}

// MarshalValue returns the wire form of v. A nil Value is encoded as null.
func MarshalValue(v Value) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// DecodeValue parses a wire-form value as found in receipts: strings become
// Scalar, arrays List, objects with a "constructor" key ADT and anything
// else Raw. Numbers keep their original text.
func DecodeValue(data []byte) (Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return Scalar(s), nil

	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		list := make(List, 0, len(items))
		for i, item := range items {
			v, err := DecodeValue(item)
			if err != nil {
				return nil, fmt.Errorf("list item %d: %w", i, err)
			}
			list = append(list, v)
		}
		return list, nil

	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, err
		}
		if _, ok := fields["constructor"]; ok {
			return decodeADT(fields)
		}
	}

	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return Raw{V: raw}, nil
}

func decodeADT(fields map[string]json.RawMessage) (ADT, error) {
	adt := ADT{ArgTypes: []string{}, Arguments: []Value{}}

	if err := json.Unmarshal(fields["constructor"], &adt.Constructor); err != nil {
		return ADT{}, fmt.Errorf("constructor: %w", err)
	}
	if raw, ok := fields["argtypes"]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &adt.ArgTypes); err != nil {
			return ADT{}, fmt.Errorf("argtypes of %s: %w", adt.Constructor, err)
		}
	}
	if raw, ok := fields["arguments"]; ok && string(raw) != "null" {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return ADT{}, fmt.Errorf("arguments of %s: %w", adt.Constructor, err)
		}
		for i, item := range items {
			v, err := DecodeValue(item)
			if err != nil {
				return ADT{}, fmt.Errorf("argument %d of %s: %w", i, adt.Constructor, err)
			}
			adt.Arguments = append(adt.Arguments, v)
		}
	}

	return adt, nil
}

// Text returns a plain string form of v: the string itself for Scalar and
// the JSON text otherwise.
func Text(v Value) string {
	if s, ok := v.(Scalar); ok {
		return string(s)
	}
	raw, err := MarshalValue(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
