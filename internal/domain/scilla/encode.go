package scilla

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// Encode converts value into the Scilla wire form for the type signature sig.
// See EncodeType for the rules.
func Encode(value any, sig string) Value {
	return EncodeType(value, ParseType(sig))
}

// EncodeType converts value into the wire form for t. The first matching
// rule wins:
//
//  1. Uint*/Int* scalars become decimal strings (strings pass through).
//  2. String passes through.
//  3. ByStr* with a string value is lowercased.
//  4. BNum becomes a decimal string.
//  5. A bool, whatever the type, becomes the True/False constructor.
//  6. Option (T) becomes Some/None.
//  7. List (T) with a sequence value becomes a plain list.
//  8. Pair (A) (B) with a two-element sequence becomes the Pair constructor.
//  9. Anything else is returned unchanged.
//
// Mismatched values and types are never an error; they fall through to a
// later rule.
func EncodeType(value any, t Type) Value {
	if s, ok := t.(ScalarType); ok {
		switch kindOf(s.Name) {
		case kindNumeric, kindBNum:
			return Scalar(DecimalString(value))
		case kindString:
			return passthrough(value)
		case kindByStr:
			if str, ok := asString(value); ok {
				return Scalar(strings.ToLower(str))
			}
		}
	}

	if b, ok := value.(bool); ok {
		return boolADT(b)
	}

	switch tt := t.(type) {
	case OptionType:
		inner := tt.Inner.String()
		if value == nil {
			return ADT{Constructor: "None", ArgTypes: []string{inner}, Arguments: []Value{}}
		}
		return ADT{
			Constructor: "Some",
			ArgTypes:    []string{inner},
			Arguments:   []Value{EncodeType(value, tt.Inner)},
		}

	case ListType:
		if items, ok := sequence(value); ok {
			list := make(List, 0, len(items))
			for _, item := range items {
				list = append(list, EncodeType(item, tt.Elem))
			}
			return list
		}

	case PairType:
		if items, ok := sequence(value); ok && len(items) == 2 {
			return ADT{
				Constructor: "Pair",
				ArgTypes:    []string{tt.First.String(), tt.Second.String()},
				Arguments: []Value{
					EncodeType(items[0], tt.First),
					EncodeType(items[1], tt.Second),
				},
			}
		}
	}

	return passthrough(value)
}

func boolADT(b bool) ADT {
	constructor := "False"
	if b {
		constructor = "True"
	}
	return ADT{Constructor: constructor, ArgTypes: []string{}, Arguments: []Value{}}
}

// passthrough wraps value without changing it.
func passthrough(value any) Value {
	switch v := value.(type) {
	case Value:
		return v
	case string:
		return Scalar(v)
	default:
		return Raw{V: value}
	}
}

func asString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case Scalar:
		return string(v), true
	default:
		return "", false
	}
}

// DecimalString renders a numeric value as a base-10 string. Strings are
// returned unchanged so that values beyond 64 bits keep their precision.
func DecimalString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case Scalar:
		return string(v)
	case json.Number:
		return v.String()
	case *big.Int:
		if v == nil {
			return ""
		}
		return v.String()
	case big.Int:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// sequence reports whether value is an ordered sequence and returns its items.
func sequence(value any) ([]any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case []any:
		return v, true
	case List:
		items := make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return items, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
