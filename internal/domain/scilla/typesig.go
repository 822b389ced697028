package scilla

import (
	"strings"
)

// Type is a parsed Scilla type signature. String returns the verbatim
// signature text the node was parsed from.
type Type interface {
	String() string
	isType()
}

// ScalarType is a type without parenthesised arguments (Uint128, ByStr20, BNum, ...)
type ScalarType struct {
	Name string
	// text is the signature as written when it carries surrounding whitespace
	text string
}

// OptionType is "Option (T)"
type OptionType struct {
	Inner Type
	text  string
}

// ListType is "List (T)"
type ListType struct {
	Elem Type
	text string
}

// PairType is "Pair (A) (B)"
type PairType struct {
	First  Type
	Second Type
	text   string
}

// CustomType is any other parameterised type, e.g. "Map (ByStr20) (Uint128)".
// The encoder passes values of custom types through unchanged.
type CustomType struct {
	Name string
	Args []Type
	text string
}

func (t ScalarType) String() string {
	if t.text != "" {
		return t.text
	}
	return t.Name
}
func (t OptionType) String() string { return t.text }
func (t ListType) String() string   { return t.text }
func (t PairType) String() string   { return t.text }
func (t CustomType) String() string { return t.text }

// Textual reports whether values of t are written as text (String, ByStr*)
func (t ScalarType) Textual() bool {
	kind := kindOf(t.Name)
	return kind == kindString || kind == kindByStr
}

func (ScalarType) isType() {}
func (OptionType) isType() {}
func (ListType) isType()   {}
func (PairType) isType()   {}
func (CustomType) isType() {}

// ExtractTypes returns the verbatim text of every sibling top-level
// parenthesised group in sig, left to right. Nested groups stay inside
// their parent's text:
//
//	ExtractTypes("Pair (ByStr20) (Uint128)")        // ["ByStr20", "Uint128"]
//	ExtractTypes("List (Pair (ByStr20) (Uint128))") // ["Pair (ByStr20) (Uint128)"]
//
// Signatures are expected to be balanced. A stray ")" at depth 0 is
// ignored and an unterminated group is dropped.
func ExtractTypes(sig string) []string {
	result := []string{}
	depth := 0
	start := -1

	for i := 0; i < len(sig); i++ {
		switch sig[i] {
		case '(':
			depth++
			if depth == 1 {
				start = i + 1
			}
		case ')':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				result = append(result, sig[start:i])
				start = -1
			}
		}
	}

	return result
}

// ParseType parses a type signature into its Type tree. It never fails:
// signatures that do not match a known constructor shape become a
// ScalarType (no groups) or a CustomType. Names are matched on the trimmed
// text; String returns sig unchanged, as ExtractTypes produced it.
func ParseType(sig string) Type {
	text := strings.TrimSpace(sig)
	name := constructorName(text)
	groups := ExtractTypes(text[len(name):])

	// Address types such as "ByStr20 with contract field m : Map (ByStr20) (Uint128) end"
	// carry parentheses but are still scalars on the wire.
	if len(groups) == 0 || kindOf(name) != kindOther {
		scalar := ScalarType{Name: text}
		if sig != text {
			scalar.text = sig
		}
		return scalar
	}

	switch {
	case name == "Option" && len(groups) == 1:
		return OptionType{Inner: ParseType(groups[0]), text: sig}
	case name == "List" && len(groups) == 1:
		return ListType{Elem: ParseType(groups[0]), text: sig}
	case name == "Pair" && len(groups) == 2:
		return PairType{First: ParseType(groups[0]), Second: ParseType(groups[1]), text: sig}
	}

	args := make([]Type, len(groups))
	for i, g := range groups {
		args[i] = ParseType(g)
	}
	return CustomType{Name: name, Args: args, text: sig}
}

// constructorName returns the leading type name, up to the first space or "(".
func constructorName(text string) string {
	if i := strings.IndexAny(text, " \t\n("); i >= 0 {
		return text[:i]
	}
	return text
}

// scalarKind classifies scalar type names into the families the encoder
// treats specially.
type scalarKind int

const (
	kindOther scalarKind = iota
	kindNumeric
	kindString
	kindByStr
	kindBNum
)

func kindOf(name string) scalarKind {
	switch {
	case strings.HasPrefix(name, "Uint"), strings.HasPrefix(name, "Int"):
		return kindNumeric
	case name == "String":
		return kindString
	case strings.HasPrefix(name, "ByStr"):
		return kindByStr
	case name == "BNum":
		return kindBNum
	default:
		return kindOther
	}
}
