package fs

import (
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"

	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
	"gopkg.in/yaml.v3"
)

// integerLiteral matches integers too large for yaml to resolve as !!int
var integerLiteral = regexp.MustCompile(`^[-+]?[0-9]+$`)

// nodeValue converts a YAML node into a plain Go value. Integers become
// json.Number so that values beyond 64 bits keep their precision.
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return nodeValue(n.Alias)

	case yaml.ScalarNode:
		if n.Tag == "!!int" || (n.Tag == "!!float" && integerLiteral.MatchString(n.Value)) {
			i, ok := new(big.Int).SetString(n.Value, 0)
			if !ok {
				return nil, fmt.Errorf("line %d: invalid integer %q", n.Line, n.Value)
			}
			return json.Number(i.String()), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := nodeValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = v
		}
		return out, nil
	}

	return nil, nil
}

// typedValue converts n like nodeValue, but keeps the literal text of plain
// scalars declared as String or ByStr*. yaml resolves 0x0000... and 0xdeadbeef
// as integers, which would lose the address.
func typedValue(n *yaml.Node, t scilla.Type) (any, error) {
	if n.Kind == yaml.AliasNode {
		return typedValue(n.Alias, t)
	}

	switch tt := t.(type) {
	case scilla.ScalarType:
		if tt.Textual() && n.Kind == yaml.ScalarNode && !isNull(n) && n.Tag != "!!bool" {
			return n.Value, nil
		}

	case scilla.OptionType:
		if !isNull(n) {
			return typedValue(n, tt.Inner)
		}

	case scilla.ListType:
		if n.Kind == yaml.SequenceNode {
			out := make([]any, 0, len(n.Content))
			for _, item := range n.Content {
				v, err := typedValue(item, tt.Elem)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, nil
		}

	case scilla.PairType:
		if n.Kind == yaml.SequenceNode && len(n.Content) == 2 {
			first, err := typedValue(n.Content[0], tt.First)
			if err != nil {
				return nil, err
			}
			second, err := typedValue(n.Content[1], tt.Second)
			if err != nil {
				return nil, err
			}
			return []any{first, second}, nil
		}
	}

	return nodeValue(n)
}

// parseArgs reads typed arguments in either of two forms, keeping their order:
//
//	owner: [ByStr20, "0x..."]
//
// or a list of {name, type, value} entries.
func parseArgs(n *yaml.Node) (scilla.Args, error) {
	args := scilla.Args{}
	if n == nil || isNull(n) {
		return args, nil
	}

	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			name, spec := n.Content[i].Value, n.Content[i+1]
			if spec.Kind != yaml.SequenceNode || len(spec.Content) != 2 || spec.Content[0].Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: argument %s must be [type, value]", spec.Line, name)
			}
			value, err := typedValue(spec.Content[1], scilla.ParseType(spec.Content[0].Value))
			if err != nil {
				return nil, err
			}
			args = append(args, scilla.Arg{Name: name, Type: spec.Content[0].Value, Value: value})
		}

	case yaml.SequenceNode:
		for _, item := range n.Content {
			var entry struct {
				Name  string    `yaml:"name"`
				VName string    `yaml:"vname"`
				Type  string    `yaml:"type"`
				Value yaml.Node `yaml:"value"`
			}
			if err := item.Decode(&entry); err != nil {
				return nil, fmt.Errorf("line %d: %w", item.Line, err)
			}
			if entry.Name == "" {
				entry.Name = entry.VName
			}
			if entry.Name == "" || entry.Type == "" {
				return nil, fmt.Errorf("line %d: argument needs a name and a type", item.Line)
			}
			value, err := typedValue(&entry.Value, scilla.ParseType(entry.Type))
			if err != nil {
				return nil, err
			}
			args = append(args, scilla.Arg{Name: entry.Name, Type: entry.Type, Value: value})
		}

	default:
		return nil, fmt.Errorf("line %d: arguments must be a mapping or a list", n.Line)
	}

	return args, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}
