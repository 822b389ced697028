package models

import (
	"regexp"
	"strings"

	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
)

// Fixture holds the accounts and contract addresses of one test run.
// It is built once and handed to each use case explicitly.
type Fixture struct {
	Accounts  map[string]string `toml:"accounts" json:"accounts"`
	Contracts map[string]string `toml:"contracts" json:"contracts"`
}

// Lookup resolves "account.<name>" and "contract.<name>" references.
func (f *Fixture) Lookup(ref string) (string, bool) {
	if f == nil {
		return "", false
	}
	kind, name, ok := strings.Cut(ref, ".")
	if !ok {
		return "", false
	}

	var addr string
	switch kind {
	case "account":
		addr, ok = f.Accounts[name]
	case "contract":
		addr, ok = f.Contracts[name]
	default:
		return "", false
	}
	return addr, ok
}

// fixtureRefPattern matches ${account.<name>} and ${contract.<name>}
var fixtureRefPattern = regexp.MustCompile(`\$\{((?:account|contract)\.[A-Za-z0-9_.-]+)\}`)

// Expand replaces ${account.<name>} and ${contract.<name>} references in s.
// Unknown references are left untouched.
func (f *Fixture) Expand(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return fixtureRefPattern.ReplaceAllStringFunc(s, func(match string) string {
		ref := fixtureRefPattern.FindStringSubmatch(match)[1]
		if addr, ok := f.Lookup(ref); ok {
			return addr
		}
		return match
	})
}

// ExpandValue expands references in every string inside v, descending into
// slices and maps.
func (f *Fixture) ExpandValue(v any) any {
	switch val := v.(type) {
	case string:
		return f.Expand(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = f.ExpandValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = f.ExpandValue(item)
		}
		return out
	default:
		return v
	}
}

// ExpandArgs returns a copy of args with references expanded in the values.
func (f *Fixture) ExpandArgs(args scilla.Args) scilla.Args {
	out := make(scilla.Args, len(args))
	for i, arg := range args {
		out[i] = scilla.Arg{Name: arg.Name, Type: arg.Type, Value: f.ExpandValue(arg.Value)}
	}
	return out
}
