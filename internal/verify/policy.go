package verify

import (
	"sort"

	"github.com/samber/lo"
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
)

// Policy rewrites a parameter list before the equality check. It must not
// modify its input.
type Policy interface {
	Name() string
	Canonicalize(params []scilla.Param) []scilla.Param
}

var (
	// Exact compares parameter lists as emitted.
	Exact Policy = exactPolicy{}

	// DescendingByFirstArgument treats list parameters of constructor
	// values as unordered: such lists are sorted in descending order of the
	// string form of each entry's first argument.
	//
	// The ordering is lexicographic, so "9" sorts before "10". Both sides
	// of a comparison are sorted the same way, which is all the policy needs.
	DescendingByFirstArgument Policy = descendingByFirstArgument{}
)

type exactPolicy struct{}

func (exactPolicy) Name() string { return "exact" }

func (exactPolicy) Canonicalize(params []scilla.Param) []scilla.Param { return params }

type descendingByFirstArgument struct{}

func (descendingByFirstArgument) Name() string { return "descending-by-first-argument" }

func (descendingByFirstArgument) Canonicalize(params []scilla.Param) []scilla.Param {
	if params == nil {
		return nil
	}

	return lo.Map(params, func(p scilla.Param, _ int) scilla.Param {
		list, ok := p.Value.(scilla.List)
		if !ok || !sortable(list) {
			return p
		}

		sorted := make(scilla.List, len(list))
		copy(sorted, list)
		sort.SliceStable(sorted, func(i, j int) bool {
			return firstArgument(sorted[i]) > firstArgument(sorted[j])
		})
		p.Value = sorted
		return p
	})
}

// sortable reports whether every entry is a constructor with at least one argument.
func sortable(list scilla.List) bool {
	return lo.EveryBy(list, func(v scilla.Value) bool {
		adt, ok := v.(scilla.ADT)
		return ok && len(adt.Arguments) > 0
	})
}

func firstArgument(v scilla.Value) string {
	return scilla.Text(v.(scilla.ADT).Arguments[0])
}
