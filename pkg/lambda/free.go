package lambda

import (
	"slices"

	"github.com/samber/lo"
)

// FreeVars returns the names in t that no enclosing abstraction binds.
func FreeVars(t Term) map[string]struct{} {
	free := make(map[string]struct{})
	collectFree(t, map[string]int{}, free)
	return free
}

func collectFree(t Term, bound map[string]int, free map[string]struct{}) {
	switch t := t.(type) {
	case Var:
		if bound[t.Name] == 0 {
			free[t.Name] = struct{}{}
		}
	case Abs:
		bound[t.Param]++
		collectFree(t.Body, bound, free)
		bound[t.Param]--
	case App:
		collectFree(t.Fun, bound, free)
		collectFree(t.Arg, bound, free)
	default:
		panic("unknown term type")
	}
}

// IsFreeIn reports whether name occurs free in t.
func IsFreeIn(name string, t Term) bool {
	_, ok := FreeVars(t)[name]
	return ok
}

// FreeNames returns the free variables of t in sorted order.
func FreeNames(t Term) []string {
	names := lo.Keys(FreeVars(t))
	slices.Sort(names)
	return names
}
