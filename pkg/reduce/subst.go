package reduce

import "github.com/vic/golambda/pkg/lambda"

// subst replaces the free occurrences of param in t with repl, renaming
// binders of t that would capture a free variable of repl.
func (r *run) subst(param string, repl, t lambda.Term) lambda.Term {
	r.stats.Substitutions++

	switch t := t.(type) {
	case lambda.Var:
		if t.Name == param {
			return repl
		}
		return t

	case lambda.App:
		return lambda.App{
			Fun: r.subst(param, repl, t.Fun),
			Arg: r.subst(param, repl, t.Arg),
		}

	case lambda.Abs:
		if t.Param == param {
			// shadowed
			return t
		}
		if lambda.IsFreeIn(t.Param, repl) {
			fresh := r.names.Fresh(t.Param)
			r.stats.AlphaRenames++
			body := r.subst(t.Param, lambda.Var{Name: fresh}, t.Body)
			return lambda.Abs{
				Param: fresh,
				Body:  r.subst(param, repl, body),
			}
		}
		return lambda.Abs{
			Param: t.Param,
			Body:  r.subst(param, repl, t.Body),
		}

	default:
		panic("unknown term type")
	}
}
