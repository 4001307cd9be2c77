// Package lambda holds the term syntax of the untyped lambda calculus: a
// lexer, a recursive descent parser and the canonical renderer.
//
// Parsing is recursive, so input nesting is capped at MaxDepth levels;
// deeper input fails with the syntax error "Expression nested too deeply"
// instead of exhausting the stack.
package lambda

import "strings"

// Term represents a lambda calculus term. The set of terms is closed: Var,
// Abs and App are the only implementations.
type Term interface {
	String() string
	term()
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (Var) term() {}

func (v Var) String() string {
	return v.Name
}

// Abs represents an abstraction (lambda).
type Abs struct {
	Param string
	Body  Term
}

func (Abs) term() {}

func (a Abs) String() string {
	var sb strings.Builder
	a.write(&sb)
	return sb.String()
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (App) term() {}

func (a App) String() string {
	var sb strings.Builder
	a.write(&sb)
	return sb.String()
}

// Render returns the canonical text of t. Abstractions always carry their
// own parentheses; an application is parenthesized only when it is a child
// of another node.
func Render(t Term) string {
	return t.String()
}

func writeTerm(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case Var:
		sb.WriteString(t.Name)
	case Abs:
		t.write(sb)
	case App:
		t.write(sb)
	default:
		panic("unknown term type")
	}
}

func writeChild(sb *strings.Builder, t Term) {
	if _, ok := t.(App); ok {
		sb.WriteByte('(')
		writeTerm(sb, t)
		sb.WriteByte(')')
		return
	}
	writeTerm(sb, t)
}

func (a Abs) write(sb *strings.Builder) {
	sb.WriteString("(λ")
	sb.WriteString(a.Param)
	sb.WriteString(". ")
	writeChild(sb, a.Body)
	sb.WriteByte(')')
}

func (a App) write(sb *strings.Builder) {
	writeChild(sb, a.Fun)
	sb.WriteByte(' ')
	writeChild(sb, a.Arg)
}

// IsValue reports whether t is a value: a variable or an abstraction.
func IsValue(t Term) bool {
	switch t.(type) {
	case Var, Abs:
		return true
	default:
		return false
	}
}
