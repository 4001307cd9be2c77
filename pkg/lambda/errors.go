package lambda

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSyntax matches every *SyntaxError with errors.Is.
var ErrSyntax = errors.New("syntax error")

// SyntaxError is returned by the lexer and parser. Parsing stops at the
// first one.
type SyntaxError struct {
	Msg string
	Pos int
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func syntaxErrorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}
