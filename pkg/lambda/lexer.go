package lambda

// Lexer turns input text into tokens one at a time. Once the input is
// exhausted it keeps returning EOF.
type Lexer struct {
	input   []rune
	pos     int
	current Token
}

// NewLexer scans the first token of input.
func NewLexer(input string) (*Lexer, error) {
	l := &Lexer{input: []rune(input)}
	if err := l.Advance(); err != nil {
		return nil, err
	}
	return l, nil
}

// Current returns the token under the cursor.
func (l *Lexer) Current() Token {
	return l.current
}

// Advance moves past the current token.
func (l *Lexer) Advance() error {
	for l.pos < len(l.input) && l.input[l.pos] == ' ' {
		l.pos++
	}
	if l.pos >= len(l.input) {
		l.current = Token{Type: TokenEOF, Pos: l.pos}
		return nil
	}

	start := l.pos
	ch := l.input[l.pos]
	switch {
	case ch == '(':
		l.current = Token{Type: TokenLParen, Literal: "(", Pos: start}
	case ch == ')':
		l.current = Token{Type: TokenRParen, Literal: ")", Pos: start}
	case ch == '.':
		l.current = Token{Type: TokenDot, Literal: ".", Pos: start}
	case ch == '\\' || ch == 'λ':
		l.current = Token{Type: TokenLambda, Literal: string(ch), Pos: start}
	case isIdent(ch):
		l.current = Token{Type: TokenIdent, Literal: string(ch), Pos: start}
	default:
		return syntaxErrorf(start, "Unexpected character: %c", ch)
	}
	l.pos++
	return nil
}

// Expect consumes the current token if it has type t and returns its
// literal.
func (l *Lexer) Expect(t TokenType) (string, error) {
	if l.current.Type != t {
		return "", syntaxErrorf(l.current.Pos, "Expected token: %s", t)
	}
	lit := l.current.Literal
	return lit, l.Advance()
}

// Skip consumes the current token only if it has type t. The boolean
// reports whether it did; a mismatch leaves the cursor where it was.
func (l *Lexer) Skip(t TokenType) (string, bool, error) {
	if l.current.Type != t {
		return "", false, nil
	}
	lit := l.current.Literal
	return lit, true, l.Advance()
}

func isIdent(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}
