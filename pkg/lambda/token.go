package lambda

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenLambda
	TokenLParen
	TokenRParen
	TokenIdent
	TokenDot
)

// String returns the name used for the token type in error messages.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenLambda:
		return "LAMBDA"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenIdent:
		return "LCID"
	case TokenDot:
		return "DOT"
	default:
		return "UNKNOWN"
	}
}

type Token struct {
	Type    TokenType
	Literal string
	// Pos is the rune offset of the token in the input.
	Pos int
}
