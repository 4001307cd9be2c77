package lambda

// MaxDepth bounds how deeply a parsed term may nest. Binders, parentheses
// and the left spine of an application chain all count towards it.
const MaxDepth = 10000

// Parser is a recursive descent parser for the grammar
//
//	term        ::= LAMBDA LCID DOT term
//	              | application
//	application ::= atom atom*
//	atom        ::= LPAREN term RPAREN
//	              | LCID
type Parser struct {
	lex   *Lexer
	depth int
}

func NewParser(input string) (*Parser, error) {
	lex, err := NewLexer(input)
	if err != nil {
		return nil, err
	}
	return &Parser{lex: lex}, nil
}

// Parse reads exactly one term; anything after it is an error.
func (p *Parser) Parse() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if _, err := p.lex.Expect(TokenEOF); err != nil {
		return nil, err
	}
	return term, nil
}

func (p *Parser) parseTerm() (Term, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxDepth {
		return nil, p.tooDeep()
	}

	_, ok, err := p.lex.Skip(TokenLambda)
	if err != nil {
		return nil, err
	}
	if !ok {
		return p.parseApp()
	}

	param, err := p.lex.Expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.lex.Expect(TokenDot); err != nil {
		return nil, err
	}
	// The body extends as far right as possible.
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Abs{Param: param, Body: body}, nil
}

func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for spine := p.depth; ; spine++ {
		switch p.lex.Current().Type {
		case TokenEOF, TokenRParen, TokenDot:
			return left, nil
		}
		if spine >= MaxDepth {
			return nil, p.tooDeep()
		}
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}
}

func (p *Parser) parseAtom() (Term, error) {
	tok := p.lex.Current()
	switch tok.Type {
	case TokenLParen:
		if err := p.lex.Advance(); err != nil {
			return nil, err
		}
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.lex.Expect(TokenRParen); err != nil {
			return nil, err
		}
		return term, nil
	case TokenIdent:
		if err := p.lex.Advance(); err != nil {
			return nil, err
		}
		return Var{Name: tok.Literal}, nil
	default:
		return nil, syntaxErrorf(tok.Pos, "Expected atom")
	}
}

func (p *Parser) tooDeep() *SyntaxError {
	return syntaxErrorf(p.lex.Current().Pos, "Expression nested too deeply")
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}
