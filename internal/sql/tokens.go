package sql

import "strings"

type TokenKind int

const (
	TokenNone TokenKind = iota
	TokenMeta
	TokenOther
)

// Token is one whitespace separated word of an input line. Words starting
// with a dot are meta tokens.
type Token struct {
	Kind TokenKind
	Text string
}

func newToken(s string) Token {
	switch {
	case s == "":
		return Token{Kind: TokenNone}
	case s[0] == '.':
		return Token{Kind: TokenMeta, Text: s}
	default:
		return Token{Kind: TokenOther, Text: s}
	}
}

// Tokens walks the words of a line with one token of lookahead.
type Tokens struct {
	words []string
	pos   int
}

func Tokenize(line string) *Tokens {
	return &Tokens{words: strings.Fields(line)}
}

// Peek returns the next token without consuming it. An exhausted stream
// yields a TokenNone token.
func (t *Tokens) Peek() Token {
	if t.pos >= len(t.words) {
		return Token{Kind: TokenNone}
	}
	return newToken(t.words[t.pos])
}

// Next consumes and returns the next token. ok is false when the stream is
// exhausted.
func (t *Tokens) Next() (tok Token, ok bool) {
	if t.pos >= len(t.words) {
		return Token{Kind: TokenNone}, false
	}
	tok = newToken(t.words[t.pos])
	t.pos++
	return tok, true
}

// Rest joins the unconsumed tokens with single spaces.
func (t *Tokens) Rest() string {
	return strings.Join(t.words[t.pos:], " ")
}
