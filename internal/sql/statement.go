package sql

import "go.flakedb/internal/row"

type Kind int

const (
	None Kind = iota
	Insert
	Select
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Select:
		return "select"
	default:
		return "none"
	}
}

// Statement is a parsed line. Row is only set for inserts and has not been
// validated yet.
type Statement struct {
	Kind Kind
	Row  row.Input
}

func (s Statement) String() string {
	if s.Kind == Insert {
		return "insert " + s.Row.String()
	}
	return s.Kind.String()
}

func Parse(line string) (Statement, error) {
	return ParseTokens(Tokenize(line))
}

// ParseTokens reads one statement from tokens. An empty stream is the None
// statement. Tokens after a complete statement are ignored.
func ParseTokens(tokens *Tokens) (Statement, error) {
	tok, ok := tokens.Next()
	if !ok {
		return Statement{Kind: None}, nil
	}

	switch tok.Kind {
	case TokenNone:
		return Statement{Kind: None}, nil
	case TokenMeta:
		return Statement{}, syntaxErrorf("encountered meta token '%s' when SQL token was expected", tok.Text)
	}

	switch tok.Text {
	case "insert":
		in, err := parseRow(tokens)
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: Insert, Row: in}, nil
	case "select":
		return Statement{Kind: Select}, nil
	default:
		return Statement{}, syntaxErrorf("unknown keyword '%s'", tok.Text)
	}
}

func parseRow(tokens *Tokens) (row.Input, error) {
	var in row.Input
	fields := []struct {
		name string
		dst  *string
	}{
		{"id", &in.ID},
		{"username", &in.Username},
		{"email", &in.Email},
	}

	for _, f := range fields {
		tok, ok := tokens.Next()
		if !ok {
			return row.Input{}, executionErrorf("missing %s", f.name)
		}
		*f.dst = tok.Text
	}
	return in, nil
}
