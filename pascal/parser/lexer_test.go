package parser

import (
	"strings"
	"testing"
)

func TestLexerKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"begin", []TokenKind{TokenBegin, TokenEOLN, TokenEOF}},
		{"x", []TokenKind{TokenIdent, TokenEOLN, TokenEOF}},
		{"42", []TokenKind{TokenConstant, TokenEOLN, TokenEOF}},
		{"x := 1", []TokenKind{TokenIdent, TokenAssign, TokenConstant, TokenEOLN, TokenEOF}},
		{"= - * ( ) ;", []TokenKind{TokenEQ, TokenMinus, TokenStar, TokenLParen, TokenRParen, TokenSemicolon, TokenEOLN, TokenEOF}},
		{"< <= <> > >=", []TokenKind{TokenLT, TokenLE, TokenNE, TokenGT, TokenGE, TokenEOLN, TokenEOF}},
		{"read(a)", []TokenKind{TokenRead, TokenLParen, TokenIdent, TokenRParen, TokenEOLN, TokenEOF}},
		{"a1b2", []TokenKind{TokenIdent, TokenEOLN, TokenEOF}},
		{"if a=b then", []TokenKind{TokenIf, TokenIdent, TokenEQ, TokenIdent, TokenThen, TokenEOLN, TokenEOF}},
		{"begin\nend", []TokenKind{TokenBegin, TokenEOLN, TokenEnd, TokenEOLN, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errs := Tokenize([]byte(tt.input))
			if !errs.Clean() {
				t.Fatalf("errors = %v, want none", errs)
			}
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.expected), tokens)
			}
			for i := range tokens {
				if tokens[i].Kind != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, tokens[i].Kind, tt.expected[i])
				}
			}
		})
	}
}

func TestLexerKeywordCasePreserved(t *testing.T) {
	tokens, errs := Tokenize([]byte("BEGIN End"))
	if !errs.Clean() {
		t.Fatalf("errors = %v, want none", errs)
	}
	if tokens[0].Kind != TokenBegin || tokens[0].Value != "BEGIN" {
		t.Errorf("token 0 = %v %q, want begin with original casing", tokens[0].Kind, tokens[0].Value)
	}
	if tokens[1].Kind != TokenEnd || tokens[1].Value != "End" {
		t.Errorf("token 1 = %v %q, want end with original casing", tokens[1].Kind, tokens[1].Value)
	}
}

func TestLexerSentinelValues(t *testing.T) {
	tokens, _ := Tokenize([]byte("x"))
	if got := tokens[len(tokens)-2]; got.Kind != TokenEOLN || got.Value != "EOLN" {
		t.Errorf("line sentinel = %v %q, want EOLN", got.Kind, got.Value)
	}
	if got := tokens[len(tokens)-1]; got.Kind != TokenEOF || got.Value != "EOF" {
		t.Errorf("file sentinel = %v %q, want EOF", got.Kind, got.Value)
	}
}

func TestLexerEOLNCountsNonEmptyLines(t *testing.T) {
	input := "begin\n\n  \nx := 1\n\nend\n"
	tokens, errs := Tokenize([]byte(input))
	if !errs.Clean() {
		t.Fatalf("errors = %v, want none", errs)
	}
	eolns := 0
	for _, tok := range tokens {
		if tok.Kind == TokenEOLN {
			eolns++
		}
	}
	if eolns != 3 {
		t.Errorf("EOLN count = %d, want 3 (one per non-empty line)", eolns)
	}
}

func TestLexerLineNumbersSkipBlankLines(t *testing.T) {
	tokens, _ := Tokenize([]byte("begin\n\nx := 1"))
	var ident *Token
	for i := range tokens {
		if tokens[i].Kind == TokenIdent {
			ident = &tokens[i]
		}
	}
	if ident == nil {
		t.Fatal("no identifier token")
	}
	if ident.Line != 3 {
		t.Errorf("identifier line = %d, want 3", ident.Line)
	}
}

func TestLexerIdentifierTooLong(t *testing.T) {
	long := strings.Repeat("a", MaxIdentifierLength+1)
	tokens, errs := Tokenize([]byte(long + " b"))

	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Line != 1 {
		t.Errorf("error line = %d, want 1", errs[0].Line)
	}
	if !strings.Contains(errs[0].Message, "exceeds 16 characters") {
		t.Errorf("message = %q, want length complaint", errs[0].Message)
	}

	// The over-length identifier contributes no token; scanning resumed.
	want := []TokenKind{TokenIdent, TokenEOLN, TokenEOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	if tokens[0].Value != "b" {
		t.Errorf("surviving token = %q, want \"b\"", tokens[0].Value)
	}
}

func TestLexerBoundaryIdentifierLength(t *testing.T) {
	exact := strings.Repeat("a", MaxIdentifierLength)
	tokens, errs := Tokenize([]byte(exact))
	if !errs.Clean() {
		t.Fatalf("errors = %v, want none for a %d-character identifier", errs, MaxIdentifierLength)
	}
	if tokens[0].Kind != TokenIdent || tokens[0].Value != exact {
		t.Errorf("token = %v %q, want identifier %q", tokens[0].Kind, tokens[0].Value, exact)
	}
}

func TestLexerMisusedColon(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"colon space", "a : b"},
		{"colon at end", "a :"},
		{"colon semicolon", "a :;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := Tokenize([]byte(tt.input))
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
			}
			if !strings.Contains(errs[0].Message, "colon") {
				t.Errorf("message = %q, want colon complaint", errs[0].Message)
			}
		})
	}
}

func TestLexerInvalidCharacter(t *testing.T) {
	tokens, errs := Tokenize([]byte("a @ b"))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Message, "Invalid character") {
		t.Errorf("message = %q, want invalid character complaint", errs[0].Message)
	}
	// The character is skipped; both identifiers survive.
	want := []TokenKind{TokenIdent, TokenIdent, TokenEOLN, TokenEOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
}

func TestLexerOneErrorPerLine(t *testing.T) {
	_, errs := Tokenize([]byte("@ # $\n% ^"))
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2 (one per line): %v", len(errs), errs)
	}
	if errs[0].Line != 1 || errs[1].Line != 2 {
		t.Errorf("error lines = %d, %d, want 1, 2", errs[0].Line, errs[1].Line)
	}
}

func TestLexerNeverAborts(t *testing.T) {
	tokens, errs := Tokenize([]byte("@@@\n:::\nbegin end"))
	if errs.Clean() {
		t.Fatal("expected errors")
	}
	last := tokens[len(tokens)-1]
	if last.Kind != TokenEOF {
		t.Errorf("last token = %v, want EOF (lexer must reach end of input)", last.Kind)
	}
}
