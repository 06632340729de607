package parser

import (
	"fmt"
	"strings"
)

// MaxIdentifierLength is the longest identifier the lexer accepts.
const MaxIdentifierLength = 16

// Lexer converts line-delimited source text into a flat token
// sequence. It never aborts: malformed input produces an error record
// and scanning continues on the same line.
type Lexer struct {
	lines         *Cursor[string]
	line          int
	tokens        []Token
	errors        ErrorList
	lastErrorLine int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{lines: NewCursor(strings.Split(string(input), "\n"))}
}

// Tokenize runs the lexer over the whole input and returns the token
// sequence together with all collected lexical errors.
func Tokenize(input []byte) ([]Token, ErrorList) {
	return NewLexer(input).Tokenize()
}

func (l *Lexer) Tokenize() ([]Token, ErrorList) {
	for l.lines.IsOpen() {
		l.line++
		l.scanLine(l.lines.Consume())
	}
	l.tokens = append(l.tokens, Token{Kind: TokenEOF, Value: "EOF", Line: l.line})
	return l.tokens, l.errors
}

// scanLine tokenizes one physical line. Blank lines produce nothing,
// so the number of EOLN sentinels equals the number of non-empty
// source lines.
func (l *Lexer) scanLine(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	pos := 0
	for pos < len(text) {
		ch := text[pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			pos++
		case isLetter(ch):
			pos = l.scanWord(text, pos)
		case isDigit(ch):
			pos = l.scanConstant(text, pos)
		default:
			pos = l.scanOperator(text, pos)
		}
	}
	l.emit(TokenEOLN, "EOLN")
}

func (l *Lexer) scanWord(text string, pos int) int {
	start := pos
	for pos < len(text) && isLetterOrDigit(text[pos]) {
		pos++
	}
	word := text[start:pos]
	if kind := LookupKeyword(word); kind != TokenIdent {
		l.emit(kind, word)
	} else if len(word) <= MaxIdentifierLength {
		l.emit(TokenIdent, word)
	} else {
		// No placeholder token; scanning resumes after the identifier.
		l.errorf("Identifier '%s' exceeds %d characters", word, MaxIdentifierLength)
	}
	return pos
}

func (l *Lexer) scanConstant(text string, pos int) int {
	start := pos
	for pos < len(text) && isDigit(text[pos]) {
		pos++
	}
	l.emit(TokenConstant, text[start:pos])
	return pos
}

func (l *Lexer) scanOperator(text string, pos int) int {
	next := func() byte {
		if pos+1 < len(text) {
			return text[pos+1]
		}
		return 0
	}

	switch text[pos] {
	case '=':
		l.emit(TokenEQ, "=")
	case '-':
		l.emit(TokenMinus, "-")
	case '*':
		l.emit(TokenStar, "*")
	case '(':
		l.emit(TokenLParen, "(")
	case ')':
		l.emit(TokenRParen, ")")
	case ';':
		l.emit(TokenSemicolon, ";")
	case '<':
		switch next() {
		case '=':
			l.emit(TokenLE, "<=")
			return pos + 2
		case '>':
			l.emit(TokenNE, "<>")
			return pos + 2
		}
		l.emit(TokenLT, "<")
	case '>':
		if next() == '=' {
			l.emit(TokenGE, ">=")
			return pos + 2
		}
		l.emit(TokenGT, ">")
	case ':':
		if next() == '=' {
			l.emit(TokenAssign, ":=")
			return pos + 2
		}
		l.errorf("Misused colon: ':' must be followed by '='")
		if pos+1 < len(text) {
			return pos + 2
		}
	default:
		l.errorf("Invalid character '%c'", text[pos])
	}
	return pos + 1
}

func (l *Lexer) emit(kind TokenKind, value string) {
	l.tokens = append(l.tokens, Token{Kind: kind, Value: value, Line: l.line})
}

// errorf records at most one lexical error per source line.
func (l *Lexer) errorf(format string, args ...any) {
	if l.line == l.lastErrorLine {
		return
	}
	l.lastErrorLine = l.line
	l.errors = append(l.errors, Error{Line: l.line, Message: fmt.Sprintf(format, args...)})
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetterOrDigit(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
