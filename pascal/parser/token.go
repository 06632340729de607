package parser

import "strings"

type TokenKind int

// The numeric values double as the token codes in the token ledger and
// are consumed by downstream tooling; do not reorder.
const (
	TokenBegin TokenKind = iota + 1
	TokenEnd
	TokenInteger
	TokenIf
	TokenThen
	TokenElse
	TokenFunction
	TokenRead
	TokenWrite

	TokenIdent
	TokenConstant

	TokenEQ
	TokenNE
	TokenLE
	TokenLT
	TokenGE
	TokenGT
	TokenMinus
	TokenStar
	TokenAssign
	TokenLParen
	TokenRParen
	TokenSemicolon

	TokenEOLN
	TokenEOF
)

var tokenKindNames = map[TokenKind]string{
	TokenBegin:     "begin",
	TokenEnd:       "end",
	TokenInteger:   "integer",
	TokenIf:        "if",
	TokenThen:      "then",
	TokenElse:      "else",
	TokenFunction:  "function",
	TokenRead:      "read",
	TokenWrite:     "write",
	TokenIdent:     "identifier",
	TokenConstant:  "constant",
	TokenEQ:        "=",
	TokenNE:        "<>",
	TokenLE:        "<=",
	TokenLT:        "<",
	TokenGE:        ">=",
	TokenGT:        ">",
	TokenMinus:     "-",
	TokenStar:      "*",
	TokenAssign:    ":=",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenSemicolon: ";",
	TokenEOLN:      "EOLN",
	TokenEOF:       "EOF",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Code returns the fixed numeric code used in the token ledger.
func (k TokenKind) Code() int {
	return int(k)
}

// Token is one lexical unit of a source program. Tokens are immutable
// once produced. Line is the 1-based physical source line the token
// starts on; sentinel tokens carry the line they close.
type Token struct {
	Kind  TokenKind
	Value string
	Line  int
}

var keywords = map[string]TokenKind{
	"begin":    TokenBegin,
	"end":      TokenEnd,
	"integer":  TokenInteger,
	"if":       TokenIf,
	"then":     TokenThen,
	"else":     TokenElse,
	"function": TokenFunction,
	"read":     TokenRead,
	"write":    TokenWrite,
}

// LookupKeyword matches case-insensitively; the caller keeps the
// original spelling as the token value.
func LookupKeyword(word string) TokenKind {
	if kind, ok := keywords[strings.ToLower(word)]; ok {
		return kind
	}
	return TokenIdent
}
