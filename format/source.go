package format

import (
	"io"
	"strings"

	"github.com/minipas/minipas/pascal/parser"
)

// SourceEncoder re-renders the cleaned token stream as Mini-Pascal
// text: one source line per EOLN sentinel, bodies indented one step
// per begin/end pair.
type SourceEncoder struct {
	w      io.Writer
	result *parser.Result
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(result *parser.Result) error {
	e.result = result
	return write(e.w, e)
}

func (e *SourceEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	depth := 0
	var line []parser.Token

	flush := func() {
		if len(line) == 0 {
			return
		}
		indent := depth
		if line[0].Kind == parser.TokenEnd && indent > 0 {
			indent--
		}
		sb.WriteString(strings.Repeat("    ", indent))
		writeLine(&sb, line)
		sb.WriteByte('\n')
		for _, t := range line {
			switch t.Kind {
			case parser.TokenBegin:
				depth++
			case parser.TokenEnd:
				if depth > 0 {
					depth--
				}
			}
		}
		line = line[:0]
	}

	for _, t := range e.result.Tokens {
		switch t.Kind {
		case parser.TokenEOLN:
			flush()
		case parser.TokenEOF:
			// stop at the file sentinel
		default:
			line = append(line, t)
		}
	}
	flush()
	return []byte(sb.String()), nil
}

func writeLine(sb *strings.Builder, line []parser.Token) {
	for i, t := range line {
		if i > 0 && !skipSpaceBefore(t.Kind) && line[i-1].Kind != parser.TokenLParen {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Value)
	}
}

func skipSpaceBefore(kind parser.TokenKind) bool {
	switch kind {
	case parser.TokenSemicolon, parser.TokenRParen, parser.TokenLParen:
		return true
	}
	return false
}
