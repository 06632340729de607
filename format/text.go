package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/minipas/minipas/pascal/parser"
)

// The ledger layouts are a fixed wire format: one record per line,
// 16-character right-justified name fields, two-digit token codes.

func TokenLine(t parser.Token) string {
	return fmt.Sprintf("%16s %02d", t.Value, t.Kind.Code())
}

func VariableLine(v parser.Variable) string {
	return fmt.Sprintf("%16s %16s %d %s %d %d", v.Name, v.Proc, int(v.Kind), v.Type, v.Level, v.Address)
}

func ProcedureLine(p parser.Procedure) string {
	return fmt.Sprintf("%16s %s %d %d %d", p.Name, p.Type, p.Level, p.FirstAddress, p.LastAddress)
}

// TokenEncoder writes the token ledger: the cleaned stream, sentinels
// included.
type TokenEncoder struct {
	w      io.Writer
	result *parser.Result
}

func NewTokenEncoder(w io.Writer) *TokenEncoder {
	return &TokenEncoder{w: w}
}

func (e *TokenEncoder) Encode(result *parser.Result) error {
	e.result = result
	return write(e.w, e)
}

func (e *TokenEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, t := range e.result.Tokens {
		sb.WriteString(TokenLine(t))
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// VariableEncoder writes the variable ledger.
type VariableEncoder struct {
	w      io.Writer
	result *parser.Result
}

func NewVariableEncoder(w io.Writer) *VariableEncoder {
	return &VariableEncoder{w: w}
}

func (e *VariableEncoder) Encode(result *parser.Result) error {
	e.result = result
	return write(e.w, e)
}

func (e *VariableEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, v := range e.result.Variables {
		sb.WriteString(VariableLine(v))
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// ProcedureEncoder writes the procedure ledger.
type ProcedureEncoder struct {
	w      io.Writer
	result *parser.Result
}

func NewProcedureEncoder(w io.Writer) *ProcedureEncoder {
	return &ProcedureEncoder{w: w}
}

func (e *ProcedureEncoder) Encode(result *parser.Result) error {
	e.result = result
	return write(e.w, e)
}

func (e *ProcedureEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, p := range e.result.Procedures {
		sb.WriteString(ProcedureLine(p))
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// ErrorEncoder writes the error ledger, fatal records suffixed.
type ErrorEncoder struct {
	w      io.Writer
	result *parser.Result
}

func NewErrorEncoder(w io.Writer) *ErrorEncoder {
	return &ErrorEncoder{w: w}
}

func (e *ErrorEncoder) Encode(result *parser.Result) error {
	e.result = result
	return write(e.w, e)
}

func (e *ErrorEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, err := range e.result.Errors {
		sb.WriteString(err.String())
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

func write(w io.Writer, e Encoder) error {
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
