package format

import (
	"encoding/json"
	"io"

	"github.com/minipas/minipas/pascal/parser"
)

// JSONEncoder renders the whole result as indented JSON, for tooling
// that does not speak the fixed-width ledgers.
type JSONEncoder struct {
	w      io.Writer
	result *parser.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(result *parser.Result) error {
	e.result = result
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildResultData(), "", "  ")
}

type jsonResult struct {
	OK         bool            `json:"ok"`
	Tokens     []jsonToken     `json:"tokens,omitempty"`
	Variables  []jsonVariable  `json:"variables,omitempty"`
	Procedures []jsonProcedure `json:"procedures,omitempty"`
	Errors     []jsonError     `json:"errors,omitempty"`
}

type jsonToken struct {
	Kind  string `json:"kind"`
	Code  int    `json:"code"`
	Value string `json:"value"`
	Line  int    `json:"line"`
}

type jsonVariable struct {
	Name      string `json:"name"`
	Procedure string `json:"procedure,omitempty"`
	Kind      string `json:"kind"`
	Type      string `json:"type"`
	Level     int    `json:"level"`
	Address   int    `json:"address"`
}

type jsonProcedure struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Level        int    `json:"level"`
	FirstAddress int    `json:"firstAddress"`
	LastAddress  int    `json:"lastAddress"`
}

type jsonError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
	Fatal   bool   `json:"fatal,omitempty"`
}

func (e *JSONEncoder) buildResultData() jsonResult {
	r := e.result
	data := jsonResult{OK: r.OK}

	for _, t := range r.Tokens {
		data.Tokens = append(data.Tokens, jsonToken{
			Kind:  t.Kind.String(),
			Code:  t.Kind.Code(),
			Value: t.Value,
			Line:  t.Line,
		})
	}
	for _, v := range r.Variables {
		data.Variables = append(data.Variables, jsonVariable{
			Name:      v.Name,
			Procedure: v.Proc,
			Kind:      v.Kind.String(),
			Type:      v.Type,
			Level:     v.Level,
			Address:   v.Address,
		})
	}
	for _, p := range r.Procedures {
		data.Procedures = append(data.Procedures, jsonProcedure{
			Name:         p.Name,
			Type:         p.Type,
			Level:        p.Level,
			FirstAddress: p.FirstAddress,
			LastAddress:  p.LastAddress,
		})
	}
	for _, err := range r.Errors {
		data.Errors = append(data.Errors, jsonError{
			Line:    err.Line,
			Message: err.Message,
			Fatal:   err.Fatal,
		})
	}
	return data
}
