package parser

import "fmt"

// Error is a single diagnostic. Errors are surfaced as data, never
// dropped; Fatal marks the one error that aborted the parse.
type Error struct {
	Line    int
	Message string
	Fatal   bool
}

func (e Error) String() string {
	if e.Fatal {
		return fmt.Sprintf("Line %d: %s [FATAL]", e.Line, e.Message)
	}
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

type ErrorList []Error

// Clean reports that no errors were collected.
func (l ErrorList) Clean() bool {
	return len(l) == 0
}

// fatalParseError unwinds the recursive descent to the top-level
// driver. Soft errors collected before the abort survive in the parser
// state.
type fatalParseError struct {
	err Error
}
