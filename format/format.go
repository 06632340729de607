package format

import (
	"encoding"

	"github.com/minipas/minipas/pascal/parser"
)

// Encoder renders one ledger of an analysis result.
type Encoder interface {
	encoding.TextMarshaler
	Encode(result *parser.Result) error
}
