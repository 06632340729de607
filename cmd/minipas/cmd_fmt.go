package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/minipas/minipas/format"
	"github.com/minipas/minipas/pascal/parser"
)

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reprint a source file from its cleaned token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return errors.Wrapf(err, "read %s", filename)
			}

			result := parser.ParseSource(data)
			if !result.OK {
				// Formatting malformed input would lose the dropped
				// tokens; refuse and show why.
				if err := format.NewErrorEncoder(os.Stderr).Encode(result); err != nil {
					return errors.Wrap(err, "encode errors")
				}
				return fmt.Errorf("%s: %d error(s)", filename, len(result.Errors))
			}

			return format.NewSourceEncoder(os.Stdout).Encode(result)
		},
	}
}
