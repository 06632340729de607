package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/minipas/minipas/format"
	"github.com/minipas/minipas/pascal/parser"
)

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex <file>",
		Short: "Tokenize a source file and dump the token ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return errors.Wrapf(err, "read %s", filename)
			}

			tokens, lexErrors := parser.Tokenize(data)
			result := &parser.Result{Tokens: tokens, Errors: lexErrors, OK: lexErrors.Clean()}

			if err := format.NewTokenEncoder(os.Stdout).Encode(result); err != nil {
				return errors.Wrap(err, "encode tokens")
			}
			if err := format.NewErrorEncoder(os.Stderr).Encode(result); err != nil {
				return errors.Wrap(err, "encode errors")
			}
			if !result.OK {
				return fmt.Errorf("%s: %d lexical error(s)", filename, len(lexErrors))
			}
			return nil
		},
	}
}
