package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/minipas/minipas/format"
	"github.com/minipas/minipas/pascal/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var outDir string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Analyze a source file and dump the result ledgers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return errors.Wrapf(err, "read %s", filename)
			}

			result := parser.ParseSource(data)

			if outDir != "" {
				if err := writeLedgers(outDir, filename, result); err != nil {
					return err
				}
			}

			switch outputFormat {
			case "json":
				if err := format.NewJSONEncoder(os.Stdout).Encode(result); err != nil {
					return errors.Wrap(err, "encode json")
				}
				fmt.Println()
			case "text":
				for _, enc := range []format.Encoder{
					format.NewVariableEncoder(os.Stdout),
					format.NewProcedureEncoder(os.Stdout),
				} {
					if err := enc.Encode(result); err != nil {
						return errors.Wrap(err, "encode tables")
					}
				}
				if err := format.NewErrorEncoder(os.Stderr).Encode(result); err != nil {
					return errors.Wrap(err, "encode errors")
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if !result.OK {
				return fmt.Errorf("%s: %d error(s)", filename, len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for the ledger files")

	return cmd
}

// writeLedgers drops the four result ledgers next to each other, named
// after the source file: <base>.tok, <base>.var, <base>.pro, <base>.err.
func writeLedgers(dir, source string, result *parser.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	ledgers := []struct {
		ext     string
		encoder func(f *os.File) format.Encoder
	}{
		{".tok", func(f *os.File) format.Encoder { return format.NewTokenEncoder(f) }},
		{".var", func(f *os.File) format.Encoder { return format.NewVariableEncoder(f) }},
		{".pro", func(f *os.File) format.Encoder { return format.NewProcedureEncoder(f) }},
		{".err", func(f *os.File) format.Encoder { return format.NewErrorEncoder(f) }},
	}

	for _, ledger := range ledgers {
		path := filepath.Join(dir, base+ledger.ext)
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "create %s", path)
		}
		encodeErr := ledger.encoder(f).Encode(result)
		closeErr := f.Close()
		if encodeErr != nil {
			return errors.Wrapf(encodeErr, "write %s", path)
		}
		if closeErr != nil {
			return errors.Wrapf(closeErr, "close %s", path)
		}
	}
	return nil
}
