package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/euclid/pkg/format"
	"github.com/leapstack-labs/euclid/pkg/parser"
)

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <proof-file>",
		Short: "Rewrite a proof file in canonical form",
		Long: `Parse a proof file and print it in canonical form: one clause per
line, capitalized clause leaders, lowercase inner keywords.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args[0], write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result back to the file instead of stdout")

	return cmd
}

func runFmt(cmd *cobra.Command, path string, write bool) error {
	cfg := ConfigFrom(cmd.Context())

	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tokens, err := parser.Tokenize(string(text))
	if err != nil {
		return err
	}
	p := parser.NewParserWithDepth(tokens, cfg.MaxDepth)
	proof, err := p.Parse()
	if err != nil {
		return err
	}

	canonical := format.Format(proof)
	if write {
		return os.WriteFile(path, []byte(canonical), 0o644)
	}
	fmt.Fprint(cmd.OutOrStdout(), canonical)
	return nil
}
