package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/euclid/pkg/parser"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <proof-file>",
		Short: "Print the token stream of a proof file",
		Long: `Tokenize a proof file and print each token's type, literal text, and
source position. Useful for debugging grammar issues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0])
		},
	}

	return cmd
}

func runTokens(cmd *cobra.Command, path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tokens, err := parser.Tokenize(string(text))
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Type", "Literal", "Line", "Col"})
	for i, tok := range tokens {
		t.AppendRow(table.Row{i, tok.Type.String(), tok.Literal, tok.Pos.Line, tok.Pos.Column})
	}
	t.Render()

	return nil
}
