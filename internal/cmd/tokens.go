package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coda-lang/coda/internal/lexer"
)

func getCmdTokens(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a source file",
		Long: "Print the token stream of a source file, one token per line:\n" +
			"its span, its kind and, for names and literals, its source text.",
		Args: exactFileArg,
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]
			src, err := loadSource(c.gs, path)
			if err != nil {
				return err
			}

			tokens, errs := lexer.Lex(src)
			for _, tok := range tokens {
				if _, err := fmt.Fprintf(c.gs.stdout, "%-12s %-16s %s\n", tok.Span(), tok.Kind, tok.Raw); err != nil {
					return err
				}
			}
			for _, d := range errs {
				c.gs.printError(fmt.Sprintf("%s: %s", path, d))
			}
			if errs.Len() > 0 {
				return withExitCodeIfNone(errAlreadyReported, CompileFailed)
			}
			return nil
		},
	}
}
