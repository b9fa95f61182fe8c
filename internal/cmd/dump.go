package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/coda-lang/coda/internal/ast"
	"github.com/coda-lang/coda/internal/selector"
)

func dumpFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.String("filter", "", "only dump functions whose names match this regular expression")
	flags.Bool("spans", false, "show the source span of every node")
	return flags
}

// runDump prints the syntax tree of the file, optionally limited to the
// functions selected by the filter.
func (c *rootCommand) runDump(cmd *cobra.Command, args []string) error {
	unit, err := c.compileFile(args[0])
	if err != nil {
		return err
	}
	defer unit.Release()

	mod := unit.Module
	if pattern := c.config.Filter.String; pattern != "" {
		sel, err := selector.Compile(pattern)
		if err != nil {
			return withExitCodeIfNone(err, InvalidConfig)
		}
		for _, fn := range sel.Functions(mod) {
			loc := sel.FindIndex(fn.Name)
			c.gs.logger.WithField("filter", sel.Pattern()).
				WithField("function", fn.Name).
				WithField("match", fn.Name[loc[0]:loc[1]]).
				Debug("Selected function")
		}
		mod = sel.Filter(mod)
	}

	spans, err := cmd.Flags().GetBool("spans")
	if err != nil {
		return err
	}
	p := ast.NewPrinter(c.gs.stdout)
	p.SetSpans(spans)
	return p.Print(mod)
}
