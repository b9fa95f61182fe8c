package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func getCmdCheck(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a source file and report diagnostics only",
		Args:  exactFileArg,
		RunE: func(_ *cobra.Command, args []string) error {
			unit, err := c.compileFile(args[0])
			if err != nil {
				return err
			}
			defer unit.Release()

			ok := c.gs.colorizer(c.gs.stdout, color.FgGreen).Sprint("ok")
			_, err = fmt.Fprintf(c.gs.stdout, "%s: %s (module %s, %d declarations)\n",
				unit.Filename, ok, unit.Module.Name, len(unit.Module.Decls))
			return err
		},
	}
}
