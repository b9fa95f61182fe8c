package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/coda-lang/coda"
)

func versionString() string {
	return fmt.Sprintf("coda v%s (%s, %s/%s)", coda.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func getCmdVersion(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show application version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(gs.stdout, versionString())
			return err
		},
	}
}
