// Package cmd implements the coda command line interface.
package cmd

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/coda-lang/coda"
)

// Execute runs the coda command line with the process arguments and exits.
// It is called by main.main.
func Execute() {
	newRootCommand(newGlobalState()).execute()
}

// rootCommand keeps everything shared by the coda commands.
type rootCommand struct {
	gs     *globalState
	cmd    *cobra.Command
	config Config // consolidated before any command runs
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{gs: gs}

	rootCmd := &cobra.Command{
		Use:   "coda <file>",
		Short: "Parse a coda source file and print its syntax tree",
		Long: "Parse a coda source file and print its syntax tree.\n\n" +
			"Diagnostics are printed to stderr, one per line, and the exit\n" +
			"status is non-zero when any was found.",
		Args:              exactFileArg,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
		RunE:              c.runDump,
		Version:           coda.Version,
	}
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "v%s\n" .Version}}`)

	rootCmd.PersistentFlags().AddFlagSet(rootCmdPersistentFlagSet(gs))
	rootCmd.Flags().AddFlagSet(dumpFlagSet())
	rootCmd.SetArgs(gs.cmdArgs[1:])
	rootCmd.SetOut(gs.stdout)
	rootCmd.SetErr(gs.stderr)

	rootCmd.AddCommand(
		getCmdTokens(c),
		getCmdCheck(c),
		getCmdVersion(gs),
	)

	c.cmd = rootCmd
	return c
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	if err := c.setupLogger(); err != nil {
		return err
	}

	conf, err := getConsolidatedConfig(c.gs, cmd.Flags())
	if err != nil {
		return err
	}
	c.config = conf

	c.gs.logger.WithFields(logrus.Fields{
		"maxDepth":       conf.MaxDepth.Int64,
		"arenaBlockSize": conf.ArenaBlockSize.Int64,
		"arenaLimit":     conf.ArenaLimit.Int64,
		"filter":         conf.Filter.String,
	}).Debug("Consolidated config")
	return nil
}

func (c *rootCommand) execute() {
	exitCode := -1
	defer func() {
		c.gs.osExit(exitCode)
	}()

	defer func() {
		if r := recover(); r != nil {
			exitCode = 1
			c.gs.printError(fmt.Sprintf("unexpected panic: %s\n%s", r, debug.Stack()))
		}
	}()

	err := c.cmd.Execute()
	if err == nil {
		exitCode = 0
		return
	}

	exitCode = 1
	var ecerr HasExitCode
	if errors.As(err, &ecerr) {
		exitCode = int(ecerr.ExitCode())
	}
	if errors.Is(err, errAlreadyReported) {
		return
	}
	c.gs.printError(err)
}

func rootCmdPersistentFlagSet(gs *globalState) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)

	// The destinations already hold the values consolidated from the
	// environment, so DefValue is reset for an accurate --help.
	flags.StringVarP(&gs.flags.ConfigFilePath, "config", "c", gs.flags.ConfigFilePath, "YAML config file")
	flags.Lookup("config").DefValue = gs.defaultFlags.ConfigFilePath
	must(cobra.MarkFlagFilename(flags, "config", "yaml", "yml"))

	flags.BoolVar(&gs.flags.NoColor, "no-color", gs.flags.NoColor, "disable colored output")
	flags.Lookup("no-color").DefValue = strconv.FormatBool(gs.defaultFlags.NoColor)

	flags.StringVar(&gs.flags.LogFormat, "log-format", gs.flags.LogFormat, "log output format: text, json or raw")
	flags.Lookup("log-format").DefValue = gs.defaultFlags.LogFormat

	flags.BoolVarP(&gs.flags.Verbose, "verbose", "v", gs.defaultFlags.Verbose, "enable verbose logging")

	flags.Int("max-depth", 0, "maximum nesting depth (default from config, 256)")
	return flags
}

// RawFormatter prints only the message of each entry.
type RawFormatter struct{}

// Format renders a single log entry.
func (f RawFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return append([]byte(entry.Message), '\n'), nil
}

func (c *rootCommand) setupLogger() error {
	gs := c.gs
	if gs.flags.Verbose {
		gs.logger.SetLevel(logrus.DebugLevel)
	}

	switch gs.flags.LogFormat {
	case "raw":
		gs.logger.SetFormatter(&RawFormatter{})
		gs.logger.Debug("Logger format: RAW")
	case "json":
		gs.logger.SetFormatter(&logrus.JSONFormatter{})
		gs.logger.Debug("Logger format: JSON")
	case "text", "":
		gs.logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !gs.flags.NoColor && gs.stderr.isTTY,
			DisableColors: gs.flags.NoColor,
		})
		gs.logger.Debug("Logger format: TEXT")
	default:
		return withExitCodeIfNone(fmt.Errorf("unsupported log format '%s'", gs.flags.LogFormat), InvalidConfig)
	}
	return nil
}

func exactFileArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return withExitCodeIfNone(
			fmt.Errorf("%s needs exactly one source file, got %d arguments", cmd.CommandPath(), len(args)),
			InvalidConfig,
		)
	}
	return nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
