// Package main is the entry point for the rfcurl binary.
// It parses and validates URLs against the strict RFC 1738 grammar.
package main

import (
	"fmt"
	"os"

	"github.com/jongio/rfcurl/cliout"
	"github.com/jongio/rfcurl/config"
	"github.com/jongio/rfcurl/logutil"
	"github.com/jongio/rfcurl/version"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	output         string
	debug          bool
	structuredLogs bool
	noColor        bool
	configPath     string
}

// newRootCmd creates the root command for rfcurl
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "rfcurl",
		Short: "Strict RFC 1738 URL parser",
		Long: `Parse and validate absolute URLs against the RFC 1738 BNF grammar.

Unlike browser-grade parsers, rfcurl applies the grammar literally: schemes
must be lowercase, hosts must be hostnames or dotted quads, and escapes are
not decoded. Rejected URLs are reported with the grammar production that
failed and the offending fragment.

Example:
  rfcurl parse "http://user:pw@example.com:8080/a/b?x=1"
  rfcurl decompose login "user:pw@example.com:8080"
  rfcurl check urls.txt --https-only`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", "default", "Output format (default, json, yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.structuredLogs, "structured-logs", false, "Write logs as JSON")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file (YAML)")

	rootCmd.AddCommand(
		newParseCmd(),
		newDecomposeCmd(),
		newCheckCmd(),
		version.NewCommand(version.New("rfcurl")),
	)

	return rootCmd
}

// setup loads the config file into unset flags, then configures output and logging.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyToFlags(cmd.Flags()); err != nil {
		return err
	}

	if err := cliout.SetFormat(o.output); err != nil {
		return err
	}
	if o.noColor {
		cliout.NoColor()
	}
	logutil.SetupLogger(o.debug, o.structuredLogs)
	logutil.Debug("configured", "command", cmd.Name(), "output", o.output)
	return nil
}
