// Package commands implements the restcall command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/restbase/validation"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

var outputFormats = []string{OutputFormatTable, OutputFormatJSON, OutputFormatYAML}

// GlobalOptions holds the persistent flags.
type GlobalOptions struct {
	ConfigFile    string
	EndpointsFile string
	Sandbox       bool
	LogLevel      string
	Output        string
}

// Validate rejects flag values no command can act on.
func (o *GlobalOptions) Validate() error {
	if err := validation.New().
		OneOf("output", o.Output, outputFormats).
		Validate(); err != nil {
		return err
	}
	return nil
}

// NewRootCommand builds the restcall command tree.
func NewRootCommand() *cobra.Command {
	opts := &GlobalOptions{}

	root := &cobra.Command{
		Use:   "restcall",
		Short: "Call REST endpoints declared in a config file",
		Long: `restcall sends requests to endpoints declared by name in a YAML registry.

The base URLs, headers, authentication and endpoint templates are read from
config.yml (section "client" and "auth"), .env and environment variables.
CLIENT_ENVIRONMENT=SANDBOX routes every call to the sandbox base URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Validate()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.ConfigFile, "config", "c", "", "config file (default: search ./cmd/restcall, ./config, .)")
	flags.StringVarP(&opts.EndpointsFile, "endpoints", "e", "", "YAML endpoint registry, replaces client.endpoints")
	flags.BoolVar(&opts.Sandbox, "sandbox", false, "send requests to the sandbox base URL")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVarP(&opts.Output, "output", "o", OutputFormatTable, "output format (table, json, yaml)")

	root.AddCommand(
		newEndpointsCommand(opts),
		newInvokeCommand(opts),
		newVersionCommand(opts),
	)
	return root
}
