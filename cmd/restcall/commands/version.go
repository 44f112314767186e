package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/restbase/version"
)

func newVersionCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			switch opts.Output {
			case OutputFormatJSON:
				return renderJSON(cmd.OutOrStdout(), info)
			case OutputFormatYAML:
				return renderYAML(cmd.OutOrStdout(), info)
			default:
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "restcall %s\nuser-agent %s\n", info, version.UserAgent())
				return err
			}
		},
	}
}
