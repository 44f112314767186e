package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kbukum/restbase/endpoint"
)

type endpointRow struct {
	Name   string `json:"name" yaml:"name"`
	Method string `json:"method" yaml:"method"`
	Path   string `json:"path" yaml:"path"`
	Args   int    `json:"args" yaml:"args"`
}

func newEndpointsCommand(opts *GlobalOptions) *cobra.Command {
	var validate bool

	cmd := &cobra.Command{
		Use:     "endpoints",
		Aliases: []string{"ls"},
		Short:   "List registered endpoints",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer sess.Close(cmd.Context())

			reg := sess.client.Endpoints()
			if validate {
				if err := reg.Validate(); err != nil {
					return err
				}
			}
			return renderEndpoints(cmd.OutOrStdout(), opts.Output, reg)
		},
	}

	cmd.Flags().BoolVar(&validate, "validate", false, "fail if any template has an invalid method or empty path")
	return cmd
}

func renderEndpoints(w io.Writer, format string, reg endpoint.Registry) error {
	rows := make([]endpointRow, 0, len(reg))
	for _, name := range reg.Names() {
		tmpl := reg[name]
		rows = append(rows, endpointRow{
			Name:   name,
			Method: tmpl.HTTPMethod(),
			Path:   tmpl.Path,
			Args:   tmpl.Placeholders(),
		})
	}

	switch format {
	case OutputFormatJSON:
		return renderJSON(w, rows)
	case OutputFormatYAML:
		return renderYAML(w, rows)
	}

	if len(rows) == 0 {
		_, _ = io.WriteString(w, "No endpoints registered\n")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Name", "Method", "Path", "Args")
	for _, r := range rows {
		_ = table.Append(r.Name, r.Method, r.Path, fmt.Sprint(r.Args))
	}
	return table.Render()
}
