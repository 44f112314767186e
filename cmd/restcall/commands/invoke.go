package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kbukum/restbase/client"
)

type invokeOptions struct {
	params  []string
	headers []string
	data    string
	fail    bool
	verbose bool
}

func newInvokeCommand(opts *GlobalOptions) *cobra.Command {
	iopts := &invokeOptions{}

	cmd := &cobra.Command{
		Use:   "invoke <endpoint> [path-args...]",
		Short: "Send one request to a registered endpoint",
		Long: `Send one request to a registered endpoint and print the response body.

Positional arguments after the endpoint name fill the {} placeholders of its
path in order. The status line goes to stderr so the body can be piped.`,
		Example: `  restcall invoke get_user 42 --param expand=teams
  restcall invoke create_user --data '{"name":"ada"}'
  echo '{"name":"ada"}' | restcall invoke create_user --data -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvoke(cmd, opts, iopts, args[0], args[1:])
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&iopts.params, "param", "p", nil, "query parameter key=value (repeatable)")
	f.StringArrayVarP(&iopts.headers, "header", "H", nil, "extra header Key=Value (repeatable)")
	f.StringVarP(&iopts.data, "data", "d", "", "JSON object sent as body for POST/PUT/PATCH, - reads stdin")
	f.BoolVar(&iopts.fail, "fail", false, "exit non-zero on 4xx/5xx responses")
	f.BoolVarP(&iopts.verbose, "verbose", "v", false, "print response headers to stderr")
	return cmd
}

func runInvoke(cmd *cobra.Command, opts *GlobalOptions, iopts *invokeOptions, name string, pathArgs []string) error {
	ctx := cmd.Context()

	sess, err := openSession(ctx, opts)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	callOpts, err := buildCallOptions(cmd, sess.client, iopts, pathArgs)
	if err != nil {
		return err
	}

	resp, err := sess.client.Invoke(ctx, name, callOpts...)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	return writeResponse(cmd, resp, iopts)
}

func buildCallOptions(cmd *cobra.Command, c *client.Client, iopts *invokeOptions, pathArgs []string) ([]client.CallOption, error) {
	var callOpts []client.CallOption

	if len(pathArgs) > 0 {
		values := make([]any, len(pathArgs))
		for i, a := range pathArgs {
			values[i] = a
		}
		callOpts = append(callOpts, client.PathArgs(values...))
	}

	params, err := parseKeyValues("param", iopts.params)
	if err != nil {
		return nil, err
	}
	for _, kv := range params {
		callOpts = append(callOpts, client.Param(kv[0], kv[1]))
	}

	if iopts.data != "" {
		body, err := readBody(cmd, iopts.data)
		if err != nil {
			return nil, err
		}
		callOpts = append(callOpts, client.Body(body))
	}

	if len(iopts.headers) > 0 {
		extra, err := parseKeyValues("header", iopts.headers)
		if err != nil {
			return nil, err
		}
		// Extra headers are layered over the client's own set.
		headers := c.Headers()
		for _, kv := range extra {
			headers[http.CanonicalHeaderKey(kv[0])] = kv[1]
		}
		callOpts = append(callOpts, client.Headers(headers))
	}

	return callOpts, nil
}

func readBody(cmd *cobra.Command, data string) (map[string]any, error) {
	raw := []byte(data)
	if data == "-" {
		var err error
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading body from stdin: %w", err)
		}
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("--data must be a JSON object: %w", err)
	}
	return body, nil
}

func writeResponse(cmd *cobra.Command, resp *http.Response, iopts *invokeOptions) error {
	stderr := cmd.ErrOrStderr()
	_, _ = fmt.Fprintf(stderr, "%s %s\n", resp.Proto, resp.Status)
	if iopts.verbose {
		for k, vs := range resp.Header {
			_, _ = fmt.Fprintf(stderr, "%s: %s\n", k, strings.Join(vs, ", "))
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	out := cmd.OutOrStdout()
	if isTerminal(out) && json.Valid(body) {
		var pretty bytes.Buffer
		if json.Indent(&pretty, body, "", "  ") == nil {
			body = append(pretty.Bytes(), '\n')
		}
	}
	if _, err := out.Write(body); err != nil {
		return err
	}

	if iopts.fail && resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed: %s", resp.Status)
	}
	return nil
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
