package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultIndent = 2

// renderJSON writes data as indented JSON.
func renderJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", defaultIndent))
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}
	return nil
}

// renderYAML writes data as YAML.
func renderYAML(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(defaultIndent)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}
	return enc.Close()
}

// parseKeyValues splits "key=value" pairs. Repeated keys keep every value
// in order.
func parseKeyValues(flag string, pairs []string) ([][2]string, error) {
	out := make([][2]string, 0, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --%s %q: expected key=value", flag, p)
		}
		out = append(out, [2]string{k, v})
	}
	return out, nil
}
