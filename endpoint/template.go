package endpoint

import (
	"fmt"
	"strings"

	"github.com/kbukum/restbase/errors"
	"github.com/kbukum/restbase/validation"
)

// Placeholder is the positional marker substituted by Fill.
const Placeholder = "{}"

// Template describes one endpoint: an HTTP method and a path pattern.
type Template struct {
	Method string `yaml:"method" mapstructure:"method"`
	Path   string `yaml:"path" mapstructure:"path"`
}

// IsZero reports whether the template carries neither a method nor a path.
// A zero template is treated as unregistered by the dispatcher.
func (t Template) IsZero() bool {
	return t.Method == "" && t.Path == ""
}

// HTTPMethod returns the upper-cased method, defaulting to GET when empty.
func (t Template) HTTPMethod() string {
	if t.Method == "" {
		return "GET"
	}
	return strings.ToUpper(t.Method)
}

// Placeholders returns the number of `{}` markers in the path.
func (t Template) Placeholders() int {
	return strings.Count(t.Path, Placeholder)
}

// Fill substitutes args into the path placeholders, left to right, and
// returns the result. Values are rendered with fmt.Sprint and are not
// URL-encoded. The argument count must match the placeholder count exactly.
func (t Template) Fill(args ...any) (string, error) {
	n := t.Placeholders()
	if n != len(args) {
		return "", errors.TemplateMismatch(t.Path, n, len(args))
	}
	if n == 0 {
		return t.Path, nil
	}

	var b strings.Builder
	b.Grow(len(t.Path) + 8*n)
	rest := t.Path
	for _, arg := range args {
		i := strings.Index(rest, Placeholder)
		b.WriteString(rest[:i])
		b.WriteString(fmt.Sprint(arg))
		rest = rest[i+len(Placeholder):]
	}
	b.WriteString(rest)
	return b.String(), nil
}

// Validate checks the method and that the path is set.
func (t Template) Validate() error {
	v := validation.New().
		Required("path", t.Path).
		HTTPMethod("method", t.HTTPMethod())
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// String renders the template as "METHOD path".
func (t Template) String() string {
	return t.HTTPMethod() + " " + t.Path
}
