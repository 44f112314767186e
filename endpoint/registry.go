package endpoint

import (
	"fmt"
	"sort"

	"github.com/kbukum/restbase/errors"
)

// Registry maps endpoint names to templates. Insertion is unchecked:
// a duplicate name overwrites and malformed paths surface at dispatch.
type Registry map[string]Template

// Lookup returns the template registered under name. ok is false only when the
// name is absent; a registered zero template returns ok == true.
func (r Registry) Lookup(name string) (tmpl Template, ok bool) {
	tmpl, ok = r[name]
	return tmpl, ok
}

// Names returns the registered names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a shallow copy of the registry.
func (r Registry) Clone() Registry {
	if r == nil {
		return nil
	}
	out := make(Registry, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Validate checks every template and reports all failures at once.
// It is never called implicitly.
func (r Registry) Validate() error {
	var failed []string
	details := make(map[string]any)
	for _, name := range r.Names() {
		if err := r[name].Validate(); err != nil {
			failed = append(failed, name)
			details[name] = err.Error()
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return errors.Validation(fmt.Sprintf("invalid endpoints: %v", failed)).WithDetails(details)
}
