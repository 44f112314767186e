package endpoint

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML registry document of the form
//
//	get_user:
//	  method: GET
//	  path: /users/{}
func Decode(r io.Reader) (Registry, error) {
	reg := Registry{}
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&reg); err != nil {
		if err == io.EOF {
			return reg, nil
		}
		return nil, fmt.Errorf("endpoint: decode registry: %w", err)
	}
	return reg, nil
}

// LoadFile reads a YAML registry from path.
func LoadFile(path string) (Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("endpoint: open registry: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}
