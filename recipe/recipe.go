// Package recipe turns YAML descriptions of selector chains and their
// declarations into stylesheets.
//
// Recipe file example:
//
//	name: tables
//	rules:
//	  - selector: [el=table, id=data, ">", el=tr, pc=nth-of-type(even)]
//	    declarations:
//	      background: "#eee"
//
// See ParseChain for selector token syntax.
package recipe

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"
)

// Rule is one selector chain with its declarations.
type Rule struct {
	Selector     []string          `yaml:"selector" validate:"required,min=1"`
	Declarations map[string]string `yaml:"declarations,omitempty"`
}

// Recipe is a named list of rules.
type Recipe struct {
	Name  string `yaml:"name" validate:"required"`
	Rules []Rule `yaml:"rules" validate:"required,min=1,dive"`
}

// Parse decodes and validates recipe. Unknown fields are rejected.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	r := &Recipe{}
	if err := dec.Decode(r); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	if err := gencfg.Validate(r); err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}
	return r, nil
}

// Load reads recipe from file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
