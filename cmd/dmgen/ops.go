package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	errNoOps     = errors.New("operation table has no operations")
	errBadArity  = errors.New("operations take one or two arguments")
	errBadName   = errors.New("invalid identifier")
	errDuplicate = errors.New("duplicate operation")
)

var identRe = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// reservedArgs are parameter names taken by the generated signatures.
var reservedArgs = map[string]bool{"c": true, "msg": true, "name": true, "rt": true}

// Op is one elementary operation of the table.
type Op struct {
	Name string   `yaml:"name"`
	Args []string `yaml:"args"`
}

// Table is the parsed operation table.
type Table struct {
	Package string `yaml:"package"`
	Tag     string `yaml:"tag"`
	Ops     []Op   `yaml:"ops"`
}

// LoadTable reads and validates an operation table.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read operation table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes and validates an operation table.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse operation table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks names and arities.
func (t *Table) Validate() error {
	if len(t.Ops) == 0 {
		return errNoOps
	}
	names := lo.Map(t.Ops, func(op Op, _ int) string { return op.Name })
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return fmt.Errorf("op %q: %w", dups[0], errDuplicate)
	}
	for _, op := range t.Ops {
		if !identRe.MatchString(op.Name) {
			return fmt.Errorf("op %q: %w", op.Name, errBadName)
		}
		if len(op.Args) < 1 || len(op.Args) > 2 {
			return fmt.Errorf("op %q: %w", op.Name, errBadArity)
		}
		for _, a := range op.Args {
			if !identRe.MatchString(a) || reservedArgs[a] {
				return fmt.Errorf("op %q arg %q: %w", op.Name, a, errBadName)
			}
		}
	}
	return nil
}
