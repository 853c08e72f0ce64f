package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/truthtable/internal/logic"
)

// Suite is a named list of expression cases.
type Suite struct {
	// Name uniquely identifies this suite. Used for golden file names.
	Name string `yaml:"name" json:"name"`

	// Description explains what this suite validates.
	Description string `yaml:"description" json:"description"`

	// Cases are checked in order.
	Cases []Case `yaml:"cases" json:"cases"`

	// Path is the file the suite was loaded from.
	Path string `yaml:"-" json:"-"`
}

// Case is one expression and what evaluating it must produce.
type Case struct {
	Name string `yaml:"name" json:"name"`
	Expr string `yaml:"expr" json:"expr"`

	// Vars are the expected uppercase variable names.
	Vars []string `yaml:"vars,omitempty" json:"vars,omitempty"`

	// Rows is the full expected table, variable bits then result bit.
	Rows [][]int `yaml:"rows,omitempty" json:"rows,omitempty"`

	// Column is the expected result bit of each row.
	Column []int `yaml:"column,omitempty" json:"column,omitempty"`

	// Where is one assignment (variable name to 0/1); Expect is its result.
	Where  map[string]int `yaml:"where,omitempty" json:"where,omitempty"`
	Expect *int           `yaml:"expect,omitempty" json:"expect,omitempty"`

	// Error is the expected logic.ParseErrorCode. Excludes every other expectation.
	Error string `yaml:"error,omitempty" json:"error,omitempty"`

	// EquivalentTo is an expression whose truth table must match.
	EquivalentTo string `yaml:"equivalent_to,omitempty" json:"equivalent_to,omitempty"`
}

// knownErrorCodes are the values accepted in Case.Error.
var knownErrorCodes = []logic.ParseErrorCode{
	logic.ErrCodeEmptyInput,
	logic.ErrCodeInvalidToken,
	logic.ErrCodeUnexpectedEnd,
	logic.ErrCodeUnmatchedParen,
	logic.ErrCodeTrailingInput,
	logic.ErrCodeNestingTooDeep,
	logic.ErrCodeInputTooLong,
}

// LoadSuite reads a suite from a .yaml, .yml or .cue file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var suite *Suite
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		suite, err = parseYAMLSuite(data)
	case ".cue":
		suite, err = parseCUESuite(path, data)
	default:
		return nil, fmt.Errorf("unsupported suite file extension: %s", path)
	}
	if err != nil {
		return nil, err
	}

	if err := validateSuite(suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	suite.Path = path
	return suite, nil
}

// parseYAMLSuite decodes YAML with strict field validation (catches typos
// like "colum:" vs "column:").
func parseYAMLSuite(data []byte) (*Suite, error) {
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &suite, nil
}

// FindSuiteFiles walks dir and returns suite files sorted by path.
// A non-empty filter is a glob matched against the file name without its
// extension.
func FindSuiteFiles(dir, filter string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		switch ext {
		case ".yaml", ".yml", ".cue":
		default:
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// validateSuite checks that required fields are present and valid.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true

		if err := validateCase(c); err != nil {
			return fmt.Errorf("cases[%d] (%s): %w", i, c.Name, err)
		}
	}

	return nil
}

// validateCase checks a single case's expectations for consistency.
func validateCase(c *Case) error {
	if c.Error != "" {
		if !isKnownErrorCode(c.Error) {
			return fmt.Errorf("unknown error code %q", c.Error)
		}
		if c.hasTableExpectation() {
			return fmt.Errorf("error excludes vars, rows, column, where/expect and equivalent_to")
		}
		return nil
	}

	if strings.TrimSpace(c.Expr) == "" {
		return fmt.Errorf("expr is required")
	}
	if !c.hasTableExpectation() {
		return fmt.Errorf("at least one expectation is required")
	}

	if (c.Where == nil) != (c.Expect == nil) {
		return fmt.Errorf("where and expect must be given together")
	}
	if c.Expect != nil && !isBit(*c.Expect) {
		return fmt.Errorf("expect must be 0 or 1, got %d", *c.Expect)
	}
	for name, v := range c.Where {
		if !isBit(v) {
			return fmt.Errorf("where.%s must be 0 or 1, got %d", name, v)
		}
	}
	for _, v := range c.Column {
		if !isBit(v) {
			return fmt.Errorf("column values must be 0 or 1, got %d", v)
		}
	}
	for i, row := range c.Rows {
		for _, v := range row {
			if !isBit(v) {
				return fmt.Errorf("rows[%d] values must be 0 or 1, got %d", i, v)
			}
		}
	}

	return nil
}

func (c *Case) hasTableExpectation() bool {
	return c.Vars != nil || c.Rows != nil || c.Column != nil ||
		c.Where != nil || c.Expect != nil || c.EquivalentTo != ""
}

func isKnownErrorCode(code string) bool {
	for _, known := range knownErrorCodes {
		if string(known) == code {
			return true
		}
	}
	return false
}

func isBit(v int) bool {
	return v == 0 || v == 1
}
