package harness

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSuite writes content to dir/name and returns the path.
func writeSuite(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSuite_YAML(t *testing.T) {
	path := writeSuite(t, t.TempDir(), "ops.yaml", `
name: ops
description: "operators"
cases:
  - name: and
    expr: "a & b"
    vars: [a, b]
    column: [0, 0, 0, 1]
  - name: spot
    expr: "a | b"
    where: {a: 1, b: 0}
    expect: 1
  - name: bad
    expr: "a &"
    error: UNEXPECTED_END
`)

	suite, err := LoadSuite(path)
	require.NoError(t, err)

	assert.Equal(t, "ops", suite.Name)
	assert.Equal(t, path, suite.Path)
	require.Len(t, suite.Cases, 3)
	assert.Equal(t, []string{"a", "b"}, suite.Cases[0].Vars)
	assert.Equal(t, []int{0, 0, 0, 1}, suite.Cases[0].Column)
	assert.Equal(t, map[string]int{"a": 1, "b": 0}, suite.Cases[1].Where)
	require.NotNil(t, suite.Cases[1].Expect)
	assert.Equal(t, 1, *suite.Cases[1].Expect)
	assert.Equal(t, "UNEXPECTED_END", suite.Cases[2].Error)
}

func TestLoadSuite_UnknownField(t *testing.T) {
	path := writeSuite(t, t.TempDir(), "typo.yaml", `
name: typo
cases:
  - name: and
    expr: "a & b"
    colum: [0, 0, 0, 1]
`)

	_, err := LoadSuite(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadSuite_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: "cases:\n  - name: x\n    expr: a\n    column: [0, 1]\n",
			wantErr: "name is required",
		},
		{
			name:    "no cases",
			content: "name: empty\ncases: []\n",
			wantErr: "cases list is required",
		},
		{
			name:    "case without name",
			content: "name: s\ncases:\n  - expr: a\n    column: [0, 1]\n",
			wantErr: "cases[0]: name is required",
		},
		{
			name:    "duplicate case",
			content: "name: s\ncases:\n  - {name: x, expr: a, column: [0, 1]}\n  - {name: x, expr: b, column: [0, 1]}\n",
			wantErr: "duplicate case name",
		},
		{
			name:    "no expectation",
			content: "name: s\ncases:\n  - {name: x, expr: a}\n",
			wantErr: "at least one expectation is required",
		},
		{
			name:    "missing expr",
			content: "name: s\ncases:\n  - {name: x, column: [1]}\n",
			wantErr: "expr is required",
		},
		{
			name:    "where without expect",
			content: "name: s\ncases:\n  - {name: x, expr: a, where: {a: 1}}\n",
			wantErr: "where and expect must be given together",
		},
		{
			name:    "non-bit expect",
			content: "name: s\ncases:\n  - {name: x, expr: a, where: {a: 1}, expect: 2}\n",
			wantErr: "expect must be 0 or 1",
		},
		{
			name:    "non-bit column",
			content: "name: s\ncases:\n  - {name: x, expr: a, column: [0, 5]}\n",
			wantErr: "column values must be 0 or 1",
		},
		{
			name:    "non-bit row",
			content: "name: s\ncases:\n  - {name: x, expr: a, rows: [[0, 0], [1, 3]]}\n",
			wantErr: "rows[1] values must be 0 or 1",
		},
		{
			name:    "unknown error code",
			content: "name: s\ncases:\n  - {name: x, expr: a, error: BOOM}\n",
			wantErr: `unknown error code "BOOM"`,
		},
		{
			name:    "error with table expectation",
			content: "name: s\ncases:\n  - {name: x, expr: a, error: TRAILING_INPUT, column: [0, 1]}\n",
			wantErr: "error excludes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSuite(t, t.TempDir(), "suite.yaml", tt.content)
			_, err := LoadSuite(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid suite")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSuite_CUE(t *testing.T) {
	path := writeSuite(t, t.TempDir(), "laws.cue", `
suite: {
	name:        "laws"
	description: "equivalences"
	cases: [
		{name: "implication", expr: "a -> b", equivalent_to: "!a | b"},
		{name: "spot", expr: "a & b", where: {a: 1, b: 1}, expect: 1},
	]
}
`)

	suite, err := LoadSuite(path)
	require.NoError(t, err)

	assert.Equal(t, "laws", suite.Name)
	require.Len(t, suite.Cases, 2)
	assert.Equal(t, "!a | b", suite.Cases[0].EquivalentTo)
	require.NotNil(t, suite.Cases[1].Expect)
	assert.Equal(t, 1, *suite.Cases[1].Expect)
}

func TestLoadSuite_CUESyntaxError(t *testing.T) {
	path := writeSuite(t, t.TempDir(), "broken.cue", "suite: {\n\tname: \n")

	_, err := LoadSuite(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T", err)
	assert.True(t, loadErr.Pos.IsValid())
	assert.Contains(t, err.Error(), "broken.cue")
}

func TestLoadSuite_CUEUnknownFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"misspelled case checks", `{name: "x", expr: "a & b", column: [0, 0, 0, 1], whre: {a: 1}, expct: 0}`, "whre"},
		{"misspelled expectation", `{name: "x", expr: "a", colum: [0, 1]}`, "colum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSuite(t, t.TempDir(), "typo.cue", "suite: {\n\tname: \"typo\"\n\tcases: ["+tt.body+"]\n}\n")

			suite, err := LoadSuite(path)
			require.Error(t, err)
			assert.Nil(t, suite)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadSuite_CUEUnknownSuiteField(t *testing.T) {
	path := writeSuite(t, t.TempDir(), "typo.cue", `
suite: {
	name:  "typo"
	casse: []
	cases: [{name: "x", expr: "a", column: [0, 1]}]
}
`)

	_, err := LoadSuite(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "casse")
}

func TestLoadSuite_CUEMissingSuite(t *testing.T) {
	path := writeSuite(t, t.TempDir(), "other.cue", `other: 1`)

	_, err := LoadSuite(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no top-level suite field")
}

func TestLoadSuite_CUEIncomplete(t *testing.T) {
	path := writeSuite(t, t.TempDir(), "open.cue", `
suite: {
	name: string
	cases: [{name: "x", expr: "a", column: [0, 1]}]
}
`)

	_, err := LoadSuite(path)
	require.Error(t, err)
}

func TestLoadSuite_Errors(t *testing.T) {
	_, err := LoadSuite(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read suite file")

	path := writeSuite(t, t.TempDir(), "suite.json", `{}`)
	_, err = LoadSuite(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported suite file extension")
}

func TestFindSuiteFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	writeSuite(t, dir, "b.yaml", "")
	writeSuite(t, dir, "a.yml", "")
	writeSuite(t, dir, "c.cue", "")
	writeSuite(t, dir, "notes.txt", "")
	writeSuite(t, filepath.Join(dir, "nested"), "d.yaml", "")

	files, err := FindSuiteFiles(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yml"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "c.cue"),
		filepath.Join(dir, "nested", "d.yaml"),
	}, files)

	files, err = FindSuiteFiles(dir, "[bd]")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "nested", "d.yaml"),
	}, files)

	_, err = FindSuiteFiles(dir, "[")
	assert.Error(t, err)
}
