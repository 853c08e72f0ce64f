package harness

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// LoadError is a suite file error with CUE position information when available.
type LoadError struct {
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// suiteSchema closes the suite and case structs so misspelled fields are
// rejected, matching KnownFields on the YAML side. Presence rules stay in
// validateSuite.
const suiteSchema = `
#Suite: close({
	name?:        string
	description?: string
	cases?: [...#Case]
})

#Case: close({
	name?:          string
	expr?:          string
	vars?:          [...string]
	rows?:          [...[...int]]
	column?:        [...int]
	where?:         {[string]: int}
	expect?:        int
	error?:         string
	equivalent_to?: string
})
`

// parseCUESuite compiles a CUE file, checks its top-level "suite" field
// against suiteSchema and decodes it.
func parseCUESuite(path string, data []byte) (*Suite, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(suiteSchema, cue.Filename("suite-schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	suiteVal := v.LookupPath(cue.ParsePath("suite"))
	if !suiteVal.Exists() {
		return nil, &LoadError{Message: fmt.Sprintf("%s: no top-level suite field", path)}
	}
	suiteVal = schema.LookupPath(cue.ParsePath("#Suite")).Unify(suiteVal)
	if err := suiteVal.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	var suite Suite
	if err := suiteVal.Decode(&suite); err != nil {
		return nil, formatCUEError(err)
	}
	return &suite, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	first := errs[0]
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		return &LoadError{
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return &LoadError{Message: first.Error()}
}
