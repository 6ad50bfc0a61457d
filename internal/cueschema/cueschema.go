// SPDX-License-Identifier: MPL-2.0

// Package cueschema validates JSON documents against embedded CUE schemas and
// decodes them into Go structs. It concentrates the compile/unify/validate
// flow so callers only embed a schema and name its root definition.
package cueschema

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

// maxDocumentSize bounds the accepted document size. Declarations and
// metadata files are small; anything larger is a sign of a wrong input.
const maxDocumentSize = 1 << 20

// ValidationError reports a schema violation in a named document.
type ValidationError struct {
	// FilePath is the document being validated.
	FilePath string

	// Details is the flattened CUE error message.
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.FilePath, e.Details)
}

// DecodeJSON validates JSON data against the schema definition at schemaPath
// (e.g. "#PackMeta") and decodes the result into T. The filename only labels
// error messages.
func DecodeJSON[T any](schema []byte, data []byte, schemaPath, filename string) (*T, error) {
	if len(data) > maxDocumentSize {
		return nil, &ValidationError{
			FilePath: filename,
			Details:  fmt.Sprintf("document exceeds %d bytes", maxDocumentSize),
		}
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: compiling schema: %w", schemaValue.Err())
	}
	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	expr, err := cuejson.Extract(filename, data)
	if err != nil {
		return nil, &ValidationError{FilePath: filename, Details: flatten(err)}
	}
	docValue := ctx.BuildExpr(expr)
	if docValue.Err() != nil {
		return nil, &ValidationError{FilePath: filename, Details: flatten(docValue.Err())}
	}

	unified := schemaRoot.Unify(docValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, &ValidationError{FilePath: filename, Details: flatten(err)}
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return nil, &ValidationError{FilePath: filename, Details: flatten(err)}
	}
	return &out, nil
}

// flatten collapses a CUE error list into one readable line per error.
func flatten(err error) string {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err.Error()
	}
	msg := ""
	for i, e := range errs {
		if i > 0 {
			msg += "; "
		}
		if path := cueerrors.Path(e); len(path) > 0 {
			msg += strings.Join(path, ".") + ": "
		}
		format, args := e.Msg()
		msg += fmt.Sprintf(format, args...)
	}
	return msg
}
