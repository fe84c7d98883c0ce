// Package errors re-exports github.com/cockroachdb/errors so the rest of
// pumlgen gets stack traces, wrapping and user-facing hints from one place.
//
//	if err := os.WriteFile(path, data, 0o644); err != nil {
//	    return errors.Wrapf(err, "write %s", path)
//	}
//	return errors.WithHint(err, "pass --lang all to generate every target")
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
)

// User-facing hints and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Inspection
var (
	Is             = crdb.Is
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors returned at the command boundary. Wrap them to add
// context; match them with Is.
var (
	// ErrEmptyInput indicates a diagram source with no content
	ErrEmptyInput = New("empty diagram input")

	// ErrUnknownLanguage indicates a target language with no generator
	ErrUnknownLanguage = New("unknown language")

	// ErrUnknownFormat indicates an unsupported export format
	ErrUnknownFormat = New("unknown export format")

	// ErrNoInputs indicates that no input file matched
	ErrNoInputs = New("no input files")
)
