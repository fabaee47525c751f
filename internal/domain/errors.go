package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for generation runs
var (
	// ErrFileNotFound is returned when an input file (config or artifact) doesn't exist
	ErrFileNotFound = errors.New("file not found")

	// ErrJSONParse is returned when an input document is not valid JSON of the expected shape
	ErrJSONParse = errors.New("invalid JSON document")

	// ErrMissingConstructor is returned when an ABI has no constructor entry
	ErrMissingConstructor = errors.New("missing constructor")

	// ErrInvalidName is returned when a name cannot be placed in generated source as is
	ErrInvalidName = errors.New("invalid name")

	// ErrReservedName is returned when a parameter shadows a local of the deploy function
	ErrReservedName = errors.New("reserved name")
)

// ArtifactError ties a loading failure to the contract whose artifact caused it.
type ArtifactError struct {
	Contract string
	Path     string
	Err      error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("artifact for %s (%s): %v", e.Contract, e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}
