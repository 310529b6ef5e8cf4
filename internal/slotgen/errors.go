package slotgen

import "errors"

var (
	// ErrTypeNotFound is returned when the requested type is not declared in the file.
	ErrTypeNotFound = errors.New("type not found")

	// ErrNotStruct is returned when the requested type is not a struct.
	ErrNotStruct = errors.New("slots can only be generated for struct types")

	// ErrEmbedded is returned for structs with embedded fields, which have no slot name.
	ErrEmbedded = errors.New("embedded fields are not supported")

	// ErrGeneric is returned for parameterized structs; slot variables cannot be generic.
	ErrGeneric = errors.New("generic types are not supported")
)
