// Package types holds the shapes, enumerations and errors of the document
// analysis API.
//
// Shapes are plain structs. Optional scalars are pointers, lists are slices
// where nil means absent and an empty slice means present and empty, and
// enumerations are string types that accept values unknown to this package.
// The generated accessors copy lists on set, append with WithX and derive
// String, Equal and Hash from the field values.
package types

//go:generate go run ../../../internal/gen/accessors
