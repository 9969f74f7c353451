// Package docanalysis is the Go client of the document analysis API:
// synchronous analysis of single-page documents, asynchronous jobs for
// multi-page documents, and custom adapter management.
//
// Inputs are validated before they are sent; a rejected input returns a
// *types.InvalidParamsError wrapped in an *OperationError. Paginated
// operations have paginators that follow NextToken until it is absent.
package docanalysis

//go:generate go run ../../internal/gen/accessors -types (Input|Output)$
