// Package model defines the core data structures used throughout projcompare.
//
// This package contains the following main types:
//   - Project: One validated entry of the input file (name, revenue, public)
//   - Mode: The enumerated visualisation mode selected on the command line
//
// The loader package produces Projects and the render package consumes them.
// Keeping the types here lets both depend on them without importing each other.
package model
