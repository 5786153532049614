// Package catalog loads the tool catalog from CSV and exposes an
// immutable in-memory view of it.
//
// The catalog is read once at startup. Category and pricing filter values
// are derived from the records in first-appearance order, matching the
// order of rows in the source file.
package catalog
