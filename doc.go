// Package spend implements a single-user expense book persisted as a
// delimited text file. It is designed to be local-first and auditable: the
// storage file is plain CSV that can be read, diffed, and version-controlled.
//
// The core functionalities include:
//   - Record Store: loading and saving the ordered list of expense records
//     to and from a comma-separated text file with a fixed header.
//   - Record Entry: interactive, retry-until-valid collection of a new
//     record's fields from a line-based input stream.
//   - Budget Tracking: comparing the book's running total against a
//     user-supplied budget.
//
// This package serves as the foundational logic for the `xp` command-line
// tool.
package spend
