// Package docsweep normalizes prose style and formatting artifacts
// across a documentation tree. It rewrites stylistic filler phrases,
// strips or caps emoji usage, replaces em-dashes with a spaced hyphen,
// and removes immediately-repeated lines, overwriting files in place
// only when their content actually changes.
//
// This package contains domain types, interfaces, and the pure text
// transformation pipeline following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., fs/, slog/).
package docsweep
