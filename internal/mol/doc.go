// Package mol owns the atom data model for the accessibility engine.
//
// Responsibilities: atom records (position, radius, charge), ordered atom
// lists, and line-oriented PQR/XYZR readers.
//
// Dependency rule: mol has no dependencies on the access packages; the
// access grid consumes AtomList read-only, by index.
package mol
