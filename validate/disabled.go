//go:build novalidate

package validate

// Enabled reports whether precondition checks are compiled in. This build
// carries the "novalidate" tag: every check body is dead code the
// compiler strips.
const Enabled = false
