//go:build !novalidate

package validate

// Enabled reports whether precondition checks are compiled in. Building
// with the tag "novalidate" replaces every check with an empty body the
// compiler eliminates.
const Enabled = true
