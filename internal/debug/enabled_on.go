//go:build httparse_debug

package debug

// Enabled reports whether assertions are compiled in.
const Enabled = true
