// Package tracesink persists timing samples as a newline-delimited trace and
// optionally renders decrypted plaintexts on a console for debugging.
package tracesink
