// Package render holds the pure formatting and IO helpers: table rendering,
// byte and timestamp formatting, CSV with proper quoting, progress bars,
// and flat argument-vector parsing.
package render
