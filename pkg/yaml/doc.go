// Package yaml wraps [github.com/goccy/go-yaml] with the encoder and decoder
// settings used across shelf, and provides errors that point at the offending
// line of the source document.
package yaml
