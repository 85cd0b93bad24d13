// Package format names the output formats of the encoder.
package format
