// Package encode writes values as JSON or YAML.
//
// # Usage
//
//	// indented JSON
//	err := encode.Encode(v, os.Stdout)
//
//	// compact JSON
//	err := encode.Encode(v, os.Stdout, encode.EncodeWire(true))
//
//	// YAML, keys in document order
//	err := encode.Encode(v, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// Colors apply to JSON output only.
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/value - values produced by fetching
//   - github.com/signadot/jsondoc/format - output formats
package encode
