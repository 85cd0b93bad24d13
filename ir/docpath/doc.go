// Package docpath provides document path parsing and formatting.
//
// Document paths are slash separated:
//   - /a/b - absolute, from the document root
//   - a/b - relative, from the current cursor position
//   - .. - the parent of the current position
//   - /items/2 - digit segments address array elements
//
// Within a key, `\/` is a literal slash, `\\` a literal backslash and `\.` a
// literal dot, so `\..` is the key "..". Any other escape is a syntax error.
//
// # Usage
//
//	p, err := docpath.Parse("/array/1/hash/../num")
//
//	// Build and format
//	s := docpath.Format([]docpath.Segment{docpath.Key("a"), docpath.Index(2)}) // "/a/2"
//
// Parsing never consults a document; whether a path resolves is decided by
// [github.com/signadot/jsondoc/ir.Arena.Resolve].
package docpath
