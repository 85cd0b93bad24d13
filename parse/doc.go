// Package parse parses JSON text into an [ir.Arena].
//
// # Usage
//
//	a, err := parse.Parse([]byte(`{"name": "alice", "tags": [1, 2]}`))
//	if err != nil {
//	    return err
//	}
//	name, _ := a.Lookup(a.Root(), "name")
//
// Parsing is a single pass over a [token.Scanner] with an explicit stack of
// open containers, so deeply nested input does not grow the goroutine
// stack. Nesting is still bounded by [MaxDepth].
//
// Every failure is a *[Error] carrying the byte offset, line and column of
// the problem and wrapping a sentinel such as [token.ErrUnexpected] or
// [ErrTrailing].
//
// When an object repeats a key, the last occurrence wins and takes the
// position of its last write; the earlier value is detached.
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/ir - node arena
//   - github.com/signadot/jsondoc/token - scanner
//   - github.com/signadot/jsondoc/doc - cursors over parsed documents
package parse
