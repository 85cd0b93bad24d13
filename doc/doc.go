// Package doc opens parsed JSON documents for navigation by path.
//
// A [Document] owns the node arena produced by the parser and a [Cursor]
// positioned at the root. Cursors move with [Cursor.Move] and read the
// subtree at a path with [Cursor.Fetch], [Cursor.Type], [Cursor.LocalKey]
// and the iteration methods. A path without a leading slash is resolved
// from the cursor's current node; "", "/" and absolute paths are resolved
// from the root. When a path argument is optional, giving none means the
// current node and giving several resolves each from the result of the
// previous one.
//
// Array elements are addressed by index starting at [Config.IndexBase],
// which defaults to 1: "/list/1" is the first element of list.
//
// # Usage
//
//	d, err := doc.OpenString(`{"array":[{"num":3}]}`)
//	if err != nil {
//	    return err
//	}
//	defer d.Close()
//	if err := d.Move("/array/1"); err != nil {
//	    return err
//	}
//	v, err := d.Fetch("num") // 3
//
// The arena is never modified after parsing, so cursors obtained from
// [Document.NewCursor] may be used from different goroutines. A single
// cursor is not safe for concurrent use.
package doc
