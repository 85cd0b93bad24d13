package doc

import (
	"sync/atomic"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"
)

// arena is the state shared by a document and all of its cursors.
type arena struct {
	a      *ir.Arena
	base   int
	closed atomic.Bool
}

// Document is an open, parsed JSON document. Its embedded Cursor starts at
// the root.
type Document struct {
	*Cursor
}

// Open parses d. A parse failure is returned as a *parse.Error and no
// document is created.
func Open(d []byte, opts ...Option) (*Document, error) {
	cfg := DefaultConfig()
	for _, f := range opts {
		f(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	a, err := parse.Parse(d, parse.MaxDepth(cfg.MaxDepth))
	if err != nil {
		return nil, err
	}
	s := &arena{a: a, base: cfg.IndexBase}
	if debug.Doc() {
		debug.Logf("open document: %d bytes, %d nodes, index base %d", len(d), a.Size(), cfg.IndexBase)
	}
	return &Document{Cursor: &Cursor{s: s, cur: a.Root()}}, nil
}

func OpenString(s string, opts ...Option) (*Document, error) {
	return Open([]byte(s), opts...)
}

// With opens d, calls fn and closes the document whatever fn returns.
func With(d []byte, fn func(*Document) error, opts ...Option) error {
	doc, err := Open(d, opts...)
	if err != nil {
		return err
	}
	defer doc.Close()
	return fn(doc)
}

// Close releases the arena. Afterwards every cursor of the document
// fails with ErrClosed, including a second Close.
func (d *Document) Close() error {
	if !d.s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	if debug.Doc() {
		debug.Logf("close document: %d nodes", d.s.a.Size())
	}
	d.s.a.Release()
	return nil
}

// NewCursor returns an independent cursor at the root.
func (d *Document) NewCursor() *Cursor {
	c := &Cursor{s: d.s, cur: ir.NoNode}
	if !d.s.closed.Load() {
		c.cur = d.s.a.Root()
	}
	return c
}
