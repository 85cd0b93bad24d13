package parse

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strconv"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/token"
)

// wideAt is the member count above which duplicate detection uses a map.
const wideAt = 8

// Parse parses a single JSON document. Leading and trailing whitespace is
// allowed; anything else after the document is an ErrTrailing error.
func Parse(d []byte, opts ...ParseOption) (*ir.Arena, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		s:    token.NewScanner(d),
		b:    ir.NewBuilder(len(d)/16 + 1),
		opts: pOpts,
	}
	root, err := p.parse()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse %d bytes: %v", len(d), err)
		}
		return nil, err
	}
	a := p.b.Arena(root)
	if debug.Parse() {
		debug.Logf("parsed %d bytes into %d nodes (%d reachable)", len(d), p.b.Len(), a.Size())
	}
	return a, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Arena, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	s     *token.Scanner
	b     *ir.Builder
	opts  *parseOpts
	stack []frame
	// kids holds the children of every open container; each frame owns
	// kids[start:] while it is on top.
	kids []ir.NodeID
}

type frame struct {
	id    ir.NodeID
	obj   bool
	start int
	key   string
	seen  map[string]int
}

func (p *parser) next() (token.Token, error) {
	return p.s.Next()
}

func (p *parser) parse() (ir.NodeID, error) {
	tok, err := p.next()
	if err != nil {
		return ir.NoNode, err
	}
value:
	for {
		field := ""
		if n := len(p.stack); n > 0 && p.stack[n-1].obj {
			field = p.stack[n-1].key
		}
		var id ir.NodeID
		switch tok.Type {
		case token.TLCurl, token.TLSquare:
			if len(p.stack) >= p.opts.maxDepth {
				return ir.NoNode, token.NewError(ErrTooDeep, tok.Pos, fmt.Sprintf("more than %d levels", p.opts.maxDepth))
			}
			obj := tok.Type == token.TLCurl
			nt := ir.ArrayType
			if obj {
				nt = ir.ObjectType
			}
			id = p.b.Add(ir.Node{Type: nt, ParentField: field})
			p.stack = append(p.stack, frame{id: id, obj: obj, start: len(p.kids)})
			tok, err = p.next()
			if err != nil {
				return ir.NoNode, err
			}
			if tok.Type == closer(obj) {
				id = p.pop()
				break
			}
			if obj {
				tok, err = p.key(tok)
				if err != nil {
					return ir.NoNode, err
				}
			}
			continue value
		default:
			if !tok.IsValue() {
				return ir.NoNode, token.ExpectedErr("value", &tok, tok.Pos)
			}
			id, err = p.scalar(&tok, field)
			if err != nil {
				return ir.NoNode, err
			}
		}

		// id is a complete value; attach it and consume separators and
		// closers until the next value starts.
		for {
			if len(p.stack) == 0 {
				tok, err = p.next()
				if err != nil {
					var te *token.Error
					if errors.As(err, &te) {
						return ir.NoNode, token.NewError(ErrTrailing, te.Pos, te.Reason())
					}
					return ir.NoNode, err
				}
				if tok.Type != token.TEOF {
					return ir.NoNode, token.NewError(ErrTrailing, tok.Pos, tok.Describe())
				}
				return id, nil
			}
			top := &p.stack[len(p.stack)-1]
			p.attach(top, id)
			tok, err = p.next()
			if err != nil {
				return ir.NoNode, err
			}
			switch tok.Type {
			case token.TComma:
				tok, err = p.next()
				if err != nil {
					return ir.NoNode, err
				}
				if top.obj {
					tok, err = p.key(tok)
					if err != nil {
						return ir.NoNode, err
					}
				}
				continue value
			case closer(top.obj):
				id = p.pop()
			default:
				if top.obj {
					return ir.NoNode, token.ExpectedErr("',' or '}'", &tok, tok.Pos)
				}
				return ir.NoNode, token.ExpectedErr("',' or ']'", &tok, tok.Pos)
			}
		}
	}
}

func closer(obj bool) token.TokenType {
	if obj {
		return token.TRCurl
	}
	return token.TRSquare
}

// key reads `"key" :` starting at tok, records the key on the top frame and
// returns the token following the colon.
func (p *parser) key(tok token.Token) (token.Token, error) {
	if tok.Type != token.TString {
		return tok, token.ExpectedErr("object key", &tok, tok.Pos)
	}
	p.stack[len(p.stack)-1].key = tok.String()
	colon, err := p.next()
	if err != nil {
		return colon, err
	}
	if colon.Type != token.TColon {
		return colon, token.ExpectedErr("':'", &colon, colon.Pos)
	}
	return p.next()
}

// pop finishes the top container and returns its id.
func (p *parser) pop() ir.NodeID {
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.b.Finish(f.id, p.kids[f.start:])
	p.kids = p.kids[:f.start]
	return f.id
}

func (p *parser) attach(f *frame, id ir.NodeID) {
	if f.obj {
		if j := p.find(f, f.key); j >= 0 {
			old := p.kids[f.start+j]
			if debug.Parse() {
				debug.Logf("duplicate key %q at node %d replaces node %d", f.key, id, old)
			}
			p.b.Detach(old)
			p.kids = slices.Delete(p.kids, f.start+j, f.start+j+1)
			f.seen = nil
		}
		if f.seen != nil {
			f.seen[f.key] = len(p.kids) - f.start
		}
	}
	p.kids = append(p.kids, id)
}

// find returns the position among f's children of the member with key k,
// or -1.
func (p *parser) find(f *frame, k string) int {
	kids := p.kids[f.start:]
	if len(kids) <= wideAt {
		for j, c := range kids {
			if p.b.Node(c).ParentField == k {
				return j
			}
		}
		return -1
	}
	if f.seen == nil {
		f.seen = make(map[string]int, len(kids)*2)
		for j, c := range kids {
			f.seen[p.b.Node(c).ParentField] = j
		}
	}
	if j, ok := f.seen[k]; ok {
		return j
	}
	return -1
}

func (p *parser) scalar(tok *token.Token, field string) (ir.NodeID, error) {
	n := ir.Node{ParentField: field}
	switch tok.Type {
	case token.TNull:
		n.Type = ir.NullType
	case token.TTrue:
		n.Type, n.Bool = ir.BoolType, true
	case token.TFalse:
		n.Type = ir.BoolType
	case token.TString:
		n.Type, n.String = ir.StringType, tok.String()
	case token.TInteger:
		n.Type = ir.IntegerType
		s := string(tok.Bytes)
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			n.Int = i
			break
		}
		b, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return ir.NoNode, token.NewError(token.ErrNumber, tok.Pos, s)
		}
		n.Big = b
	case token.TFloat:
		n.Type = ir.FloatType
		f, err := strconv.ParseFloat(string(tok.Bytes), 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return ir.NoNode, token.NewError(token.ErrNumberRange, tok.Pos, string(tok.Bytes))
			}
			return ir.NoNode, token.NewError(token.ErrNumber, tok.Pos, string(tok.Bytes))
		}
		n.Float = f
	default:
		return ir.NoNode, fmt.Errorf("%w: scalar from %s", ir.ErrInternal, tok.Type)
	}
	return p.b.Add(n), nil
}
