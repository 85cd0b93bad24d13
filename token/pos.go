package token

import (
	"bytes"
	"fmt"
	"strconv"
)

// PosDoc is the document positions are relative to. Line and column numbers
// are computed on demand, so tracking a position costs only an offset.
type PosDoc struct {
	d []byte
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

// LineCol returns the 1-based line and byte column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	if p == nil {
		return 1, off + 1
	}
	off = min(max(off, 0), len(p.d))
	head := p.d[:off]
	line := bytes.Count(head, []byte{'\n'}) + 1
	col := off - bytes.LastIndexByte(head, '\n')
	return line, col
}

func (p *PosDoc) Pos(i int) Pos {
	return Pos{I: i, D: p}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		lo := max(0, p.I-5)
		hi := min(p.I+5, len(p.D.d))
		if lo <= hi {
			sample = string(p.D.d[lo:hi])
		}
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	line, col := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, line, col)
}
