package doc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jsondoc/value"
)

func TestEachValue(t *testing.T) {
	d := mustOpen(t, json1)
	var got []string
	err := d.EachValue(func(v value.Value) error {
		got = append(got, v.String())
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"3", `"message"`, "1", "2", "3", "true"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	got = got[:0]
	err = d.EachValue(func(v value.Value) error {
		got = append(got, v.String())
		return nil
	}, "/array/1/hash")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, got); diff != "" {
		t.Errorf("subtree (-want +got):\n%s", diff)
	}

	got = got[:0]
	err = d.EachValue(func(v value.Value) error {
		got = append(got, v.String())
		return nil
	}, "/boolean")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"true"}, got); diff != "" {
		t.Errorf("scalar (-want +got):\n%s", diff)
	}
}

func TestEachValueStop(t *testing.T) {
	d := mustOpen(t, json1)
	stop := errors.New("stop")
	n := 0
	err := d.EachValue(func(value.Value) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("got %v", err)
	}
	if n != 2 {
		t.Errorf("visited %d", n)
	}
	if err := d.EachValue(nil, "/missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v", err)
	}
}

func TestEachBranch(t *testing.T) {
	d := mustOpen(t, json1)
	if err := d.Move("/array/1"); err != nil {
		t.Fatal(err)
	}
	var got []string
	err := d.EachBranch(func(c *Cursor) error {
		got = append(got, c.Where())
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/array/1/num", "/array/1/string", "/array/1/hash"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if d.Where() != "/array/1" {
		t.Errorf("cursor moved to %s", d.Where())
	}
	n, _ := d.Len()
	if n != len(got) {
		t.Errorf("len %d, %d branches", n, len(got))
	}

	got = got[:0]
	err = d.EachBranch(func(c *Cursor) error {
		got = append(got, c.Where())
		return nil
	}, "hash/h2/a")
	if err != nil {
		t.Fatal(err)
	}
	want = []string{"/array/1/hash/h2/a/1", "/array/1/hash/h2/a/2", "/array/1/hash/h2/a/3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	calls := 0
	err = d.EachBranch(func(*Cursor) error {
		calls++
		return nil
	}, "num")
	if err != nil || calls != 0 {
		t.Errorf("scalar branches: %d calls, %v", calls, err)
	}
}

func TestBranchCursorsAreIndependent(t *testing.T) {
	d := mustOpen(t, json1)
	var kept []*Cursor
	err := d.EachBranch(func(c *Cursor) error {
		kept = append(kept, c)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := kept[0].Move("1/num"); err != nil {
		t.Fatal(err)
	}
	if kept[0].Where() != "/array/1/num" || kept[1].Where() != "/boolean" {
		t.Errorf("got %s %s", kept[0].Where(), kept[1].Where())
	}
	if d.Where() != "/" {
		t.Errorf("document cursor moved to %s", d.Where())
	}
}

func TestEachLeaf(t *testing.T) {
	d := mustOpen(t, json1)
	var got []string
	err := d.EachLeaf(func(c *Cursor) error {
		got = append(got, c.Where())
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"/array/1/num",
		"/array/1/string",
		"/array/1/hash/h2/a/1",
		"/array/1/hash/h2/a/2",
		"/array/1/hash/h2/a/3",
		"/boolean",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestValuesIterator(t *testing.T) {
	d := mustOpen(t, json1)
	seq, err := d.Values("/array/1/hash")
	if err != nil {
		t.Fatal(err)
	}
	var got []int64
	for v := range seq {
		got = append(got, v.Int())
	}
	if diff := cmp.Diff([]int64{1, 2, 3}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	seq, _ = d.Values()
	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("early stop after %d", n)
	}

	if _, err := d.Values("/array/9"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v", err)
	}
}

func TestBranchesIterator(t *testing.T) {
	d := mustOpen(t, json1)
	seq, err := d.Branches()
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for c := range seq {
		k, _ := c.LocalKey()
		got = append(got, k.String())
	}
	if diff := cmp.Diff([]string{"array", "boolean"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestIteratorAfterClose(t *testing.T) {
	d, err := OpenString(json1)
	if err != nil {
		t.Fatal(err)
	}
	seq, err := d.Values()
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for range seq {
		n++
		if n == 1 {
			d.Close()
		}
	}
	if n != 1 {
		t.Errorf("iterated %d values after close", n)
	}
	for range seq {
		t.Error("value from closed document")
	}
}
