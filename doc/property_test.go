package doc

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/value"
)

var propertyDocs = []string{
	json1,
	`[1,[2,true]]`,
	`{"a/b":{"..":[null,{"":[[],{}]}]},"12":[1.5,-2,"x"],"\\":{"/":false}}`,
	`{"k0":0,"k1":[1],"k2":{"x":2},"k3":3,"k4":4,"k5":5,"k6":6,"k7":7,"k8":8,"k9":[9,[10]]}`,
	`"scalar"`,
	`[]`,
}

// every reachable node is designated by its own path from anywhere
func TestWhereResolvesToSelf(t *testing.T) {
	for _, base := range []int{0, 1} {
		for _, in := range propertyDocs {
			d := mustOpen(t, in, IndexBase(base))
			var walk func(c *Cursor)
			walk = func(c *Cursor) {
				where := c.Where()
				fromRoot := d.NewCursor()
				if err := fromRoot.Move(where); err != nil {
					t.Errorf("%s base %d: move %s: %v", in, base, where, err)
					return
				}
				if fromRoot.cur != c.cur {
					t.Errorf("%s base %d: %s resolved to node %d want %d", in, base, where, fromRoot.cur, c.cur)
				}
				// absolute paths ignore the starting position
				elsewhere := c.Clone()
				if err := elsewhere.Move(where); err != nil || elsewhere.cur != c.cur {
					t.Errorf("%s base %d: %s from itself: %v", in, base, where, err)
				}
				c.EachBranch(func(k *Cursor) error {
					walk(k)
					return nil
				})
			}
			walk(d.Cursor)
		}
	}
}

func TestFetchMatchesReference(t *testing.T) {
	for _, in := range propertyDocs {
		d := mustOpen(t, in)
		v, err := d.Fetch()
		if err != nil {
			t.Fatal(err)
		}
		var ref, got any
		if err := json.Unmarshal([]byte(in), &ref); err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal([]byte(v.String()), &got); err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		if diff := cmp.Diff(ref, got); diff != "" {
			t.Errorf("%s (-ref +got):\n%s", in, diff)
		}
	}
}

// branches are exactly the children and leaves exactly the scalar
// descendants, in order
func TestBranchesAndLeavesAgree(t *testing.T) {
	for _, in := range propertyDocs {
		d := mustOpen(t, in)
		var collect func(v value.Value, out *[]string)
		collect = func(v value.Value, out *[]string) {
			switch v.Kind() {
			case value.ArrayKind:
				for _, e := range v.Array() {
					collect(e, out)
				}
			case value.ObjectKind:
				for _, e := range v.Object().All() {
					collect(e, out)
				}
			default:
				*out = append(*out, v.String())
			}
		}
		root, _ := d.Fetch()
		var want, got []string
		collect(root, &want)
		d.EachValue(func(v value.Value) error {
			got = append(got, v.String())
			return nil
		})
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s leaves (-want +got):\n%s", in, diff)
		}

		n, _ := d.Len()
		branches := 0
		d.EachBranch(func(c *Cursor) error {
			v, err := c.Fetch()
			if err != nil {
				return err
			}
			var expect value.Value
			switch root.Kind() {
			case value.ArrayKind:
				expect = root.Array()[branches]
			case value.ObjectKind:
				expect = root.Object().Members()[branches].Value
			}
			if !v.Equal(expect) {
				t.Errorf("%s: branch %d is %s want %s", in, branches, v, expect)
			}
			branches++
			return nil
		})
		if branches != n {
			t.Errorf("%s: %d branches, len %d", in, branches, n)
		}
	}
}

func TestConcurrentCursors(t *testing.T) {
	d := mustOpen(t, json1)
	paths := []string{
		"/array/1/num",
		"/array/1/hash/h2/a/2",
		"/boolean",
		"/array/1/string",
	}
	want := make([]value.Value, len(paths))
	for i, p := range paths {
		v, err := d.Fetch(p)
		if err != nil {
			t.Fatal(err)
		}
		want[i] = v
	}
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for g := range 16 {
		c := d.NewCursor()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				j := (g + i) % len(paths)
				if err := c.Move(paths[j]); err != nil {
					errs <- err
					return
				}
				v, err := c.Fetch()
				if err != nil {
					errs <- err
					return
				}
				if !v.Equal(want[j]) {
					errs <- fmt.Errorf("%s: got %s", paths[j], v)
					return
				}
				if typ, _ := c.Type(); typ == ir.ObjectType {
					errs <- fmt.Errorf("%s: object", paths[j])
					return
				}
				c.Home()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
