package parse

// DefaultMaxDepth is the container nesting limit when MaxDepth is not given.
const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth limits the number of nested arrays and objects. Values below 1
// restore the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}
