package parse

// DefaultMaxDepth is the container nesting depth beyond which parsing
// fails. It is the only bound on work done for adversarial input.
const DefaultMaxDepth = 200

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth overrides the nesting depth guard.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
