package parse

import "errors"

var (
	// ErrMalformed reports an event stream that is not well-nested.
	// The tokenizer is trusted to produce balanced trees, so hitting
	// this means the adapter and the tokenizer disagree; no meaningful
	// document exists to diff.
	ErrMalformed = errors.New("malformed markdown structure")

	// ErrUnsupported reports a markdown construct the item model has
	// no variant for.
	ErrUnsupported = errors.New("unsupported markdown construct")
)
