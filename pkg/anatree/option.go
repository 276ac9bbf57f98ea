package anatree

import (
	"log/slog"

	"github.com/khalid-nowaf/anatree/pkg/trie"
)

type Option func(*Index) *Index

// DefaultOptions returns an empty, usable Index with the default logger.
func DefaultOptions() *Index {
	return &Index{
		root:   trie.NewTrie[rune, string](),
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for operation traces. Traces are emitted at Debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) *Index {
		if logger != nil {
			idx.logger = logger
		}
		return idx
	}
}

// WithFoldCase lower-cases every rune before a key is derived, so "Listen" and "silent" share a key.
func WithFoldCase() Option {
	return func(idx *Index) *Index {
		idx.foldCase = true
		return idx
	}
}

// WithFreshSplice makes a node spliced in front of an existing one start from an
// empty PRESENT subtree, instead of a copy of the existing node's PRESENT subtree.
//
// By default every splice copies that subtree, so one Insert costs time and memory
// in proportion to the copied subtree, and stored words get duplicated across the
// copies (Stats().Stored grows faster than Stats().Words). With fresh splices an
// Insert only touches the nodes along its key, at the price of the reference lookup
// results described on AnagramsOf.
func WithFreshSplice() Option {
	return func(idx *Index) *Index {
		idx.freshSplice = true
		return idx
	}
}
