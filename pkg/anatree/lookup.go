package anatree

import (
	"github.com/khalid-nowaf/anatree/pkg/trie"
	"golang.org/x/exp/constraints"
)

// collect appends to out the values of every node consistent with the key
// suffix starting at pos. A node's own values come first, then the ABSENT
// results, then the PRESENT results.
func collect[K constraints.Ordered, V any](node *trie.BinaryTrie[K, V], key []K, pos int, out []V) []V {
	// skip query units the stored keys below this node do not contain
	for pos < len(key) && !node.IsPlaceholder() && key[pos] < node.Key() {
		pos++
	}

	out = append(out, node.Values()...)
	if pos >= len(key) || node.IsPlaceholder() {
		return out
	}

	if key[pos] > node.Key() {
		// the node's unit is not part of the query, look further along the chain
		return collect(node.Child(trie.ABSENT), key, pos, out)
	}

	out = collect(node.Child(trie.ABSENT), key, pos+1, out)
	return collect(node.Child(trie.PRESENT), key, pos+1, out)
}
