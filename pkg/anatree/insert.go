package anatree

import (
	"github.com/khalid-nowaf/anatree/pkg/trie"
	"golang.org/x/exp/constraints"
)

// insertion carries one key/value pair through the trie.
type insertion[K constraints.Ordered, V any] struct {
	key         []K
	value       V
	freshSplice bool // spliced nodes start from a placeholder instead of a copy
	splices     int  // number of nodes spliced in front of an existing node
}

// insert places the value under the key suffix starting at pos and returns the
// node that must take the place of node in its parent slot.
//
// The cases, in order:
//   - key consumed: the value terminates at node.
//   - placeholder: node becomes concrete with the current unit.
//   - unit < node key: a new node is spliced in front of node, node moves to its ABSENT slot
//     and hands over the values terminating at the slot.
//   - unit > node key: continue in the ABSENT chain with the same unit.
//   - equal: consume the unit and continue in the PRESENT slot.
func (ins *insertion[K, V]) insert(node *trie.BinaryTrie[K, V], pos int) *trie.BinaryTrie[K, V] {
	if pos >= len(ins.key) {
		node.AppendValue(ins.value)
		return node
	}

	unit := ins.key[pos]

	switch {
	case node.IsPlaceholder():
		node.Materialize(unit)
		node.AttachChild(ins.insert(node.Child(trie.PRESENT), pos+1), trie.PRESENT)
		return node

	case unit < node.Key():
		ins.splices++
		spliced := trie.NewTrieWithKey[K, V](unit)
		spliced.AttachChild(node, trie.ABSENT)
		spliced.AppendValue(node.TakeValues()...)

		// the spliced node continues from a copy of the PRESENT subtree it displaced,
		// words already stored there included
		present := spliced.Child(trie.PRESENT)
		if !ins.freshSplice {
			present = node.Child(trie.PRESENT).Clone()
		}
		spliced.AttachChild(ins.insert(present, pos+1), trie.PRESENT)
		return spliced

	case unit > node.Key():
		node.AttachChild(ins.insert(node.Child(trie.ABSENT), pos), trie.ABSENT)
		return node

	default:
		node.AttachChild(ins.insert(node.Child(trie.PRESENT), pos+1), trie.PRESENT)
		return node
	}
}
