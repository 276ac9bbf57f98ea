package trie

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ChildPos is an alias for int used to define child positions in a trie node.
type ChildPos = int

// Constants representing possible child positions in the trie.
//
// ABSENT leads to the next node holding a strictly greater key at the same
// position. PRESENT leads to the continuation after the node's key was consumed.
const ABSENT ChildPos = 0
const PRESENT ChildPos = 1

// BinaryTrie is a generic type representing a node in a binary decision trie.
// A node is either a placeholder (no key, no children) or concrete (a key and
// two non-nil children). Every node is owned by exactly one slot.
type BinaryTrie[K constraints.Ordered, V any] struct {
	Children [2]*BinaryTrie[K, V] // ABSENT and PRESENT children, nil on a placeholder
	key      K                    // the unit held by this node
	concrete bool                 // false for a placeholder
	values   []V                  // values whose key terminates at this node
}

// NewTrie creates a placeholder node.
func NewTrie[K constraints.Ordered, V any]() *BinaryTrie[K, V] {
	return &BinaryTrie[K, V]{}
}

// NewTrieWithKey creates a concrete node holding key, with two placeholder children.
func NewTrieWithKey[K constraints.Ordered, V any](key K) *BinaryTrie[K, V] {
	t := NewTrie[K, V]()
	t.Materialize(key)
	return t
}

// IsPlaceholder reports whether the node stands in for a subtree that does not exist yet.
func (t *BinaryTrie[K, V]) IsPlaceholder() bool {
	return !t.concrete
}

// Key returns the unit held by the node. It is the zero value on a placeholder.
func (t *BinaryTrie[K, V]) Key() K {
	return t.key
}

// Materialize turns a placeholder into a concrete node holding key.
func (t *BinaryTrie[K, V]) Materialize(key K) *BinaryTrie[K, V] {
	if t.concrete {
		panic("[BUG] Materialize: node is already concrete")
	}
	t.key = key
	t.concrete = true
	t.Children[ABSENT] = NewTrie[K, V]()
	t.Children[PRESENT] = NewTrie[K, V]()
	return t
}

// returns the child node ABSENT or PRESENT
//
//	node.Child(trie.PRESENT)
func (t *BinaryTrie[K, V]) Child(at ChildPos) *BinaryTrie[K, V] {
	if t == nil {
		panic("[BUG] Child: struct must not be nil")
	}
	if !t.concrete {
		panic("[BUG] Child: a placeholder has no children")
	}
	return t.Children[at]
}

// AttachChild binds child to the slot at, replacing whatever was there,
// and returns the child.
func (t *BinaryTrie[K, V]) AttachChild(child *BinaryTrie[K, V], at ChildPos) *BinaryTrie[K, V] {
	if !t.concrete {
		panic("[BUG] AttachChild: can not attach a child to a placeholder")
	}
	if child == nil {
		panic("[BUG] AttachChild: child must not be nil, use a placeholder")
	}
	t.Children[at] = child
	return child
}

// Values returns the values terminating at this node.
func (t *BinaryTrie[K, V]) Values() []V {
	return t.values
}

// AppendValue stores values at this node. Duplicates are kept.
func (t *BinaryTrie[K, V]) AppendValue(values ...V) {
	t.values = append(t.values, values...)
}

// TakeValues removes and returns the values stored at this node.
func (t *BinaryTrie[K, V]) TakeValues() []V {
	values := t.values
	t.values = nil
	return values
}

// checks if the node is a leaf (has no concrete children).
func (t *BinaryTrie[K, V]) IsLeaf() bool {
	if !t.concrete {
		return true
	}
	return t.Children[ABSENT].IsPlaceholder() && t.Children[PRESENT].IsPlaceholder()
}

// applies a function to each child of the node, ABSENT first.
// will return the original node t
func (t *BinaryTrie[K, V]) ForEachChild(f func(t *BinaryTrie[K, V])) *BinaryTrie[K, V] {
	if !t.concrete {
		return t
	}
	f(t.Children[ABSENT])
	f(t.Children[PRESENT])
	return t
}

// recursively applies a function (f) to the node and each descendant, in pre-order,
// as long as a (while) condition holds on the parent.
// if no condition is needed you can pass nil as while parameter
// will return the original node t
func (t *BinaryTrie[K, V]) ForEachStepDown(f func(t *BinaryTrie[K, V]), while func(t *BinaryTrie[K, V]) bool) *BinaryTrie[K, V] {
	f(t)
	t.forEachStepDown(f, while)
	return t
}

// is a helper for ForEachStepDown to implement recursive traversal.
func (t *BinaryTrie[K, V]) forEachStepDown(f func(t *BinaryTrie[K, V]), while func(t *BinaryTrie[K, V]) bool) {
	if while != nil && !while(t) {
		return
	}
	t.ForEachChild(func(child *BinaryTrie[K, V]) {
		f(child)
		child.forEachStepDown(f, while)
	})
}

// Clone returns a deep copy of the subtree rooted at t. The copy shares no
// node and no values slice with t.
func (t *BinaryTrie[K, V]) Clone() *BinaryTrie[K, V] {
	c := &BinaryTrie[K, V]{
		key:      t.key,
		concrete: t.concrete,
	}
	if len(t.values) > 0 {
		c.values = make([]V, len(t.values))
		copy(c.values, t.values)
	}
	if t.concrete {
		c.Children[ABSENT] = t.Children[ABSENT].Clone()
		c.Children[PRESENT] = t.Children[PRESENT].Clone()
	}
	return c
}

// Size returns the number of concrete nodes in the subtree.
func (t *BinaryTrie[K, V]) Size() int {
	size := 0
	t.ForEachStepDown(func(n *BinaryTrie[K, V]) {
		if n.concrete {
			size++
		}
	}, nil)
	return size
}

// Height returns the longest chain of concrete nodes from t downwards.
func (t *BinaryTrie[K, V]) Height() int {
	if !t.concrete {
		return 0
	}
	return 1 + max(t.Children[ABSENT].Height(), t.Children[PRESENT].Height())
}

// AllValues returns every value stored in the subtree, in pre-order,
// ABSENT subtree before PRESENT subtree.
func (t *BinaryTrie[K, V]) AllValues() []V {
	values := []V{}
	t.ForEachStepDown(func(n *BinaryTrie[K, V]) {
		values = append(values, n.values...)
	}, nil)
	return values
}

// String renders the node for debugging, e.g. { key: a, children: { ~, { key: b ... } }, values: [ab] }
func (t *BinaryTrie[K, V]) String() string {
	if !t.concrete {
		if len(t.values) == 0 {
			return "~"
		}
		return fmt.Sprintf("{ ~, values: %v }", t.values)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "{ key: %v, children: { %s, %s }", formatKey(t.key), t.Children[ABSENT], t.Children[PRESENT])
	if len(t.values) > 0 {
		fmt.Fprintf(&sb, ", values: %v", t.values)
	}
	sb.WriteString(" }")
	return sb.String()
}

// runes are printed as characters, everything else as is
func formatKey(key any) string {
	if r, ok := key.(rune); ok {
		return string(r)
	}
	return fmt.Sprint(key)
}
