// ## Overview
// Package trie implements a generic binary decision trie node.
// Each node holds one ordered key unit and two child slots: ABSENT, which leads
// to the next node with a strictly greater unit at the same position, and
// PRESENT, which leads to the continuation once the unit was consumed.
// A node without a unit is a placeholder; it stands in for a subtree that does
// not exist yet, so slots are never nil and a subtree grows by replacing nodes.
//
// ## Example usage:
//
//	root := trie.NewTrie[rune, string]()      // placeholder
//	root.Materialize('a')                       // concrete, two placeholder children
//	root.Child(trie.PRESENT).AppendValue("a")
//
//	next := trie.NewTrieWithKey[rune, string]('b')
//	root.AttachChild(next, trie.ABSENT)
//
//	fmt.Println(root.Size())      // Output: 2
//	fmt.Println(root.AllValues()) // Output: [a]
//
// Slots are single-owner. Use Clone to get an independent copy of a subtree
// instead of attaching the same node twice.
package trie
