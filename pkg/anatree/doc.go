// Package anatree implements an anagram index.
//
// Every word is stored under its key, the word's characters sorted in
// code-point order. Keys are merged into a binary trie (see package trie):
// along an ABSENT chain the characters strictly increase, a PRESENT slot
// consumes one character of the key. A lookup walks the trie along the query's
// key and collects the words of every node it visits.
//
// Lookups report sub-multiset matches too: a stored word whose characters are
// all part of the query matches even when the query has more characters.
// Index.ExactAnagramsOf filters those out.
package anatree
