package anatree

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Normalize returns the runes of word sorted in code-point order, multiplicities kept.
// Two words are anagrams of each other iff their normalized keys are equal.
func Normalize(word string) []rune {
	return SortedKey([]rune(word))
}

// SortedKey returns a sorted copy of units. The input is left untouched.
func SortedKey[K constraints.Ordered](units []K) []K {
	key := slices.Clone(units)
	slices.Sort(key)
	return key
}
