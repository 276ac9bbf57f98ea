package anatree

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/khalid-nowaf/anatree/pkg/trie"
	"golang.org/x/exp/slices"
)

// Index is an anagram index over words.
// It is not safe for concurrent use; callers running Insert or Erase
// alongside any other method must synchronise access themselves.
//
// An Insert that splices a node in front of an existing one copies the PRESENT
// subtree of that node, so its cost grows with the copied subtree. See WithFreshSplice.
type Index struct {
	root        *trie.BinaryTrie[rune, string]
	words       []string // inserted words in insertion order
	splices     int
	logger      *slog.Logger
	foldCase    bool
	freshSplice bool
}

// New creates an empty Index.
//
//	idx := anatree.New(anatree.WithFoldCase())
//	idx.Insert("Listen")
//	idx.AnagramsOf("silent") // [Listen]
func New(opts ...Option) *Index {
	idx := DefaultOptions()
	for _, opt := range opts {
		idx = opt(idx)
	}
	return idx
}

// Key derives the lookup key of word under the index options.
func (idx *Index) Key(word string) []rune {
	if idx.foldCase {
		word = strings.Map(unicode.ToLower, word)
	}
	return Normalize(word)
}

// Insert adds word to the index. Inserting the same word twice stores it twice.
func (idx *Index) Insert(word string) {
	ins := &insertion[rune, string]{
		key:         idx.Key(word),
		value:       word,
		freshSplice: idx.freshSplice,
	}
	idx.root = ins.insert(idx.root, 0)
	idx.words = append(idx.words, word)
	idx.splices += ins.splices

	idx.logger.Debug("inserted word", "word", word, "key", string(ins.key), "splices", ins.splices)
}

// AnagramsOf returns the stored words whose key is consistent with the key of word.
//
// Besides exact anagrams, the result also holds words built from a sub-multiset
// of the query's characters: after Insert("ab"), AnagramsOf("abc") includes "ab".
// Use ExactAnagramsOf to get exact anagrams only. The order of the result is
// deterministic for a given sequence of inserts.
func (idx *Index) AnagramsOf(word string) []string {
	key := idx.Key(word)
	matches := collect(idx.root, key, 0, []string{})

	idx.logger.Debug("looked up anagrams", "word", word, "key", string(key), "matches", len(matches))
	return matches
}

// ExactAnagramsOf returns the words of AnagramsOf whose key equals the key of word.
func (idx *Index) ExactAnagramsOf(word string) []string {
	key := idx.Key(word)
	exact := []string{}
	for _, match := range collect(idx.root, key, 0, []string{}) {
		if slices.Equal(key, idx.Key(match)) {
			exact = append(exact, match)
		}
	}
	return exact
}

// Erase discards every stored word.
func (idx *Index) Erase() {
	idx.root = trie.NewTrie[rune, string]()
	idx.words = nil
	idx.splices = 0

	idx.logger.Debug("erased index")
}

// Clone returns an independent deep copy of the index, options included.
func (idx *Index) Clone() *Index {
	return &Index{
		root:        idx.root.Clone(),
		words:       slices.Clone(idx.words),
		splices:     idx.splices,
		logger:      idx.logger,
		foldCase:    idx.foldCase,
		freshSplice: idx.freshSplice,
	}
}

// Len returns the number of inserted words, duplicates counted.
func (idx *Index) Len() int {
	return len(idx.words)
}

// Words returns every inserted word in insertion order.
func (idx *Index) Words() []string {
	return append([]string{}, idx.words...)
}

// Groups returns the inserted words grouped by key. Groups are ordered by key,
// words inside a group by insertion order.
func (idx *Index) Groups() [][]string {
	byKey := map[string][]string{}
	keys := []string{}
	for _, word := range idx.words {
		key := string(idx.Key(word))
		if _, found := byKey[key]; !found {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], word)
	}
	slices.Sort(keys)

	groups := make([][]string, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, byKey[key])
	}
	return groups
}

// Stats reports the shape of the index.
func (idx *Index) Stats() Stats {
	return Stats{
		Words:   len(idx.words),
		Stored:  len(idx.root.AllValues()),
		Nodes:   idx.root.Size(),
		Height:  idx.root.Height(),
		Splices: idx.splices,
	}
}

// String renders the node structure for debugging.
func (idx *Index) String() string {
	return idx.root.String()
}
