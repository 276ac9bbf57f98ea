package anatree_test

import (
	"fmt"

	"github.com/khalid-nowaf/anatree/pkg/anatree"
)

func ExampleIndex_AnagramsOf() {
	idx := anatree.New()
	idx.Insert("listen")
	idx.Insert("silent")
	idx.Insert("enlist")

	fmt.Println(idx.AnagramsOf("tinsel"))
	// Output: [listen silent enlist]
}

func ExampleIndex_ExactAnagramsOf() {
	idx := anatree.New()
	idx.Insert("ab")
	idx.Insert("cab")

	fmt.Println(idx.AnagramsOf("abc"))
	fmt.Println(idx.ExactAnagramsOf("abc"))
	// Output:
	// [ab cab]
	// [cab]
}
