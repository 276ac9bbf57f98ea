package anatree

import "fmt"

// Stats describes the shape of an Index.
type Stats struct {
	Words   int // inserted words, duplicates counted
	Stored  int // word entries held by the nodes, copies made by splices included
	Nodes   int // concrete nodes
	Height  int // longest chain of concrete nodes
	Splices int // nodes spliced in front of an existing node
}

func (s Stats) String() string {
	return fmt.Sprintf("words: %d, stored: %d, nodes: %d, height: %d, splices: %d",
		s.Words, s.Stored, s.Nodes, s.Height, s.Splices)
}
