package wordseg

import "github.com/hupe1980/wordseg/internal/engine"

// Search holds the reusable scratch state of one caller: the memo cache
// and result buffer of the segmentation engine. Reusing a Search across
// calls makes the hot path allocation-free.
//
// A Search must not be shared between concurrent Segment calls; give each
// goroutine its own.
type Search struct {
	sess *engine.Session
}

// NewSearch creates an empty Search.
func NewSearch() *Search {
	return &Search{sess: engine.NewSession()}
}

// Words returns the words of the most recent Segment call in input order.
// The slice and its strings are valid until the Search is used again;
// copy them to retain.
func (s *Search) Words() []string {
	return s.sess.Words()
}
