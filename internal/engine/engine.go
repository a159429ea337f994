// Package engine implements the windowed, memoized best-path search that
// picks the highest-scoring decomposition of a run of text into words.
//
// The engine is deliberately model-agnostic: scoring is delegated to a
// Scorer, and all mutable scratch state lives in a caller-owned Session so
// repeated runs allocate nothing after the first.
package engine

import (
	"math"

	"github.com/hupe1980/wordseg/internal/splitset"
)

const (
	// WindowSize is the number of characters handed to one search pass.
	// It bounds memo-cache size and recursion depth independent of the
	// total input length, and must not exceed splitset.Bits.
	WindowSize = 250

	// HoldBack is the number of trailing split points per window that are
	// discarded and re-derived in the next window while input remains.
	// Windows end mid-sentence; the last few decisions are the ones the
	// truncation may have skewed.
	HoldBack = 5
)

// Scorer ranks a candidate word in the context of the previous word.
// The returned value is a base-10 log score; previous is empty at the
// start of a window. Implementations must be safe for concurrent use.
type Scorer interface {
	Score(word, previous string) float64
}

// Run segments text into sess using the given scorer and maximum word
// length. The text must already be validated by the caller; Run resets
// sess first.
func Run(scorer Scorer, limit int, text string, sess *Session) {
	sess.Reset()
	st := state{
		scorer: scorer,
		limit:  limit,
		text:   text,
		sess:   sess,
		window: WindowSize,
	}
	st.run()
}

type state struct {
	scorer Scorer
	limit  int
	text   string
	sess   *Session

	// window is WindowSize except in tests.
	window int

	// offset is the absolute position of the current window start; memo
	// keys and split offsets are relative to it.
	offset int
}

func (st *state) run() {
	start := 0
	for start < len(st.text) {
		end := min(len(st.text), start+st.window)
		st.offset = start

		// Memo entries are keyed relative to the window start, so they
		// must not survive into a window with a different offset.
		clear(st.sess.memo)

		st.search(0, start, end, "")

		commit := st.sess.best[0].Count()
		if commit == 0 {
			// Every candidate path scored below the floor (a model can
			// make that happen with zero-weight bigrams), so there is no
			// split to commit. Emit the window whole; the driver must
			// always advance.
			st.sess.result = append(st.sess.result, st.text[start:end])
			start = end
			continue
		}
		if end < len(st.text) {
			// Keep at least one split so the driver always advances.
			commit = max(commit-HoldBack, 1)
		}

		it := st.sess.best[0].Splits(st.offset)
		for i := 0; i < commit; i++ {
			split, ok := it.Next()
			if !ok {
				break
			}
			st.sess.result = append(st.sess.result, st.text[start:split])
			start = split
		}
	}
}

// search finds the best decomposition of text[start:end) given the word
// preceding it, records the winning split offsets in sess.best[level] and
// returns the best total score. level is the recursion depth, bounded by
// the number of words that fit in a window.
func (st *state) search(level, start, end int, previous string) float64 {
	st.sess.best[level].Clear()
	if start == end {
		return 0
	}

	best := -math.MaxFloat64
	for n := 1; n <= min(end-start, st.limit); n++ {
		split := start + n
		prefixScore := st.scorer.Score(st.text[start:split], previous)

		key := memoKey{
			start: uint8(start - st.offset),
			split: uint8(split - st.offset),
			end:   uint8(end - st.offset),
		}
		entry, ok := st.sess.memo[key]
		if !ok {
			entry.score = st.search(level+1, split, end, st.text[start:split])
			entry.splits = st.sess.best[level+1]
			st.sess.memo[key] = entry
		}

		// Candidates are tried shortest-first and only a strict
		// improvement wins, so exact ties keep the shorter word.
		if score := prefixScore + entry.score; score > best {
			best = score
			winner := &st.sess.best[level]
			winner.Clear()
			winner.Mark(split - st.offset)
			winner.Union(entry.splits)
		}
	}

	return best
}

type memoKey struct {
	start, split, end uint8
}

type memoEntry struct {
	score  float64
	splits splitset.Set
}
