package engine

import "github.com/hupe1980/wordseg/internal/splitset"

// Session holds the mutable scratch state of one caller: the memo cache,
// one split set per recursion level and the result buffer. A Session is
// created once, reused across runs and must never be shared between
// concurrent runs.
type Session struct {
	memo map[memoKey]memoEntry

	// One split set per recursion level. Every level consumes at least
	// one character, plus one slot for the empty base case.
	best [WindowSize + 1]splitset.Set

	result []string
}

// NewSession creates an empty Session.
func NewSession() *Session {
	return &Session{
		memo: make(map[memoKey]memoEntry),
	}
}

// Reset clears all scratch state. Run calls it on entry; a reset Session
// behaves like a fresh one but keeps its allocations.
func (s *Session) Reset() {
	clear(s.memo)
	for i := range s.best {
		s.best[i].Clear()
	}
	s.result = s.result[:0]
}

// Words returns the words of the most recent run, in input order. The
// slice and its strings are valid until the next run with this Session.
func (s *Session) Words() []string {
	return s.result
}

// SetWords replaces the result buffer with words produced outside a run,
// e.g. served from a result cache, so Words stays consistent with the
// most recent call.
func (s *Session) SetWords(words []string) {
	s.Reset()
	s.result = append(s.result, words...)
}
