// Package ngram holds the statistical language model behind segmentation:
// unigram and bigram frequency tables with a "stupid back-off" scoring
// rule. A Model is immutable after construction and safe to share across
// any number of goroutines.
package ngram

import "math"

// Bigram is an ordered word pair.
type Bigram struct {
	Prev string `json:"prev" msgpack:"prev"`
	Cur  string `json:"cur" msgpack:"cur"`
}

// UnigramEntry is one word with its raw corpus weight.
type UnigramEntry struct {
	Word   string  `json:"word" msgpack:"word"`
	Weight float64 `json:"weight" msgpack:"weight"`
}

// BigramEntry is one ordered word pair with its raw corpus weight.
type BigramEntry struct {
	Bigram Bigram  `json:"bigram" msgpack:"bigram"`
	Weight float64 `json:"weight" msgpack:"weight"`
}

// Model scores candidate words by relative corpus frequency.
//
// Scores are base-10 logarithms so the search can add instead of multiply;
// see Score for the back-off rule.
type Model struct {
	unigrams map[string]float64
	bigrams  map[Bigram]float64

	uniTotal    float64
	biTotal     float64
	logUniTotal float64
	logBiTotal  float64
}

// FromMaps builds a Model from raw weight maps. Weights are non-negative
// counts or frequencies; totals are derived here and never change.
//
// Bigrams whose second word has no unigram entry are dropped: such pairs
// can never outscore the unigram path and usually indicate corpus noise.
func FromMaps(unigrams map[string]float64, bigrams map[Bigram]float64) *Model {
	m := &Model{
		unigrams: make(map[string]float64, len(unigrams)),
		bigrams:  make(map[Bigram]float64, len(bigrams)),
	}

	for word, w := range unigrams {
		m.unigrams[word] = w
		m.uniTotal += w
	}
	for pair, w := range bigrams {
		if _, ok := m.unigrams[pair.Cur]; !ok {
			continue
		}
		m.bigrams[pair] = w
		m.biTotal += w
	}

	m.logUniTotal = math.Log10(m.uniTotal)
	m.logBiTotal = math.Log10(m.biTotal)
	return m
}

// FromEntries builds a Model from entry slices, e.g. as produced by the
// corpus package. Later entries for the same key overwrite earlier ones.
func FromEntries(unigrams []UnigramEntry, bigrams []BigramEntry) *Model {
	uni := make(map[string]float64, len(unigrams))
	for _, e := range unigrams {
		uni[e.Word] = e.Weight
	}
	bi := make(map[Bigram]float64, len(bigrams))
	for _, e := range bigrams {
		bi[e.Bigram] = e.Weight
	}
	return FromMaps(uni, bi)
}

// Score returns the base-10 log score of word given the word before it;
// previous is empty at the start of a sequence.
//
// If the (previous, word) bigram is known, the score is the "stupid
// back-off" conditional estimate log10(P(pair)/P(previous)) - not a real
// probability distribution, but it works well in practice. Otherwise the
// word's own relative frequency is used. Unknown words are penalized by
// length: an unseen single character costs little more than the rarest
// real word, while a long unseen string costs more than any plausible
// decomposition into real words.
func (m *Model) Score(word, previous string) float64 {
	if previous != "" {
		if bi, ok := m.bigrams[Bigram{Prev: previous, Cur: word}]; ok {
			if uni, ok := m.unigrams[previous]; ok {
				return math.Log10(bi) - m.logBiTotal - math.Log10(uni) + m.logUniTotal
			}
		}
	}

	if p, ok := m.unigrams[word]; ok {
		return math.Log10(p) - m.logUniTotal
	}

	// log10 of 10 / (uniTotal * 10^len(word)).
	return 1 - m.logUniTotal - float64(len(word))
}

// ScoreSentence returns the additive log score of an already segmented
// word sequence, each word scored against its immediate predecessor.
// ok is false for an empty sequence.
func (m *Model) ScoreSentence(words []string) (score float64, ok bool) {
	if len(words) == 0 {
		return 0, false
	}

	previous := ""
	for _, word := range words {
		score += m.Score(word, previous)
		previous = word
	}
	return score, true
}

// UnigramCount returns the number of distinct words in the model.
func (m *Model) UnigramCount() int { return len(m.unigrams) }

// BigramCount returns the number of distinct word pairs in the model.
func (m *Model) BigramCount() int { return len(m.bigrams) }
