package wordseg

import (
	"time"

	"github.com/hupe1980/wordseg/cache"
	"github.com/hupe1980/wordseg/internal/engine"
	"github.com/hupe1980/wordseg/ngram"
)

// DefaultLimit is the default maximum candidate word length in bytes.
// Few real words are longer; every extra byte widens the search.
const DefaultLimit = 24

// Segmenter recovers word boundaries in space-stripped text using a
// statistical language model. It is immutable after construction, except
// for SetLimit, and safe to share across goroutines.
type Segmenter struct {
	model   *ngram.Model
	limit   int
	digits  bool
	metrics MetricsCollector
	logger  *Logger
	cache   *cache.Segmentations
}

// New creates a Segmenter backed by the given model.
func New(model *ngram.Model, optFns ...Option) (*Segmenter, error) {
	if model == nil {
		return nil, ErrNilModel
	}

	o := applyOptions(optFns)
	return &Segmenter{
		model:   model,
		limit:   o.limit,
		digits:  o.digits,
		metrics: o.metricsCollector,
		logger:  o.logger,
		cache:   o.cache,
	}, nil
}

// FromMaps creates a Segmenter directly from raw weight maps.
// Convenience wrapper for New(ngram.FromMaps(unigrams, bigrams), ...).
func FromMaps(unigrams map[string]float64, bigrams map[ngram.Bigram]float64, optFns ...Option) (*Segmenter, error) {
	return New(ngram.FromMaps(unigrams, bigrams), optFns...)
}

// Segment splits text into the highest-scoring word sequence, writing into
// search's scratch state. The returned words are substrings of text and
// valid until search is used again; results served from a configured
// cache are independent copies.
//
// Input must consist of the bytes 'a'-'z' only ('0'-'9' as well when the
// Segmenter was built WithDigits). Any other byte fails the whole call
// with an *InvalidCharacterError before the search runs.
//
// An empty text yields an empty word sequence and no error.
func (s *Segmenter) Segment(text string, search *Search) ([]string, error) {
	start := time.Now()

	if err := s.validate(text); err != nil {
		// No partial work: the session is left cleared, not holding the
		// previous call's words.
		search.sess.Reset()
		s.metrics.RecordSegment(len(text), 0, time.Since(start), err)
		s.logger.LogSegment(len(text), 0, err)
		return nil, err
	}

	if s.cache != nil {
		if words, ok := s.cache.Get(text); ok {
			// Keep search consistent with this call: Words must reflect
			// the most recent Segment, cached or not.
			search.sess.SetWords(words)
			s.metrics.RecordCacheHit(len(text))
			s.logger.LogCacheHit(len(text), len(words))
			return words, nil
		}
	}

	engine.Run(s.model, s.limit, text, search.sess)
	words := search.sess.Words()

	if s.cache != nil {
		s.cache.Put(text, words)
	}

	s.metrics.RecordSegment(len(text), len(words), time.Since(start), nil)
	s.logger.LogSegment(len(text), len(words), nil)
	return words, nil
}

// ScoreSentence returns the additive log score the model assigns to an
// already segmented word sequence. ok is false for an empty sequence.
func (s *Segmenter) ScoreSentence(words []string) (score float64, ok bool) {
	start := time.Now()
	score, ok = s.model.ScoreSentence(words)
	s.metrics.RecordScoreSentence(len(words), time.Since(start))
	return score, ok
}

// SetLimit changes the maximum candidate word length in bytes. Values
// below 1 are ignored.
//
// SetLimit is the one mutating method on Segmenter; do not call it
// concurrently with Segment.
func (s *Segmenter) SetLimit(limit int) {
	if limit >= 1 {
		s.limit = limit
	}
}

// Limit returns the current maximum candidate word length in bytes.
func (s *Segmenter) Limit() int { return s.limit }

// Model returns the underlying language model.
func (s *Segmenter) Model() *ngram.Model { return s.model }

func (s *Segmenter) validate(text string) error {
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b >= 'a' && b <= 'z' {
			continue
		}
		if s.digits && b >= '0' && b <= '9' {
			continue
		}
		return &InvalidCharacterError{Byte: b, Position: i}
	}
	return nil
}
