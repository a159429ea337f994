package wordseg

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wordseg/cache"
	"github.com/hupe1980/wordseg/ngram"
)

// englishModel is a compact unigram table with plausible relative
// frequencies, big enough for the regression sentences below.
func englishModel() *ngram.Model {
	return ngram.FromMaps(map[string]float64{
		"this": 3500, "is": 4300, "a": 10000, "test": 60,
		"it": 2900, "was": 1100, "bright": 12, "cold": 45,
		"day": 290, "in": 8500, "april": 40, "and": 12000,
		"the": 23000, "clocks": 2, "were": 1300, "striking": 6,
		"thirteen": 4,
	}, nil)
}

func contrivedSegmenter(t *testing.T, optFns ...Option) *Segmenter {
	t.Helper()
	seg, err := FromMaps(
		map[string]float64{
			"choose":  80000,
			"chooses": 7000,
			"spain":   20000,
			"pain":    90000,
		},
		map[ngram.Bigram]float64{
			{Prev: "choose", Cur: "spain"}: 7.0,
			{Prev: "chooses", Cur: "pain"}: 0.0,
		},
		optFns...,
	)
	require.NoError(t, err)
	return seg
}

func TestNewNilModel(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilModel)
}

func TestSegmentEmpty(t *testing.T) {
	seg, err := New(englishModel())
	require.NoError(t, err)

	words, err := seg.Segment("", NewSearch())
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestSegmentInvalidCharacter(t *testing.T) {
	seg, err := New(englishModel())
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		b    byte
		pos  int
	}{
		{name: "space", text: "he llo", b: ' ', pos: 2},
		{name: "uppercase", text: "Hello", b: 'H', pos: 0},
		{name: "digit", text: "catch22", b: '2', pos: 5},
		{name: "punctuation", text: "can't", b: '\'', pos: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seg.Segment(tt.text, NewSearch())
			require.ErrorIs(t, err, ErrInvalidCharacter)

			var ice *InvalidCharacterError
			require.True(t, errors.As(err, &ice))
			assert.Equal(t, tt.b, ice.Byte)
			assert.Equal(t, tt.pos, ice.Position)
		})
	}
}

func TestSegmentInvalidClearsSession(t *testing.T) {
	seg, err := New(englishModel())
	require.NoError(t, err)
	search := NewSearch()

	_, err = seg.Segment("thisisatest", search)
	require.NoError(t, err)
	require.NotEmpty(t, search.Words())

	_, err = seg.Segment("NOPE", search)
	require.Error(t, err)
	assert.Empty(t, search.Words())
}

func TestSegmentDigits(t *testing.T) {
	seg, err := FromMaps(map[string]float64{"catch": 50}, nil, WithDigits())
	require.NoError(t, err)

	words, err := seg.Segment("catch22", NewSearch())
	require.NoError(t, err)
	assert.Equal(t, []string{"catch", "22"}, words)
}

func TestSegmentChooseSpain(t *testing.T) {
	seg := contrivedSegmenter(t)

	words, err := seg.Segment("choosespain", NewSearch())
	require.NoError(t, err)
	assert.Equal(t, []string{"choose", "spain"}, words)

	// The losing decomposition exists in the unigram tables but its
	// bigram weight is zero, so it scores as impossible.
	winner, ok := seg.ScoreSentence([]string{"choose", "spain"})
	require.True(t, ok)
	loser, ok := seg.ScoreSentence([]string{"chooses", "pain"})
	require.True(t, ok)
	assert.Greater(t, winner, loser)
	assert.True(t, math.IsInf(loser, -1))
}

func TestSegmentSentences(t *testing.T) {
	seg, err := New(englishModel())
	require.NoError(t, err)
	search := NewSearch()

	tests := []struct {
		text string
		want []string
	}{
		{
			text: "thisisatest",
			want: []string{"this", "is", "a", "test"},
		},
		{
			text: "itwasabrightcolddayinaprilandtheclockswerestrikingthirteen",
			want: []string{
				"it", "was", "a", "bright", "cold", "day", "in",
				"april", "and", "the", "clocks", "were", "striking",
				"thirteen",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			words, err := seg.Segment(tt.text, search)
			require.NoError(t, err)
			assert.Equal(t, tt.want, words)
		})
	}
}

func TestSegmentUnknownWordStaysWhole(t *testing.T) {
	seg, err := New(englishModel())
	require.NoError(t, err)

	// Splitting an unknown word doubles the fixed part of the penalty,
	// so keeping it whole always scores higher.
	words, err := seg.Segment("qzxwv", NewSearch())
	require.NoError(t, err)
	assert.Equal(t, []string{"qzxwv"}, words)
}

func TestSegmentZeroWeightBigramTerminates(t *testing.T) {
	// A zero-weight bigram scores -Inf, and with limit 1 every multi-word
	// path runs through it, so no decomposition beats the score floor.
	// Segment must still return, emitting the undecidable run whole.
	seg, err := FromMaps(
		map[string]float64{"a": 1},
		map[ngram.Bigram]float64{{Prev: "a", Cur: "a"}: 0.0},
	)
	require.NoError(t, err)
	seg.SetLimit(1)

	words, err := seg.Segment("aaaaaaaaaa", NewSearch())
	require.NoError(t, err)
	assert.Equal(t, []string{"aaaaaaaaaa"}, words)
}

func TestSegmentSearchReuse(t *testing.T) {
	seg, err := New(englishModel())
	require.NoError(t, err)
	search := NewSearch()

	first, err := seg.Segment("thisisatest", search)
	require.NoError(t, err)
	got := append([]string(nil), first...)

	second, err := seg.Segment("thisisatest", search)
	require.NoError(t, err)
	assert.Equal(t, got, second)
}

func TestSegmenterSharedAcrossGoroutines(t *testing.T) {
	seg, err := New(englishModel())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			search := NewSearch()
			for i := 0; i < 50; i++ {
				words, err := seg.Segment("thisisatest", search)
				assert.NoError(t, err)
				assert.Equal(t, []string{"this", "is", "a", "test"}, words)
			}
		}()
	}
	wg.Wait()
}

func TestSetLimit(t *testing.T) {
	seg, err := New(englishModel())
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, seg.Limit())

	seg.SetLimit(3)
	assert.Equal(t, 3, seg.Limit())

	words, err := seg.Segment("thisisatest", NewSearch())
	require.NoError(t, err)
	for _, w := range words {
		assert.LessOrEqual(t, len(w), 3)
	}

	seg.SetLimit(0) // ignored
	assert.Equal(t, 3, seg.Limit())
}

func TestSegmentCache(t *testing.T) {
	c, err := cache.NewSegmentations(8)
	require.NoError(t, err)
	metrics := &BasicMetricsCollector{}

	seg, err := New(englishModel(), WithCache(c), WithMetricsCollector(metrics))
	require.NoError(t, err)
	search := NewSearch()

	first, err := seg.Segment("thisisatest", search)
	require.NoError(t, err)
	require.Equal(t, []string{"this", "is", "a", "test"}, first)

	second, err := seg.Segment("thisisatest", search)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), metrics.CacheHits.Load())

	// The session tracks the cached call too.
	assert.Equal(t, first, search.Words())

	// Cached results are copies; mutating one must not poison the cache.
	second[0] = "mutated"
	third, err := seg.Segment("thisisatest", search)
	require.NoError(t, err)
	assert.Equal(t, "this", third[0])
}

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	seg, err := New(englishModel(), WithMetricsCollector(metrics))
	require.NoError(t, err)
	search := NewSearch()

	_, err = seg.Segment("thisisatest", search)
	require.NoError(t, err)
	_, err = seg.Segment("NOPE", search)
	require.Error(t, err)
	_, _ = seg.ScoreSentence([]string{"this", "is"})

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.SegmentCount)
	assert.Equal(t, int64(1), stats.SegmentErrors)
	assert.Equal(t, int64(4), stats.SegmentWords)
	assert.Equal(t, int64(1), stats.ScoreCount)
}

func BenchmarkSegment(b *testing.B) {
	seg, err := New(englishModel())
	if err != nil {
		b.Fatal(err)
	}
	search := NewSearch()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seg.Segment("itwasabrightcolddayinaprilandtheclockswerestrikingthirteen", search); err != nil {
			b.Fatal(err)
		}
	}
}
