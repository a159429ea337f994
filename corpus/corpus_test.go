package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wordseg/ngram"
)

func TestReadUnigrams(t *testing.T) {
	in := "the\t23135851162\nof\t13151942776\n\nand\t12997637966\n"

	entries, err := ReadUnigrams(strings.NewReader(in), "unigrams.txt")
	require.NoError(t, err)
	assert.Equal(t, []ngram.UnigramEntry{
		{Word: "the", Weight: 23135851162},
		{Word: "of", Weight: 13151942776},
		{Word: "and", Weight: 12997637966},
	}, entries)
}

func TestReadBigrams(t *testing.T) {
	in := "of the\t2766332391\nin the\t1628795324\n"

	entries, err := ReadBigrams(strings.NewReader(in), "bigrams.txt")
	require.NoError(t, err)
	assert.Equal(t, []ngram.BigramEntry{
		{Bigram: ngram.Bigram{Prev: "of", Cur: "the"}, Weight: 2766332391},
		{Bigram: ngram.Bigram{Prev: "in", Cur: "the"}, Weight: 1628795324},
	}, entries)
}

func TestReadUnigramsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
	}{
		{name: "missing tab", in: "the\t1\nof 2\n", line: 2},
		{name: "bad count", in: "the\tNaNopes\n", line: 1},
		{name: "negative count", in: "the\t-5\n", line: 1},
		{name: "space in word", in: "of the\t2\n", line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadUnigrams(strings.NewReader(tt.in), "unigrams.txt")
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "unigrams.txt", pe.File)
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestReadBigramsErrors(t *testing.T) {
	_, err := ReadBigrams(strings.NewReader("justoneword\t5\n"), "bigrams.txt")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Line)

	_, err = ReadBigrams(strings.NewReader("one two three\t5\n"), "bigrams.txt")
	require.Error(t, err)
}

func writeCorpusDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, UnigramsFile),
		[]byte("choose\t80000\nchooses\t7000\nspain\t20000\npain\t90000\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, BigramsFile),
		[]byte("choose spain\t7\nchooses pain\t0\n"), 0o644))
	return dir
}

func TestLoadDir(t *testing.T) {
	uni, bi, err := LoadDir(context.Background(), writeCorpusDir(t))
	require.NoError(t, err)
	assert.Len(t, uni, 4)
	assert.Len(t, bi, 2)
}

func TestLoadDirMissingFile(t *testing.T) {
	_, _, err := LoadDir(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadModel(t *testing.T) {
	model, err := LoadModel(context.Background(), writeCorpusDir(t))
	require.NoError(t, err)
	assert.Equal(t, 4, model.UnigramCount())
	assert.Equal(t, 2, model.BigramCount())
}
