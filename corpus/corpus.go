// Package corpus reads n-gram frequency tables from their text form:
// one entry per line, a tab between the n-gram and its count. Unigram
// lines hold a single word, bigram lines hold two words separated by a
// single space:
//
//	the	23135851162
//	of the	2766332391
//
// Counts are parsed as floats so pre-scaled frequency tables load too.
package corpus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/wordseg/ngram"
)

// Conventional file names used by LoadDir.
const (
	UnigramsFile = "unigrams.txt"
	BigramsFile  = "bigrams.txt"
)

// ParseError reports a malformed corpus line.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	File string
	Line int
	Msg  string

	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("corpus %s:%d: %s", e.File, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.cause }

// ReadUnigrams parses unigram lines from r. name is used in errors only.
func ReadUnigrams(r io.Reader, name string) ([]ngram.UnigramEntry, error) {
	var entries []ngram.UnigramEntry

	err := scanLines(r, name, func(line string, lineNo int) error {
		word, weight, err := splitLine(line, name, lineNo)
		if err != nil {
			return err
		}
		if strings.ContainsRune(word, ' ') {
			return &ParseError{File: name, Line: lineNo, Msg: "unexpected space in unigram"}
		}
		entries = append(entries, ngram.UnigramEntry{Word: word, Weight: weight})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadBigrams parses bigram lines from r. name is used in errors only.
func ReadBigrams(r io.Reader, name string) ([]ngram.BigramEntry, error) {
	var entries []ngram.BigramEntry

	err := scanLines(r, name, func(line string, lineNo int) error {
		pair, weight, err := splitLine(line, name, lineNo)
		if err != nil {
			return err
		}
		prev, cur, ok := strings.Cut(pair, " ")
		if !ok || prev == "" || cur == "" || strings.ContainsRune(cur, ' ') {
			return &ParseError{File: name, Line: lineNo, Msg: "expected two space-separated words"}
		}
		entries = append(entries, ngram.BigramEntry{
			Bigram: ngram.Bigram{Prev: prev, Cur: cur},
			Weight: weight,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadFiles reads a unigram and a bigram file concurrently.
func LoadFiles(ctx context.Context, uniPath, biPath string) ([]ngram.UnigramEntry, []ngram.BigramEntry, error) {
	var (
		uni []ngram.UnigramEntry
		bi  []ngram.BigramEntry
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		uni, err = readFile(uniPath, ReadUnigrams)
		return err
	})
	g.Go(func() error {
		var err error
		bi, err = readFile(biPath, ReadBigrams)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return uni, bi, nil
}

// LoadDir reads UnigramsFile and BigramsFile from dir.
func LoadDir(ctx context.Context, dir string) ([]ngram.UnigramEntry, []ngram.BigramEntry, error) {
	return LoadFiles(ctx, filepath.Join(dir, UnigramsFile), filepath.Join(dir, BigramsFile))
}

// LoadModel is a convenience wrapper building an ngram.Model from dir.
func LoadModel(ctx context.Context, dir string) (*ngram.Model, error) {
	uni, bi, err := LoadDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	return ngram.FromEntries(uni, bi), nil
}

func readFile[T any](path string, read func(io.Reader, string) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	return read(bufio.NewReader(f), filepath.Base(path))
}

func scanLines(r io.Reader, name string, fn func(line string, lineNo int) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := fn(line, lineNo); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read corpus %s: %w", name, err)
	}
	return nil
}

func splitLine(line, name string, lineNo int) (string, float64, error) {
	key, count, ok := strings.Cut(line, "\t")
	if !ok || key == "" {
		return "", 0, &ParseError{File: name, Line: lineNo, Msg: "expected <ngram><TAB><count>"}
	}

	weight, err := strconv.ParseFloat(count, 64)
	if err != nil {
		return "", 0, &ParseError{File: name, Line: lineNo, Msg: "invalid count", cause: err}
	}
	if weight < 0 {
		return "", 0, &ParseError{File: name, Line: lineNo, Msg: "negative count"}
	}
	return key, weight, nil
}
