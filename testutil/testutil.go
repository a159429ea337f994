// Package testutil provides deterministic data generators for tests and
// benchmarks: a seeded thread-safe RNG and Zipf-distributed synthetic
// vocabularies, which is how real word frequencies are shaped.
package testutil

import (
	"math"
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) is proportional to 1/k^s where s is the skew
// parameter. s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20
// rule). This is how real-world word frequencies are distributed.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Normalization constant (harmonic number with exponent s).
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Inverse transform sampling.
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// Words generates n distinct random lowercase words with lengths in
// [minLen, maxLen].
func (r *RNG) Words(n, minLen, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, n)
	words := make([]string, 0, n)
	var sb strings.Builder

	for len(words) < n {
		sb.Reset()
		length := minLen + r.rand.Intn(maxLen-minLen+1)
		for i := 0; i < length; i++ {
			sb.WriteByte(byte('a' + r.rand.Intn(26)))
		}

		w := sb.String()
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}

	return words
}

// Vocabulary generates a synthetic unigram table: n distinct words with
// Zipf-distributed weights (rank k has weight scale/k^s). The returned
// words are ordered by descending weight.
func (r *RNG) Vocabulary(n int, s, scale float64) ([]string, map[string]float64) {
	words := r.Words(n, 2, 8)

	weights := make(map[string]float64, n)
	for i, w := range words {
		weights[w] = scale / math.Pow(float64(i+1), s)
	}
	return words, weights
}

// Sentence draws n words from the vocabulary with Zipf-distributed rank
// and returns them together with their space-stripped concatenation.
func (r *RNG) Sentence(words []string, n int, s float64) ([]string, string) {
	drawn := make([]string, n)
	for i := range drawn {
		drawn[i] = words[r.Zipf(len(words), s)]
	}
	return drawn, strings.Join(drawn, "")
}
