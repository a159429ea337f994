package ngram

// Snapshot is the serializable form of a Model: the raw weight tables as
// supplied at construction time. Derived totals are recomputed on restore
// so a snapshot stays valid across scoring changes.
type Snapshot struct {
	Unigrams map[string]float64 `json:"unigrams" msgpack:"unigrams"`
	Bigrams  []BigramEntry      `json:"bigrams" msgpack:"bigrams"`
}

// Snapshot captures the model's weight tables. The returned maps and
// slices are copies; mutating them does not affect the Model.
func (m *Model) Snapshot() *Snapshot {
	s := &Snapshot{
		Unigrams: make(map[string]float64, len(m.unigrams)),
		Bigrams:  make([]BigramEntry, 0, len(m.bigrams)),
	}
	for word, w := range m.unigrams {
		s.Unigrams[word] = w
	}
	for pair, w := range m.bigrams {
		s.Bigrams = append(s.Bigrams, BigramEntry{Bigram: pair, Weight: w})
	}
	return s
}

// FromSnapshot rebuilds a Model from a snapshot.
func FromSnapshot(s *Snapshot) *Model {
	bi := make(map[Bigram]float64, len(s.Bigrams))
	for _, e := range s.Bigrams {
		bi[e.Bigram] = e.Weight
	}
	return FromMaps(s.Unigrams, bi)
}
