// Package wordseg recovers word boundaries in text whose spaces have been
// stripped, such as URLs, hashtags and identifiers.
//
// Segmentation is driven by a statistical language model of unigram and
// bigram frequencies and a windowed, memoized best-path search. The hot
// path is allocation-free after warm-up: all scratch state lives in a
// caller-owned Search that is reused across calls.
//
// # Quick Start
//
//	unigrams, bigrams, _ := corpus.LoadDir(ctx, "./data")
//	seg, _ := wordseg.New(ngram.FromEntries(unigrams, bigrams))
//
//	search := wordseg.NewSearch()
//	words, err := seg.Segment("thisisatest", search)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(words) // [this is a test]
//
// # Concurrency
//
// A Segmenter is immutable after construction and safe to share across
// goroutines. A Search holds per-caller scratch state and must not be
// shared between concurrent calls; give each goroutine its own.
//
// # Persistence
//
// Models can be snapshotted to any BlobStore (local disk, memory, S3,
// MinIO) with a self-describing binary header, optional compression and a
// payload checksum:
//
//	st := store.New(blobstore.NewLocalStore("./models"),
//	    store.WithCompression(store.CompressionZstd))
//	_ = st.Save(ctx, "en.model", seg.Model())
//	model, _ := st.Load(ctx, "en.model")
package wordseg
