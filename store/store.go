// Package store persists language models as self-describing binary
// snapshots on any blobstore.BlobStore.
//
// A model file is a small header (magic, version, compression, codec
// name), an integrity trailer and the codec-encoded snapshot payload,
// optionally compressed. Files record the codec they were written with,
// so the store default can change without breaking existing files.
package store

import (
	"context"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/wordseg/blobstore"
	"github.com/hupe1980/wordseg/codec"
	"github.com/hupe1980/wordseg/ngram"
)

// Store reads and writes model snapshots on a BlobStore.
// It is safe for concurrent use.
type Store struct {
	blobs       blobstore.BlobStore
	codec       codec.Codec
	compression Compression
}

// Option configures a Store.
type Option func(*Store)

// WithCodec configures the codec used for newly written snapshots.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(s *Store) {
		if c == nil {
			c = codec.Default
		}
		s.codec = c
	}
}

// WithCompression configures the compression for newly written snapshots.
// The default is CompressionNone.
func WithCompression(c Compression) Option {
	return func(s *Store) {
		s.compression = c
	}
}

// New creates a Store on top of the given BlobStore.
func New(blobs blobstore.BlobStore, optFns ...Option) *Store {
	s := &Store{
		blobs:       blobs,
		codec:       codec.Default,
		compression: CompressionNone,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(s)
		}
	}
	return s
}

// Save writes the model under the given blob name.
func (s *Store) Save(ctx context.Context, name string, model *ngram.Model) error {
	payload, err := s.codec.Marshal(model.Snapshot())
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}

	h := &fileHeader{
		compression:      s.compression,
		codecName:        s.codec.Name(),
		uncompressedSize: uint64(len(payload)),
	}

	stored, err := compress(h.compression, payload)
	if err != nil {
		return fmt.Errorf("compress model: %w", err)
	}
	if len(stored) >= len(payload) {
		// Incompressible payload, store it raw.
		h.compression = CompressionNone
		stored = payload
	}
	h.checksum = crc32.ChecksumIEEE(stored)

	return s.blobs.Put(ctx, name, append(h.encode(len(stored)), stored...))
}

// Load reads the model stored under the given blob name.
func (s *Store) Load(ctx context.Context, name string) (*ngram.Model, error) {
	data, err := s.blobs.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	h, stored, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}

	c, ok := codec.ByName(h.codecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, h.codecName)
	}

	if actual := crc32.ChecksumIEEE(stored); actual != h.checksum {
		return nil, &ChecksumMismatchError{Expected: h.checksum, Actual: actual}
	}

	if h.uncompressedSize > uint64(len(stored))*maxCompressionRatio {
		return nil, fmt.Errorf("%w: %d bytes claimed from a %d byte payload",
			ErrInvalidSize, h.uncompressedSize, len(stored))
	}

	payload, err := decompress(h.compression, stored, int(h.uncompressedSize))
	if err != nil {
		return nil, fmt.Errorf("decompress model: %w", err)
	}

	var snap ngram.Snapshot
	if err := c.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	return ngram.FromSnapshot(&snap), nil
}

// Delete removes a stored model.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.blobs.Delete(ctx, name)
}

// List returns the names of all stored models with the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	return s.blobs.List(ctx, prefix)
}

func compress(c Compression, payload []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil

	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(payload, nil), nil

	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, buf, nil)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			// Incompressible; caller falls back to CompressionNone.
			return payload, nil
		}
		return buf[:n], nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
}

func decompress(c Compression, stored []byte, uncompressedSize int) ([]byte, error) {
	switch c {
	case CompressionNone:
		return stored, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(stored, make([]byte, 0, uncompressedSize))

	case CompressionLZ4:
		buf := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(stored, buf)
		if err != nil {
			return nil, err
		}
		return buf[:n], nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
}
