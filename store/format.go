package store

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies wordseg model files (ASCII: "WSG1").
	MagicNumber = 0x57534731
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000

	headerFixedSize = 4 + 4 + 1 + 1 // magic, version, compression, codec name length
	trailerSize     = 8 + 4         // uncompressed size, payload checksum

	// maxCompressionRatio bounds the uncompressed size a header may claim
	// relative to the stored payload. The header is not covered by the
	// payload checksum, so the claimed size must not be trusted with an
	// allocation before it passes a plausibility check. Real snapshot
	// payloads compress well below this.
	maxCompressionRatio = 1024
)

// Compression selects how the snapshot payload is compressed on disk.
type Compression uint8

const (
	// CompressionNone stores the payload as-is.
	CompressionNone Compression = iota
	// CompressionZstd uses zstandard, the best ratio for large tables.
	CompressionZstd
	// CompressionLZ4 trades some ratio for very fast decompression.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrUnknownCodec       = errors.New("unknown codec")
	ErrUnknownCompression = errors.New("unknown compression")
	ErrTruncated          = errors.New("truncated model file")
	ErrInvalidSize        = errors.New("implausible uncompressed size")
)

// ChecksumMismatchError is returned when payload verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// fileHeader is the variable-length header at the start of every model
// file. The codec name makes the format self-describing: files are opened
// with the codec they were written with, regardless of the store default.
type fileHeader struct {
	compression      Compression
	codecName        string
	uncompressedSize uint64
	checksum         uint32 // CRC32 (IEEE) of the stored payload
}

func (h *fileHeader) encode(payloadLen int) []byte {
	buf := make([]byte, 0, headerFixedSize+len(h.codecName)+trailerSize+payloadLen)
	buf = binary.LittleEndian.AppendUint32(buf, MagicNumber)
	buf = binary.LittleEndian.AppendUint32(buf, Version)
	buf = append(buf, byte(h.compression))
	buf = append(buf, byte(len(h.codecName)))
	buf = append(buf, h.codecName...)
	buf = binary.LittleEndian.AppendUint64(buf, h.uncompressedSize)
	buf = binary.LittleEndian.AppendUint32(buf, h.checksum)
	return buf
}

// decodeHeader parses a header and returns it with the remaining payload.
func decodeHeader(data []byte) (*fileHeader, []byte, error) {
	if len(data) < headerFixedSize {
		return nil, nil, ErrTruncated
	}

	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != MagicNumber {
		return nil, nil, fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, magic)
	}
	if version := binary.LittleEndian.Uint32(data[4:8]); version != Version {
		return nil, nil, fmt.Errorf("%w: 0x%08x", ErrInvalidVersion, version)
	}

	h := &fileHeader{compression: Compression(data[8])}
	if h.compression > CompressionLZ4 {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownCompression, data[8])
	}

	nameLen := int(data[9])
	rest := data[headerFixedSize:]
	if len(rest) < nameLen+trailerSize {
		return nil, nil, ErrTruncated
	}
	h.codecName = string(rest[:nameLen])
	rest = rest[nameLen:]

	h.uncompressedSize = binary.LittleEndian.Uint64(rest[0:8])
	h.checksum = binary.LittleEndian.Uint32(rest[8:12])
	return h, rest[trailerSize:], nil
}
