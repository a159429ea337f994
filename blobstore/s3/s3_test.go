package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/wordseg/blobstore"
)

func TestKeyMapping(t *testing.T) {
	s := NewFromClient(nil, "bucket", WithPrefix("models/"))
	assert.Equal(t, "models/en.model", s.key("en.model"))
	assert.Equal(t, "models/nested/en.model", s.key("nested/en.model"))

	bare := NewFromClient(nil, "bucket")
	assert.Equal(t, "en.model", bare.key("en.model"))
}

func TestImplementsBlobStore(t *testing.T) {
	var _ blobstore.BlobStore = (*Store)(nil)
}
