package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSnapshot struct {
	Unigrams map[string]float64 `json:"unigrams" msgpack:"unigrams"`
	Words    []string           `json:"words" msgpack:"words"`
}

func testPayload() testSnapshot {
	return testSnapshot{
		Unigrams: map[string]float64{"the": 23000, "of": 13000, "and": 12000},
		Words:    []string{"choose", "spain"},
	}
}

func TestCodecs(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}, Msgpack{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(testPayload())
			require.NoError(t, err)

			var got testSnapshot
			require.NoError(t, c.Unmarshal(data, &got))
			assert.Equal(t, testPayload(), got)
		})
	}
}

func TestByName(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}, Msgpack{}} {
		got, ok := ByName(c.Name())
		require.True(t, ok)
		assert.Equal(t, c.Name(), got.Name())
	}

	_, ok := ByName("protobuf")
	assert.False(t, ok)
}

func TestJSONCompatibility(t *testing.T) {
	// go-json must stay wire-compatible with the standard library.
	data := MustMarshal(JSON{}, testPayload())

	var got testSnapshot
	require.NoError(t, GoJSON{}.Unmarshal(data, &got))
	assert.Equal(t, testPayload(), got)
}

func BenchmarkCodecMarshal(b *testing.B) {
	payload := testPayload()
	for _, c := range []Codec{JSON{}, GoJSON{}, Msgpack{}} {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := c.Marshal(payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
