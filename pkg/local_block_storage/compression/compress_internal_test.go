package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixLen(t *testing.T) {
	require.Len(t, zstdFrameMagic, PrefixLength)
}

func TestCompressRoundTrip(t *testing.T) {
	c := &Config{Enabled: true}
	require.NoError(t, c.Init())
	t.Cleanup(func() { _ = c.Close() })

	payload := bytes.Repeat([]byte("flash block payload "), 64)

	stored := c.Compress(payload)
	require.True(t, c.IsCompressed(stored))
	require.Less(t, len(stored), len(payload))

	restored, err := c.Decompress(stored)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestDecompressPassThrough(t *testing.T) {
	c := new(Config)
	require.NoError(t, c.Init())
	t.Cleanup(func() { _ = c.Close() })

	payload := []byte("plain payload written before compression was enabled")
	require.False(t, c.IsCompressed(payload))

	restored, err := c.Decompress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, restored)

	// disabled config stores payloads untouched
	require.Equal(t, payload, c.Compress(payload))
}
