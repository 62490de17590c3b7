package filedev

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/flashfs-dev/flashfs/pkg/flash"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesErasedImage(t *testing.T) {
	p := filepath.Join(t.TempDir(), "flash.img")

	d, err := Open(p, 0o640, 2, 64)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	buf := make([]byte, 64)
	require.NoError(t, d.Read(1, 0, buf))
	require.Equal(t, bytes.Repeat([]byte{ErasedByte}, 64), buf)
}

func TestDevicePersistence(t *testing.T) {
	p := filepath.Join(t.TempDir(), "flash.img")

	d, err := Open(p, 0o640, 1, 128)
	require.NoError(t, err)

	require.NoError(t, d.Write(0, 8, []byte("durable")))
	require.NoError(t, d.Sync())
	require.NoError(t, d.Close())

	d, err = Open(p, 0o640, 1, 128)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	buf := make([]byte, 7)
	require.NoError(t, d.Read(0, 8, buf))
	require.Equal(t, []byte("durable"), buf)
}

func TestOpenGeometryMismatch(t *testing.T) {
	p := filepath.Join(t.TempDir(), "flash.img")

	d, err := Open(p, 0o640, 1, 64)
	require.NoError(t, err)
	require.NoError(t, d.Close())

	_, err = Open(p, 0o640, 2, 64)
	require.Error(t, err)
}

func TestDeviceBounds(t *testing.T) {
	p := filepath.Join(t.TempDir(), "flash.img")

	d, err := Open(p, 0o640, 1, 32)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	require.ErrorIs(t, d.Write(0, 31, []byte{1, 2}), flash.ErrOutOfBounds)
	require.ErrorIs(t, d.Read(3, 0, make([]byte, 1)), flash.ErrOutOfBounds)
}
