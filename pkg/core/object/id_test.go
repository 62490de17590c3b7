package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDPartition(t *testing.T) {
	require.True(t, ID(0x80000001).IsBlock())
	require.False(t, ID(0x80000001).IsInode())

	require.True(t, ID(0x00000010).IsInode())
	require.False(t, ID(0x00000010).IsBlock())

	require.True(t, IDNone.IsNone())
	require.False(t, IDNone.IsBlock())
	require.False(t, IDNone.IsInode())
}

func TestIDString(t *testing.T) {
	require.Equal(t, "<none>", IDNone.String())
	require.Equal(t, "0x80000001", ID(0x80000001).String())
}
