package overlap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopy_NonOverlapping(t *testing.T) {
	dst := append([]byte("hello "), make([]byte, 5)...)
	err := Copy(dst, 6, 6, 5)
	require.NoError(t, err)
	require.Equal(t, "hello hello", string(dst))
}

func TestCopy_SingleByteRun(t *testing.T) {
	dst := append([]byte("a"), make([]byte, 7)...)
	err := Copy(dst, 1, 1, 7)
	require.NoError(t, err)
	require.Equal(t, "aaaaaaaa", string(dst))
}

func TestCopy_OverlappingPattern(t *testing.T) {
	dst := append([]byte("abc"), make([]byte, 7)...)
	err := Copy(dst, 3, 3, 7)
	require.NoError(t, err)
	require.Equal(t, "abcabcabca", string(dst))
}

func TestCopy_RejectsBackReferenceBeforeStart(t *testing.T) {
	dst := make([]byte, 4)
	err := Copy(dst, 1, 5, 2)
	require.Error(t, err)
}

func TestCopy_RejectsLengthPastEnd(t *testing.T) {
	dst := make([]byte, 4)
	err := Copy(dst, 2, 1, 10)
	require.Error(t, err)
}
