package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReader_BitRoundTrip(t *testing.T) {
	w := NewWriter()
	bits := []bool{true, false, true, true, false, false, false, true, true}
	for _, b := range bits {
		w.WriteBit(b)
	}

	r := NewReader(w.Bytes())
	for i, want := range bits {
		got, err := r.ReadBit()
		require.NoError(t, err)
		require.Equalf(t, want, got, "bit %d", i)
	}
}

func TestWriterReader_BitsRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0b101, 3)
	w.WriteBits(0b11110000, 8)
	w.WriteBits(0, 4)

	r := NewReader(w.Bytes())
	v, err := r.ReadBits(3)
	require.NoError(t, err)
	require.EqualValues(t, 0b101, v)

	v, err = r.ReadBits(8)
	require.NoError(t, err)
	require.EqualValues(t, 0b11110000, v)

	v, err = r.ReadBits(4)
	require.NoError(t, err)
	require.EqualValues(t, 0, v)
}

func TestWriterReader_ByteInterleavedWithBits(t *testing.T) {
	w := NewWriter()
	w.WriteBit(true)
	w.WriteBit(false)
	w.WriteByte(0x42)
	w.WriteBit(true)
	w.WriteByte(0x99)

	r := NewReader(w.Bytes())
	b1, err := r.ReadBit()
	require.NoError(t, err)
	require.True(t, b1)

	b2, err := r.ReadBit()
	require.NoError(t, err)
	require.False(t, b2)

	by, err := r.ReadByte()
	require.NoError(t, err)
	require.EqualValues(t, 0x42, by)

	b3, err := r.ReadBit()
	require.NoError(t, err)
	require.True(t, b3)

	by, err = r.ReadByte()
	require.NoError(t, err)
	require.EqualValues(t, 0x99, by)
}

func TestWriter_ReserveBitByte(t *testing.T) {
	w := NewWriter()
	w.ReserveBitByte()
	require.Equal(t, 1, w.Len())
	w.WriteBit(true)
	w.WriteBit(true)
	require.Equal(t, 1, w.Len(), "bits fold into the reserved byte, no new byte appended")
	require.EqualValues(t, 0xC0, w.Bytes()[0])
}

func TestReader_TruncatedStream(t *testing.T) {
	r := NewReader(nil)
	_, err := r.ReadBit()
	require.Error(t, err)

	_, err = r.ReadByte()
	require.Error(t, err)
}

func TestReader_PosAndRemaining(t *testing.T) {
	w := NewWriter()
	w.WriteByte(1)
	w.WriteByte(2)
	w.WriteByte(3)

	r := NewReader(w.Bytes())
	require.Equal(t, 3, r.Remaining())
	_, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, 1, r.Pos())
	require.Equal(t, 2, r.Remaining())
}
