package pletter

import (
	"bytes"
	"testing"

	"github.com/woozymasta/retrocompress/internal/bitio"
	"github.com/woozymasta/retrocompress/internal/gamma"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0x10}},
		{name: "short-text", data: []byte("the quick brown fox jumps over the lazy dog")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("pqrstuv"), 200)},
		{name: "long-run", data: bytes.Repeat([]byte{0x3C}, 3000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 500)},
		{name: "far-offset", data: append(append([]byte("needle-needle"), bytes.Repeat([]byte{1}, 3000)...), []byte("needle-needle")...)},
	}
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := Compress(in.data, nil)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}

			out, err := Decompress(cmp, nil)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(out, in.data) {
				t.Fatalf("round-trip mismatch: got len=%d want len=%d", len(out), len(in.data))
			}
		})
	}
}

func TestCompressDecompress_EmptyInput(t *testing.T) {
	cmp, err := Compress(nil, nil)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	out, err := Decompress(cmp, nil)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("want empty output, got %v", out)
	}
}

func TestCompress_InputTooLarge(t *testing.T) {
	_, err := Compress(make([]byte, MaxInputSize+1), nil)
	if err == nil {
		t.Fatalf("want ErrInputTooLarge")
	}
}

func TestDecompress_Dsk2RomMode(t *testing.T) {
	// Dsk2Rom mode decodes a stream with no q-header and no has-data bit,
	// assuming q == 2 (spec section 4.6's fixed-q ROM-resident variant).
	// Hand-encode a trivial all-literal stream: first byte, then one
	// (tag=0, byte) pair per remaining byte, then the EOF sentinel.
	data := []byte("AAAABBBBCCCCDDDD")

	w := bitio.NewWriter()
	w.WriteByte(data[0])
	for _, b := range data[1:] {
		w.WriteBit(false)
		w.WriteByte(b)
	}
	w.WriteBit(true)
	gamma.WriteInterlaced(w, eofSentinelValue, false, false)

	out, err := Decompress(w.Bytes(), &DecompressOptions{Dsk2Rom: true})
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch: got %v", out)
	}
}

func TestMaxInput(t *testing.T) {
	if got := MaxInput(); got != MaxInputSize {
		t.Fatalf("want %d, got %d", MaxInputSize, got)
	}
}
