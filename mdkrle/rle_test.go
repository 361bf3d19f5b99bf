package mdkrle

import (
	"bytes"
	"testing"
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
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world")},
		{name: "long-run", data: bytes.Repeat([]byte{0x5A}, 500)},
		{name: "mixed-runs-and-literals", data: append(append([]byte("abc"), bytes.Repeat([]byte{9}, 40)...), []byte("xyz")...)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7}, 300)},
		{name: "two-byte-run-stays-raw", data: []byte{1, 1}},
		{name: "three-byte-run-becomes-rle", data: []byte{1, 1, 1}},
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
			if !bytes.Equal(out, in.data) && !(len(out) == 0 && len(in.data) == 0) {
				t.Fatalf("round-trip mismatch: got %v want %v", out, in.data)
			}
		})
	}
}

func TestCompress_EmptyInputIsSentinelByte(t *testing.T) {
	cmp, err := Compress(nil, nil)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if !bytes.Equal(cmp, []byte{0xFF}) {
		t.Fatalf("want [0xFF], got %v", cmp)
	}
}

func TestDecompress_EmptySentinelYieldsEmptyOutput(t *testing.T) {
	out, err := Decompress([]byte{0xFF}, nil)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("want empty output, got %v", out)
	}
}

func TestDecompress_TruncatedStream(t *testing.T) {
	if _, err := Decompress([]byte{}, nil); err == nil {
		t.Fatalf("want error on empty source (no end marker)")
	}
	if _, err := Decompress([]byte{0x02, 'a'}, nil); err == nil {
		t.Fatalf("want error on raw packet missing bytes")
	}
	if _, err := Decompress([]byte{rleBaseByte + 2}, nil); err == nil {
		t.Fatalf("want error on RLE packet missing value byte")
	}
}

func TestMaxInput_Unbounded(t *testing.T) {
	if got := MaxInput(); got != 0 {
		t.Fatalf("want 0, got %d", got)
	}
}
