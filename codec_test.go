package retrocompress

import (
	"bytes"
	"testing"
)

func TestFor_AllCodecsPresent(t *testing.T) {
	for c := MDKRLE; c <= BitBuster; c++ {
		capability, ok := For(c)
		if !ok {
			t.Fatalf("codec %v missing from registry", c)
		}
		if capability.Compress == nil || capability.Decompress == nil || capability.MaxInput == nil {
			t.Fatalf("codec %v missing a capability function", c)
		}
	}
}

func TestForExtension_MatchesSpecMapping(t *testing.T) {
	cases := []struct {
		ext   string
		codec Codec
	}{
		{".mdkrle", MDKRLE}, {".mdk", MDKRLE}, {".rle", MDKRLE},
		{".lzf", LZF},
		{".dan1", DAN1},
		{".dan3", DAN3},
		{".plet5", Pletter}, {".pck", Pletter},
		{".zx7", ZX7},
		{".zx0", ZX0},
	}

	for _, c := range cases {
		capability, ok := ForExtension(c.ext)
		if !ok {
			t.Fatalf("extension %q not found", c.ext)
		}
		if capability.Codec != c.codec {
			t.Fatalf("extension %q: want codec %v, got %v", c.ext, c.codec, capability.Codec)
		}
	}
}

func TestForExtension_CaseInsensitiveAndNoLeadingDot(t *testing.T) {
	upper, ok := ForExtension(".ZX0")
	if !ok || upper.Codec != ZX0 {
		t.Fatalf("uppercase extension must resolve to ZX0")
	}

	bare, ok := ForExtension("zx0")
	if !ok || bare.Codec != ZX0 {
		t.Fatalf("extension without a leading dot must still resolve")
	}
}

func TestForExtension_Unknown(t *testing.T) {
	if _, ok := ForExtension(".xyz"); ok {
		t.Fatalf("unrecognized extension must report false")
	}
}

func TestForExtension_BitBusterHasNoExtension(t *testing.T) {
	if _, ok := ForExtension(".bbc"); ok {
		t.Fatalf("BitBuster is not spec-assigned an extension; .bbc must not resolve")
	}
}

func TestCodec_String(t *testing.T) {
	if ZX0.String() != "ZX0" {
		t.Fatalf("want ZX0, got %q", ZX0.String())
	}
	if Codec(99).String() == "" {
		t.Fatalf("out-of-range codec must still stringify without panicking")
	}
}

func TestAll_ReturnsEveryCodecOnce(t *testing.T) {
	caps := All()
	if len(caps) != 8 {
		t.Fatalf("want 8 capabilities, got %d", len(caps))
	}
	seen := make(map[Codec]bool)
	for _, c := range caps {
		if seen[c.Codec] {
			t.Fatalf("codec %v listed twice", c.Codec)
		}
		seen[c.Codec] = true
	}
}

func TestCapability_CompressDecompressRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, twice over: the quick brown fox jumps over the lazy dog")

	for c := MDKRLE; c <= BitBuster; c++ {
		capability, _ := For(c)
		t.Run(c.String(), func(t *testing.T) {
			cmp, err := capability.Compress(data, nil)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}

			out, err := capability.Decompress(cmp, nil)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(out, data) {
				t.Fatalf("round-trip mismatch")
			}
		})
	}
}

func TestCrossCodecConversion(t *testing.T) {
	// spec scenario 6: compress x with ZX7, decompress to y, assert y == x;
	// then compress y with ZX0 and round-trip.
	x := bytes.Repeat([]byte("cross-codec conversion payload "), 40)

	zx7Cap, _ := For(ZX7)
	zx0Cap, _ := For(ZX0)

	compressed, err := zx7Cap.Compress(x, nil)
	if err != nil {
		t.Fatalf("ZX7 Compress: %v", err)
	}

	y, err := zx7Cap.Decompress(compressed, nil)
	if err != nil {
		t.Fatalf("ZX7 Decompress: %v", err)
	}
	if !bytes.Equal(y, x) {
		t.Fatalf("ZX7 round-trip mismatch")
	}

	zx0Compressed, err := zx0Cap.Compress(y, nil)
	if err != nil {
		t.Fatalf("ZX0 Compress: %v", err)
	}

	back, err := zx0Cap.Decompress(zx0Compressed, nil)
	if err != nil {
		t.Fatalf("ZX0 Decompress: %v", err)
	}
	if !bytes.Equal(back, y) {
		t.Fatalf("ZX0 round-trip mismatch")
	}
}

func TestScenario_EmptyInput(t *testing.T) {
	mdkCap, _ := For(MDKRLE)
	cmp, err := mdkCap.Compress(nil, nil)
	if err != nil {
		t.Fatalf("MDK-RLE Compress: %v", err)
	}
	if !bytes.Equal(cmp, []byte{0xFF}) {
		t.Fatalf("want [0xFF], got %v", cmp)
	}

	bbCap, _ := For(BitBuster)
	cmp, err = bbCap.Compress(nil, nil)
	if err != nil {
		t.Fatalf("BitBuster Compress: %v", err)
	}
	if !bytes.Equal(cmp, []byte{0, 0, 0, 0}) {
		t.Fatalf("want [0,0,0,0], got %v", cmp)
	}

	for _, c := range []Codec{ZX7, ZX0, DAN3, DAN1, LZF} {
		capability, _ := For(c)
		cmp, err := capability.Compress(nil, nil)
		if err != nil {
			t.Fatalf("%v Compress: %v", c, err)
		}
		if len(cmp) != 0 {
			t.Fatalf("%v: want empty compressed output, got %v", c, cmp)
		}
	}
}

func TestScenario_SingleByte(t *testing.T) {
	for c := MDKRLE; c <= BitBuster; c++ {
		capability, _ := For(c)
		cmp, err := capability.Compress([]byte{0x41}, nil)
		if err != nil {
			t.Fatalf("%v Compress: %v", c, err)
		}
		out, err := capability.Decompress(cmp, nil)
		if err != nil {
			t.Fatalf("%v Decompress: %v", c, err)
		}
		if !bytes.Equal(out, []byte{0x41}) {
			t.Fatalf("%v: want [0x41], got %v", c, out)
		}
	}

	mdkCap, _ := For(MDKRLE)
	cmp, _ := mdkCap.Compress([]byte{0x41}, nil)
	if !bytes.Equal(cmp, []byte{0x00, 0x41, 0xFF}) {
		t.Fatalf("MDK-RLE: want [0x00 0x41 0xFF], got %v", cmp)
	}
}

func TestScenario_ConstantRun300Bytes(t *testing.T) {
	data := bytes.Repeat([]byte{0x55}, 300)

	for c := MDKRLE; c <= BitBuster; c++ {
		capability, _ := For(c)
		cmp, err := capability.Compress(data, nil)
		if err != nil {
			t.Fatalf("%v Compress: %v", c, err)
		}
		out, err := capability.Decompress(cmp, nil)
		if err != nil {
			t.Fatalf("%v Decompress: %v", c, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("%v: round-trip mismatch", c)
		}
		if c != BitBuster && len(cmp) >= 320 {
			t.Fatalf("%v: compressed size %d not < 320", c, len(cmp))
		}
	}

	mdkCap, _ := For(MDKRLE)
	cmp, _ := mdkCap.Compress(data, nil)
	// 300 == 127 + 127 + 46: three RLE packets (2 bytes each) plus the
	// single-byte EOF marker.
	if len(cmp) != 7 {
		t.Fatalf("MDK-RLE: want 7 bytes, got %d", len(cmp))
	}
}

func TestScenario_PathologicalOverlap(t *testing.T) {
	data := bytes.Repeat([]byte{0x01, 0x02}, 512)

	for _, c := range []Codec{LZF, Pletter, DAN1, DAN3, ZX7, ZX0, BitBuster} {
		capability, _ := For(c)
		cmp, err := capability.Compress(data, nil)
		if err != nil {
			t.Fatalf("%v Compress: %v", c, err)
		}
		out, err := capability.Decompress(cmp, nil)
		if err != nil {
			t.Fatalf("%v Decompress: %v", c, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("%v: round-trip mismatch", c)
		}
		if len(cmp) >= len(data)/4 {
			t.Fatalf("%v: compressed size %d not small relative to input %d", c, len(cmp), len(data))
		}
	}
}
