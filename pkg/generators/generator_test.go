package generators

import (
	"bytes"
	"errors"
	"testing"

	"pkg.jsn.cam/inputgen/pkg/inputs"
	"pkg.jsn.cam/inputgen/pkg/rands"
)

// scriptedRand replays values in order, wrapping around; an error is
// returned once failAt draws have been made (failAt < 0 never fails).
type scriptedRand struct {
	values []uint64
	failAt int
	err    error
	calls  int
}

func (s *scriptedRand) Below(bound uint64) (uint64, error) {
	if s.failAt >= 0 && s.calls >= s.failAt {
		return 0, s.err
	}
	v := uint64(0)
	if len(s.values) > 0 {
		v = s.values[s.calls%len(s.values)]
	}
	s.calls++
	return v, nil
}

func zeroRand() *scriptedRand {
	return &scriptedRand{failAt: -1}
}

type variant struct {
	name string
	make func(maxSize int) BytesGenerator
}

var variants = []variant{
	{"bytes", func(n int) BytesGenerator { return NewRandBytesGenerator[rands.Rand](n) }},
	{"printables", func(n int) BytesGenerator { return NewRandPrintablesGenerator[rands.Rand](n) }},
}

func TestGenerateLengthRange(t *testing.T) {
	t.Parallel()

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			t.Parallel()
			r := rands.NewStdRand(1)
			for _, maxSize := range []int{2, 3, 10, 100, 1000} {
				gen := v.make(maxSize)
				for i := 0; i < 300; i++ {
					in, err := gen.Generate(r)
					if err != nil {
						t.Fatalf("Generate(maxSize=%d) failed: %v", maxSize, err)
					}
					if in.Len() < 1 || in.Len() >= maxSize {
						t.Fatalf("Generate(maxSize=%d) length %d out of [1, %d)", maxSize, in.Len(), maxSize)
					}
				}
			}
		})
	}
}

func TestGenerateMaxSizeOne(t *testing.T) {
	t.Parallel()

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			t.Parallel()
			gen := v.make(1)
			r := rands.NewStdRand(3)
			for i := 0; i < 50; i++ {
				in, err := gen.Generate(r)
				if err != nil {
					t.Fatalf("Generate failed: %v", err)
				}
				if in.Len() != 1 {
					t.Fatalf("Generate length = %d, want 1", in.Len())
				}
			}
		})
	}
}

func TestGenerateZeroDrawBumpedToOne(t *testing.T) {
	t.Parallel()

	// Length draws 0, 1, 2 give lengths 1, 1, 2.
	want := []int{1, 1, 2}
	gen := NewRandPrintablesGenerator[rands.Rand](10)
	for i, size := range []uint64{0, 1, 2} {
		r := &scriptedRand{values: []uint64{size, 0}, failAt: -1}
		in, err := gen.Generate(r)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if in.Len() != want[i] {
			t.Errorf("draw %d: length = %d, want %d", size, in.Len(), want[i])
		}
	}
}

func TestRandBytesCoversByteRange(t *testing.T) {
	t.Parallel()

	gen := NewRandBytesGenerator[*rands.StdRand](4096)
	r := rands.NewStdRand(11)
	seen := make(map[byte]bool)
	for i := 0; i < 20 && len(seen) < 256; i++ {
		in, err := gen.Generate(r)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		for _, b := range in.Bytes() {
			seen[b] = true
		}
	}
	if len(seen) < 200 {
		t.Errorf("only %d distinct byte values generated", len(seen))
	}
}

func TestRandPrintablesAlphabet(t *testing.T) {
	t.Parallel()

	if len(Printables) != 97 {
		t.Errorf("alphabet has %d bytes, want 97", len(Printables))
	}
	for _, c := range []byte("09AZaz \t\n~!") {
		if !bytes.Contains(Printables, []byte{c}) {
			t.Errorf("alphabet missing %q", c)
		}
	}
	if bytes.Contains(Printables, []byte{0}) {
		t.Error("alphabet must not contain 0x00")
	}

	gen := NewRandPrintablesGenerator[*rands.StdRand](512)
	r := rands.NewStdRand(5)
	for i := 0; i < 100; i++ {
		in, err := gen.Generate(r)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		for _, b := range in.Bytes() {
			if bytes.IndexByte(Printables, b) < 0 {
				t.Fatalf("generated byte %#x outside alphabet", b)
			}
		}
	}
}

func TestGenerateDummy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		maxSize int
		wantLen int
	}{
		{maxSize: -3, wantLen: 0},
		{maxSize: 0, wantLen: 0},
		{maxSize: 1, wantLen: 1},
		{maxSize: 5, wantLen: 5},
		{maxSize: 64, wantLen: 64},
		{maxSize: 65, wantLen: 64},
		{maxSize: 1000, wantLen: 64},
	}

	for _, v := range variants {
		for _, tt := range tests {
			gen := v.make(tt.maxSize)
			in := gen.GenerateDummy()
			if in.Len() != tt.wantLen {
				t.Errorf("%s: GenerateDummy(maxSize=%d) length = %d, want %d", v.name, tt.maxSize, in.Len(), tt.wantLen)
			}
			if !bytes.Equal(in.Bytes(), make([]byte, tt.wantLen)) {
				t.Errorf("%s: GenerateDummy(maxSize=%d) contains non-zero bytes", v.name, tt.maxSize)
			}
			if !in.Equal(v.make(tt.maxSize).GenerateDummy()) {
				t.Errorf("%s: GenerateDummy(maxSize=%d) not deterministic", v.name, tt.maxSize)
			}
		}
	}
}

func TestGenerateDummyReturnsFreshBuffers(t *testing.T) {
	t.Parallel()

	gen := NewRandBytesGenerator[rands.Rand](8)
	a := gen.GenerateDummy()
	a.Bytes()[0] = 0xff
	if b := gen.GenerateDummy(); b.Bytes()[0] != 0 {
		t.Error("mutating one dummy input affected the next")
	}
}

// Scenario: every draw returns 0
func TestGenerateWithZeroRand(t *testing.T) {
	t.Parallel()

	bytesIn, err := NewRandBytesGenerator[rands.Rand](10).Generate(zeroRand())
	if err != nil {
		t.Fatalf("bytes Generate failed: %v", err)
	}
	if !bytes.Equal(bytesIn.Bytes(), []byte{0}) {
		t.Errorf("bytes Generate = %v, want [0]", bytesIn.Bytes())
	}

	printIn, err := NewRandPrintablesGenerator[rands.Rand](10).Generate(zeroRand())
	if err != nil {
		t.Fatalf("printables Generate failed: %v", err)
	}
	if !bytes.Equal(printIn.Bytes(), []byte{Printables[0]}) {
		t.Errorf("printables Generate = %q, want %q", printIn.Bytes(), Printables[:1])
	}
}

func TestGenerateInvalidMaxSize(t *testing.T) {
	t.Parallel()

	for _, v := range variants {
		for _, maxSize := range []int{0, -1} {
			r := zeroRand()
			_, err := v.make(maxSize).Generate(r)
			if !errors.Is(err, ErrInvalidMaxSize) {
				t.Errorf("%s: Generate(maxSize=%d) error = %v, want %v", v.name, maxSize, err, ErrInvalidMaxSize)
			}
			if r.calls != 0 {
				t.Errorf("%s: Generate(maxSize=%d) consumed %d draws", v.name, maxSize, r.calls)
			}
		}

		if in := v.make(0).GenerateDummy(); in.Len() != 0 {
			t.Errorf("%s: GenerateDummy(maxSize=0) length = %d, want 0", v.name, in.Len())
		}
	}
}

func TestGeneratePropagatesRandErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("entropy gone")
	for _, v := range variants {
		// Fail on the length draw, then on the first content draw.
		for _, failAt := range []int{0, 1} {
			r := &scriptedRand{values: []uint64{5}, failAt: failAt, err: boom}
			in, err := v.make(10).Generate(r)
			if err != boom {
				t.Errorf("%s: failAt=%d error = %v, want %v unchanged", v.name, failAt, err, boom)
			}
			if in != nil {
				t.Errorf("%s: failAt=%d returned input alongside error", v.name, failAt)
			}
		}
	}
}

func TestGenerateRejectsOutOfRangeDraws(t *testing.T) {
	t.Parallel()

	for _, v := range variants {
		r := &scriptedRand{values: []uint64{10}, failAt: -1}
		if _, err := v.make(10).Generate(r); !errors.Is(err, rands.ErrInvalidDraw) {
			t.Errorf("%s: error = %v, want %v", v.name, err, rands.ErrInvalidDraw)
		}
	}

	// Valid length, then a content draw of 256.
	r := &scriptedRand{values: []uint64{3, 256}, failAt: -1}
	if _, err := NewRandBytesGenerator[rands.Rand](10).Generate(r); !errors.Is(err, rands.ErrInvalidDraw) {
		t.Errorf("bytes content draw: error = %v, want %v", err, rands.ErrInvalidDraw)
	}
}

func TestGenerateSameSeedSameOutput(t *testing.T) {
	t.Parallel()

	for _, v := range variants {
		gen := v.make(256)
		a, b := rands.NewStdRand(99), rands.NewStdRand(99)
		for i := 0; i < 20; i++ {
			x, err := gen.Generate(a)
			if err != nil {
				t.Fatal(err)
			}
			y, err := gen.Generate(b)
			if err != nil {
				t.Fatal(err)
			}
			if !x.Equal(y) {
				t.Fatalf("%s: draw %d differs for the same seed", v.name, i)
			}
		}
	}
}

func TestConcreteRandInstantiation(t *testing.T) {
	t.Parallel()

	var gen Generator[*inputs.BytesInput, *rands.ReaderRand] = NewRandBytesGenerator[*rands.ReaderRand](4)
	r := rands.NewReaderRand(bytes.NewReader(nil))
	if _, err := gen.Generate(r); !errors.Is(err, rands.ErrExhausted) {
		t.Errorf("Generate on empty reader: error = %v, want %v", err, rands.ErrExhausted)
	}
	if in := gen.GenerateDummy(); in.Len() != 4 {
		t.Errorf("GenerateDummy length = %d, want 4", in.Len())
	}
}
