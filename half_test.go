package attrib

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestWidenHalf(t *testing.T) {
	// 0x3C00 = 1.0, 0xC000 = -2.0, 0x3800 = 0.5, 0x0000 = +0
	got := WidenHalf([]uint16{0x3C00, 0xC000, 0x3800, 0x0000})
	want := []float32{1.0, -2.0, 0.5, 0.0}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WidenHalf() mismatch (-want +got):\n%s", diff)
	}
}

func TestNarrowHalf(t *testing.T) {
	got := NarrowHalf([]float32{1.0, -2.0, 0.5, 0.0})
	want := []uint16{0x3C00, 0xC000, 0x3800, 0x0000}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NarrowHalf() mismatch (-want +got):\n%s", diff)
	}
}

func TestNarrowHalf_Rounds(t *testing.T) {
	// 0.1 is not representable in binary16; it rounds to 0x2E66
	got := WidenHalf(NarrowHalf([]float32{0.1}))[0]
	if got == 0.1 {
		t.Fatal("Expected 0.1 to lose precision")
	}
	if math.Abs(float64(got)-0.1) > 1e-4 {
		t.Errorf("Narrowed 0.1 to %v, too far off", got)
	}
}

func TestComposeHalf(t *testing.T) {
	contribs := []float32{0.5, -0.75, 0.125, -0.25, 1.5, 0.0}
	ids := identity(len(contribs))
	req := Request{TopN: 1, TopBottomN: 1}

	got := ComposeHalf(ids, NarrowHalf(contribs), req)
	want := []Contribution{
		{ID: 4, Value: 1.5},
		{ID: 1, Value: -0.75},
		{ID: 5, Value: 0.0},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComposeHalf() mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeHalf_MatchesWidenedRow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		length := rapid.IntRange(1, 16).Draw(t, "length")
		values := rapid.SliceOfN(rapid.Float32Range(-100, 100), length, length).Draw(t, "values")
		req := Request{
			TopN:       rapid.IntRange(-1, length).Draw(t, "topN"),
			TopBottomN: rapid.IntRange(-1, length).Draw(t, "topBottomN"),
			Mode:       rapid.SampledFrom([]CompareMode{Signed, Absolute}).Draw(t, "mode"),
		}
		ids := identity(length)
		bits := NarrowHalf(values)

		got := ComposeHalf(ids, bits, req)
		want := ComposeKeyed(ids, WidenHalf(bits), req)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("ComposeHalf() mismatch (-want +got):\n%s", diff)
		}
	})
}
