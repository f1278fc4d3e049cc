package scanline

import (
	"testing"

	"agg_go/internal/basics"
	"agg_go/internal/mask"
)

type constMaskGen struct {
	res mask.Result
}

func (c constMaskGen) Apply(buf []mask.Opa, absX, absY, length int) mask.Result { return c.res }
func (c constMaskGen) Kind() string                                             { return "const" }

// halfMaskGen zeros the right half of the span and reports ResultChanged,
// mimicking a hard-edged half-plane mask.
type halfMaskGen struct{}

func (halfMaskGen) Apply(buf []mask.Opa, absX, absY, length int) mask.Result {
	for i := length / 2; i < length; i++ {
		buf[i] = 0
	}
	return mask.ResultChanged
}
func (halfMaskGen) Kind() string { return "half" }

func TestMaskedBaseRenderer_EmptyStackPassesThrough(t *testing.T) {
	inner := &MockBaseRenderer[interface{}]{}
	masked := NewMaskedBaseRenderer[*MockBaseRenderer[interface{}]](inner, mask.NewStack())

	covers := []basics.Int8u{255, 200, 100}
	masked.BlendSolidHspan(0, 0, 3, "red", covers)

	if len(inner.solidHspanCalls) != 1 {
		t.Fatalf("got %d calls, want 1", len(inner.solidHspanCalls))
	}
	got := inner.solidHspanCalls[0]
	for i, c := range covers {
		if got.Covers[i] != c {
			t.Errorf("Covers[%d] = %d, want %d (unchanged under FULL_COVER)", i, got.Covers[i], c)
		}
	}
}

func TestMaskedBaseRenderer_TransparentMaskDropsTheSpan(t *testing.T) {
	inner := &MockBaseRenderer[interface{}]{}
	s := mask.NewStack()
	s.Add(constMaskGen{mask.ResultTransparent}, nil)
	masked := NewMaskedBaseRenderer[*MockBaseRenderer[interface{}]](inner, s)

	masked.BlendSolidHspan(0, 0, 4, "blue", []basics.Int8u{255, 255, 255, 255})
	masked.BlendHline(0, 0, 3, "blue", 255)
	masked.BlendColorHspan(0, 0, 4, []interface{}{"a", "b", "c", "d"}, nil, 255)

	if len(inner.solidHspanCalls) != 0 || len(inner.hlineCalls) != 0 || len(inner.colorHspanCalls) != 0 {
		t.Fatalf("TRANSP mask reached the wrapped renderer: solid=%d hline=%d color=%d",
			len(inner.solidHspanCalls), len(inner.hlineCalls), len(inner.colorHspanCalls))
	}
}

func TestMaskedBaseRenderer_ChangedMaskWithOpaqueBufferKeepsCoverage(t *testing.T) {
	inner := &MockBaseRenderer[interface{}]{}
	s := mask.NewStack()
	s.Add(constMaskGen{mask.ResultChanged}, nil) // Apply leaves buf untouched -> still all-0xFF, no half

	masked := NewMaskedBaseRenderer[*MockBaseRenderer[interface{}]](inner, s)
	masked.BlendSolidHspan(0, 0, 2, "green", []basics.Int8u{255, 255})

	if len(inner.solidHspanCalls) != 1 {
		t.Fatalf("got %d calls, want 1", len(inner.solidHspanCalls))
	}
	got := inner.solidHspanCalls[0].Covers
	for i, c := range got {
		if c != 255 {
			t.Errorf("Covers[%d] = %d, want 255 (mask opaque, cover opaque)", i, c)
		}
	}
}

func TestMaskedBaseRenderer_PartialMaskZeroesMaskedHalf(t *testing.T) {
	inner := &MockBaseRenderer[interface{}]{}
	s := mask.NewStack()
	s.Add(halfMaskGen{}, nil)
	masked := NewMaskedBaseRenderer[*MockBaseRenderer[interface{}]](inner, s)

	masked.BlendSolidHspan(0, 0, 4, "green", []basics.Int8u{255, 255, 255, 255})

	if len(inner.solidHspanCalls) != 1 {
		t.Fatalf("got %d calls, want 1", len(inner.solidHspanCalls))
	}
	got := inner.solidHspanCalls[0].Covers
	for i := 0; i < 2; i++ {
		if got[i] != 255 {
			t.Errorf("Covers[%d] = %d, want 255 (unmasked half)", i, got[i])
		}
	}
	for i := 2; i < 4; i++ {
		if got[i] != 0 {
			t.Errorf("Covers[%d] = %d, want 0 (masked half)", i, got[i])
		}
	}
}

func TestMaskedBaseRenderer_BlendHline_FullCoverDelegatesDirectly(t *testing.T) {
	inner := &MockBaseRenderer[interface{}]{}
	masked := NewMaskedBaseRenderer[*MockBaseRenderer[interface{}]](inner, mask.NewStack())

	masked.BlendHline(5, 10, 14, "red", 200)
	if len(inner.hlineCalls) != 1 {
		t.Fatalf("got %d hline calls, want 1", len(inner.hlineCalls))
	}
	call := inner.hlineCalls[0]
	if call.X != 5 || call.X2 != 14 || call.Cover != 200 {
		t.Errorf("hline call = %+v, want X=5 X2=14 Cover=200", call)
	}
}

func TestMaskedBaseRenderer_BlendColorHspan_FoldsCoverWhenNilCovers(t *testing.T) {
	inner := &MockBaseRenderer[interface{}]{}
	s := mask.NewStack()
	s.Add(constMaskGen{mask.ResultChanged}, nil)
	masked := NewMaskedBaseRenderer[*MockBaseRenderer[interface{}]](inner, s)

	colors := []interface{}{"a", "b"}
	masked.BlendColorHspan(0, 0, 2, colors, nil, 128)

	if len(inner.colorHspanCalls) != 1 {
		t.Fatalf("got %d calls, want 1", len(inner.colorHspanCalls))
	}
	call := inner.colorHspanCalls[0]
	if len(call.Covers) != 2 {
		t.Fatalf("Covers length = %d, want 2", len(call.Covers))
	}
	// mask left the buffer fully opaque, so the folded cover equals the
	// original scalar cover broadcast across the span.
	for i, c := range call.Covers {
		if c != 128 {
			t.Errorf("Covers[%d] = %d, want 128", i, c)
		}
	}
}
