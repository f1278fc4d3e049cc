package mask

import "testing"

func TestFade_OutsideYBandIsFullCover(t *testing.T) {
	f := NewFade(rect(0, 0, 10, 10), 0, 0, 255, 10)
	if res := f.Apply(newBuf(11), 0, -1, 11); res != ResultFullCover {
		t.Errorf("above rect = %v, want ResultFullCover", res)
	}
	if res := f.Apply(newBuf(11), 0, 11, 11); res != ResultFullCover {
		t.Errorf("below rect = %v, want ResultFullCover", res)
	}
}

func TestFade_OutsideXBandIsFullCover(t *testing.T) {
	f := NewFade(rect(0, 0, 10, 10), 0, 0, 255, 10)
	if res := f.Apply(newBuf(5), -10, 5, 5); res != ResultFullCover {
		t.Errorf("span entirely left of rect = %v, want ResultFullCover", res)
	}
	if res := f.Apply(newBuf(5), 20, 5, 5); res != ResultFullCover {
		t.Errorf("span entirely right of rect = %v, want ResultFullCover", res)
	}
}

func TestFade_TopSaturation(t *testing.T) {
	f := NewFade(rect(0, 0, 10, 20), 0, 5, 255, 15)
	buf := newBuf(11)
	res := f.Apply(buf, 0, 2, 11)
	if res != ResultChanged {
		t.Fatalf("Apply = %v, want ResultChanged", res)
	}
	for i, v := range buf {
		if v != 0 {
			t.Errorf("buf[%d] = %d, want 0 (opaTop mixed into 255)", i, v)
		}
	}
}

func TestFade_BottomSaturation(t *testing.T) {
	f := NewFade(rect(0, 0, 10, 20), 0, 5, 255, 15)
	buf := newBuf(11)
	res := f.Apply(buf, 0, 18, 11)
	if res != ResultChanged {
		t.Fatalf("Apply = %v, want ResultChanged", res)
	}
	for i, v := range buf {
		if v != 255 {
			t.Errorf("buf[%d] = %d, want 255 (opaBottom mixed into 255)", i, v)
		}
	}
}

// S5-derived: a fade from 0 to 255 evaluated at its midpoint must match the
// same linear interpolation formula the generator is specified to use.
func TestFade_LinearInterpolationMatchesFormula(t *testing.T) {
	f := NewFade(rect(0, 0, 10, 10), 0, 0, 255, 10)
	buf := newBuf(11)
	res := f.Apply(buf, 0, 5, 11)
	if res != ResultChanged {
		t.Fatalf("Apply = %v, want ResultChanged", res)
	}
	wantOpaAct := Opa(int32(0) + (int32(5) * int32(255) / int32(11)))
	want := MaskMix(255, wantOpaAct)
	for i, v := range buf {
		if v != want {
			t.Errorf("buf[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestFade_ClipsXSpanToRect(t *testing.T) {
	f := NewFade(rect(2, 0, 5, 10), 0, 0, 255, 10)
	buf := newBuf(10)
	for i := range buf {
		buf[i] = OpaOpaque
	}
	res := f.Apply(buf, 0, 0, 10)
	if res != ResultChanged {
		t.Fatalf("Apply = %v, want ResultChanged", res)
	}
	// pixels 0,1 fall before rect.X1=2 and must be excluded from the fade's
	// write window (clipped away, left untouched at 255).
	if buf[0] != 255 || buf[1] != 255 {
		t.Errorf("buf[0:2] = %v, want untouched 255 (outside rect x-span)", buf[0:2])
	}
}

func TestFade_ZeroLengthSpanIsSafe(t *testing.T) {
	f := NewFade(rect(0, 0, 10, 10), 0, 0, 255, 10)
	if res := f.Apply(nil, 0, 0, 0); res != ResultFullCover {
		t.Errorf("zero-length Apply = %v, want ResultFullCover", res)
	}
}
