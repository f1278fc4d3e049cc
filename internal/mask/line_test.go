package mask

import (
	"testing"

	"agg_go/internal/basics"
)

func pt(x, y int) basics.Point[int] { return basics.Point[int]{X: x, Y: y} }

func newBuf(n int) []Opa {
	b := make([]Opa, n)
	for i := range b {
		b[i] = OpaOpaque
	}
	return b
}

// S3: horizontal line through (0,5)-(10,5), side=BOTTOM.
func TestLine_S3_HorizontalBottomNudge(t *testing.T) {
	l := NewLine(pt(0, 5), pt(10, 5), SideBottom)

	if res := l.Apply(newBuf(10), 0, 4, 10); res != ResultFullCover {
		t.Errorf("y=4: got %v, want ResultFullCover", res)
	}
	if res := l.Apply(newBuf(10), 0, 6, 10); res != ResultTransparent {
		t.Errorf("y=6: got %v, want ResultTransparent", res)
	}
	// After the 1-pixel nudge the line is effectively at y=4, so y=5 is
	// strictly below it and also reads TRANSP (see spec.md S3).
	if res := l.Apply(newBuf(10), 0, 5, 10); res != ResultTransparent {
		t.Errorf("y=5: got %v, want ResultTransparent", res)
	}
}

// S4: line (0,0)-(10,10) side=LEFT, scanline y=5.
func TestLine_S4_DiagonalLeft(t *testing.T) {
	l := NewLine(pt(0, 0), pt(10, 10), SideLeft)
	buf := newBuf(11)
	res := l.Apply(buf, 0, 5, 11)
	if res != ResultChanged {
		t.Fatalf("Apply = %v, want ResultChanged", res)
	}
	for i := 0; i <= 4; i++ {
		if buf[i] != 255 {
			t.Errorf("buf[%d] = %d, want 255", i, buf[i])
		}
	}
	for i := 6; i <= 10; i++ {
		if buf[i] != 0 {
			t.Errorf("buf[%d] = %d, want 0", i, buf[i])
		}
	}
	if diff := absInt(int(buf[5]) - 128); diff > 4 {
		t.Errorf("buf[5] = %d, want approx 128 (+-4)", buf[5])
	}
}

// Property: side-inversion duality. out(LEFT,p) + out(RIGHT,p) in {254,255,256}.
func TestLine_SideInversionDuality(t *testing.T) {
	left := NewLine(pt(2, 1), pt(9, 8), SideLeft)
	right := NewLine(pt(2, 1), pt(9, 8), SideRight)

	for y := 0; y < 12; y++ {
		bufL := newBuf(12)
		bufR := newBuf(12)
		resL := left.Apply(bufL, 0, y, 12)
		resR := right.Apply(bufR, 0, y, 12)

		for x := 0; x < 12; x++ {
			vl := resolvedByte(resL, bufL, x)
			vr := resolvedByte(resR, bufR, x)
			sum := int(vl) + int(vr)
			if sum < 254 || sum > 256 {
				t.Errorf("y=%d x=%d: left=%d right=%d sum=%d, want in [254,256]", y, x, vl, vr, sum)
			}
		}
	}
}

func resolvedByte(res Result, buf []Opa, i int) Opa {
	switch res {
	case ResultTransparent:
		return 0
	case ResultFullCover:
		return 255
	default:
		return buf[i]
	}
}

func TestLine_VerticalDegenerate(t *testing.T) {
	// Vertical line x=5, side=RIGHT: keep pixels with x > 5.
	l := NewLine(pt(5, 0), pt(5, 10), SideRight)
	buf := newBuf(10)
	res := l.Apply(buf, 0, 3, 10)
	if res != ResultChanged {
		t.Fatalf("Apply = %v, want ResultChanged", res)
	}
	for i := 0; i < 5; i++ {
		if buf[i] != 0 {
			t.Errorf("buf[%d] = %d, want 0 (left of vertex)", i, buf[i])
		}
	}
	for i := 5; i < 10; i++ {
		if buf[i] != 255 {
			t.Errorf("buf[%d] = %d, want 255 (at/right of vertex)", i, buf[i])
		}
	}
}

// Vertical line x=100, side=RIGHT: the whole span lies left of the vertex,
// so the right-kept side never reaches it and the span must be transparent.
func TestLine_VerticalRightSide_SpanEntirelyLeftOfVertexIsTransparent(t *testing.T) {
	l := NewLine(pt(100, 0), pt(100, 10), SideRight)
	buf := newBuf(50)
	res := l.Apply(buf, 0, 3, 50)
	if res != ResultTransparent {
		t.Fatalf("Apply = %v, want ResultTransparent", res)
	}
}

// Vertical line x=10, side=LEFT: the whole span lies left of the vertex
// (k == length exactly), so the left-kept side covers it entirely.
func TestLine_VerticalLeftSide_SpanExactlyAtVertexIsChangedFullCover(t *testing.T) {
	l := NewLine(pt(10, 0), pt(10, 10), SideLeft)
	buf := newBuf(10)
	res := l.Apply(buf, 0, 3, 10)
	if res != ResultChanged {
		t.Fatalf("Apply = %v, want ResultChanged", res)
	}
	for i := 0; i < 10; i++ {
		if buf[i] != 255 {
			t.Errorf("buf[%d] = %d, want 255 (still fully covered)", i, buf[i])
		}
	}
}

func TestLine_ZeroLengthSpanIsSafe(t *testing.T) {
	l := NewLine(pt(0, 0), pt(10, 10), SideLeft)
	if res := l.Apply(nil, 0, 0, 0); res != ResultFullCover {
		t.Errorf("zero-length Apply = %v, want ResultFullCover", res)
	}
}

func TestLine_InitAngle_FoldsOriginAbove180(t *testing.T) {
	var a, b Line
	a.InitAngle(pt(10, 10), 20, SideLeft)
	b.InitAngle(pt(10, 10), 200, SideLeft)
	if a.origo != b.origo {
		t.Errorf("origo mismatch: 20deg=%v 200deg=%v, want equal (angle>180 fold)", a.origo, b.origo)
	}
}
