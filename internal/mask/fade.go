package mask

import "agg_go/internal/basics"

// Fade is a vertical linear opacity ramp over a bounding rectangle: solid
// opaTop above yTop, solid opaBottom below yBottom, interpolated between.
type Fade struct {
	rect               basics.Rect[int]
	opaTop, opaBottom  Opa
	yTop, yBottom      int
}

// NewFade builds a fade mask over rect.
func NewFade(rect basics.Rect[int], opaTop Opa, yTop int, opaBottom Opa, yBottom int) *Fade {
	return &Fade{rect: rect, opaTop: opaTop, yTop: yTop, opaBottom: opaBottom, yBottom: yBottom}
}

func (f *Fade) Kind() string { return "fade" }

func (f *Fade) Apply(buf []Opa, absX, absY, length int) Result {
	if length <= 0 {
		return ResultFullCover
	}
	if absY < f.rect.Y1 || absY > f.rect.Y2 {
		return ResultFullCover
	}
	if absX+length < f.rect.X1 || absX > f.rect.X2 {
		return ResultFullCover
	}

	if absX+length > f.rect.X2 {
		length -= absX + length - f.rect.X2 - 1
	}

	off := 0
	if absX < f.rect.X1 {
		off = f.rect.X1 - absX
		length -= off
	}
	buf = buf[off : off+length]

	switch {
	case absY <= f.yTop:
		for i := range buf {
			buf[i] = MaskMix(buf[i], f.opaTop)
		}
	case absY >= f.yBottom:
		for i := range buf {
			buf[i] = MaskMix(buf[i], f.opaBottom)
		}
	default:
		opaDiff := int32(f.opaBottom) - int32(f.opaTop)
		yDiff := int32(f.yBottom - f.yTop + 1)
		opaAct := Opa(int32(f.opaTop) + (int32(absY-f.yTop)*opaDiff)/yDiff)
		for i := range buf {
			buf[i] = MaskMix(buf[i], opaAct)
		}
	}

	return ResultChanged
}
