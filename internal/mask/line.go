package mask

import "agg_go/internal/basics"

// Side selects which half-plane of an oriented line a Line mask keeps.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// Line is an anti-aliased half-plane mask bounded by the oriented line
// p1->p2 (after normalization p1.Y <= p2.Y), keeping the side named by
// Side.
type Line struct {
	p1, p2 basics.Point[int]
	side   Side

	origo basics.Point[int]
	flat  bool // |dx| > |dy|

	yxSteep int32 // dy/dx in 22.10 fixed point
	xySteep int32 // dx/dy in 22.10 fixed point
	steep   int32 // the dominant one of the two above
	spx     int32 // subpixel step, steep/4
	inv     bool  // side-inversion flag
}

// NewLine builds a half-plane mask through p1 and p2, keeping the side
// named by side. Endpoints are normalized so p1.Y <= p2.Y; a horizontal
// line with side == SideBottom is nudged up by one pixel first so the
// half-plane excludes the line itself (see DESIGN.md "BOTTOM-side
// horizontal nudge").
func NewLine(p1, p2 basics.Point[int], side Side) *Line {
	l := &Line{}
	l.initPoints(p1, p2, side)
	return l
}

func (l *Line) Kind() string { return "line" }

func (l *Line) initPoints(p1, p2 basics.Point[int], side Side) {
	*l = Line{}

	if p1.Y == p2.Y && side == SideBottom {
		p1.Y--
		p2.Y--
	}

	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}

	l.p1, l.p2, l.side = p1, p2, side
	l.origo = p1
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	l.flat = absInt(dx) > absInt(dy)

	if l.flat {
		if dx != 0 {
			m := int64(1<<20) / int64(dx)
			l.yxSteep = int32((m * int64(dy)) >> 10)
		}
		if dy != 0 {
			m := int64(1<<20) / int64(dy)
			l.xySteep = int32((m * int64(dx)) >> 10)
		}
		l.steep = l.yxSteep
	} else {
		if dy != 0 {
			m := int64(1<<20) / int64(dy)
			l.xySteep = int32((m * int64(dx)) >> 10)
		}
		if dx != 0 {
			m := int64(1<<20) / int64(dx)
			l.yxSteep = int32((m * int64(dy)) >> 10)
		}
		l.steep = l.xySteep
	}

	switch side {
	case SideLeft:
		l.inv = false
	case SideRight:
		l.inv = true
	case SideTop:
		l.inv = l.steep > 0
	case SideBottom:
		l.inv = l.steep <= 0
	}

	l.spx = l.steep >> 2
	if l.steep < 0 {
		l.spx = -l.spx
	}
}

// InitAngle re-initializes l in place as the line through p at the given
// angle (0deg = +x axis, 90deg = +y axis / screen-down), keeping side.
// angle > 180 is folded to angle-180 first so the chosen origin matches
// what lv_draw_mask_line_points_init would pick after its own point swap
// (a line at angle or angle+180 is the same line, just with p1/p2
// swapped; folding keeps the origin where the caller expects it).
func (l *Line) InitAngle(p basics.Point[int], angleDeg int, side Side) {
	if angleDeg > 180 {
		angleDeg -= 180
	}
	p2x := int(trigoSin(angleDeg+90)>>5) + p.X
	p2y := int(trigoSin(angleDeg)>>5) + p.Y
	l.initPoints(p, basics.Point[int]{X: p2x, Y: p2y}, side)
}

// Apply evaluates the half-plane mask over [absX, absX+length).
func (l *Line) Apply(buf []Opa, absX, absY, length int) Result {
	if length <= 0 {
		return ResultFullCover
	}
	relY := absY - l.origo.Y
	relX := absX - l.origo.X

	if l.steep == 0 {
		return l.applyAxisAligned(buf, relX, relY, length)
	}

	if l.flat {
		return l.applyFlat(buf, relX, relY, length)
	}
	return l.applySteep(buf, relX, relY, length)
}

func (l *Line) applyAxisAligned(buf []Opa, relX, relY, length int) Result {
	if l.flat {
		// Horizontal line.
		switch l.side {
		case SideLeft, SideRight:
			return ResultFullCover
		case SideTop:
			if relY+1 < 0 {
				return ResultFullCover
			}
			return ResultTransparent
		case SideBottom:
			if relY > 0 {
				return ResultFullCover
			}
			return ResultTransparent
		}
		return ResultFullCover
	}

	// Vertical line.
	switch l.side {
	case SideTop, SideBottom:
		return ResultFullCover
	case SideRight:
		if relX > 0 {
			return ResultFullCover
		}
		k := -relX
		if k < 0 {
			return ResultTransparent
		}
		if k >= length {
			return ResultTransparent
		}
		memclr(buf[0:k])
		return ResultChanged
	case SideLeft:
		if relX+length < 0 {
			return ResultFullCover
		}
		k := -relX
		if k < 0 {
			return ResultTransparent
		}
		memclr(buf[k:length])
		return ResultChanged
	}
	return ResultFullCover
}

func (l *Line) applyFlat(buf []Opa, relX, relY, length int) Result {
	yAtX := (l.yxSteep * int32(relX)) >> 10
	if l.yxSteep > 0 {
		if int(yAtX) > relY {
			if l.inv {
				return ResultFullCover
			}
			return ResultTransparent
		}
	} else {
		if int(yAtX) < relY {
			if l.inv {
				return ResultFullCover
			}
			return ResultTransparent
		}
	}

	yAtX = (l.yxSteep * int32(relX+length)) >> 10
	if l.yxSteep > 0 {
		if int(yAtX) < relY {
			if l.inv {
				return ResultTransparent
			}
			return ResultFullCover
		}
	} else {
		if int(yAtX) > relY {
			if l.inv {
				return ResultTransparent
			}
			return ResultFullCover
		}
	}

	var xe int32
	if l.yxSteep > 0 {
		xe = (int32(relY) * 256 * l.xySteep) >> 10
	} else {
		xe = (int32(relY+1) * 256 * l.xySteep) >> 10
	}

	xei := int(xe >> 8)
	xef := xe & 0xFF

	var pxH int32
	if xef == 0 {
		pxH = 255
	} else {
		pxH = 255 - (((255 - xef) * l.spx) >> 8)
	}
	k := xei - relX
	var m int32

	if xef != 0 {
		if k >= 0 && k < length {
			m = 255 - (((255 - xef) * (255 - pxH)) >> 9)
			if l.inv {
				m = 255 - m
			}
			buf[k] = MaskMix(buf[k], Opa(m))
		}
		k++
	}

	for pxH > l.spx {
		if k >= 0 && k < length {
			m = pxH - (l.spx >> 1)
			if l.inv {
				m = 255 - m
			}
			buf[k] = MaskMix(buf[k], Opa(m))
		}
		pxH -= l.spx
		k++
		if k >= length {
			break
		}
	}

	if k < length && k >= 0 {
		xInters := (pxH * l.xySteep) >> 10
		m = (xInters * pxH) >> 9
		if l.yxSteep < 0 {
			m = 255 - m
		}
		if l.inv {
			m = 255 - m
		}
		buf[k] = MaskMix(buf[k], Opa(m))
	}

	if l.inv {
		k = xei - relX
		if k > length {
			return ResultTransparent
		}
		if k >= 0 {
			memclr(buf[0:k])
		}
	} else {
		k++
		if k < 0 {
			return ResultTransparent
		}
		if k <= length {
			memclr(buf[k:length])
		}
	}

	return ResultChanged
}

func (l *Line) applySteep(buf []Opa, relX, relY, length int) Result {
	xAtY := (l.xySteep * int32(relY)) >> 10
	if l.xySteep > 0 {
		xAtY++
	}
	if int(xAtY) < relX {
		if l.inv {
			return ResultFullCover
		}
		return ResultTransparent
	}

	xAtY = (l.xySteep * int32(relY)) >> 10
	if int(xAtY) > relX+length {
		if l.inv {
			return ResultTransparent
		}
		return ResultFullCover
	}

	xs := (int32(relY) * 256 * l.xySteep) >> 10
	xsi := int(xs >> 8)
	xsf := xs & 0xFF

	xe := (int32(relY+1) * 256 * l.xySteep) >> 10
	xei := int(xe >> 8)
	xef := xe & 0xFF

	var m int32
	k := xsi - relX

	if xsi != xei && (l.xySteep < 0 && xsf == 0) {
		xsf = 0xFF
		xsi = xei
		k--
	}

	if xsi == xei {
		if k >= 0 && k < length {
			m = (xsf + xef) >> 1
			if l.inv {
				m = 255 - m
			}
			buf[k] = MaskMix(buf[k], Opa(m))
		}
		k++

		if l.inv {
			k = xsi - relX
			if k >= length {
				return ResultTransparent
			}
			if k >= 0 {
				memclr(buf[0:k])
			}
		} else {
			if k > length {
				k = length
			}
			if k == 0 {
				return ResultTransparent
			}
			if k > 0 {
				memclr(buf[k:length])
			}
		}
		return ResultChanged
	}

	if l.xySteep < 0 {
		yInters := (xsf * (-l.yxSteep)) >> 10
		if k >= 0 && k < length {
			m = (yInters * xsf) >> 9
			if l.inv {
				m = 255 - m
			}
			buf[k] = MaskMix(buf[k], Opa(m))
		}
		k--

		xInters := ((255 - yInters) * (-l.xySteep)) >> 10
		if k >= 0 && k < length {
			m = 255 - (((255 - yInters) * xInters) >> 9)
			if l.inv {
				m = 255 - m
			}
			buf[k] = MaskMix(buf[k], Opa(m))
		}
		k += 2

		if l.inv {
			k = xsi - relX - 1
			if k > length {
				k = length
			} else if k > 0 {
				memclr(buf[0:k])
			}
		} else {
			if k > length {
				return ResultFullCover
			}
			if k >= 0 {
				memclr(buf[k:length])
			}
		}
	} else {
		yInters := ((255 - xsf) * l.yxSteep) >> 10
		if k >= 0 && k < length {
			m = 255 - ((yInters * (255 - xsf)) >> 9)
			if l.inv {
				m = 255 - m
			}
			buf[k] = MaskMix(buf[k], Opa(m))
		}
		k++

		xInters := ((255 - yInters) * l.xySteep) >> 10
		if k >= 0 && k < length {
			m = ((255 - yInters) * xInters) >> 9
			if l.inv {
				m = 255 - m
			}
			buf[k] = MaskMix(buf[k], Opa(m))
		}
		k++

		if l.inv {
			k = xsi - relX
			if k > length {
				return ResultTransparent
			}
			if k >= 0 {
				memclr(buf[0:k])
			}
		} else {
			if k > length {
				k = length
			}
			if k == 0 {
				return ResultTransparent
			}
			if k > 0 {
				memclr(buf[k:length])
			}
		}
	}

	return ResultChanged
}
