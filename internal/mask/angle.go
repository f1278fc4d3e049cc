package mask

import "agg_go/internal/basics"

// Angle is an angular wedge mask from startDeg to endDeg (CCW from +x,
// clockwise on screen since +y is down), anchored at vertex.
type Angle struct {
	vertex             basics.Point[int]
	startDeg, endDeg   int
	deltaDeg           int
	startLine, endLine Line
}

// NewAngle builds a wedge mask swept from startDeg to endDeg around
// vertex. Angles are clamped to [0, 359].
func NewAngle(vertex basics.Point[int], startDeg, endDeg int) *Angle {
	startDeg = clamp(startDeg, 0, 359)
	endDeg = clamp(endDeg, 0, 359)

	a := &Angle{vertex: vertex, startDeg: startDeg, endDeg: endDeg}
	if endDeg < startDeg {
		a.deltaDeg = 360 - startDeg + endDeg
	} else {
		a.deltaDeg = absInt(endDeg - startDeg)
	}

	var startSide, endSide Side
	if startDeg < 180 {
		startSide = SideLeft
	} else {
		startSide = SideRight
	}
	if endDeg < 180 {
		endSide = SideRight
	} else {
		endSide = SideLeft
	}

	a.startLine.InitAngle(vertex, startDeg, startSide)
	a.endLine.InitAngle(vertex, endDeg, endSide)

	return a
}

func (a *Angle) Kind() string { return "angle" }

func (a *Angle) Apply(buf []Opa, absX, absY, length int) Result {
	if length <= 0 {
		return ResultFullCover
	}
	relY := absY - a.vertex.Y
	relX := absX - a.vertex.X

	switch {
	case a.startDeg < 180 && a.endDeg < 180 && a.startDeg != 0 && a.endDeg != 0 && a.startDeg > a.endDeg:
		return a.applyCrossingPositiveX(buf, absX, absY, relX, relY, length)
	case a.startDeg > 180 && a.endDeg > 180 && a.startDeg > a.endDeg:
		return a.applyCrossingNegativeX(buf, absX, absY, relX, relY, length)
	default:
		return a.applySimple(buf, absX, absY, length)
	}
}

// clampStartAngleLast applies the "do not let the line end cross the
// vertex" correction from the original, shared by both crossing cases.
func (a *Angle) clampStartAngleLast(startAngleLast int32) int32 {
	s, e := a.startDeg, a.endDeg
	if s > 270 && s <= 359 && startAngleLast < 0 {
		startAngleLast = 0
	} else if s > 0 && s <= 90 && startAngleLast < 0 {
		startAngleLast = 0
	} else if s > 90 && s < 270 && startAngleLast > 0 {
		startAngleLast = 0
	}
	if e > 270 && e <= 359 && startAngleLast < 0 {
		startAngleLast = 0
	} else if e > 0 && e <= 90 && startAngleLast < 0 {
		startAngleLast = 0
	} else if e > 90 && e < 270 && startAngleLast > 0 {
		startAngleLast = 0
	}
	return startAngleLast
}

// applyCrossingPositiveX handles both angles in (0,180) with start>end:
// the wedge crosses the +x axis from below the vertex.
func (a *Angle) applyCrossingPositiveX(buf []Opa, absX, absY, relX, relY, length int) Result {
	if absY < a.vertex.Y {
		return ResultFullCover
	}

	endAngleFirst := (int32(relY) * a.endLine.xySteep) >> 10
	startAngleLast := (int32(relY+1) * a.startLine.xySteep) >> 10
	startAngleLast = a.clampStartAngleLast(startAngleLast)

	dist := (endAngleFirst - startAngleLast) >> 1

	res1 := ResultFullCover
	res2 := ResultFullCover

	tmp := int(startAngleLast+dist) - relX
	if tmp > length {
		tmp = length
	}
	if tmp > 0 {
		res1 = a.startLine.Apply(buf[0:tmp], absX, absY, tmp)
		if res1 == ResultTransparent {
			memclr(buf[0:tmp])
		}
	}

	if tmp > length {
		tmp = length
	}
	if tmp < 0 {
		tmp = 0
	}
	res2 = a.endLine.Apply(buf[tmp:length], absX+tmp, absY, length-tmp)
	if res2 == ResultTransparent {
		memclr(buf[tmp:length])
	}

	if res1 == res2 {
		return res1
	}
	return ResultChanged
}

// applyCrossingNegativeX handles both angles in (180,360) with
// start>end: the wedge crosses the -x axis from above the vertex.
func (a *Angle) applyCrossingNegativeX(buf []Opa, absX, absY, relX, relY, length int) Result {
	if absY > a.vertex.Y {
		return ResultFullCover
	}

	endAngleFirst := (int32(relY) * a.endLine.xySteep) >> 10
	startAngleLast := (int32(relY+1) * a.startLine.xySteep) >> 10
	startAngleLast = a.clampStartAngleLast(startAngleLast)

	dist := (endAngleFirst - startAngleLast) >> 1

	res1 := ResultFullCover
	res2 := ResultFullCover

	tmp := int(startAngleLast+dist) - relX
	if tmp > length {
		tmp = length
	}
	if tmp > 0 {
		res1 = a.endLine.Apply(buf[0:tmp], absX, absY, tmp)
		if res1 == ResultTransparent {
			memclr(buf[0:tmp])
		}
	}

	if tmp > length {
		tmp = length
	}
	if tmp < 0 {
		tmp = 0
	}
	res2 = a.startLine.Apply(buf[tmp:length], absX+tmp, absY, length-tmp)
	if res2 == ResultTransparent {
		memclr(buf[tmp:length])
	}

	if res1 == res2 {
		return res1
	}
	return ResultChanged
}

// applySimple evaluates both bounding lines on the whole span, with a
// pre-filter that marks a line resultUnknown when the scanline is on the
// wrong side of the vertex for it (or the angle sits exactly on the 0/180
// degree axis).
func (a *Angle) applySimple(buf []Opa, absX, absY, length int) Result {
	res1 := a.edgeResult(a.startDeg, true, absY, buf, absX, length, &a.startLine)
	res2 := a.edgeResult(a.endDeg, false, absY, buf, absX, length, &a.endLine)

	if res1 == ResultTransparent || res2 == ResultTransparent {
		return ResultTransparent
	}
	if res1 == resultUnknown && res2 == resultUnknown {
		return ResultTransparent
	}
	if res1 == ResultFullCover && res2 == ResultFullCover {
		return ResultFullCover
	}
	return ResultChanged
}

// edgeResult evaluates one bounding line of the wedge for the
// whole-span (non-crossing) case. isStart selects which of the two
// mirrored outcomes applies at the 0deg/180deg axis, matching the
// original's separate res1 (start_angle) / res2 (end_angle) branches.
func (a *Angle) edgeResult(deg int, isStart bool, absY int, buf []Opa, absX, length int, line *Line) Result {
	above := absY < a.vertex.Y
	switch {
	case deg == 180:
		if above == isStart {
			return ResultFullCover
		}
		return resultUnknown
	case deg == 0:
		if above == isStart {
			return resultUnknown
		}
		return ResultFullCover
	case (deg < 180 && above) || (deg > 180 && !above):
		return resultUnknown
	default:
		return line.Apply(buf, absX, absY, length)
	}
}
