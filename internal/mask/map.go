package mask

import "agg_go/internal/basics"

// Map multiplies in an externally supplied 8-bit opacity raster over a
// bounding rectangle. data is row-major, width = rect width, exactly
// width*height bytes, and is borrowed: Map never copies or mutates it.
type Map struct {
	rect basics.Rect[int]
	data []Opa
}

// NewMap builds a map mask over rect using the given opacity raster.
func NewMap(rect basics.Rect[int], data []Opa) *Map {
	return &Map{rect: rect, data: data}
}

func (m *Map) Kind() string { return "map" }

func (m *Map) Apply(buf []Opa, absX, absY, length int) Result {
	if length <= 0 {
		return ResultFullCover
	}
	if absY < m.rect.Y1 || absY > m.rect.Y2 {
		return ResultFullCover
	}
	if absX+length < m.rect.X1 || absX > m.rect.X2 {
		return ResultFullCover
	}

	width := m.rect.X2 - m.rect.X1 + 1
	row := m.data[(absY-m.rect.Y1)*width:]

	if absX+length > m.rect.X2 {
		length -= absX + length - m.rect.X2 - 1
	}

	off := 0
	if absX < m.rect.X1 {
		off = m.rect.X1 - absX
		length -= off
	} else {
		row = row[absX-m.rect.X1:]
	}
	buf = buf[off : off+length]

	for i := 0; i < length; i++ {
		buf[i] = MaskMix(buf[i], row[i])
	}

	return ResultChanged
}
