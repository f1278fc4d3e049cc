package mask

import "sync"

// aaExtra toggles the empirical midpoint correction term used by the
// original quarter-arc builder. See spec.md §9 "Open question: AA_EXTRA
// correction" — it is not derivable from an exact area integral, kept for
// fidelity with the reference implementation.
const aaExtra = true

// CircleDescriptor precomputes the coverage profile of one quadrant of an
// anti-aliased circle at a given radius, reusable across all four corners
// of a rounded rectangle.
type CircleDescriptor struct {
	opa        []Opa
	xStartOnY  []int
	opaStartOn []int // index into opa where row y's entries begin; len radius+2
	radius     int
}

// circPoint mirrors lv_circ's (x, y) Bresenham state.
type circPoint struct{ x, y int }

func circInit(radius int) (circPoint, int) {
	return circPoint{x: radius, y: 0}, 1 - radius
}

func circCont(c circPoint) bool { return c.y <= c.x }

func circNext(c *circPoint, tmp *int) {
	if *tmp <= 0 {
		*tmp += 2*c.y + 3
	} else {
		*tmp += 2*(c.y-c.x) + 5
		c.x--
	}
	c.y++
}

// buildCircleDescriptor runs the 4x-oversampled Bresenham midpoint
// traversal at radius*4, groups every four samples into one downscaled
// row, and derives per-pixel AA coverage for the first octant; the second
// octant is produced by mirroring. Ported directly from cir_calc_aa4.
func buildCircleDescriptor(radius int) *CircleDescriptor {
	d := &CircleDescriptor{radius: radius}
	if radius == 0 {
		d.opaStartOn = []int{0, 0}
		return d
	}

	cp, tmp := circInit(radius * 4)

	var cirX, cirY []int
	var cirOpa []int32

	iStart := 1
	var xInt, xFract [4]int
	xInt[0] = cp.x >> 2
	xFract[0] = 0
	yCnt := 0

	push := func(x, y int, opa int32) {
		cirX = append(cirX, x)
		cirY = append(cirY, y)
		cirOpa = append(cirOpa, opa*16)
	}

	for circCont(cp) {
		i := iStart
		for ; i < 4 && circCont(cp); i++ {
			circNext(&cp, &tmp)
			xInt[i] = cp.x >> 2
			xFract[i] = cp.x & 0x3
		}
		if i != 4 {
			break
		}

		switch {
		case xInt[0] == xInt[3]:
			opa := int32(xFract[0] + xFract[1] + xFract[2] + xFract[3])
			if aaExtra {
				opa += int32((xFract[0]-xFract[1]+1)/2 + (xFract[1]-xFract[2]+1)/2 + (xFract[2]-xFract[3]+1)/2)
			}
			push(xInt[0], yCnt, opa)
		case xInt[0] != xInt[1]:
			push(xInt[0], yCnt, int32(xFract[0]))
			opa := int32(1*4 + xFract[1] + xFract[2] + xFract[3])
			if aaExtra {
				opa += int32((xFract[1]-xFract[2]+1)/2 + (xFract[2]-xFract[3]+1)/2)
			}
			push(xInt[0]-1, yCnt, opa)
		case xInt[0] != xInt[2]:
			opa := int32(xFract[0] + xFract[1])
			if aaExtra {
				opa += int32((xFract[0] - xFract[1] + 1) / 2)
			}
			push(xInt[0], yCnt, opa)
			opa = int32(2*4 + xFract[2] + xFract[3])
			if aaExtra {
				opa += int32((xFract[2] - xFract[3] + 1) / 2)
			}
			push(xInt[0]-1, yCnt, opa)
		default:
			opa := int32(xFract[0] + xFract[1] + xFract[2])
			if aaExtra {
				opa += int32((xFract[0]-xFract[1]+1)/2 + (xFract[1]-xFract[2]+1)/2)
			}
			push(xInt[0], yCnt, opa)
			push(xInt[0]-1, yCnt, int32(3*4+xFract[3]))
		}

		yCnt++
		iStart = 0
	}

	size := len(cirX)
	mid := radius * 723
	midInt := mid >> 10
	if size == 0 || cirX[size-1] != midInt || cirY[size-1] != midInt {
		t := mid - (midInt << 10)
		var v int32
		if t <= 512 {
			v = int32(t * t * 2)
			v >>= 10 + 6
		} else {
			t = 1024 - t
			v = int32(t * t * 2)
			v >>= 10 + 6
			v = 15 - v
		}
		cirX = append(cirX, midInt)
		cirY = append(cirY, midInt)
		cirOpa = append(cirOpa, v*16)
		size++
	}

	// Mirror to build the second octant.
	for i := size - 2; i >= 0; i-- {
		cirX = append(cirX, cirY[i])
		cirY = append(cirY, cirX[i])
		cirOpa = append(cirOpa, cirOpa[i])
	}
	size = len(cirX)

	d.opa = make([]Opa, size)
	for i, v := range cirOpa {
		if v > 255 {
			v = 255
		}
		if v < 0 {
			v = 0
		}
		d.opa[i] = Opa(v)
	}

	d.opaStartOn = make([]int, radius+2)
	d.xStartOnY = make([]int, radius+2)
	y := 0
	i := 0
	for i < size && y < len(d.opaStartOn) {
		d.opaStartOn[y] = i
		xMin := cirX[i]
		for i < size && cirY[i] == y {
			if cirX[i] < xMin {
				xMin = cirX[i]
			}
			i++
		}
		d.xStartOnY[y] = xMin
		y++
	}
	for ; y < len(d.opaStartOn); y++ {
		d.opaStartOn[y] = size
		d.xStartOnY[y] = 0
	}

	return d
}

// row returns the AA opacity run for descriptor row y: the slice of
// opacities plus the minimum x (x_start) of the AA band on that row.
func (d *CircleDescriptor) row(y int) (opa []Opa, xStart int) {
	if d.radius == 0 || y < 0 || y+1 >= len(d.opaStartOn) {
		return nil, 0
	}
	start := d.opaStartOn[y]
	end := d.opaStartOn[y+1]
	return d.opa[start:end], d.xStartOnY[y]
}

const circleCacheCapacity = 8

type circleCache struct {
	mu      sync.Mutex
	entries []*CircleDescriptor // ordered most-recently-used last
}

var globalCircleCache circleCache

// getCircleDescriptor returns the (possibly cached) descriptor for radius,
// building and inserting it if necessary. A small bounded LRU replaces
// the original's single global slot, satisfying spec.md §5/§9's call for
// a port to use "a per-thread or bounded LRU cache keyed on radius"; the
// mutex only protects the cache's bookkeeping from concurrent callers
// that each build unrelated masks, not from concurrent use of a single
// mask (still single-threaded per spec.md's non-goals).
func getCircleDescriptor(radius int) *CircleDescriptor {
	globalCircleCache.mu.Lock()
	defer globalCircleCache.mu.Unlock()

	for i, d := range globalCircleCache.entries {
		if d.radius == radius {
			// move to the back (most recently used)
			globalCircleCache.entries = append(globalCircleCache.entries[:i], globalCircleCache.entries[i+1:]...)
			globalCircleCache.entries = append(globalCircleCache.entries, d)
			return d
		}
	}

	d := buildCircleDescriptor(radius)
	globalCircleCache.entries = append(globalCircleCache.entries, d)
	if len(globalCircleCache.entries) > circleCacheCapacity {
		globalCircleCache.entries = globalCircleCache.entries[1:]
	}
	return d
}
