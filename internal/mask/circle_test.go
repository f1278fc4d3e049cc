package mask

import "testing"

func TestBuildCircleDescriptor_ZeroRadius(t *testing.T) {
	d := buildCircleDescriptor(0)
	opa, xStart := d.row(0)
	if opa != nil || xStart != 0 {
		t.Errorf("row(0) on radius-0 descriptor = (%v, %d), want (nil, 0)", opa, xStart)
	}
}

func TestBuildCircleDescriptor_RowsMonotonicallyNarrow(t *testing.T) {
	// As y grows toward the radius, the AA band's minimum x (xStartOnY)
	// should never decrease for a convex quarter-circle.
	d := buildCircleDescriptor(12)
	prevX := -1
	for y := 0; y < 12; y++ {
		_, xStart := d.row(y)
		if xStart < prevX {
			t.Errorf("row(%d) xStart=%d, want >= previous row's %d", y, xStart, prevX)
		}
		prevX = xStart
	}
}

func TestBuildCircleDescriptor_OpacitiesInRange(t *testing.T) {
	d := buildCircleDescriptor(20)
	for y := 0; y < 20; y++ {
		opa, _ := d.row(y)
		for i, v := range opa {
			if v > 255 {
				t.Errorf("row(%d)[%d] = %d, out of byte range", y, i, v)
			}
		}
	}
}

func TestBuildCircleDescriptor_OutOfRangeRowIsEmpty(t *testing.T) {
	d := buildCircleDescriptor(5)
	if opa, xStart := d.row(-1); opa != nil || xStart != 0 {
		t.Errorf("row(-1) = (%v, %d), want (nil, 0)", opa, xStart)
	}
	if opa, _ := d.row(1000); opa != nil {
		t.Errorf("row(1000) = %v, want nil", opa)
	}
}

func TestGetCircleDescriptor_CachesByRadius(t *testing.T) {
	d1 := getCircleDescriptor(7)
	d2 := getCircleDescriptor(7)
	if d1 != d2 {
		t.Errorf("getCircleDescriptor(7) returned distinct descriptors on repeat calls, want the cached instance")
	}
}

func TestGetCircleDescriptor_EvictsLRUBeyondCapacity(t *testing.T) {
	globalCircleCache.mu.Lock()
	globalCircleCache.entries = nil
	globalCircleCache.mu.Unlock()

	first := getCircleDescriptor(1)
	for r := 2; r <= circleCacheCapacity; r++ {
		getCircleDescriptor(r)
	}
	// Cache is now full at capacity with radius 1 the least recently used.
	// One more distinct radius must evict it.
	getCircleDescriptor(circleCacheCapacity + 1)

	evicted := getCircleDescriptor(1)
	if evicted == first {
		t.Errorf("radius 1 descriptor survived past cache capacity, want eviction")
	}

	globalCircleCache.mu.Lock()
	if len(globalCircleCache.entries) > circleCacheCapacity {
		t.Errorf("cache holds %d entries, want at most %d", len(globalCircleCache.entries), circleCacheCapacity)
	}
	globalCircleCache.mu.Unlock()
}
