// Package scanline provides anti-aliased solid color renderer implementation.
package scanline

import (
	"agg_go/internal/basics"
	"agg_go/internal/mask"
)

// MaskedBaseRenderer decorates a BaseRendererInterface, folding a mask.Stack's
// per-scanline opacity into every span before delegating to the wrapped
// renderer. It implements BaseRendererInterface itself, so it drops into the
// same RendererScanlineAASolid[BR] slot as any other base renderer.
type MaskedBaseRenderer[BR BaseRendererInterface] struct {
	ren   BR
	masks *mask.Stack
	scrap []mask.Opa // reused opacity scratch buffer, grown on demand
}

// NewMaskedBaseRenderer wraps ren so every blend call is first filtered
// through masks.
func NewMaskedBaseRenderer[BR BaseRendererInterface](ren BR, masks *mask.Stack) *MaskedBaseRenderer[BR] {
	return &MaskedBaseRenderer[BR]{ren: ren, masks: masks}
}

func (m *MaskedBaseRenderer[BR]) opaBuf(length int) []mask.Opa {
	if cap(m.scrap) < length {
		m.scrap = make([]mask.Opa, length)
	}
	buf := m.scrap[:length]
	for i := range buf {
		buf[i] = mask.OpaOpaque
	}
	return buf
}

// foldCover combines a single coverage byte with the mask opacity at buf[i].
func foldCover(cover basics.Int8u, opa mask.Opa) basics.Int8u {
	return basics.Int8u((uint32(cover)*uint32(opa)*0x101 + 0x8000) >> 16)
}

// BlendSolidHspan blends a horizontal span with solid color, after
// multiplying the mask stack's opacity into covers.
func (m *MaskedBaseRenderer[BR]) BlendSolidHspan(x, y, length int, color interface{}, covers []basics.Int8u) {
	buf := m.opaBuf(length)
	switch m.masks.Apply(buf, x, y, length) {
	case mask.ResultTransparent:
		return
	case mask.ResultFullCover:
		m.ren.BlendSolidHspan(x, y, length, color, covers)
	default:
		merged := make([]basics.Int8u, length)
		for i := 0; i < length; i++ {
			c := basics.Int8u(255)
			if covers != nil {
				c = covers[i]
			}
			merged[i] = foldCover(c, buf[i])
		}
		m.ren.BlendSolidHspan(x, y, length, color, merged)
	}
}

// BlendHline blends a solid horizontal line. Once masked, a uniform cover
// generally becomes per-pixel, so a non-trivial mask downgrades the call
// into BlendSolidHspan.
func (m *MaskedBaseRenderer[BR]) BlendHline(x, y, x2 int, color interface{}, cover basics.Int8u) {
	length := x2 - x + 1
	if length <= 0 {
		return
	}
	buf := m.opaBuf(length)
	switch m.masks.Apply(buf, x, y, length) {
	case mask.ResultTransparent:
		return
	case mask.ResultFullCover:
		m.ren.BlendHline(x, y, x2, color, cover)
	default:
		covers := make([]basics.Int8u, length)
		for i := 0; i < length; i++ {
			covers[i] = foldCover(cover, buf[i])
		}
		m.ren.BlendSolidHspan(x, y, length, color, covers)
	}
}

// BlendColorHspan blends a span of individually-colored pixels, folding the
// mask opacity into the per-pixel (or scalar, broadcast) coverage.
func (m *MaskedBaseRenderer[BR]) BlendColorHspan(x, y, length int, colors []interface{}, covers []basics.Int8u, cover basics.Int8u) {
	buf := m.opaBuf(length)
	switch m.masks.Apply(buf, x, y, length) {
	case mask.ResultTransparent:
		return
	case mask.ResultFullCover:
		m.ren.BlendColorHspan(x, y, length, colors, covers, cover)
	default:
		merged := make([]basics.Int8u, length)
		for i := 0; i < length; i++ {
			c := cover
			if covers != nil {
				c = covers[i]
			}
			merged[i] = foldCover(c, buf[i])
		}
		m.ren.BlendColorHspan(x, y, length, colors, merged, 255)
	}
}

// NewRendererScanlineAAMaskedSolid builds a solid-color scanline renderer
// whose base renderer is transparently filtered through masks.
func NewRendererScanlineAAMaskedSolid[BR BaseRendererInterface](ren BR, masks *mask.Stack) *RendererScanlineAASolid[*MaskedBaseRenderer[BR]] {
	return NewRendererScanlineAASolidWithRenderer[*MaskedBaseRenderer[BR]](NewMaskedBaseRenderer(ren, masks))
}
