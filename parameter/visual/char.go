package visual

// PointGlyphs render a projected point by apparent weight, lightest first
var PointGlyphs = [3]rune{
	'·', // distant or small
	'•',
	'●', // near and large
}

// PointGlyphWeights are the lower weight bounds for PointGlyphs[1] and PointGlyphs[2]
// Weight is point size scaled by parameter.PointBaseSize over view depth
var PointGlyphWeights = [2]float32{0.7, 1.6}

// LineGlyphs draw rasterized segments, indexed by vmath.LineTraverser.Slope
var LineGlyphs = [4]rune{
	'─', // 0 - horizontal
	'│', // 1 - vertical
	'╱', // 2 - rising diagonal
	'╲', // 3 - falling diagonal
}

// PointGlyph selects the glyph for a projected weight
func PointGlyph(weight float32) rune {
	switch {
	case weight >= PointGlyphWeights[1]:
		return PointGlyphs[2]
	case weight >= PointGlyphWeights[0]:
		return PointGlyphs[1]
	default:
		return PointGlyphs[0]
	}
}
