package render

// Unit is a physical measurement unit expressed as its size in the
// drawing surface's native unit (PostScript points).
type Unit float64

const (
	Point      Unit = 1
	Inch       Unit = 72
	Millimeter Unit = 72.0 / 25.4
)

// Points converts a magnitude in the given unit to points.
func Points(v float64, u Unit) float64 {
	return v * float64(u)
}

// Physical card geometry (ISO/IEC 7810 ID-1). Every layout offset in the
// card renderers derives from these two constants; nothing else in the
// codebase restates the card size.
const (
	CardWidthMM  float64 = 85.6
	CardHeightMM float64 = 54
)

// The card sheet stacks front and back faces on one printable page with
// a margin above, between and below the faces.
const cardSheetMarginMM float64 = 5

func mm(v float64) float64 {
	return Points(v, Millimeter)
}

func in(v float64) float64 {
	return Points(v, Inch)
}
