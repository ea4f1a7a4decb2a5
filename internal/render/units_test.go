package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	t.Parallel()

	require.Equal(t, 72.0, Points(1, Inch))
	require.InDelta(t, 72.0, Points(25.4, Millimeter), 1e-9)
	require.Equal(t, 10.0, Points(10, Point))
	require.Equal(t, 36.0, Points(0.5, Inch))
}

func TestCardGeometry(t *testing.T) {
	t.Parallel()

	// ID-1 card in points, within a hundredth of a point.
	require.InDelta(t, 242.64, mm(CardWidthMM), 0.01)
	require.InDelta(t, 153.07, mm(CardHeightMM), 0.01)
}
