package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_HeightMatchesDraw(t *testing.T) {
	t.Parallel()

	c := newA4(&memAssets{})

	style := CellStyle{Font: Font{Size: 9}, Padding: 4}

	table := Table{
		ColWidths:   []float64{in(2), in(2)},
		LineHeight:  11,
		BorderWidth: 1,
		BorderColor: black,
		Rows: [][]Cell{
			{{Text: "a", Style: style}, {Text: "b", Style: style}},
			{{Text: "c", Style: style}, {Text: "d", Style: style}},
		},
	}

	want := table.Height(c)
	got := table.Draw(c, in(1), in(1))

	require.Equal(t, want, got)
	require.Greater(t, got, 0.0)
}

func TestTable_WrappedTextGrowsRow(t *testing.T) {
	t.Parallel()

	c := newA4(&memAssets{})

	style := CellStyle{Font: Font{Size: 9}, Padding: 4}

	short := Table{
		ColWidths:  []float64{in(1.5)},
		LineHeight: 11,
		Rows:       [][]Cell{{{Text: "short", Style: style}}},
	}

	long := Table{
		ColWidths:  []float64{in(1.5)},
		LineHeight: 11,
		Rows: [][]Cell{{{
			Text:  strings.Repeat("a long run of words that must wrap ", 4),
			Style: style,
		}}},
	}

	require.Greater(t, long.Height(c), short.Height(c))
}

func TestTable_RowSpanCoversCellsBelow(t *testing.T) {
	t.Parallel()

	c := newA4(&memAssets{})

	body := CellStyle{Font: Font{Size: 9}, Padding: 4}
	span := CellStyle{Font: Font{Size: 9}, Padding: 4, RowSpan: 1}

	table := Table{
		ColWidths:  []float64{in(2), in(2)},
		LineHeight: 11,
		Rows: [][]Cell{
			{{Text: "spans down", Style: span}, {Text: "right top", Style: body}},
			{{Text: "hidden", Style: body}, {Text: "right bottom", Style: body}},
		},
	}

	covered := table.coverage()
	require.True(t, covered[1][0])
	require.False(t, covered[0][0])
	require.False(t, covered[0][1])
	require.False(t, covered[1][1])

	// Spanned height still equals the sum of row heights.
	require.Equal(t, table.Height(c), table.Draw(c, in(1), in(1)))
}

func TestTable_SpanningCellGrowsLastCoveredRow(t *testing.T) {
	t.Parallel()

	c := newA4(&memAssets{})

	body := CellStyle{Font: Font{Size: 9}, Padding: 4}
	span := CellStyle{Font: Font{Size: 9}, Padding: 4, RowSpan: 1}

	plain := Table{
		ColWidths:  []float64{in(1.5), in(2)},
		LineHeight: 11,
		Rows: [][]Cell{
			{{Text: "x", Style: body}, {Text: "a", Style: body}},
			{{Text: "", Style: body}, {Text: "b", Style: body}},
		},
	}

	tall := Table{
		ColWidths:  []float64{in(1.5), in(2)},
		LineHeight: 11,
		Rows: [][]Cell{
			{{Text: strings.Repeat("wrap me over many lines ", 8), Style: span}, {Text: "a", Style: body}},
			{{Text: "", Style: body}, {Text: "b", Style: body}},
		},
	}

	require.Greater(t, tall.Height(c), plain.Height(c))
}

func TestTable_Width(t *testing.T) {
	t.Parallel()

	table := Table{ColWidths: []float64{in(1), in(2), in(0.5)}}
	require.Equal(t, in(3.5), table.Width())
}
