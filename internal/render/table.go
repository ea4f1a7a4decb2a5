package render

// CellStyle is the closed set of typed style directives consumed by the
// table layout: font, alignment, fill, text color, padding and row span.
type CellStyle struct {
	Font    Font
	Align   string // "L", "C", "R"
	Fill    *RGB
	Color   *RGB
	Padding float64
	// RowSpan is the number of additional rows below this cell that it
	// covers. Covered cells are neither measured nor drawn.
	RowSpan int
}

type Cell struct {
	Text  string
	Style CellStyle
}

// Table lays out a fixed-column grid whose row heights auto-expand to
// fit wrapped cell text. Height is queryable before drawing so callers
// can anchor subsequent content below the table.
type Table struct {
	ColWidths   []float64
	LineHeight  float64
	BorderWidth float64
	BorderColor RGB
	Rows        [][]Cell
}

func (t *Table) Width() float64 {
	var w float64
	for _, cw := range t.ColWidths {
		w += cw
	}

	return w
}

// Height computes the rendered height of the table on the given canvas
// without drawing anything.
func (t *Table) Height(c *Canvas) float64 {
	heights := t.rowHeights(c)

	var total float64
	for _, h := range heights {
		total += h
	}

	return total
}

// Draw renders the table with its top-left corner at (x, y) and returns
// the drawn height, which always equals Height.
func (t *Table) Draw(c *Canvas, x, y float64) float64 {
	heights := t.rowHeights(c)
	covered := t.coverage()

	rowY := y

	for r, row := range t.Rows {
		cellX := x

		for col, cell := range row {
			if col >= len(t.ColWidths) {
				break
			}

			w := t.ColWidths[col]

			if covered[r][col] {
				cellX += w
				continue
			}

			h := heights[r]
			for span := 1; span <= cell.Style.RowSpan && r+span < len(t.Rows); span++ {
				h += heights[r+span]
			}

			t.drawCell(c, cell, cellX, rowY, w, h)
			cellX += w
		}

		rowY += heights[r]
	}

	return rowY - y
}

func (t *Table) drawCell(c *Canvas, cell Cell, x, y, w, h float64) {
	if cell.Style.Fill != nil {
		c.FillRect(x, y, w, h, *cell.Style.Fill)
	}

	if t.BorderWidth > 0 {
		c.StrokeRect(x, y, w, h, t.BorderWidth, t.BorderColor)
	}

	if cell.Text == "" {
		return
	}

	pad := cell.Style.Padding
	c.SetFont(cell.Style.Font)

	if cell.Style.Color != nil {
		c.SetTextColor(*cell.Style.Color)
	} else {
		c.SetTextColor(black)
	}

	lines := c.WrapText(cell.Text, w-2*pad)
	baseline := y + pad + t.LineHeight*0.75

	for _, line := range lines {
		switch cell.Style.Align {
		case "C":
			c.TextCentered(x+w/2, baseline, line)
		case "R":
			c.TextRight(x+w-pad, baseline, line)
		default:
			c.Text(x+pad, baseline, line)
		}

		baseline += t.LineHeight
	}
}

// rowHeights sizes every row to its tallest unspanned cell, then grows
// the last spanned row where a row-spanning cell needs more room than
// the rows it covers provide.
func (t *Table) rowHeights(c *Canvas) []float64 {
	covered := t.coverage()
	heights := make([]float64, len(t.Rows))

	for r, row := range t.Rows {
		heights[r] = t.LineHeight + 2*t.maxPadding(row)

		for col, cell := range row {
			if col >= len(t.ColWidths) || covered[r][col] || cell.Style.RowSpan > 0 {
				continue
			}

			if h := t.cellHeight(c, cell, t.ColWidths[col]); h > heights[r] {
				heights[r] = h
			}
		}
	}

	for r, row := range t.Rows {
		for col, cell := range row {
			if col >= len(t.ColWidths) || covered[r][col] || cell.Style.RowSpan == 0 {
				continue
			}

			need := t.cellHeight(c, cell, t.ColWidths[col])

			last := r + cell.Style.RowSpan
			if last > len(t.Rows)-1 {
				last = len(t.Rows) - 1
			}

			var have float64
			for i := r; i <= last; i++ {
				have += heights[i]
			}

			if need > have {
				heights[last] += need - have
			}
		}
	}

	return heights
}

func (t *Table) cellHeight(c *Canvas, cell Cell, w float64) float64 {
	c.SetFont(cell.Style.Font)
	lines := c.WrapText(cell.Text, w-2*cell.Style.Padding)

	n := len(lines)
	if n == 0 {
		n = 1
	}

	return float64(n)*t.LineHeight + 2*cell.Style.Padding
}

func (t *Table) maxPadding(row []Cell) float64 {
	var pad float64

	for _, cell := range row {
		if cell.Style.Padding > pad {
			pad = cell.Style.Padding
		}
	}

	return pad
}

// coverage marks cells hidden underneath a row-spanning cell above them.
func (t *Table) coverage() [][]bool {
	covered := make([][]bool, len(t.Rows))
	for r := range t.Rows {
		covered[r] = make([]bool, len(t.ColWidths))
	}

	for r, row := range t.Rows {
		for col, cell := range row {
			if col >= len(t.ColWidths) || cell.Style.RowSpan == 0 || covered[r][col] {
				continue
			}

			for span := 1; span <= cell.Style.RowSpan && r+span < len(t.Rows); span++ {
				covered[r+span][col] = true
			}
		}
	}

	return covered
}
