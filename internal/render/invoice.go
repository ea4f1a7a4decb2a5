package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/highlandco/docgen/internal/entity"
	"github.com/shopspring/decimal"
)

const dateLayout = "01/02/2006 15:04"

// DrawInvoice renders a full invoice page in five bands: header,
// bill-to/info grid, line-item table, comments block and footer. Each
// band below the info grid is anchored to the measured height of the
// band above it, so variable-length content pushes later bands down.
func DrawInvoice(ctx context.Context, c *Canvas, inv entity.Invoice, co entity.Company, currency string) {
	_, pageH := c.PageSize()

	DrawInvoiceBands(ctx, c, inv, co, currency)
	DrawInvoiceFooter(c, co, pageH-in(1))
}

// DrawInvoiceBands draws everything above the contact footer. The footer
// is positioned separately so a composite page can move it clear of
// content placed near the bottom edge.
func DrawInvoiceBands(ctx context.Context, c *Canvas, inv entity.Invoice, co entity.Company, currency string) {
	pageW, _ := c.PageSize()

	left := in(1)
	right := pageW - in(1)

	drawInvoiceHeader(ctx, c, co, left, right)
	drawInvoiceInfoGrid(c, inv, co, left)

	itemsTop := in(4.2)
	items := lineItemsTable(inv, currency)
	itemsH := items.Draw(c, left, itemsTop)

	commentsTop := itemsTop + itemsH + in(0.2)
	comments := commentsTable(inv, currency)
	commentsH := comments.Draw(c, left, commentsTop)

	drawInvoiceTotal(c, inv, currency, commentsTop+commentsH+in(0.5))
}

// DrawInvoiceFooter draws the two contact lines with the first baseline
// at y.
func DrawInvoiceFooter(c *Canvas, co entity.Company, y float64) {
	pageW, _ := c.PageSize()

	c.SetFont(Font{Size: 9})
	c.SetTextColor(black)
	c.TextCentered(pageW/2, y, "If you have any question about this invoice, please contact")
	c.TextCentered(pageW/2, y+in(0.2), fmt.Sprintf("%s | %s", co.Phone, co.Name))
}

func drawInvoiceHeader(ctx context.Context, c *Canvas, co entity.Company, left, right float64) {
	c.Image(ctx, co.Logo, left, in(0.45), in(0.8), in(0.8))

	c.SetFont(Font{Style: "B", Size: 12})
	c.SetTextColor(black)
	c.Text(left, in(1.5), strings.ToUpper(orNA(co.Name)))

	c.SetFont(Font{Size: 9})
	c.Text(left, in(1.7), fmt.Sprintf("P.O.BOX %s", orNA(co.Address)))
	c.Text(left, in(1.85), orNA(co.Phone))

	c.SetTextColor(linkBlue)
	c.Text(left, in(2.0), orNA(co.Email))
	c.SetTextColor(black)

	c.SetFont(Font{Style: "B", Size: 28})
	c.SetTextColor(accentRed)
	c.TextRight(right, in(1.0), "INVOICE")

	c.SetTextColor(black)
	c.SetFont(Font{Size: 9})
	c.TextRight(right, in(1.25), "Please Remit to: "+orNA(co.BankName))
	c.TextRight(right, in(1.40), "A/C NO: "+orNA(co.AccountNumber))
	c.TextRight(right, in(1.55), "A/C NAME: "+orNA(co.AccountName))

	c.Line(left, in(2.2), right, in(2.2), 2, gold)
}

func drawInvoiceInfoGrid(c *Canvas, inv entity.Invoice, co entity.Company, left float64) {
	c.FillRect(left, in(2.6), in(1), in(0.2), slate)
	c.SetFont(Font{Style: "B", Size: 10})
	c.SetTextColor(white)
	c.Text(left+in(0.1), in(2.75), "BILL TO")

	c.SetTextColor(black)
	c.SetFont(Font{Style: "B", Size: 9})
	c.Text(left, in(3.1), strings.ToUpper(inv.ClientName))

	c.SetFont(Font{Size: 9})
	c.Text(left, in(3.25), inv.ClientAddress)
	c.Text(left, in(3.4), inv.ClientPhone)

	dueDate := "N/A"
	if inv.DueDate != nil {
		dueDate = inv.DueDate.Format(dateLayout)
	}

	keyStyle := CellStyle{Font: Font{Style: "B", Size: 9}, Fill: &lightGray, Padding: 4}
	valStyle := CellStyle{Font: Font{Size: 9}, Padding: 4}

	info := Table{
		ColWidths:   []float64{in(1), in(2)},
		LineHeight:  11,
		BorderWidth: 1,
		BorderColor: black,
		Rows: [][]Cell{
			{{Text: "DATE", Style: keyStyle}, {Text: inv.IssueDate.Format(dateLayout), Style: valStyle}},
			{{Text: "DUE DATE", Style: keyStyle}, {Text: dueDate, Style: valStyle}},
			{{Text: "TIN NO.", Style: keyStyle}, {Text: orNA(co.TINNumber), Style: valStyle}},
			{{Text: "INVOICE NO.", Style: keyStyle}, {Text: inv.InvoiceNumber, Style: valStyle}},
		},
	}

	info.Draw(c, in(4.5), in(2.6))
}

func lineItemsTable(inv entity.Invoice, currency string) Table {
	headStyle := CellStyle{Font: Font{Style: "B", Size: 9}, Fill: &slate, Color: &white, Padding: 8}
	descStyle := CellStyle{Font: Font{Style: "B", Size: 9}, Padding: 4}
	midStyle := CellStyle{Font: Font{Style: "B", Size: 9}, Align: "C", Padding: 4}
	amtStyle := CellStyle{Font: Font{Style: "B", Size: 9}, Align: "R", Padding: 4}

	rows := [][]Cell{{
		{Text: "DESCRIPTION", Style: headStyle},
		{Text: "QUANTITY(SQM)", Style: headStyle},
		{Text: "PRICE/UNIT", Style: headStyle},
		{Text: "AMOUNT", Style: headStyle},
	}}

	for _, item := range inv.Items {
		rows = append(rows, []Cell{
			{Text: item.Description, Style: descStyle},
			{Text: intComma(item.Quantity), Style: midStyle},
			{Text: money(item.UnitPrice, currency), Style: midStyle},
			{Text: money(item.Total(), currency), Style: amtStyle},
		})
	}

	rows = append(rows, []Cell{
		{Text: "TOTAL", Style: descStyle},
		{Text: intComma(inv.TotalQuantity()), Style: midStyle},
		{Style: midStyle},
		{Text: money(inv.Total(), currency), Style: amtStyle},
	})

	return Table{
		ColWidths:   []float64{in(3.5), in(1), in(1), in(1.5)},
		LineHeight:  11,
		BorderWidth: 1,
		BorderColor: black,
		Rows:        rows,
	}
}

func commentsTable(inv entity.Invoice, currency string) Table {
	labelStyle := CellStyle{Font: Font{Style: "B", Size: 9}, Fill: &slate, Color: &white, Padding: 4}
	bodyStyle := CellStyle{Font: Font{Size: 9}, Padding: 4}

	return Table{
		ColWidths:   []float64{in(5), in(2.5)},
		LineHeight:  11,
		BorderWidth: 1,
		BorderColor: black,
		Rows: [][]Cell{
			{
				{Text: "OTHER COMMENTS", Style: labelStyle},
				{Style: bodyStyle},
			},
			{
				// Comments merge down over the terms row.
				{Text: inv.OtherComments, Style: CellStyle{Font: Font{Size: 9}, Padding: 4, RowSpan: 1}},
				{Text: money(inv.Total(), currency), Style: CellStyle{Font: Font{Size: 9}, Align: "R", Padding: 4}},
			},
			{
				{},
				{Text: "Terms of payment: " + inv.TermsOfPayment, Style: bodyStyle},
			},
		},
	}
}

func drawInvoiceTotal(c *Canvas, inv entity.Invoice, currency string, y float64) {
	c.SetFont(Font{Style: "B", Size: 11})
	c.SetTextColor(black)
	c.TextRight(in(6.5), y, "TOTAL AMOUNT")

	total := money(inv.Total(), currency)
	c.TextRight(in(7.5), y, total)

	// Hand-drawn double underline sized to the amount string.
	w := c.StringWidth(total)
	c.Line(in(7.5)-w-5, y+2, in(7.5), y+2, 1, black)
	c.Line(in(7.5)-w-5, y+4, in(7.5), y+4, 1, black)
}

// Monetary and quantity figures render as integers with thousands
// separators; stored values keep full decimal precision.
func intComma(d decimal.Decimal) string {
	return humanize.Comma(d.IntPart())
}

func money(d decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", currency, intComma(d))
}
