package render

import (
	"context"

	"github.com/highlandco/docgen/internal/entity"
)

// Document palette.
var (
	accentRed = RGB{192, 57, 43}
	gold      = RGB{212, 175, 55}
	darkBlue  = RGB{26, 44, 66}
	slate     = RGB{44, 62, 80}
	linkBlue  = RGB{0, 0, 255}
	lightGray = RGB{242, 242, 242}
)

// DrawCardFront draws the front face of the ID card with its top-left
// corner at (x, y). Positions are fixed fractional offsets of the card
// geometry, not flow layout.
func DrawCardFront(ctx context.Context, c *Canvas, emp entity.Employee, co entity.Company, x, y float64) {
	w := mm(CardWidthMM)
	h := mm(CardHeightMM)
	stripe := mm(CardWidthMM * 0.35)

	// Two-tone background split at 35% width.
	c.FillRect(x, y, stripe, h, accentRed)
	c.FillRect(x+stripe, y, w-stripe, h, white)

	logo := co.LogoThumb
	if logo == "" {
		logo = co.Logo
	}

	c.Image(ctx, logo, x+mm(5), y+h-mm(55), mm(20), mm(20))

	c.SetFont(Font{Style: "B", Size: 8})
	c.SetTextColor(white)
	c.TextRotated(x+mm(15), y+h-mm(10), 90, "ID: "+emp.EmployeeID)

	c.SetFont(Font{Style: "B", Size: 10})
	c.SetTextColor(darkBlue)
	c.Text(x+stripe+mm(5), y+h-mm(45), emp.FullName)

	c.SetFont(Font{Size: 8})
	c.Text(x+stripe+mm(5), y+h-mm(40), emp.JobTitle)

	photo := emp.PhotoThumb
	if photo == "" {
		photo = emp.Photo
	}

	c.Image(ctx, photo, x+stripe+mm(5), y+h-mm(35), mm(25), mm(25))
	c.StrokeRect(x+stripe+mm(4), y+h-mm(36), mm(27), mm(27), 1.5, gold)
}

// DrawCardBack draws the back face of the ID card with its top-left
// corner at (x, y).
func DrawCardBack(ctx context.Context, c *Canvas, emp entity.Employee, co entity.Company, x, y float64) {
	w := mm(CardWidthMM)
	h := mm(CardHeightMM)

	c.FillRect(x, y, w, h, white)
	c.FillRect(x, y, w, mm(2), gold)

	c.SetFont(Font{Style: "B", Size: 9})
	c.SetTextColor(darkBlue)
	c.TextCentered(x+w/2, y+h-mm(45), co.Name)

	c.Image(ctx, emp.QRCode, x+w/2-mm(12.5), y+h-mm(43), mm(25), mm(25))

	const contactLeading = 7.2

	c.SetFont(Font{Size: 6})
	c.TextLinesCentered(x+w/2, y+h-mm(12), contactLeading, []string{
		co.Address,
		"Phone: " + orNA(co.Phone),
		"Email: " + orNA(co.Email),
	})

	c.SetFont(Font{Style: "I", Size: 5})
	c.TextCentered(x+w/2, y+h-mm(2), "This card is property of the company. If found, please return it.")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}

	return s
}
