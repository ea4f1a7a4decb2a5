// Package render is the document layout engine: it places text, images,
// tables and vector shapes at absolute coordinates on a fixed page
// geometry and serializes the result into a PDF buffer. It is pure with
// respect to the record store: renderers read record snapshots and an
// asset loader, nothing else.
package render

import (
	"context"

	"github.com/highlandco/docgen/internal/entity"
)

type Renderer struct {
	assets   AssetLoader
	currency string
}

func NewRenderer(assets AssetLoader, currency string) *Renderer {
	return &Renderer{
		assets:   assets,
		currency: currency,
	}
}

// IDCard renders the print sheet for one employee: front face above the
// back face with a page margin between them, so a single physical card
// can be cut and folded from one page.
func (r *Renderer) IDCard(ctx context.Context, emp entity.Employee, co entity.Company) ([]byte, error) {
	c := newCardSheet(r.assets)

	frontTop := mm(2 * cardSheetMarginMM)
	backTop := frontTop + mm(CardHeightMM+cardSheetMarginMM)

	DrawCardFront(ctx, c, emp, co, 0, frontTop)
	DrawCardBack(ctx, c, emp, co, 0, backTop)

	return c.Finalize()
}

// Invoice renders one invoice on an A4 page.
func (r *Renderer) Invoice(ctx context.Context, inv entity.Invoice, co entity.Company) ([]byte, error) {
	c := newA4(r.assets)

	DrawInvoice(ctx, c, inv, co, r.currency)

	return c.Finalize()
}

// WelcomePackage combines a full invoice with both ID card faces placed
// side by side at a fixed inset from the page's bottom-left corner.
// It owns only the positioning offsets; all drawing belongs to the
// card and invoice renderers. The card faces use opaque fills, so the
// invoice footer moves up above the card band instead of keeping its
// standalone bottom-of-page position.
func (r *Renderer) WelcomePackage(ctx context.Context, emp entity.Employee, inv entity.Invoice, co entity.Company) ([]byte, error) {
	c := newA4(r.assets)

	DrawInvoiceBands(ctx, c, inv, co, r.currency)

	_, pageH := c.PageSize()

	cardY := pageH - in(0.5) - mm(CardHeightMM)
	frontX := in(0.5)
	backX := frontX + mm(CardWidthMM) + in(0.25)

	DrawInvoiceFooter(c, co, cardY-in(0.4))

	DrawCardFront(ctx, c, emp, co, frontX, cardY)
	DrawCardBack(ctx, c, emp, co, backX, cardY)

	return c.Finalize()
}
