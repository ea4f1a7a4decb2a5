package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	// raster formats accepted for logos, photos and QR codes.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/highlandco/docgen/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

// AssetLoader resolves an image reference to raster bytes.
type AssetLoader interface {
	Load(ctx context.Context, ref string) ([]byte, error)
}

type RGB struct {
	R, G, B int
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

type Font struct {
	Style string // "", "B", "I"
	Size  float64
}

// Canvas is a thin wrapper over a single-page gofpdf surface working in
// points with the origin at the top-left corner. It accumulates drawing
// operations until finalized; a failed image load skips the image and
// keeps drawing (a missing logo or photo must never abort a document).
type Canvas struct {
	pdf    *gofpdf.Fpdf
	assets AssetLoader
	images map[string]bool
}

// Document timestamps are pinned so that identical records and assets
// produce byte-identical output.
var fixedCreationDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func newCanvas(widthPt, heightPt float64, assets AssetLoader) *Canvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: widthPt, Ht: heightPt},
	})
	pdf.SetCreationDate(fixedCreationDate)
	// Resource dictionaries follow map iteration order unless sorted;
	// without this two renders of the same record differ byte-wise.
	pdf.SetCatalogSort(true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	return &Canvas{
		pdf:    pdf,
		assets: assets,
		images: make(map[string]bool),
	}
}

func newCardSheet(assets AssetLoader) *Canvas {
	height := 2*CardHeightMM + 4*cardSheetMarginMM
	return newCanvas(mm(CardWidthMM), mm(height), assets)
}

func newA4(assets AssetLoader) *Canvas {
	return newCanvas(in(8.27), in(11.69), assets)
}

func (c *Canvas) PageSize() (w, h float64) {
	w, h = c.pdf.GetPageSize()
	return w, h
}

func (c *Canvas) SetFont(f Font) {
	c.pdf.SetFont("Helvetica", f.Style, f.Size)
}

func (c *Canvas) SetTextColor(col RGB) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

func (c *Canvas) FillRect(x, y, w, h float64, col RGB) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col RGB) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(lineWidth)
	c.pdf.Rect(x, y, w, h, "D")
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, col RGB) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, y1, x2, y2)
}

// Text draws a single line with its baseline at y, left-aligned at x.
func (c *Canvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, s)
}

func (c *Canvas) TextCentered(x, y float64, s string) {
	c.pdf.Text(x-c.StringWidth(s)/2, y, s)
}

func (c *Canvas) TextRight(x, y float64, s string) {
	c.pdf.Text(x-c.StringWidth(s), y, s)
}

// TextRotated draws s rotated counterclockwise by angle degrees around
// the baseline point (x, y).
func (c *Canvas) TextRotated(x, y, angle float64, s string) {
	c.pdf.TransformBegin()
	c.pdf.TransformRotate(angle, x, y)
	c.pdf.Text(x, y, s)
	c.pdf.TransformEnd()
}

// TextLinesCentered draws consecutive center-aligned lines, the first
// baseline at y, advancing by leading.
func (c *Canvas) TextLinesCentered(x, y, leading float64, lines []string) {
	for i, line := range lines {
		c.TextCentered(x, y+float64(i)*leading, line)
	}
}

func (c *Canvas) StringWidth(s string) float64 {
	return c.pdf.GetStringWidth(s)
}

// WrapText splits s into lines fitting width in the current font,
// preserving embedded line breaks.
func (c *Canvas) WrapText(s string, width float64) []string {
	var lines []string

	for _, part := range strings.Split(s, "\n") {
		if part == "" {
			lines = append(lines, "")
			continue
		}

		lines = append(lines, c.pdf.SplitText(part, width)...)
	}

	return lines
}

// Image places the referenced image inside the (x, y, w, h) box,
// preserving aspect ratio and centering within the box. An unresolvable
// or undecodable reference is logged and skipped.
func (c *Canvas) Image(ctx context.Context, ref string, x, y, w, h float64) {
	if ref == "" {
		return
	}

	info, ok := c.registerImage(ctx, ref)
	if !ok {
		return
	}

	iw, ih := info.Width(), info.Height()
	if iw <= 0 || ih <= 0 {
		return
	}

	scale := w / iw
	if h/ih < scale {
		scale = h / ih
	}

	dw, dh := iw*scale, ih*scale
	dx := x + (w-dw)/2
	dy := y + (h-dh)/2

	c.pdf.ImageOptions(ref, dx, dy, dw, dh, false, gofpdf.ImageOptions{}, 0, "")
}

func (c *Canvas) registerImage(ctx context.Context, ref string) (*gofpdf.ImageInfoType, bool) {
	if c.images[ref] {
		return c.pdf.GetImageInfo(ref), true
	}

	data, err := c.assets.Load(ctx, ref)
	if err != nil {
		slog.WarnContext(ctx, "image asset skipped", "ref", ref, "error", err)
		return nil, false
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		slog.WarnContext(ctx, "image asset skipped: undecodable", "ref", ref, "error", err)
		return nil, false
	}

	var imageType string

	switch format {
	case "png":
		imageType = "PNG"
	case "jpeg":
		imageType = "JPEG"
	case "gif":
		imageType = "GIF"
	default:
		slog.WarnContext(ctx, "image asset skipped: unsupported format", "ref", ref, "format", format)
		return nil, false
	}

	info := c.pdf.RegisterImageOptionsReader(ref, gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))
	if c.pdf.Err() {
		// Registration poisons the surface on failure; clear it so one
		// bad asset does not abort the whole document.
		c.pdf.ClearError()
		slog.WarnContext(ctx, "image asset skipped: register failed", "ref", ref)

		return nil, false
	}

	c.images[ref] = true

	return info, true
}

// Finalize closes the page, flushes all accumulated operations and
// returns the complete document buffer. Either a full valid document is
// returned or the call fails; there is no partial output.
func (c *Canvas) Finalize() ([]byte, error) {
	if c.pdf.Err() {
		return nil, fmt.Errorf("%w: %s", entity.ErrRenderFailed, c.pdf.Error())
	}

	var buf bytes.Buffer

	err := c.pdf.Output(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrRenderFailed, err)
	}

	return buf.Bytes(), nil
}
