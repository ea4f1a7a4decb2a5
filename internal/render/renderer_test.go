package render

import (
	"bytes"
	"compress/zlib"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/highlandco/docgen/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// memAssets serves images from memory; unknown refs fail like a missing
// file would.
type memAssets struct {
	files map[string][]byte
}

func (m *memAssets) Load(_ context.Context, ref string) ([]byte, error) {
	data, ok := m.files[ref]
	if !ok {
		return nil, fmt.Errorf("no such asset: %s", ref)
	}

	return data, nil
}

func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func testEmployee() entity.Employee {
	return entity.Employee{
		ID:         1,
		FullName:   "Jane Mwangi",
		JobTitle:   "Site Engineer",
		Department: "Engineering",
		Photo:      "photos/jane.png",
		PhotoThumb: "photos/jane_thumb.png",
		EmployeeID: "ENG25-1",
		QRCode:     "employee_qr_codes/qr_code_1.png",
		IssueDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testCompany() entity.Company {
	return entity.Company{
		ID:            1,
		Name:          "Highland Co",
		Address:       "1520 Arusha",
		Phone:         "+255 700 000 000",
		Email:         "info@highland.example",
		Website:       "https://highland.example",
		TINNumber:     "123-456-789",
		BankName:      "CRDB",
		AccountNumber: "0150-2000-1111",
		AccountName:   "Highland Co Ltd",
		Tagline:       "Building together",
		Logo:          "logos/logo.png",
		LogoThumb:     "logos/logo_thumb.png",
		QRCode:        "company_qr_codes/company_qr_1.png",
	}
}

func testInvoice() entity.Invoice {
	due := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)

	return entity.Invoice{
		ID:             7,
		InvoiceNumber:  "INV-0007",
		IssueDate:      time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC),
		DueDate:        &due,
		ClientName:     "Acme Builders",
		ClientAddress:  "100 Dodoma Rd",
		ClientPhone:    "+255 711 111 111",
		OtherComments:  "Delivery included. Payment on completion of phase one.",
		TermsOfPayment: "50% advance",
		Items: []entity.LineItem{
			{Description: "Roofing sheets", Quantity: decimal.RequireFromString("100"), UnitPrice: decimal.RequireFromString("2.50")},
			{Description: "Installation", Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("50")},
		},
	}
}

func TestRenderer_IDCard_MissingAssetsStillRenders(t *testing.T) {
	t.Parallel()

	r := NewRenderer(&memAssets{}, "TZS")

	data, err := r.IDCard(context.Background(), testEmployee(), testCompany())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderer_IDCard_WithAssets(t *testing.T) {
	t.Parallel()

	emp := testEmployee()
	co := testCompany()

	assets := &memAssets{files: map[string][]byte{
		emp.PhotoThumb: testPNG(t),
		emp.QRCode:     testPNG(t),
		co.LogoThumb:   testPNG(t),
	}}

	r := NewRenderer(assets, "TZS")

	data, err := r.IDCard(context.Background(), emp, co)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderer_IDCard_UndecodableAssetSkipped(t *testing.T) {
	t.Parallel()

	emp := testEmployee()

	assets := &memAssets{files: map[string][]byte{
		emp.PhotoThumb: []byte("this is not an image"),
	}}

	r := NewRenderer(assets, "TZS")

	data, err := r.IDCard(context.Background(), emp, testCompany())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderer_Deterministic(t *testing.T) {
	t.Parallel()

	assets := &memAssets{files: map[string][]byte{
		"logos/logo.png": testPNG(t),
	}}

	r := NewRenderer(assets, "TZS")
	ctx := context.Background()

	first, err := r.Invoice(ctx, testInvoice(), testCompany())
	require.NoError(t, err)

	second, err := r.Invoice(ctx, testInvoice(), testCompany())
	require.NoError(t, err)

	require.Equal(t, first, second)
}

// The welcome package carries the most resources on one page: several
// fonts plus logo, photo and QR images. Resource dictionary order must
// not depend on map iteration.
func TestRenderer_WelcomePackageDeterministic(t *testing.T) {
	t.Parallel()

	emp := testEmployee()
	co := testCompany()

	assets := &memAssets{files: map[string][]byte{
		emp.PhotoThumb: testPNG(t),
		emp.QRCode:     testPNG(t),
		co.LogoThumb:   testPNG(t),
		co.Logo:        testPNG(t),
	}}

	r := NewRenderer(assets, "TZS")
	ctx := context.Background()

	first, err := r.WelcomePackage(ctx, emp, testInvoice(), co)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := r.WelcomePackage(ctx, emp, testInvoice(), co)
		require.NoError(t, err)
		require.Equal(t, first, next)
	}
}

func TestRenderer_Invoice(t *testing.T) {
	t.Parallel()

	r := NewRenderer(&memAssets{}, "TZS")

	data, err := r.Invoice(context.Background(), testInvoice(), testCompany())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderer_Invoice_EmptyCompanyProfile(t *testing.T) {
	t.Parallel()

	r := NewRenderer(&memAssets{}, "TZS")

	data, err := r.Invoice(context.Background(), testInvoice(), entity.Company{})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderer_WelcomePackage(t *testing.T) {
	t.Parallel()

	r := NewRenderer(&memAssets{}, "TZS")

	data, err := r.WelcomePackage(context.Background(), testEmployee(), testInvoice(), testCompany())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

// The card faces are drawn with opaque fills after the invoice, so the
// contact footer must sit fully above the card band or it gets painted
// over.
func TestRenderer_WelcomePackageFooterAboveCards(t *testing.T) {
	t.Parallel()

	r := NewRenderer(&memAssets{}, "TZS")

	data, err := r.WelcomePackage(context.Background(), testEmployee(), testInvoice(), testCompany())
	require.NoError(t, err)

	content := pageContent(t, data)

	// Text operators carry bottom-up page coordinates.
	m := regexp.MustCompile(`BT ([0-9.-]+) ([0-9.-]+) Td \(If you have any question`).FindStringSubmatch(content)
	require.NotNil(t, m, "footer text not found in page content")

	firstLineY, err := strconv.ParseFloat(m[2], 64)
	require.NoError(t, err)

	cardBandTop := in(0.5) + mm(CardHeightMM)

	// The second footer line sits one leading below the first.
	require.Greater(t, firstLineY-in(0.2), cardBandTop)
}

// pageContent inflates every compressed stream in the document and
// concatenates the results.
func pageContent(t *testing.T, pdf []byte) string {
	t.Helper()

	var out strings.Builder

	rest := pdf
	for {
		i := bytes.Index(rest, []byte("stream\n"))
		if i < 0 {
			break
		}

		rest = rest[i+len("stream\n"):]

		j := bytes.Index(rest, []byte("endstream"))
		require.GreaterOrEqual(t, j, 0)

		chunk := bytes.TrimSuffix(rest[:j], []byte("\n"))
		rest = rest[j+len("endstream"):]

		zr, err := zlib.NewReader(bytes.NewReader(chunk))
		if err != nil {
			continue
		}

		data, err := io.ReadAll(zr)
		if err != nil {
			continue
		}

		out.Write(data)
	}

	return out.String()
}

func TestCanvas_PageSizes(t *testing.T) {
	t.Parallel()

	sheet := newCardSheet(&memAssets{})
	w, h := sheet.PageSize()
	require.InDelta(t, mm(CardWidthMM), w, 0.01)
	require.InDelta(t, mm(2*CardHeightMM+4*cardSheetMarginMM), h, 0.01)

	a4 := newA4(&memAssets{})
	w, h = a4.PageSize()
	require.InDelta(t, in(8.27), w, 0.01)
	require.InDelta(t, in(11.69), h, 0.01)
}

func TestMoneyFormatting(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1,234,567", intComma(decimal.RequireFromString("1234567.89")))
	require.Equal(t, "TZS 250", money(decimal.RequireFromString("250.00"), "TZS"))
	require.Equal(t, "USD 0", money(decimal.Zero, "USD"))
}
