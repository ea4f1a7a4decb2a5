package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/highlandco/docgen/internal/entity"
	"github.com/highlandco/docgen/internal/mocks"
	"github.com/highlandco/docgen/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type TestService struct {
	repo     *mocks.MockRepository
	assets   *mocks.MockAssets
	renderer *mocks.MockRenderer
	producer *mocks.MockProducer
	s        *service.Service
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRepository(ctrl)
	assets := mocks.NewMockAssets(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	return &TestService{
		repo:     repo,
		assets:   assets,
		renderer: renderer,
		producer: producer,
		s:        service.New(repo, assets, renderer, producer),
	}
}

func TestService_ActiveCompanyProfile(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()

	ts.repo.EXPECT().ActiveCompany(gomock.Any()).Return(entity.Company{}, entity.ErrNotFound)

	co, err := ts.s.ActiveCompanyProfile(ctx)
	r.NoError(err)
	r.Equal(entity.Company{}, co)

	want := entity.Company{ID: 1, Name: "Highland Co"}
	ts.repo.EXPECT().ActiveCompany(gomock.Any()).Return(want, nil)

	co, err = ts.s.ActiveCompanyProfile(ctx)
	r.NoError(err)
	r.Equal(want, co)
}

func TestService_SaveCompanyProfile_DerivesQR(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()

	in := entity.Company{Name: "Highland Co", Website: "https://highland.example"}
	saved := entity.Company{ID: 1, Name: "Highland Co", Website: "https://highland.example"}

	ts.repo.EXPECT().SaveCompany(gomock.Any(), in).Return(saved, nil)
	ts.assets.EXPECT().Save(gomock.Any(), "company_qr_codes/company_qr_1.png", gomock.Any()).Return(nil)
	ts.repo.EXPECT().AssignCompanyQR(gomock.Any(), int64(1), "company_qr_codes/company_qr_1.png").Return(true, nil)

	got, err := ts.s.SaveCompanyProfile(ctx, in)
	r.NoError(err)
	r.Equal("company_qr_codes/company_qr_1.png", got.QRCode)
}

func TestService_SaveCompanyProfile_NoWebsiteNoQR(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	in := entity.Company{Name: "Highland Co"}
	saved := entity.Company{ID: 1, Name: "Highland Co"}

	ts.repo.EXPECT().SaveCompany(gomock.Any(), in).Return(saved, nil)

	got, err := ts.s.SaveCompanyProfile(context.Background(), in)
	r.NoError(err)
	r.Empty(got.QRCode)
}

func TestService_FinalizeEmployee(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	wantID := fmt.Sprintf("ENG%s-5", time.Now().Format("06"))

	provisional := entity.Employee{
		ID:         5,
		FullName:   "Jane Mwangi",
		JobTitle:   "Site Engineer",
		Department: "Engineering",
	}

	ts.repo.EXPECT().EmployeeByID(gomock.Any(), int64(5)).Return(provisional, nil)
	ts.assets.EXPECT().Save(gomock.Any(), "employee_qr_codes/qr_code_5.png", gomock.Any()).Return(nil)
	ts.repo.EXPECT().AssignEmployeeCredentials(gomock.Any(), int64(5), wantID, "employee_qr_codes/qr_code_5.png").Return(true, nil)

	got, err := ts.s.FinalizeEmployee(ctx, 5)
	r.NoError(err)
	r.Equal(wantID, got.EmployeeID)
	r.Equal("employee_qr_codes/qr_code_5.png", got.QRCode)
}

func TestService_FinalizeEmployee_Idempotent(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	finalized := entity.Employee{
		ID:         5,
		Department: "Engineering",
		EmployeeID: "ENG25-5",
		QRCode:     "employee_qr_codes/qr_code_5.png",
	}

	// No asset writes, no credential updates the second time around.
	ts.repo.EXPECT().EmployeeByID(gomock.Any(), int64(5)).Return(finalized, nil)

	got, err := ts.s.FinalizeEmployee(context.Background(), 5)
	r.NoError(err)
	r.Equal(finalized, got)
}

func TestService_FinalizeEmployee_LostRaceReloads(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	provisional := entity.Employee{ID: 5, Department: "Engineering"}
	winner := entity.Employee{
		ID:         5,
		Department: "Engineering",
		EmployeeID: "ENG25-5",
		QRCode:     "employee_qr_codes/qr_code_5.png",
	}

	ts.repo.EXPECT().EmployeeByID(gomock.Any(), int64(5)).Return(provisional, nil)
	ts.assets.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	ts.repo.EXPECT().AssignEmployeeCredentials(gomock.Any(), int64(5), gomock.Any(), gomock.Any()).Return(false, nil)
	ts.repo.EXPECT().EmployeeByID(gomock.Any(), int64(5)).Return(winner, nil)

	got, err := ts.s.FinalizeEmployee(context.Background(), 5)
	r.NoError(err)
	r.Equal(winner, got)
}

func TestService_FinalizeEmployee_NotFound(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ts.repo.EXPECT().EmployeeByID(gomock.Any(), int64(99)).Return(entity.Employee{}, entity.ErrNotFound)

	_, err := ts.s.FinalizeEmployee(context.Background(), 99)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_CreateInvoice_AssignsNumber(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	in := entity.Invoice{ClientName: "Acme Builders"}

	ts.repo.EXPECT().NextInvoiceNumber(gomock.Any()).Return(int64(7), nil)
	ts.repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv entity.Invoice) (entity.Invoice, error) {
			r.Equal("INV-0007", inv.InvoiceNumber)
			inv.ID = 7
			return inv, nil
		})

	got, err := ts.s.CreateInvoice(context.Background(), in)
	r.NoError(err)
	r.Equal("INV-0007", got.InvoiceNumber)
}

func TestService_CreateInvoice_RetriesNumberingOnce(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	gomock.InOrder(
		ts.repo.EXPECT().NextInvoiceNumber(gomock.Any()).Return(int64(7), nil),
		ts.repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(entity.Invoice{}, entity.ErrAlreadyExists),
		ts.repo.EXPECT().NextInvoiceNumber(gomock.Any()).Return(int64(8), nil),
		ts.repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entity.Invoice) (entity.Invoice, error) {
				return inv, nil
			}),
	)

	got, err := ts.s.CreateInvoice(context.Background(), entity.Invoice{ClientName: "Acme Builders"})
	r.NoError(err)
	r.Equal("INV-0008", got.InvoiceNumber)
}

func TestService_CreateInvoice_NumberingConflict(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ts.repo.EXPECT().NextInvoiceNumber(gomock.Any()).Return(int64(7), nil).Times(2)
	ts.repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(entity.Invoice{}, entity.ErrAlreadyExists).Times(2)

	_, err := ts.s.CreateInvoice(context.Background(), entity.Invoice{ClientName: "Acme Builders"})
	r.ErrorIs(err, entity.ErrNumberingConflict)
}

func TestService_GenerateIDCard(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	emp := entity.Employee{ID: 5, FullName: "Jane Mwangi", EmployeeID: "ENG25-5", QRCode: "employee_qr_codes/qr_code_5.png"}
	co := entity.Company{ID: 1, Name: "Highland Co"}
	pdf := []byte("%PDF-1.3 card")

	ts.repo.EXPECT().EmployeeByID(gomock.Any(), int64(5)).Return(emp, nil)
	ts.repo.EXPECT().ActiveCompany(gomock.Any()).Return(co, nil)
	ts.renderer.EXPECT().IDCard(gomock.Any(), emp, co).Return(pdf, nil)
	ts.producer.EXPECT().DocumentGenerated(gomock.Any(), "id_card", "ID_Card_ENG25-5.pdf")

	doc, err := ts.s.GenerateIDCard(context.Background(), 5)
	r.NoError(err)
	r.Equal("ID_Card_ENG25-5.pdf", doc.Name)
	r.Equal(pdf, doc.Data)
}

func TestService_GenerateIDCard_NotFoundBeforeRendering(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ts.repo.EXPECT().EmployeeByID(gomock.Any(), int64(99)).Return(entity.Employee{}, entity.ErrNotFound)

	_, err := ts.s.GenerateIDCard(context.Background(), 99)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_GenerateInvoice(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	inv := entity.Invoice{ID: 7, InvoiceNumber: "INV-0007", ClientName: "Acme Builders"}
	co := entity.Company{ID: 1, Name: "Highland Co"}
	pdf := []byte("%PDF-1.3 invoice")

	ts.repo.EXPECT().InvoiceByID(gomock.Any(), int64(7)).Return(inv, nil)
	ts.repo.EXPECT().ActiveCompany(gomock.Any()).Return(co, nil)
	ts.renderer.EXPECT().Invoice(gomock.Any(), inv, co).Return(pdf, nil)
	ts.producer.EXPECT().DocumentGenerated(gomock.Any(), "invoice", "Invoice_INV-0007_Acme_Builders.pdf")

	doc, err := ts.s.GenerateInvoice(context.Background(), 7)
	r.NoError(err)
	r.Equal("Invoice_INV-0007_Acme_Builders.pdf", doc.Name)
}

func TestService_GenerateInvoice_RenderFailed(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ts.repo.EXPECT().InvoiceByID(gomock.Any(), int64(7)).Return(entity.Invoice{ID: 7}, nil)
	ts.repo.EXPECT().ActiveCompany(gomock.Any()).Return(entity.Company{}, nil)
	ts.renderer.EXPECT().Invoice(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: broken surface", entity.ErrRenderFailed))

	_, err := ts.s.GenerateInvoice(context.Background(), 7)
	r.ErrorIs(err, entity.ErrRenderFailed)
}

func TestService_GenerateWelcomePackage(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	emp := entity.Employee{ID: 5, FullName: "Jane Mwangi"}
	inv := entity.Invoice{ID: 7, InvoiceNumber: "INV-0007"}
	co := entity.Company{ID: 1}
	pdf := []byte("%PDF-1.3 package")

	ts.repo.EXPECT().EmployeeByID(gomock.Any(), int64(5)).Return(emp, nil)
	ts.repo.EXPECT().InvoiceByID(gomock.Any(), int64(7)).Return(inv, nil)
	ts.repo.EXPECT().ActiveCompany(gomock.Any()).Return(co, nil)
	ts.renderer.EXPECT().WelcomePackage(gomock.Any(), emp, inv, co).Return(pdf, nil)
	ts.producer.EXPECT().DocumentGenerated(gomock.Any(), "welcome_package", "Welcome_Package_Jane_Mwangi.pdf")

	doc, err := ts.s.GenerateWelcomePackage(context.Background(), 5, 7)
	r.NoError(err)
	r.Equal("Welcome_Package_Jane_Mwangi.pdf", doc.Name)
}

func TestService_GenerateWelcomePackage_MissingInvoice(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ts.repo.EXPECT().EmployeeByID(gomock.Any(), int64(5)).Return(entity.Employee{ID: 5}, nil)
	ts.repo.EXPECT().InvoiceByID(gomock.Any(), int64(99)).Return(entity.Invoice{}, entity.ErrNotFound)

	_, err := ts.s.GenerateWelcomePackage(context.Background(), 5, 99)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Welcome Package John Doe.pdf", "Welcome_Package_John_Doe.pdf"},
		{"Invoice_INV-0007_Acme & Sons.pdf", "Invoice_INV-0007_Acme__Sons.pdf"},
		{"plain.pdf", "plain.pdf"},
		{"a/b\\c.pdf", "abc.pdf"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, service.SanitizeFilename(tt.in))
	}
}

func TestValidateCreateInvoiceParams(t *testing.T) {
	t.Parallel()

	now := time.Now()
	okItems := []entity.LineItem{{
		Description: "Roofing sheets",
		Quantity:    decimal.RequireFromString("100"),
		UnitPrice:   decimal.RequireFromString("2.50"),
	}}

	tests := []struct {
		name       string
		clientName string
		issueDate  time.Time
		items      []entity.LineItem
		wantErr    bool
	}{
		{"valid", "Acme Builders", now, okItems, false},
		{"missing client", "", now, okItems, true},
		{"zero issue date", "Acme Builders", time.Time{}, okItems, true},
		{"no items", "Acme Builders", now, nil, true},
		{
			"zero quantity", "Acme Builders", now,
			[]entity.LineItem{{Description: "x", Quantity: decimal.Zero, UnitPrice: decimal.RequireFromString("1")}},
			true,
		},
		{
			"negative price", "Acme Builders", now,
			[]entity.LineItem{{Description: "x", Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("-1")}},
			true,
		},
		{
			"missing description", "Acme Builders", now,
			[]entity.LineItem{{Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("1")}},
			true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateCreateInvoiceParams(tt.clientName, tt.issueDate, tt.items)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateCreateEmployeeParams(t *testing.T) {
	t.Parallel()

	require.NoError(t, service.ValidateCreateEmployeeParams("Jane Mwangi", "Site Engineer", "Engineering"))
	require.ErrorIs(t, service.ValidateCreateEmployeeParams("", "Site Engineer", "Engineering"), entity.ErrIncorrectRequestBody)
	require.ErrorIs(t, service.ValidateCreateEmployeeParams("Jane Mwangi", "", "Engineering"), entity.ErrIncorrectRequestBody)
	require.ErrorIs(t, service.ValidateCreateEmployeeParams("Jane Mwangi", "Site Engineer", ""), entity.ErrIncorrectRequestBody)
}

func TestService_CreateEmployee_RepoError(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	wantErr := errors.New("connection reset")
	ts.repo.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).Return(entity.Employee{}, wantErr)

	_, err := ts.s.CreateEmployee(context.Background(), entity.Employee{FullName: "Jane Mwangi"})
	r.ErrorIs(err, wantErr)
}
