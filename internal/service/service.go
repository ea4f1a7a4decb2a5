package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/highlandco/docgen/internal/entity"
	"github.com/highlandco/docgen/internal/qr"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	ActiveCompany(ctx context.Context) (entity.Company, error)
	SaveCompany(ctx context.Context, co entity.Company) (entity.Company, error)
	AssignCompanyQR(ctx context.Context, id int64, qrRef string) (bool, error)
	CreateEmployee(ctx context.Context, e entity.Employee) (entity.Employee, error)
	EmployeeByID(ctx context.Context, id int64) (entity.Employee, error)
	ListEmployees(ctx context.Context) ([]entity.Employee, error)
	AssignEmployeeCredentials(ctx context.Context, id int64, employeeID, qrRef string) (bool, error)
	NextInvoiceNumber(ctx context.Context) (int64, error)
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	InvoiceByID(ctx context.Context, id int64) (entity.Invoice, error)
	InvoicesList(ctx context.Context, filter entity.InvoicesFilter) ([]entity.InvoiceSummary, int, error)
	DeleteInvoice(ctx context.Context, id int64) error
}

type Assets interface {
	Save(ctx context.Context, ref string, data []byte) error
}

type Renderer interface {
	IDCard(ctx context.Context, emp entity.Employee, co entity.Company) ([]byte, error)
	Invoice(ctx context.Context, inv entity.Invoice, co entity.Company) ([]byte, error)
	WelcomePackage(ctx context.Context, emp entity.Employee, inv entity.Invoice, co entity.Company) ([]byte, error)
}

type Producer interface {
	DocumentGenerated(ctx context.Context, docType, name string)
}

type Service struct {
	repo     Repository
	assets   Assets
	renderer Renderer
	producer Producer
}

func New(repo Repository, assets Assets, renderer Renderer, producer Producer) *Service {
	return &Service{
		repo:     repo,
		assets:   assets,
		renderer: renderer,
		producer: producer,
	}
}

// ActiveCompanyProfile returns the configured company profile, or a
// zero-value profile when none exists. Downstream rendering treats
// empty fields as N/A placeholders, so the absence of a profile is
// never fatal.
func (s *Service) ActiveCompanyProfile(ctx context.Context) (entity.Company, error) {
	co, err := s.repo.ActiveCompany(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Company{}, nil
		}

		return entity.Company{}, fmt.Errorf("active company: %w", err)
	}

	return co, nil
}

// SaveCompanyProfile persists the profile and derives the website QR
// asset once, if a website is set and no QR exists yet.
func (s *Service) SaveCompanyProfile(ctx context.Context, co entity.Company) (entity.Company, error) {
	saved, err := s.repo.SaveCompany(ctx, co)
	if err != nil {
		return entity.Company{}, fmt.Errorf("save company: %w", err)
	}

	if saved.Finalized() {
		return saved, nil
	}

	png, err := qr.PNG(saved.Website)
	if err != nil {
		return entity.Company{}, err
	}

	ref := fmt.Sprintf("company_qr_codes/company_qr_%d.png", saved.ID)

	err = s.assets.Save(ctx, ref, png)
	if err != nil {
		return entity.Company{}, fmt.Errorf("save company qr asset: %w", err)
	}

	assigned, err := s.repo.AssignCompanyQR(ctx, saved.ID, ref)
	if err != nil {
		return entity.Company{}, fmt.Errorf("assign company qr: %w", err)
	}

	if assigned {
		saved.QRCode = ref
	}

	return saved, nil
}

// CreateEmployee stores a provisional record. The identifier and QR
// code are derived by the explicit FinalizeEmployee step, never as a
// hidden side effect of saving.
func (s *Service) CreateEmployee(ctx context.Context, e entity.Employee) (entity.Employee, error) {
	created, err := s.repo.CreateEmployee(ctx, e)
	if err != nil {
		return entity.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	slog.InfoContext(ctx, "employee created", "id", created.ID, "name", created.FullName)

	return created, nil
}

// FinalizeEmployee derives the immutable employee identifier and the QR
// asset and persists both. It is idempotent: a finalized employee is
// returned unchanged, and a concurrent finalization losing the
// optimistic update re-reads the winner's result.
func (s *Service) FinalizeEmployee(ctx context.Context, id int64) (entity.Employee, error) {
	e, err := s.repo.EmployeeByID(ctx, id)
	if err != nil {
		return entity.Employee{}, fmt.Errorf("employee %d: %w", id, err)
	}

	if e.Finalized() {
		return e, nil
	}

	e.EmployeeID = e.DeriveEmployeeID(time.Now())

	png, err := qr.PNG(e.QRPayload())
	if err != nil {
		return entity.Employee{}, err
	}

	qrRef := fmt.Sprintf("employee_qr_codes/qr_code_%d.png", e.ID)

	err = s.assets.Save(ctx, qrRef, png)
	if err != nil {
		return entity.Employee{}, fmt.Errorf("save employee qr asset: %w", err)
	}

	assigned, err := s.repo.AssignEmployeeCredentials(ctx, e.ID, e.EmployeeID, qrRef)
	if err != nil {
		return entity.Employee{}, fmt.Errorf("assign employee credentials: %w", err)
	}

	if !assigned {
		return s.repo.EmployeeByID(ctx, id)
	}

	e.QRCode = qrRef

	slog.InfoContext(ctx, "employee finalized", "id", e.ID, "employee_id", e.EmployeeID)

	return e, nil
}

func (s *Service) EmployeeByID(ctx context.Context, id int64) (entity.Employee, error) {
	return s.repo.EmployeeByID(ctx, id)
}

func (s *Service) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return s.repo.ListEmployees(ctx)
}

const invoiceNumberAttempts = 2

// CreateInvoice assigns the next number from the monotonic counter and
// stores the invoice. On a numbering collision the numbering is retried
// exactly once; a second collision fails the creation.
func (s *Service) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	for attempt := 0; attempt < invoiceNumberAttempts; attempt++ {
		n, err := s.repo.NextInvoiceNumber(ctx)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("next invoice number: %w", err)
		}

		inv.InvoiceNumber = fmt.Sprintf("INV-%04d", n)

		created, err := s.repo.CreateInvoice(ctx, inv)
		if err != nil {
			if errors.Is(err, entity.ErrAlreadyExists) {
				slog.WarnContext(ctx, "invoice number collision, renumbering", "number", inv.InvoiceNumber)
				continue
			}

			return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
		}

		slog.InfoContext(ctx, "invoice created", "number", created.InvoiceNumber, "client", created.ClientName)

		return created, nil
	}

	return entity.Invoice{}, entity.ErrNumberingConflict
}

func (s *Service) InvoiceByID(ctx context.Context, id int64) (entity.Invoice, error) {
	return s.repo.InvoiceByID(ctx, id)
}

func (s *Service) InvoicesList(ctx context.Context, filter entity.InvoicesFilter) ([]entity.InvoiceSummary, int, error) {
	return s.repo.InvoicesList(ctx, filter)
}

func (s *Service) DeleteInvoice(ctx context.Context, id int64) error {
	return s.repo.DeleteInvoice(ctx, id)
}

// GenerateIDCard renders the print-ready card sheet for one employee.
func (s *Service) GenerateIDCard(ctx context.Context, employeeID int64) (entity.RenderedDocument, error) {
	e, err := s.repo.EmployeeByID(ctx, employeeID)
	if err != nil {
		return entity.RenderedDocument{}, fmt.Errorf("employee %d: %w", employeeID, err)
	}

	co, err := s.ActiveCompanyProfile(ctx)
	if err != nil {
		return entity.RenderedDocument{}, err
	}

	data, err := s.renderer.IDCard(ctx, e, co)
	if err != nil {
		return entity.RenderedDocument{}, err
	}

	label := e.EmployeeID
	if label == "" {
		label = fmt.Sprintf("%d", e.ID)
	}

	doc := entity.RenderedDocument{
		Name: SanitizeFilename(fmt.Sprintf("ID_Card_%s.pdf", label)),
		Data: data,
	}

	s.producer.DocumentGenerated(ctx, string(entity.DocTypeIDCard), doc.Name)

	return doc, nil
}

// GenerateInvoice renders the print-ready PDF for one invoice.
func (s *Service) GenerateInvoice(ctx context.Context, invoiceID int64) (entity.RenderedDocument, error) {
	inv, err := s.repo.InvoiceByID(ctx, invoiceID)
	if err != nil {
		return entity.RenderedDocument{}, fmt.Errorf("invoice %d: %w", invoiceID, err)
	}

	co, err := s.ActiveCompanyProfile(ctx)
	if err != nil {
		return entity.RenderedDocument{}, err
	}

	data, err := s.renderer.Invoice(ctx, inv, co)
	if err != nil {
		return entity.RenderedDocument{}, err
	}

	doc := entity.RenderedDocument{
		Name: SanitizeFilename(fmt.Sprintf("Invoice_%s_%s.pdf", inv.InvoiceNumber, inv.ClientName)),
		Data: data,
	}

	s.producer.DocumentGenerated(ctx, string(entity.DocTypeInvoice), doc.Name)

	return doc, nil
}

// GenerateWelcomePackage renders the combined document: one invoice
// page plus both ID card faces for a new hire.
func (s *Service) GenerateWelcomePackage(ctx context.Context, employeeID, invoiceID int64) (entity.RenderedDocument, error) {
	e, err := s.repo.EmployeeByID(ctx, employeeID)
	if err != nil {
		return entity.RenderedDocument{}, fmt.Errorf("employee %d: %w", employeeID, err)
	}

	inv, err := s.repo.InvoiceByID(ctx, invoiceID)
	if err != nil {
		return entity.RenderedDocument{}, fmt.Errorf("invoice %d: %w", invoiceID, err)
	}

	co, err := s.ActiveCompanyProfile(ctx)
	if err != nil {
		return entity.RenderedDocument{}, err
	}

	data, err := s.renderer.WelcomePackage(ctx, e, inv, co)
	if err != nil {
		return entity.RenderedDocument{}, err
	}

	doc := entity.RenderedDocument{
		Name: SanitizeFilename(fmt.Sprintf("Welcome_Package_%s.pdf", e.FullName)),
		Data: data,
	}

	s.producer.DocumentGenerated(ctx, string(entity.DocTypeWelcomePackage), doc.Name)

	return doc, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename makes a download filename safe: spaces become
// underscores, anything outside [A-Za-z0-9._-] is dropped.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	return unsafeFilenameChars.ReplaceAllString(name, "")
}
