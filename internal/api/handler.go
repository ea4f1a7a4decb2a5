package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/highlandco/docgen/internal/entity"
	"github.com/highlandco/docgen/internal/service"
	"github.com/shopspring/decimal"
)

type Service interface {
	ActiveCompanyProfile(ctx context.Context) (entity.Company, error)
	SaveCompanyProfile(ctx context.Context, co entity.Company) (entity.Company, error)
	CreateEmployee(ctx context.Context, e entity.Employee) (entity.Employee, error)
	FinalizeEmployee(ctx context.Context, id int64) (entity.Employee, error)
	ListEmployees(ctx context.Context) ([]entity.Employee, error)
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	InvoiceByID(ctx context.Context, id int64) (entity.Invoice, error)
	InvoicesList(ctx context.Context, filter entity.InvoicesFilter) ([]entity.InvoiceSummary, int, error)
	DeleteInvoice(ctx context.Context, id int64) error
	GenerateIDCard(ctx context.Context, employeeID int64) (entity.RenderedDocument, error)
	GenerateInvoice(ctx context.Context, invoiceID int64) (entity.RenderedDocument, error)
	GenerateWelcomePackage(ctx context.Context, employeeID, invoiceID int64) (entity.RenderedDocument, error)
}

// @title Document Generator API
// @version 1.0
// @description API for company documents: ID cards, invoices and welcome packages.
// @BasePath /api

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Service health check
// @Description  Returns the service status
// @Tags         health
// @Success      200 {string} string "Service is up!"
// @Failure      500 {object} ResponseError "Service is down"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Service is up!\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Service is down!")
	}
}

type CompanyRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Website       string `json:"website"`
	TINNumber     string `json:"tinNumber"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Tagline       string `json:"tagline"`
	Logo          string `json:"logo"`
	LogoThumb     string `json:"logoThumb"`
}

type CompanyResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Website       string `json:"website"`
	TINNumber     string `json:"tinNumber"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Tagline       string `json:"tagline"`
	Logo          string `json:"logo"`
	LogoThumb     string `json:"logoThumb"`
	QRCode        string `json:"qrCode"`
}

// CompanyProfile godoc
// @Summary      Company profile
// @Description  Returns the active company profile, empty if none is configured
// @Tags         company
// @Produce      json
// @Success      200 {object} CompanyResponse
// @Failure      500 {object} ResponseError "Server error"
// @Router       /company [get]
func (h *Handler) CompanyProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	co, err := h.s.ActiveCompanyProfile(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, companyToAPI(co))
}

// SaveCompanyProfile godoc
// @Summary      Save company profile
// @Description  Creates or updates the active company profile and derives its website QR code
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        request body CompanyRequest true "Company profile"
// @Success      200 {object} CompanyResponse
// @Failure      400 {object} ResponseError "Incorrect request"
// @Failure      500 {object} ResponseError "Server error"
// @Router       /company [put]
func (h *Handler) SaveCompanyProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CompanyRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	err = service.ValidateSaveCompanyParams(req.Name)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	existing, err := h.s.ActiveCompanyProfile(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	co := entity.Company{
		ID:            existing.ID,
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		TINNumber:     req.TINNumber,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		Tagline:       req.Tagline,
		Logo:          req.Logo,
		LogoThumb:     req.LogoThumb,
	}

	saved, err := h.s.SaveCompanyProfile(ctx, co)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Error saving company profile")
		return
	}

	SendJSON(ctx, w, http.StatusOK, companyToAPI(saved))
}

func companyToAPI(co entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:            co.ID,
		Name:          co.Name,
		Address:       co.Address,
		Phone:         co.Phone,
		Email:         co.Email,
		Website:       co.Website,
		TINNumber:     co.TINNumber,
		BankName:      co.BankName,
		AccountNumber: co.AccountNumber,
		AccountName:   co.AccountName,
		Tagline:       co.Tagline,
		Logo:          co.Logo,
		LogoThumb:     co.LogoThumb,
		QRCode:        co.QRCode,
	}
}

type CreateEmployeeRequest struct {
	FullName   string `json:"fullName"`
	JobTitle   string `json:"jobTitle"`
	Department string `json:"department"`
	Photo      string `json:"photo"`
	PhotoThumb string `json:"photoThumb"`
}

type EmployeeResponse struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"fullName"`
	JobTitle   string    `json:"jobTitle"`
	Department string    `json:"department"`
	Photo      string    `json:"photo"`
	PhotoThumb string    `json:"photoThumb"`
	EmployeeID string    `json:"employeeId"`
	QRCode     string    `json:"qrCode"`
	IssueDate  time.Time `json:"issueDate"`
}

// CreateEmployee godoc
// @Summary      Create employee
// @Description  Stores a provisional employee record without an identifier
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request body CreateEmployeeRequest true "Employee data"
// @Success      200 {object} EmployeeResponse
// @Failure      400 {object} ResponseError "Incorrect request"
// @Failure      500 {object} ResponseError "Server error"
// @Router       /employees [post]
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateEmployeeRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	err = service.ValidateCreateEmployeeParams(req.FullName, req.JobTitle, req.Department)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	created, err := h.s.CreateEmployee(ctx, entity.Employee{
		FullName:   req.FullName,
		JobTitle:   req.JobTitle,
		Department: req.Department,
		Photo:      req.Photo,
		PhotoThumb: req.PhotoThumb,
	})
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Error creating employee")
		return
	}

	SendJSON(ctx, w, http.StatusOK, employeeToAPI(created))
}

type FinalizeEmployeeRequest struct {
	ID int64 `json:"id"`
}

// FinalizeEmployee godoc
// @Summary      Finalize employee
// @Description  Derives the immutable employee identifier and QR code; idempotent
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request body FinalizeEmployeeRequest true "Employee record ID"
// @Success      200 {object} EmployeeResponse
// @Failure      400 {object} ResponseError "Incorrect request"
// @Failure      404 {object} ResponseError "Employee not found"
// @Failure      500 {object} ResponseError "Server error"
// @Router       /employees/finalize [post]
func (h *Handler) FinalizeEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req FinalizeEmployeeRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	if req.ID <= 0 {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "Incorrect request body")
		return
	}

	e, err := h.s.FinalizeEmployee(ctx, req.ID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Employee with this ID does not exist")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Error finalizing employee")

		return
	}

	SendJSON(ctx, w, http.StatusOK, employeeToAPI(e))
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ListEmployees godoc
// @Summary      List employees
// @Description  Returns all employee records
// @Tags         employees
// @Produce      json
// @Success      200 {object} ListEmployeesResponse
// @Failure      500 {object} ResponseError "Server error"
// @Router       /employees [get]
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employees, err := h.s.ListEmployees(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Error listing employees")
		return
	}

	resp := ListEmployeesResponse{Employees: make([]EmployeeResponse, 0, len(employees))}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, employeeToAPI(e))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func employeeToAPI(e entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		FullName:   e.FullName,
		JobTitle:   e.JobTitle,
		Department: e.Department,
		Photo:      e.Photo,
		PhotoThumb: e.PhotoThumb,
		EmployeeID: e.EmployeeID,
		QRCode:     e.QRCode,
		IssueDate:  e.IssueDate,
	}
}

type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

type CreateInvoiceRequest struct {
	IssueDate      time.Time         `json:"issueDate"`
	DueDate        *time.Time        `json:"dueDate"`
	ClientName     string            `json:"clientName"`
	ClientAddress  string            `json:"clientAddress"`
	ClientPhone    string            `json:"clientPhone"`
	OtherComments  string            `json:"otherComments"`
	TermsOfPayment string            `json:"termsOfPayment"`
	Items          []LineItemRequest `json:"items"`
}

type LineItemResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

type InvoiceResponse struct {
	ID             int64              `json:"id"`
	InvoiceNumber  string             `json:"invoiceNumber"`
	IssueDate      time.Time          `json:"issueDate"`
	DueDate        *time.Time         `json:"dueDate"`
	ClientName     string             `json:"clientName"`
	ClientAddress  string             `json:"clientAddress"`
	ClientPhone    string             `json:"clientPhone"`
	OtherComments  string             `json:"otherComments"`
	TermsOfPayment string             `json:"termsOfPayment"`
	Total          decimal.Decimal    `json:"total"`
	Items          []LineItemResponse `json:"items"`
}

// CreateInvoice godoc
// @Summary      Create invoice
// @Description  Creates an invoice with the next number from the monotonic counter
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body CreateInvoiceRequest true "Invoice data"
// @Success      200 {object} InvoiceResponse
// @Failure      400 {object} ResponseError "Incorrect request"
// @Failure      409 {object} ResponseError "Numbering conflict"
// @Failure      500 {object} ResponseError "Server error"
// @Router       /invoices [post]
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	items := make([]entity.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	err = service.ValidateCreateInvoiceParams(req.ClientName, req.IssueDate, items)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	created, err := h.s.CreateInvoice(ctx, entity.Invoice{
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		ClientName:     req.ClientName,
		ClientAddress:  req.ClientAddress,
		ClientPhone:    req.ClientPhone,
		OtherComments:  req.OtherComments,
		TermsOfPayment: req.TermsOfPayment,
		Items:          items,
	})
	if err != nil {
		if errors.Is(err, entity.ErrNumberingConflict) {
			SendErr(ctx, w, http.StatusConflict, err, "Invoice numbering conflict, try again")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Error creating invoice")

		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceToAPI(created))
}

// InvoiceSummaryResponse is the list projection: no line items, the
// total aggregated by the store.
type InvoiceSummaryResponse struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       *time.Time      `json:"dueDate"`
	ClientName    string          `json:"clientName"`
	Total         decimal.Decimal `json:"total"`
}

type InvoicesListResponse struct {
	TotalInvoices int                      `json:"totalInvoices"`
	Invoices      []InvoiceSummaryResponse `json:"invoices"`
}

// InvoicesList godoc
// @Summary      List invoices
// @Description  Returns a sorted page of invoices
// @Tags         invoices
// @Produce      json
// @Param        limit query string false "Page size"
// @Param        page query string false "Page number"
// @Param        sortBy query string true "Sort field" Enums(issue_date, invoice_number, client_name)
// @Param        orderBy query string true "Sort direction" Enums(asc, desc)
// @Success      200 {object} InvoicesListResponse
// @Failure      400 {object} ResponseError "Incorrect query parameters"
// @Failure      404 {object} ResponseError "No invoices exist"
// @Failure      500 {object} ResponseError "Server error"
// @Router       /invoices/list [get]
func (h *Handler) InvoicesList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseInvoicesFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect query parameters: "+err.Error())
		return
	}

	invoices, total, err := h.s.InvoicesList(ctx, filter)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "No invoices exist")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Error listing invoices")

		return
	}

	resp := InvoicesListResponse{
		TotalInvoices: total,
		Invoices:      make([]InvoiceSummaryResponse, 0, len(invoices)),
	}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, InvoiceSummaryResponse{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			IssueDate:     inv.IssueDate,
			DueDate:       inv.DueDate,
			ClientName:    inv.ClientName,
			Total:         inv.Total,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func parseInvoicesFilter(url url.Values) (entity.InvoicesFilter, error) {
	qPage := url.Get("page")
	qLimit := url.Get("limit")
	sortBy := entity.InvoicesSortBy(url.Get("sortBy"))
	orderBy := entity.OrderBy(url.Get("orderBy"))

	page, err := strconv.Atoi(qPage)
	if err != nil || page <= 0 || page > 100 {
		page = 1
	}

	limit, err := strconv.Atoi(qLimit)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	if !sortBy.IsValid() {
		return entity.InvoicesFilter{}, fmt.Errorf("invalid sortBy param: %s", sortBy)
	}

	if !orderBy.IsValid() {
		return entity.InvoicesFilter{}, fmt.Errorf("invalid orderBy param: %s", orderBy)
	}

	filter := entity.InvoicesFilter{
		Page:    uint64(page),
		Limit:   uint64(limit),
		SortBy:  sortBy,
		OrderBy: orderBy,
	}

	return filter, nil
}

// InvoiceDetails godoc
// @Summary      Invoice details
// @Description  Returns one invoice with its line items
// @Tags         invoices
// @Produce      json
// @Param        id query string true "Invoice ID"
// @Success      200 {object} InvoiceResponse
// @Failure      400 {object} ResponseError "Incorrect query parameters"
// @Failure      404 {object} ResponseError "Invoice with this ID does not exist"
// @Failure      500 {object} ResponseError "Server error"
// @Router       /invoices/details [get]
func (h *Handler) InvoiceDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect query parameters")
		return
	}

	inv, err := h.s.InvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Invoice with this ID does not exist")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Error getting invoice details")

		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceToAPI(inv))
}

// DeleteInvoice godoc
// @Summary      Delete invoice
// @Description  Deletes one invoice with its line items; the invoice number is never reused
// @Tags         invoices
// @Produce      json
// @Param        id query string true "Invoice ID"
// @Success      200 {string} string "Invoice deleted"
// @Failure      400 {object} ResponseError "Incorrect query parameters"
// @Failure      404 {object} ResponseError "Invoice with this ID does not exist"
// @Failure      500 {object} ResponseError "Server error"
// @Router       /invoices [delete]
func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect query parameters")
		return
	}

	err = h.s.DeleteInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Invoice with this ID does not exist")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Error deleting invoice")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "invoice deleted"})
}

func invoiceToAPI(inv entity.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, LineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total(),
		})
	}

	return InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		ClientName:     inv.ClientName,
		ClientAddress:  inv.ClientAddress,
		ClientPhone:    inv.ClientPhone,
		OtherComments:  inv.OtherComments,
		TermsOfPayment: inv.TermsOfPayment,
		Total:          inv.Total(),
		Items:          items,
	}
}

// DownloadIDCard godoc
// @Summary      Download ID card
// @Description  Renders and downloads the print-ready ID card sheet for an employee
// @Tags         downloads
// @Produce      application/pdf
// @Param        employeeId query string true "Employee record ID"
// @Success      200 {file} binary "PDF document"
// @Failure      400 {object} ResponseError "Incorrect query parameters"
// @Failure      404 {object} ResponseError "Employee with this ID does not exist"
// @Failure      500 {object} ResponseError "Server error"
// @Router       /cards/download [get]
func (h *Handler) DownloadIDCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r.URL.Query().Get("employeeId"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect query parameters")
		return
	}

	doc, err := h.s.GenerateIDCard(ctx, id)
	if err != nil {
		sendDocumentErr(ctx, w, err, "Employee with this ID does not exist")
		return
	}

	sendPDF(w, r, doc)
}

// DownloadInvoice godoc
// @Summary      Download invoice
// @Description  Renders and downloads the invoice PDF
// @Tags         downloads
// @Produce      application/pdf
// @Param        id query string true "Invoice ID"
// @Success      200 {file} binary "PDF document"
// @Failure      400 {object} ResponseError "Incorrect query parameters"
// @Failure      404 {object} ResponseError "Invoice with this ID does not exist"
// @Failure      500 {object} ResponseError "Server error"
// @Router       /invoices/download [get]
func (h *Handler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect query parameters")
		return
	}

	doc, err := h.s.GenerateInvoice(ctx, id)
	if err != nil {
		sendDocumentErr(ctx, w, err, "Invoice with this ID does not exist")
		return
	}

	sendPDF(w, r, doc)
}

// DownloadWelcomePackage godoc
// @Summary      Download welcome package
// @Description  Renders and downloads the combined invoice and ID card document
// @Tags         downloads
// @Produce      application/pdf
// @Param        employeeId query string true "Employee record ID"
// @Param        invoiceId query string true "Invoice ID"
// @Success      200 {file} binary "PDF document"
// @Failure      400 {object} ResponseError "Incorrect query parameters"
// @Failure      404 {object} ResponseError "Record does not exist"
// @Failure      500 {object} ResponseError "Server error"
// @Router       /welcome-package/download [get]
func (h *Handler) DownloadWelcomePackage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID, err := parseID(r.URL.Query().Get("employeeId"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect query parameters")
		return
	}

	invoiceID, err := parseID(r.URL.Query().Get("invoiceId"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect query parameters")
		return
	}

	doc, err := h.s.GenerateWelcomePackage(ctx, employeeID, invoiceID)
	if err != nil {
		sendDocumentErr(ctx, w, err, "Record does not exist")
		return
	}

	sendPDF(w, r, doc)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id param: %q", raw)
	}

	if id <= 0 {
		return 0, fmt.Errorf("id param must be positive: %d", id)
	}

	return id, nil
}

func sendDocumentErr(ctx context.Context, w http.ResponseWriter, err error, notFoundMsg string) {
	if errors.Is(err, entity.ErrNotFound) {
		SendErr(ctx, w, http.StatusNotFound, err, notFoundMsg)
		return
	}

	if errors.Is(err, entity.ErrRenderFailed) {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Error rendering document")
		return
	}

	SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
}

func sendPDF(w http.ResponseWriter, r *http.Request, doc entity.RenderedDocument) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.QueryEscape(doc.Name)))

	http.ServeContent(w, r, doc.Name, time.Now(), bytes.NewReader(doc.Data))
}
