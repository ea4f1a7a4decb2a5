package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID             int64
	InvoiceNumber  string
	IssueDate      time.Time
	DueDate        *time.Time
	ClientName     string
	ClientAddress  string
	ClientPhone    string
	OtherComments  string
	TermsOfPayment string
	CreatedAt      time.Time
	Items          []LineItem
}

type LineItem struct {
	ID          int64
	InvoiceID   int64
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

func (i LineItem) Total() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Total sums quantity × unit price over all items in exact decimal
// arithmetic. Never computed in floating point.
func (inv Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(item.Total())
	}

	return total
}

// InvoiceSummary is the list projection of an invoice. Line items stay
// in the details view; the total is aggregated in the store so a page
// of summaries does not load every item row.
type InvoiceSummary struct {
	ID            int64
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       *time.Time
	ClientName    string
	CreatedAt     time.Time
	Total         decimal.Decimal
}

func (inv Invoice) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(item.Quantity)
	}

	return total
}

type InvoicesSortBy string

func (s InvoicesSortBy) String() string {
	return string(s)
}

func (s InvoicesSortBy) IsValid() bool {
	switch s {
	case SortByIssueDate, SortByInvoiceNumber, SortByClientName:
		return true
	default:
		return false
	}
}

const (
	SortByIssueDate     InvoicesSortBy = "issue_date"
	SortByInvoiceNumber InvoicesSortBy = "invoice_number"
	SortByClientName    InvoicesSortBy = "client_name"
)

type OrderBy string

func (o OrderBy) String() string {
	return string(o)
}

func (o OrderBy) IsValid() bool {
	switch o {
	case ASC, DESC:
		return true
	default:
		return false
	}
}

const (
	ASC  OrderBy = "asc"
	DESC OrderBy = "desc"
)

type InvoicesFilter struct {
	Page    uint64
	Limit   uint64
	SortBy  InvoicesSortBy
	OrderBy OrderBy
}
