package service

import (
	"fmt"
	"time"

	"github.com/highlandco/docgen/internal/entity"
	"github.com/shopspring/decimal"
)

func ValidateCreateEmployeeParams(fullName, jobTitle, department string) error {
	if fullName == "" || jobTitle == "" || department == "" {
		return fmt.Errorf("%w: fullName: %q, jobTitle: %q, department: %q",
			entity.ErrIncorrectRequestBody, fullName, jobTitle, department)
	}

	return nil
}

func ValidateSaveCompanyParams(name string) error {
	if name == "" {
		return fmt.Errorf("%w: company name is required", entity.ErrIncorrectRequestBody)
	}

	return nil
}

func ValidateCreateInvoiceParams(clientName string, issueDate time.Time, items []entity.LineItem) error {
	if clientName == "" || issueDate.IsZero() {
		return fmt.Errorf("%w: clientName: %q, issueDate: %s",
			entity.ErrIncorrectRequestBody, clientName, issueDate)
	}

	if len(items) == 0 {
		return fmt.Errorf("%w: at least one line item is required", entity.ErrIncorrectRequestBody)
	}

	for i, item := range items {
		if item.Description == "" {
			return fmt.Errorf("%w: item %d: description is required", entity.ErrIncorrectRequestBody, i)
		}

		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: item %d: quantity must be positive", entity.ErrIncorrectRequestBody, i)
		}

		if item.UnitPrice.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: item %d: unit price must not be negative", entity.ErrIncorrectRequestBody, i)
		}
	}

	return nil
}
