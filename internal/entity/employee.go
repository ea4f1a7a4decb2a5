package entity

import (
	"fmt"
	"strings"
	"time"
)

type Employee struct {
	ID         int64
	FullName   string
	JobTitle   string
	Department string
	Photo      string
	PhotoThumb string
	EmployeeID string
	QRCode     string
	IssueDate  time.Time
}

// Finalized reports whether the employee already carries a derived
// identifier and QR asset. Finalization never runs twice.
func (e Employee) Finalized() bool {
	return e.EmployeeID != "" && e.QRCode != ""
}

// DeriveEmployeeID builds the immutable identifier from the department,
// the two-digit year and the numeric primary key, e.g. "ENG25-1".
func (e Employee) DeriveEmployeeID(now time.Time) string {
	code := []rune(strings.ToUpper(e.Department))
	if len(code) > 3 {
		code = code[:3]
	}

	return fmt.Sprintf("%s%s-%d", string(code), now.Format("06"), e.ID)
}

// QRPayload is the exact text encoded into the employee QR code.
func (e Employee) QRPayload() string {
	return fmt.Sprintf("Name: %s\nID: %s\nTitle: %s", e.FullName, e.EmployeeID, e.JobTitle)
}
