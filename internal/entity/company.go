package entity

// Company is the single active company profile printed on every document.
// A zero value is a valid "no profile configured" state: renderers substitute
// N/A placeholders instead of failing.
type Company struct {
	ID            int64
	Name          string
	Address       string
	Phone         string
	Email         string
	Website       string
	TINNumber     string
	BankName      string
	AccountNumber string
	AccountName   string
	Tagline       string
	Logo          string
	LogoThumb     string
	QRCode        string
}

func (c Company) Finalized() bool {
	return c.Website == "" || c.QRCode != ""
}
