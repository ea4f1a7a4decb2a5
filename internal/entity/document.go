package entity

type DocType string

const (
	DocTypeIDCard         DocType = "id_card"
	DocTypeInvoice        DocType = "invoice"
	DocTypeWelcomePackage DocType = "welcome_package"
)

// RenderedDocument is a finalized PDF buffer with its suggested
// download filename. Generation is atomic: Data is always a complete
// document, never a partial one.
type RenderedDocument struct {
	Name string
	Data []byte
}
