package domain

// DocumentType enumerates the identity document kinds seen in registry
// records and user profiles. Only the citizen ID is accepted as proof of
// vehicle ownership; the others exist because registries record them.
type DocumentType string

const (
	DocumentTypeCitizenID   DocumentType = "CC" // cédula de ciudadanía
	DocumentTypeForeignerID DocumentType = "CE" // cédula de extranjería
	DocumentTypeIdentityTag DocumentType = "TI" // tarjeta de identidad
	DocumentTypePassport    DocumentType = "PA"
	DocumentTypeTaxID       DocumentType = "NIT"
)

// Known reports whether the document type is one this system understands.
func (d DocumentType) Known() bool {
	switch d {
	case DocumentTypeCitizenID, DocumentTypeForeignerID, DocumentTypeIdentityTag,
		DocumentTypePassport, DocumentTypeTaxID:
		return true
	}
	return false
}

func (d DocumentType) String() string { return string(d) }
