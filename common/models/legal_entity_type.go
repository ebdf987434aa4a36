package models

// Values as used on the wire by the Legal Entity Management API.
const (
	LegalEntityTypeIndividual   LegalEntityType = "individual"
	LegalEntityTypeOrganization LegalEntityType = "organization"
)

type LegalEntityType string

func (s LegalEntityType) Valid() bool {
	return s == LegalEntityTypeIndividual || s == LegalEntityTypeOrganization
}

func (s LegalEntityType) String() string {
	return string(s)
}
