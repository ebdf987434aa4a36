package documents

import "github.com/onboarding-platform/onboarding/common/models"

// LegalEntityInfoRequiredType is the request body for creating a legal entity.
// Individual is set when Type is individual, Organization when Type is organization.
type LegalEntityInfoRequiredType struct {
	Type         models.LegalEntityType `json:"type"`
	Individual   *models.Individual     `json:"individual,omitempty"`
	Organization *models.Organization   `json:"organization,omitempty"`
}

func NewIndividualLegalEntityInfo(firstName string, lastName string, country string) *LegalEntityInfoRequiredType {
	return &LegalEntityInfoRequiredType{
		Type: models.LegalEntityTypeIndividual,
		Individual: &models.Individual{
			Name: models.Name{
				FirstName: firstName,
				LastName:  lastName,
			},
			ResidentialAddress: models.Address{Country: country},
		},
	}
}

func NewOrganizationLegalEntityInfo(legalName string, country string) *LegalEntityInfoRequiredType {
	return &LegalEntityInfoRequiredType{
		Type: models.LegalEntityTypeOrganization,
		Organization: &models.Organization{
			LegalName:         legalName,
			RegisteredAddress: models.Address{Country: country},
		},
	}
}
