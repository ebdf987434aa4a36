package models

// LegalEntityID is the identifier the remote platform assigns to a legal entity.
type LegalEntityID string

func (id LegalEntityID) String() string {
	return string(id)
}

func (id LegalEntityID) Valid() bool {
	return id != ""
}

type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Address struct {
	Country string `json:"country"`
	City    string `json:"city,omitempty"`
	Street  string `json:"street,omitempty"`
	// PostalCode is omitted by the remote API for countries without postal codes.
	PostalCode string `json:"postalCode,omitempty"`
}

type Individual struct {
	Name               Name    `json:"name"`
	ResidentialAddress Address `json:"residentialAddress"`
	Email              string  `json:"email,omitempty"`
}

type Organization struct {
	LegalName         string  `json:"legalName"`
	RegisteredAddress Address `json:"registeredAddress"`
	Email             string  `json:"email,omitempty"`
}

// LegalEntity is a registered individual or organization recognized by the remote onboarding platform.
// Exactly one of Individual or Organization is set, according to Type.
type LegalEntity struct {
	ID           LegalEntityID   `json:"id"`
	Type         LegalEntityType `json:"type"`
	Individual   *Individual     `json:"individual,omitempty"`
	Organization *Organization   `json:"organization,omitempty"`
}

// DisplayName returns the individual's full name or the organization's legal name.
func (m *LegalEntity) DisplayName() string {
	switch {
	case m.Individual != nil:
		if m.Individual.Name.LastName == "" {
			return m.Individual.Name.FirstName
		}
		return m.Individual.Name.FirstName + " " + m.Individual.Name.LastName
	case m.Organization != nil:
		return m.Organization.LegalName
	default:
		return ""
	}
}

// Country returns the residential country of an individual or the registered country of an organization.
func (m *LegalEntity) Country() string {
	switch {
	case m.Individual != nil:
		return m.Individual.ResidentialAddress.Country
	case m.Organization != nil:
		return m.Organization.RegisteredAddress.Country
	default:
		return ""
	}
}

func (m *LegalEntity) String() string {
	return "LegalEntity{id=" + m.ID.String() + ", type=" + m.Type.String() + ", name=" + m.DisplayName() + ", country=" + m.Country() + "}"
}
