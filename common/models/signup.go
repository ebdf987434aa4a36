package models

// Signup is the data captured from a user signing up to the platform. The set of implementations
// is closed: IndividualSignup, SoleProprietorshipSignup and OrganisationSignup.
type Signup interface {
	signup()
}

type IndividualSignup struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CountryCode string `json:"countryCode"`
}

// SoleProprietorshipSignup carries the same data as an individual; the platform onboards the owner as
// an individual legal entity.
type SoleProprietorshipSignup struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CountryCode string `json:"countryCode"`
}

type OrganisationSignup struct {
	LegalName   string `json:"legalName"`
	CountryCode string `json:"countryCode"`
}

func (IndividualSignup) signup()         {}
func (SoleProprietorshipSignup) signup() {}
func (OrganisationSignup) signup()       {}
