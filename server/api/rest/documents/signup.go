package documents

import (
	"net/http"

	"github.com/onboarding-platform/onboarding/common/models"
)

// The remote API validates signup data, so Bind performs no checks of its own.

type IndividualSignupRequest struct {
	models.IndividualSignup
}

func (d *IndividualSignupRequest) Bind(r *http.Request) error {
	return nil
}

type SoleProprietorshipSignupRequest struct {
	models.SoleProprietorshipSignup
}

func (d *SoleProprietorshipSignupRequest) Bind(r *http.Request) error {
	return nil
}

type OrganisationSignupRequest struct {
	models.OrganisationSignup
}

func (d *OrganisationSignupRequest) Bind(r *http.Request) error {
	return nil
}
