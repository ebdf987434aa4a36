package server

import (
	"net/http"

	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/rest/documents"
	"github.com/onboarding-platform/onboarding/server/services"
)

// SignupAPI creates legal entities for users signing up through the web application.
type SignupAPI struct {
	legalEntityService services.LegalEntityService
	*APIBase
}

func NewSignupAPI(legalEntityService services.LegalEntityService, logFactory logger.LogFactory) *SignupAPI {
	return &SignupAPI{
		legalEntityService: legalEntityService,
		APIBase:            NewAPIBase(logFactory("SignupAPI")),
	}
}

func (a *SignupAPI) CreateIndividual(w http.ResponseWriter, r *http.Request) {
	req := &documents.IndividualSignupRequest{}
	err := a.Bind(r, req)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	a.create(w, r, req.IndividualSignup)
}

func (a *SignupAPI) CreateSoleProprietorship(w http.ResponseWriter, r *http.Request) {
	req := &documents.SoleProprietorshipSignupRequest{}
	err := a.Bind(r, req)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	a.create(w, r, req.SoleProprietorshipSignup)
}

func (a *SignupAPI) CreateOrganisation(w http.ResponseWriter, r *http.Request) {
	req := &documents.OrganisationSignupRequest{}
	err := a.Bind(r, req)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	a.create(w, r, req.OrganisationSignup)
}

func (a *SignupAPI) create(w http.ResponseWriter, r *http.Request, signup models.Signup) {
	legalEntity, err := a.legalEntityService.Create(r.Context(), signup)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	res := documents.MakeLegalEntity(requestBaseURL(r), legalEntity)
	a.Created(w, r, res.URL, res)
}
