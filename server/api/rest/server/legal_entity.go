package server

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/onboarding-platform/onboarding/common/gerror"
	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/rest/documents"
	"github.com/onboarding-platform/onboarding/server/services"
)

type LegalEntityAPI struct {
	legalEntityService services.LegalEntityService
	publicHost         PublicHost
	*APIBase
}

func NewLegalEntityAPI(
	legalEntityService services.LegalEntityService,
	publicHost PublicHost,
	logFactory logger.LogFactory) *LegalEntityAPI {
	return &LegalEntityAPI{
		legalEntityService: legalEntityService,
		publicHost:         publicHost,
		APIBase:            NewAPIBase(logFactory("LegalEntityAPI")),
	}
}

func (a *LegalEntityAPI) Get(w http.ResponseWriter, r *http.Request) {
	legalEntityID, err := a.legalEntityID(r)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	legalEntity, err := a.legalEntityService.Get(r.Context(), legalEntityID)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	res := documents.MakeLegalEntity(requestBaseURL(r), legalEntity)
	a.GotResource(w, r, res)
}

// CreateBusinessLine declares the standard business line for the legal entity.
func (a *LegalEntityAPI) CreateBusinessLine(w http.ResponseWriter, r *http.Request) {
	legalEntityID, err := a.legalEntityID(r)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	businessLine, err := a.legalEntityService.CreateBusinessLine(r.Context(), legalEntityID)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	res := documents.MakeBusinessLine(requestBaseURL(r), businessLine)
	a.Created(w, r, "", res)
}

// GetOnboardingLink generates a hosted onboarding link that returns the user to the dashboard
// of the public host when they are done.
func (a *LegalEntityAPI) GetOnboardingLink(w http.ResponseWriter, r *http.Request) {
	legalEntityID, err := a.legalEntityID(r)
	if err != nil {
		a.Error(w, r, err)
		return
	}
	link, ok := a.legalEntityService.GetOnboardingLink(r.Context(), legalEntityID, publicBaseURL(a.publicHost, r))
	if !ok {
		a.ErrorNotLogged(w, r, gerror.NewErrNotFound("No onboarding link is available for this legal entity"))
		return
	}
	a.GotResource(w, r, documents.MakeOnboardingLink(link))
}

func (a *LegalEntityAPI) legalEntityID(r *http.Request) (models.LegalEntityID, error) {
	// chi matches against RawPath when it is set, leaving the param escaped; otherwise it is already decoded.
	param := chi.URLParam(r, "legal_entity_id")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(param)
		if err != nil {
			return "", gerror.NewErrValidationFailed("Invalid legal entity id").Wrap(err)
		}
		param = unescaped
	}
	id := models.LegalEntityID(param)
	if !id.Valid() {
		return "", gerror.NewErrValidationFailed("Legal entity id must not be empty")
	}
	return id, nil
}
