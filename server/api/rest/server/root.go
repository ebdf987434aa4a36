package server

import (
	"net/http"

	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/server/api/rest/documents"
)

var rootDocumentPaths = map[string]func(baseURL string) string{
	"legal_entities_url": documents.MakeLegalEntitiesLink,
	"signup_individual_url": func(baseURL string) string {
		return documents.MakeSignupLink(baseURL, "individual")
	},
	"signup_sole_proprietorship_url": func(baseURL string) string {
		return documents.MakeSignupLink(baseURL, "sole-proprietorship")
	},
	"signup_organisation_url": func(baseURL string) string {
		return documents.MakeSignupLink(baseURL, "organisation")
	},
}

type RootAPI struct {
	*APIBase
}

func NewRootAPI(logFactory logger.LogFactory) *RootAPI {
	return &RootAPI{
		APIBase: NewAPIBase(logFactory("RootAPI")),
	}
}

func (a *RootAPI) GetRootDocument(w http.ResponseWriter, r *http.Request) {
	baseURL := requestBaseURL(r)
	res := make(documents.GetRootDocumentResponse)
	for name, fn := range rootDocumentPaths {
		res[name] = fn(baseURL)
	}
	a.JSON(w, r, res)
}
