package documents

import (
	"net/url"
	"strings"

	"github.com/onboarding-platform/onboarding/common/models"
)

const apiPrefix = "/api/v1"

type baseResourceDocument struct {
	URL string `json:"url"`
}

// GetRootDocumentResponse maps link names to URLs.
type GetRootDocumentResponse map[string]string

func MakeLegalEntitiesLink(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + apiPrefix + "/legal-entities"
}

func MakeLegalEntityLink(baseURL string, id models.LegalEntityID) string {
	return MakeLegalEntitiesLink(baseURL) + "/" + url.PathEscape(id.String())
}

func MakeBusinessLinesLink(baseURL string, id models.LegalEntityID) string {
	return MakeLegalEntityLink(baseURL, id) + "/business-lines"
}

func MakeOnboardingLinkLink(baseURL string, id models.LegalEntityID) string {
	return MakeLegalEntityLink(baseURL, id) + "/onboarding-link"
}

func MakeSignupLink(baseURL string, kind string) string {
	return strings.TrimRight(baseURL, "/") + apiPrefix + "/signup/" + kind
}
