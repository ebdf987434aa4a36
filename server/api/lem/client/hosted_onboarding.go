package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/documents"
)

// GetOnboardingLink generates a link to the hosted onboarding pages for a legal entity.
func (a *APIClient) GetOnboardingLink(ctx context.Context, legalEntityID models.LegalEntityID, req *documents.OnboardingLinkInfo) (*models.OnboardingLink, error) {
	path := fmt.Sprintf("/legalEntities/%s/onboardingLinks", url.PathEscape(legalEntityID.String()))
	code, _, body, err := a.post(ctx, nil, path, req)
	if err != nil {
		return nil, err
	}
	if !a.isOneOf(code, []int{http.StatusOK, http.StatusCreated}) {
		return nil, a.makeHTTPError(code, body)
	}
	link := &models.OnboardingLink{}
	err = a.decode(body, link)
	if err != nil {
		return nil, err
	}
	return link, nil
}
