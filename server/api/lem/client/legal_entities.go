package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/documents"
)

// GetLegalEntity gets a legal entity by ID.
func (a *APIClient) GetLegalEntity(ctx context.Context, id models.LegalEntityID) (*models.LegalEntity, error) {
	path := fmt.Sprintf("/legalEntities/%s", url.PathEscape(id.String()))
	code, _, body, err := a.get(ctx, nil, path)
	if err != nil {
		return nil, err
	}
	if !a.isOneOf(code, []int{http.StatusOK}) {
		return nil, a.makeHTTPError(code, body)
	}
	legalEntity := &models.LegalEntity{}
	err = a.decode(body, legalEntity)
	if err != nil {
		return nil, err
	}
	return legalEntity, nil
}

// CreateLegalEntity creates a new legal entity.
func (a *APIClient) CreateLegalEntity(ctx context.Context, req *documents.LegalEntityInfoRequiredType) (*models.LegalEntity, error) {
	code, _, body, err := a.post(ctx, nil, "/legalEntities", req)
	if err != nil {
		return nil, err
	}
	if !a.isOneOf(code, []int{http.StatusOK, http.StatusCreated}) {
		return nil, a.makeHTTPError(code, body)
	}
	legalEntity := &models.LegalEntity{}
	err = a.decode(body, legalEntity)
	if err != nil {
		return nil, err
	}
	return legalEntity, nil
}
