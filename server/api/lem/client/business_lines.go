package client

import (
	"context"
	"net/http"

	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/documents"
)

// CreateBusinessLine creates a business line for the legal entity named in the request.
func (a *APIClient) CreateBusinessLine(ctx context.Context, req *documents.BusinessLineInfo) (*models.BusinessLine, error) {
	code, _, body, err := a.post(ctx, nil, "/businessLines", req)
	if err != nil {
		return nil, err
	}
	if !a.isOneOf(code, []int{http.StatusOK, http.StatusCreated}) {
		return nil, a.makeHTTPError(code, body)
	}
	businessLine := &models.BusinessLine{}
	err = a.decode(body, businessLine)
	if err != nil {
		return nil, err
	}
	return businessLine, nil
}
