package services

import (
	"context"

	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/documents"
)

// LegalEntityService onboards merchants onto the remote platform by forwarding calls to the
// Legal Entity Management API.
type LegalEntityService interface {
	// Get fetches a legal entity by ID. Any remote failure is returned as an error.
	Get(ctx context.Context, id models.LegalEntityID) (*models.LegalEntity, error)
	// Create creates a legal entity from signup data. Sole proprietorships are created as individuals.
	Create(ctx context.Context, signup models.Signup) (*models.LegalEntity, error)
	// CreateBusinessLine declares the platform's standard business line for a legal entity.
	CreateBusinessLine(ctx context.Context, legalEntityID models.LegalEntityID) (*models.BusinessLine, error)
	// GetOnboardingLink generates a hosted onboarding link that returns the user to host + "/dashboard".
	// Failures are logged and reported only as ok=false.
	GetOnboardingLink(ctx context.Context, legalEntityID models.LegalEntityID, host string) (link *models.OnboardingLink, ok bool)
}

// LegalEntitiesAPI is the legal entities resource of the Legal Entity Management API.
type LegalEntitiesAPI interface {
	GetLegalEntity(ctx context.Context, id models.LegalEntityID) (*models.LegalEntity, error)
	CreateLegalEntity(ctx context.Context, req *documents.LegalEntityInfoRequiredType) (*models.LegalEntity, error)
}

// BusinessLinesAPI is the business lines resource of the Legal Entity Management API.
type BusinessLinesAPI interface {
	CreateBusinessLine(ctx context.Context, req *documents.BusinessLineInfo) (*models.BusinessLine, error)
}

// HostedOnboardingAPI is the hosted onboarding resource of the Legal Entity Management API.
type HostedOnboardingAPI interface {
	GetOnboardingLink(ctx context.Context, legalEntityID models.LegalEntityID, req *documents.OnboardingLinkInfo) (*models.OnboardingLink, error)
}

// LegalEntityManagementAPI is a client for the remote Legal Entity Management API.
type LegalEntityManagementAPI interface {
	LegalEntitiesAPI
	BusinessLinesAPI
	HostedOnboardingAPI
}

// LegalEntityManagementAPIFactory constructs a client authenticated with apiKey against the given environment.
type LegalEntityManagementAPIFactory func(apiKey models.APIKey, environment models.Environment) (LegalEntityManagementAPI, error)
