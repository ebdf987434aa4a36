package legal_entity

import (
	"context"
	"fmt"
	"sync"

	"github.com/onboarding-platform/onboarding/common/gerror"
	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/documents"
	"github.com/onboarding-platform/onboarding/server/services"
)

const (
	// 'Limited-service restaurants'; see the platform's list of industry codes.
	businessLineIndustryCode = "722513"
	businessLineWebAddress   = "https://example.com"
	onboardingLinkLocale     = "en-US"
	dashboardPath            = "/dashboard"

	msgCannotGetLegalEntity     = "Cannot get LegalEntity"
	msgCannotCreateLegalEntity  = "Cannot create LegalEntity"
	msgCannotCreateBusinessLine = "Cannot create BusinessLine"
)

var businessLineSalesChannels = []string{"eCommerce", "payByLink"}

type LegalEntityServiceConfig struct {
	APIKey      models.APIKey
	Environment models.Environment
	// ThemeID is the hosted onboarding theme; when empty the default theme is used.
	ThemeID      models.ThemeID
	ErrorMapping ErrorMapping
}

type LegalEntityService struct {
	config      LegalEntityServiceConfig
	apiFactory  services.LegalEntityManagementAPIFactory
	errorMapper ErrorMapper

	apiMu sync.Mutex
	api   services.LegalEntityManagementAPI

	logger.Log
}

var _ services.LegalEntityService = (*LegalEntityService)(nil)

func NewLegalEntityService(
	config LegalEntityServiceConfig,
	apiFactory services.LegalEntityManagementAPIFactory,
	logFactory logger.LogFactory,
) *LegalEntityService {
	if config.Environment == "" {
		config.Environment = models.EnvironmentTest
	}
	return &LegalEntityService{
		config:      config,
		apiFactory:  apiFactory,
		errorMapper: NewErrorMapper(config.ErrorMapping),
		Log:         logFactory("LegalEntityService"),
	}
}

// Get fetches a legal entity by ID.
func (s *LegalEntityService) Get(ctx context.Context, id models.LegalEntityID) (*models.LegalEntity, error) {
	api, err := s.getAPI()
	if err != nil {
		return nil, s.lookupFailed(msgCannotGetLegalEntity, err)
	}
	legalEntity, err := api.GetLegalEntity(ctx, id)
	if err != nil {
		return nil, s.lookupFailed(msgCannotGetLegalEntity, err)
	}
	s.Info(legalEntity)
	return legalEntity, nil
}

// Create creates a legal entity for a signup. Individual and sole proprietorship signups both create an
// individual legal entity; organisation signups create an organization.
func (s *LegalEntityService) Create(ctx context.Context, signup models.Signup) (*models.LegalEntity, error) {
	req, err := legalEntityInfoForSignup(signup)
	if err != nil {
		return nil, err
	}
	api, err := s.getAPI()
	if err != nil {
		return nil, s.createFailed(msgCannotCreateLegalEntity, err)
	}
	legalEntity, err := api.CreateLegalEntity(ctx, req)
	if err != nil {
		return nil, s.createFailed(msgCannotCreateLegalEntity, err)
	}
	return legalEntity, nil
}

// CreateBusinessLine creates the standard business line for a legal entity: online and pay-by-link
// payment processing for a limited-service restaurant. Only the legal entity varies between calls.
func (s *LegalEntityService) CreateBusinessLine(ctx context.Context, legalEntityID models.LegalEntityID) (*models.BusinessLine, error) {
	req := &documents.BusinessLineInfo{
		LegalEntityID: legalEntityID,
		IndustryCode:  businessLineIndustryCode,
		SalesChannels: append([]string(nil), businessLineSalesChannels...),
		Service:       models.BusinessLineServicePaymentProcessing,
		WebData:       []models.WebData{{WebAddress: businessLineWebAddress}},
	}
	api, err := s.getAPI()
	if err != nil {
		return nil, s.createFailed(msgCannotCreateBusinessLine, err)
	}
	businessLine, err := api.CreateBusinessLine(ctx, req)
	if err != nil {
		return nil, s.createFailed(msgCannotCreateBusinessLine, err)
	}
	s.Infof("BusinessLine created id:%s, legalEntityId:%s", businessLine.ID, businessLine.LegalEntityID)
	return businessLine, nil
}

// GetOnboardingLink generates a link to the hosted onboarding pages for a legal entity. When the user
// leaves hosted onboarding they are sent back to host + "/dashboard". Failures are logged, never returned;
// ok is false when no link could be generated.
func (s *LegalEntityService) GetOnboardingLink(ctx context.Context, legalEntityID models.LegalEntityID, host string) (*models.OnboardingLink, bool) {
	api, err := s.getAPI()
	if err != nil {
		s.Errorf("Cannot get OnboardingLink: %v", err)
		return nil, false
	}
	link, err := api.GetOnboardingLink(ctx, legalEntityID, s.onboardingLinkInfo(host))
	if err != nil {
		s.Errorf("Cannot get OnboardingLink: %v", err)
		return nil, false
	}
	s.Infof("OnboardingLink generated for legalEntityId:%s", legalEntityID)
	return link, true
}

func (s *LegalEntityService) onboardingLinkInfo(host string) *documents.OnboardingLinkInfo {
	changeLegalEntityType := false
	editPrefilledCountry := false
	return &documents.OnboardingLinkInfo{
		Locale:      onboardingLinkLocale,
		RedirectURL: host + dashboardPath,
		ThemeID:     s.config.ThemeID.String(),
		Settings: &documents.OnboardingLinkSettings{
			ChangeLegalEntityType: &changeLegalEntityType,
			EditPrefilledCountry:  &editPrefilledCountry,
		},
	}
}

// getAPI returns the API client, creating it on first use. A client that fails to be created is not
// remembered, so the next call tries again.
func (s *LegalEntityService) getAPI() (services.LegalEntityManagementAPI, error) {
	s.apiMu.Lock()
	defer s.apiMu.Unlock()
	if s.api == nil {
		api, err := s.apiFactory(s.config.APIKey, s.config.Environment)
		if err != nil {
			return nil, fmt.Errorf("error creating Legal Entity Management API client: %w", err)
		}
		s.api = api
	}
	return s.api, nil
}

func (s *LegalEntityService) lookupFailed(message string, err error) error {
	s.Errorf("%s: %v", message, err)
	return s.errorMapper.LookupFailed(message, err)
}

func (s *LegalEntityService) createFailed(message string, err error) error {
	s.Errorf("%s: %v", message, err)
	return s.errorMapper.CreateFailed(message, err)
}

func legalEntityInfoForSignup(signup models.Signup) (*documents.LegalEntityInfoRequiredType, error) {
	switch v := signup.(type) {
	case models.IndividualSignup:
		return documents.NewIndividualLegalEntityInfo(v.FirstName, v.LastName, v.CountryCode), nil
	case *models.IndividualSignup:
		if v == nil {
			return nil, gerror.NewErrValidationFailed("Individual signup must not be nil")
		}
		return legalEntityInfoForSignup(*v)
	case models.SoleProprietorshipSignup:
		return documents.NewIndividualLegalEntityInfo(v.FirstName, v.LastName, v.CountryCode), nil
	case *models.SoleProprietorshipSignup:
		if v == nil {
			return nil, gerror.NewErrValidationFailed("Sole proprietorship signup must not be nil")
		}
		return legalEntityInfoForSignup(*v)
	case models.OrganisationSignup:
		return documents.NewOrganizationLegalEntityInfo(v.LegalName, v.CountryCode), nil
	case *models.OrganisationSignup:
		if v == nil {
			return nil, gerror.NewErrValidationFailed("Organisation signup must not be nil")
		}
		return legalEntityInfoForSignup(*v)
	default:
		return nil, gerror.NewErrValidationFailed(fmt.Sprintf("Unsupported signup type %T", signup))
	}
}
