package legal_entity_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onboarding-platform/onboarding/common/gerror"
	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/client"
	"github.com/onboarding-platform/onboarding/server/api/lem/documents"
	"github.com/onboarding-platform/onboarding/server/api/lem/lemtest"
	"github.com/onboarding-platform/onboarding/server/services"
	"github.com/onboarding-platform/onboarding/server/services/legal_entity"
)

// fakeAPI records the requests it receives and answers with canned results.
type fakeAPI struct {
	mu                sync.Mutex
	legalEntityReqs   []*documents.LegalEntityInfoRequiredType
	businessLineReqs  []*documents.BusinessLineInfo
	onboardingReqs    []*documents.OnboardingLinkInfo
	onboardingIDs     []models.LegalEntityID
	err               error
	legalEntity       *models.LegalEntity
	onboardingLinkURL string
}

func (f *fakeAPI) GetLegalEntity(ctx context.Context, id models.LegalEntityID) (*models.LegalEntity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.LegalEntity{ID: id, Type: models.LegalEntityTypeIndividual}, nil
}

func (f *fakeAPI) CreateLegalEntity(ctx context.Context, req *documents.LegalEntityInfoRequiredType) (*models.LegalEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.legalEntityReqs = append(f.legalEntityReqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &models.LegalEntity{ID: "LE1", Type: req.Type, Individual: req.Individual, Organization: req.Organization}, nil
}

func (f *fakeAPI) CreateBusinessLine(ctx context.Context, req *documents.BusinessLineInfo) (*models.BusinessLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.businessLineReqs = append(f.businessLineReqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &models.BusinessLine{ID: "SE1", LegalEntityID: req.LegalEntityID}, nil
}

func (f *fakeAPI) GetOnboardingLink(ctx context.Context, legalEntityID models.LegalEntityID, req *documents.OnboardingLinkInfo) (*models.OnboardingLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onboardingIDs = append(f.onboardingIDs, legalEntityID)
	f.onboardingReqs = append(f.onboardingReqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &models.OnboardingLink{URL: f.onboardingLinkURL}, nil
}

// countingFactory returns a factory handing out api, and a counter of how many times it was called.
func countingFactory(api services.LegalEntityManagementAPI) (services.LegalEntityManagementAPIFactory, *int32) {
	calls := new(int32)
	return func(apiKey models.APIKey, environment models.Environment) (services.LegalEntityManagementAPI, error) {
		atomic.AddInt32(calls, 1)
		return api, nil
	}, calls
}

func newService(api services.LegalEntityManagementAPI, config legal_entity.LegalEntityServiceConfig) (*legal_entity.LegalEntityService, *int32) {
	factory, calls := countingFactory(api)
	return legal_entity.NewLegalEntityService(config, factory, logger.NoOpLogFactory), calls
}

func TestCreateIndividualAndSoleProprietorship(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{}
	service, _ := newService(api, legal_entity.LegalEntityServiceConfig{})

	_, err := service.Create(ctx, models.IndividualSignup{FirstName: "Jane", LastName: "Doe", CountryCode: "NL"})
	require.NoError(t, err)
	_, err = service.Create(ctx, models.SoleProprietorshipSignup{FirstName: "Jan", LastName: "Jansen", CountryCode: "BE"})
	require.NoError(t, err)

	require.Len(t, api.legalEntityReqs, 2)
	for i, expected := range []struct{ first, last, country string }{{"Jane", "Doe", "NL"}, {"Jan", "Jansen", "BE"}} {
		req := api.legalEntityReqs[i]
		require.Equal(t, models.LegalEntityTypeIndividual, req.Type)
		require.Nil(t, req.Organization)
		require.NotNil(t, req.Individual)
		require.Equal(t, expected.first, req.Individual.Name.FirstName)
		require.Equal(t, expected.last, req.Individual.Name.LastName)
		require.Equal(t, expected.country, req.Individual.ResidentialAddress.Country)
	}
}

func TestCreateOrganisation(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{}
	service, _ := newService(api, legal_entity.LegalEntityServiceConfig{})

	legalEntity, err := service.Create(ctx, &models.OrganisationSignup{LegalName: "Acme B.V.", CountryCode: "NL"})
	require.NoError(t, err)
	require.Equal(t, "Acme B.V.", legalEntity.DisplayName())

	require.Len(t, api.legalEntityReqs, 1)
	req := api.legalEntityReqs[0]
	require.Equal(t, models.LegalEntityTypeOrganization, req.Type)
	require.Nil(t, req.Individual)
	require.Equal(t, "Acme B.V.", req.Organization.LegalName)
	require.Equal(t, "NL", req.Organization.RegisteredAddress.Country)
}

func TestCreateUnsupportedSignup(t *testing.T) {
	service, calls := newService(&fakeAPI{}, legal_entity.LegalEntityServiceConfig{})
	_, err := service.Create(context.Background(), nil)
	require.Error(t, err)
	require.True(t, gerror.IsValidationFailed(err))

	for _, signup := range []models.Signup{
		(*models.IndividualSignup)(nil),
		(*models.SoleProprietorshipSignup)(nil),
		(*models.OrganisationSignup)(nil),
	} {
		_, err = service.Create(context.Background(), signup)
		require.Error(t, err, "%T", signup)
		require.True(t, gerror.IsValidationFailed(err), "%T", signup)
	}
	require.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestCreateBusinessLineFixedFields(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{}
	service, _ := newService(api, legal_entity.LegalEntityServiceConfig{})

	for _, id := range []models.LegalEntityID{"LE1", "LE2"} {
		businessLine, err := service.CreateBusinessLine(ctx, id)
		require.NoError(t, err)
		require.Equal(t, id, businessLine.LegalEntityID)
	}

	require.Len(t, api.businessLineReqs, 2)
	for i, id := range []models.LegalEntityID{"LE1", "LE2"} {
		req := api.businessLineReqs[i]
		require.Equal(t, id, req.LegalEntityID)
		require.Equal(t, "722513", req.IndustryCode)
		require.Equal(t, []string{"eCommerce", "payByLink"}, req.SalesChannels)
		require.Equal(t, models.BusinessLineServicePaymentProcessing, req.Service)
		require.Equal(t, []models.WebData{{WebAddress: "https://example.com"}}, req.WebData)
	}
}

func TestGetOnboardingLinkConfiguration(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{onboardingLinkURL: "https://hosted.example/xyz"}
	service, _ := newService(api, legal_entity.LegalEntityServiceConfig{ThemeID: "ONBT123"})

	link, ok := service.GetOnboardingLink(ctx, "LE123", "https://app.example")
	require.True(t, ok)
	require.Equal(t, "https://hosted.example/xyz", link.URL)

	require.Len(t, api.onboardingReqs, 1)
	require.Equal(t, models.LegalEntityID("LE123"), api.onboardingIDs[0])
	req := api.onboardingReqs[0]
	require.Equal(t, "en-US", req.Locale)
	require.Equal(t, "https://app.example/dashboard", req.RedirectURL)
	require.Equal(t, "ONBT123", req.ThemeID)
	require.NotNil(t, req.Settings)
	require.NotNil(t, req.Settings.ChangeLegalEntityType)
	require.False(t, *req.Settings.ChangeLegalEntityType)
	require.NotNil(t, req.Settings.EditPrefilledCountry)
	require.False(t, *req.Settings.EditPrefilledCountry)
}

func TestGetOnboardingLinkWithoutTheme(t *testing.T) {
	api := &fakeAPI{}
	service, _ := newService(api, legal_entity.LegalEntityServiceConfig{})
	_, ok := service.GetOnboardingLink(context.Background(), "LE123", "http://localhost:8080")
	require.True(t, ok)
	require.Empty(t, api.onboardingReqs[0].ThemeID)
	require.Equal(t, "http://localhost:8080/dashboard", api.onboardingReqs[0].RedirectURL)
}

func TestRemoteFailures(t *testing.T) {
	ctx := context.Background()
	remoteErr := gerror.NewErrValidationFailed("Invalid legal entity information provided")
	api := &fakeAPI{err: remoteErr}

	registry, err := logger.NewLogRegistry("")
	require.NoError(t, err)
	logs := &bytes.Buffer{}
	factory, _ := countingFactory(api)
	service := legal_entity.NewLegalEntityService(
		legal_entity.LegalEntityServiceConfig{},
		factory,
		logger.MakeLogrusLogFactory(registry, logs, &logrus.TextFormatter{DisableTimestamp: true}))

	_, err = service.Get(ctx, "LE123")
	require.Error(t, err)
	require.True(t, gerror.IsRemoteLookupFailed(err))
	require.Contains(t, err.Error(), "Cannot get LegalEntity")
	require.Contains(t, err.Error(), "Invalid legal entity information provided")
	require.True(t, gerror.IsValidationFailed(err), "the remote error should stay in the chain")

	_, err = service.Create(ctx, models.IndividualSignup{FirstName: "Jane"})
	require.Error(t, err)
	require.True(t, gerror.IsRemoteCreateFailed(err))
	require.Contains(t, err.Error(), "Cannot create LegalEntity: Invalid legal entity information provided")

	_, err = service.CreateBusinessLine(ctx, "LE123")
	require.Error(t, err)
	require.True(t, gerror.IsRemoteCreateFailed(err))
	require.Contains(t, err.Error(), "Cannot create BusinessLine: Invalid legal entity information provided")

	link, ok := service.GetOnboardingLink(ctx, "LE123", "https://app.example")
	require.False(t, ok)
	require.Nil(t, link)
	require.Contains(t, logs.String(), "Cannot get OnboardingLink")
	require.Contains(t, logs.String(), "level=error")
}

func TestPreserveRemoteErrors(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{err: gerror.NewErrNotFound("Legal entity LE123 not found")}
	service, _ := newService(api, legal_entity.LegalEntityServiceConfig{ErrorMapping: legal_entity.ErrorMappingPreserve})

	_, err := service.Get(ctx, "LE123")
	require.Error(t, err)
	require.True(t, gerror.IsNotFound(err))
	require.False(t, gerror.IsRemoteLookupFailed(err))
	require.True(t, gerror.HasHTTPStatusCode(err, http.StatusNotFound))
	require.Contains(t, err.Error(), "Cannot get LegalEntity: Legal entity LE123 not found")

	// Failures that were never classified are still collapsed
	api.err = errors.New("connection reset")
	_, err = service.CreateBusinessLine(ctx, "LE123")
	require.True(t, gerror.IsRemoteCreateFailed(err))
}

func TestParseErrorMapping(t *testing.T) {
	mapping, err := legal_entity.ParseErrorMapping("")
	require.NoError(t, err)
	require.Equal(t, legal_entity.ErrorMappingCollapse, mapping)

	mapping, err = legal_entity.ParseErrorMapping(" Preserve ")
	require.NoError(t, err)
	require.Equal(t, legal_entity.ErrorMappingPreserve, mapping)

	_, err = legal_entity.ParseErrorMapping("drop")
	require.Error(t, err)
}

func TestClientCreatedOnce(t *testing.T) {
	ctx := context.Background()
	service, calls := newService(&fakeAPI{}, legal_entity.LegalEntityServiceConfig{})

	_, err := service.Get(ctx, "LE1")
	require.NoError(t, err)
	_, err = service.Create(ctx, models.OrganisationSignup{LegalName: "Acme", CountryCode: "GB"})
	require.NoError(t, err)
	_, err = service.CreateBusinessLine(ctx, "LE1")
	require.NoError(t, err)
	_, ok := service.GetOnboardingLink(ctx, "LE1", "https://app.example")
	require.True(t, ok)

	require.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestClientCreatedOnceConcurrently(t *testing.T) {
	ctx := context.Background()
	service, calls := newService(&fakeAPI{}, legal_entity.LegalEntityServiceConfig{})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CreateBusinessLine(ctx, "LE1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestClientCreationFailureIsRetried(t *testing.T) {
	ctx := context.Background()
	attempts := 0
	factory := func(apiKey models.APIKey, environment models.Environment) (services.LegalEntityManagementAPI, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("no endpoint for environment")
		}
		return &fakeAPI{}, nil
	}
	service := legal_entity.NewLegalEntityService(legal_entity.LegalEntityServiceConfig{}, factory, logger.NoOpLogFactory)

	_, err := service.Get(ctx, "LE1")
	require.Error(t, err)
	require.True(t, gerror.IsRemoteLookupFailed(err))
	require.Contains(t, err.Error(), "no endpoint for environment")

	_, ok := service.GetOnboardingLink(ctx, "LE1", "https://app.example")
	require.True(t, ok)
	require.Equal(t, 2, attempts)
}

func TestFactoryReceivesConfiguredKeyAndEnvironment(t *testing.T) {
	var gotKey models.APIKey
	var gotEnvironment models.Environment
	factory := func(apiKey models.APIKey, environment models.Environment) (services.LegalEntityManagementAPI, error) {
		gotKey, gotEnvironment = apiKey, environment
		return &fakeAPI{}, nil
	}
	service := legal_entity.NewLegalEntityService(legal_entity.LegalEntityServiceConfig{APIKey: "secret"}, factory, logger.NoOpLogFactory)
	_, err := service.Get(context.Background(), "LE1")
	require.NoError(t, err)
	require.Equal(t, models.APIKey("secret"), gotKey)
	require.Equal(t, models.EnvironmentTest, gotEnvironment, "environment should default to test")
}

// TestAgainstFakeServer drives the service through the real API client against the fake remote server.
func TestAgainstFakeServer(t *testing.T) {
	ctx := context.Background()
	server := lemtest.NewServer(lemtest.TestAPIKey)
	defer server.Close()

	service := legal_entity.NewLegalEntityService(
		legal_entity.LegalEntityServiceConfig{APIKey: lemtest.TestAPIKey, ThemeID: "ONBT1"},
		client.MakeAPIClientFactory(server.ClientConfig(), logger.NoOpLogFactory),
		logger.NoOpLogFactory)

	legalEntity, err := service.Create(ctx, models.SoleProprietorshipSignup{FirstName: "Jane", LastName: "Doe", CountryCode: "NL"})
	require.NoError(t, err)
	require.Equal(t, models.LegalEntityTypeIndividual, legalEntity.Type)

	fetched, err := service.Get(ctx, legalEntity.ID)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", fetched.DisplayName())

	businessLine, err := service.CreateBusinessLine(ctx, legalEntity.ID)
	require.NoError(t, err)
	require.Equal(t, legalEntity.ID, businessLine.LegalEntityID)

	link, ok := service.GetOnboardingLink(ctx, legalEntity.ID, "https://app.example")
	require.True(t, ok)
	require.Contains(t, link.URL, "themeId=ONBT1")

	_, err = service.Get(ctx, "LE-missing")
	require.Error(t, err)
	require.True(t, gerror.IsRemoteLookupFailed(err))
	require.True(t, gerror.IsNotFound(err))

	_, ok = service.GetOnboardingLink(ctx, "LE-missing", "https://app.example")
	require.False(t, ok)
}
