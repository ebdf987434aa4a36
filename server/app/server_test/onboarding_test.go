package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onboarding-platform/onboarding/common/gerror"
	"github.com/onboarding-platform/onboarding/server/api/lem/documents"
	"github.com/onboarding-platform/onboarding/server/api/lem/lemtest"
	rest_documents "github.com/onboarding-platform/onboarding/server/api/rest/documents"
)

func call(t *testing.T, method string, url string, body string) (int, []byte) {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	buf, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, buf
}

// TestOnboardingJourney signs up an organisation, declares its business line and fetches a hosted
// onboarding link, all through the REST API against the fake remote server.
func TestOnboardingJourney(t *testing.T) {
	ctx := context.Background()
	lemServer := lemtest.NewServer(lemtest.TestAPIKey)
	defer lemServer.Close()

	config := TestConfig(lemServer)
	config.PublicHost = "https://app.example"
	app, cleanup, err := New(config)
	require.NoError(t, err)
	defer cleanup()
	app.AppAPIServer.Start()
	defer app.AppAPIServer.Stop(ctx)
	baseURL := app.AppAPIServer.GetServerURL() + "/api/v1"

	status, body := call(t, http.MethodPost, baseURL+"/signup/organisation", `{"legalName":"Acme B.V.","countryCode":"NL"}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	legalEntity := &rest_documents.LegalEntity{}
	require.NoError(t, json.Unmarshal(body, legalEntity))
	require.True(t, legalEntity.ID.Valid())

	status, body = call(t, http.MethodGet, legalEntity.URL, "")
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = call(t, http.MethodPost, legalEntity.BusinessLinesURL, "")
	require.Equal(t, http.StatusCreated, status, string(body))
	require.Len(t, lemServer.BusinessLines(), 1)
	require.Equal(t, []string{"eCommerce", "payByLink"}, lemServer.BusinessLines()[0].SalesChannels)

	status, body = call(t, http.MethodGet, legalEntity.OnboardingLinkURL, "")
	require.Equal(t, http.StatusOK, status, string(body))
	link := &rest_documents.OnboardingLink{}
	require.NoError(t, json.Unmarshal(body, link))
	require.NotEmpty(t, link.URL)

	req, ok := lemServer.LastRequest()
	require.True(t, ok)
	info := &documents.OnboardingLinkInfo{}
	require.NoError(t, req.Decode(info))
	require.Equal(t, "https://app.example/dashboard", info.RedirectURL)
	require.Equal(t, "ONBT-test", info.ThemeID)
}

func TestRemoteFailuresThroughAPI(t *testing.T) {
	ctx := context.Background()
	lemServer := lemtest.NewServer(lemtest.TestAPIKey)
	defer lemServer.Close()

	app, cleanup, err := New(TestConfig(lemServer))
	require.NoError(t, err)
	defer cleanup()
	app.AppAPIServer.Start()
	defer app.AppAPIServer.Stop(ctx)
	baseURL := app.AppAPIServer.GetServerURL() + "/api/v1"

	status, body := call(t, http.MethodGet, baseURL+"/legal-entities/LE-missing", "")
	require.Equal(t, http.StatusBadGateway, status)
	doc := &rest_documents.ErrorDocument{}
	require.NoError(t, json.Unmarshal(body, doc))
	require.Equal(t, gerror.ErrCodeRemoteLookupFailed, doc.Code)

	lemServer.FailNext(http.StatusUnprocessableEntity, &documents.ErrorDocument{
		ErrorCode: "30_011",
		Detail:    "Invalid legal entity information provided",
		Status:    http.StatusUnprocessableEntity,
	})
	status, body = call(t, http.MethodPost, baseURL+"/signup/individual", `{"firstName":"Jane","lastName":"Doe","countryCode":"XX"}`)
	require.Equal(t, http.StatusBadGateway, status, string(body))
	require.NoError(t, json.Unmarshal(body, doc))
	require.Equal(t, gerror.ErrCodeRemoteCreateFailed, doc.Code)

	status, _ = call(t, http.MethodGet, baseURL+"/legal-entities/LE-missing/onboarding-link", "")
	require.Equal(t, http.StatusNotFound, status)
}
