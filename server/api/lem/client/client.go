package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/onboarding-platform/onboarding/common/gerror"
	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/documents"
	"github.com/onboarding-platform/onboarding/server/services"
)

const (
	TestEndpoint = "https://kyc-test.adyen.com/lem/v3"
	LiveEndpoint = "https://kyc-live.adyen.com/lem/v3"

	DefaultRetryMax     = 3
	DefaultRetryWaitMin = time.Millisecond * 100
	DefaultRetryWaitMax = time.Second * 5
	DefaultTimeout      = time.Second * 30

	idempotencyKeyHeader = "Idempotency-Key"
)

// EndpointForEnvironment returns the base URL of the Legal Entity Management API for the environment.
func EndpointForEnvironment(environment models.Environment) (string, error) {
	switch environment {
	case models.EnvironmentTest:
		return TestEndpoint, nil
	case models.EnvironmentLive:
		return LiveEndpoint, nil
	default:
		return "", fmt.Errorf("error no endpoint for environment %q", environment)
	}
}

type APIClientConfig struct {
	Environment models.Environment
	// Endpoint overrides the environment's endpoint when set, e.g. to point at a local fake.
	Endpoint     string
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// Timeout bounds each individual HTTP attempt.
	Timeout time.Duration
}

// DefaultAPIClientConfig returns a config for the given environment with default retry and timeout settings.
func DefaultAPIClientConfig(environment models.Environment) APIClientConfig {
	return APIClientConfig{
		Environment:  environment,
		RetryMax:     DefaultRetryMax,
		RetryWaitMin: DefaultRetryWaitMin,
		RetryWaitMax: DefaultRetryWaitMax,
		Timeout:      DefaultTimeout,
	}
}

// APIClient is an HTTP client used to interact with the Legal Entity Management API.
type APIClient struct {
	endpoint        string
	retryableClient *retryablehttp.Client
	authenticator   Authenticator
	log             logger.Log
}

var _ services.LegalEntityManagementAPI = (*APIClient)(nil)

func NewAPIClient(config APIClientConfig, authenticator Authenticator, logFactory logger.LogFactory) (*APIClient, error) {
	endpoint := config.Endpoint
	if endpoint == "" {
		var err error
		endpoint, err = EndpointForEnvironment(config.Environment)
		if err != nil {
			return nil, err
		}
	}
	log := logFactory("APIClient").WithField("endpoint", endpoint)

	// Each APIClient gets its own HTTP client so clients with different API keys never share state
	retryableClient := retryablehttp.NewClient()
	retryableClient.RetryWaitMin = config.RetryWaitMin
	retryableClient.RetryWaitMax = config.RetryWaitMax
	retryableClient.RetryMax = config.RetryMax
	retryableClient.Logger = NewLeveledLogger(log)
	retryableClient.HTTPClient = &http.Client{Timeout: config.Timeout}
	// Hand the final response back once retries are exhausted so its error document can be parsed
	retryableClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if authenticator != nil {
		var err error
		retryableClient, err = authenticator.AuthenticateClient(retryableClient)
		if err != nil {
			return nil, fmt.Errorf("error setting up HTTP client for authentication: %w", err)
		}
	}
	return &APIClient{
		endpoint:        endpoint,
		retryableClient: retryableClient,
		authenticator:   authenticator,
		log:             log,
	}, nil
}

// MakeAPIClientFactory returns a factory that creates API clients using config, authenticated with an API key.
// The environment passed to the factory overrides config.Environment.
func MakeAPIClientFactory(config APIClientConfig, logFactory logger.LogFactory) services.LegalEntityManagementAPIFactory {
	return func(apiKey models.APIKey, environment models.Environment) (services.LegalEntityManagementAPI, error) {
		clientConfig := config
		clientConfig.Environment = environment
		return NewAPIClient(clientConfig, NewAPIKeyAuthenticator(apiKey, logFactory), logFactory)
	}
}

// get performs an HTTP GET request against a path relative to the configured endpoint, or a full URL.
// Returns the HTTP status code, headers and full response body. No status code inspection is made.
func (a *APIClient) get(ctx context.Context, headers http.Header, pathOrURL string) (int, http.Header, []byte, error) {
	return a.doRequest(ctx, headers, http.MethodGet, pathOrURL, nil)
}

// post performs an HTTP POST request, serializing data to JSON as the request body. Every call is given a
// fresh idempotency key, shared by all retry attempts of that call, so the remote API does not create
// duplicate resources when a response is lost and the request is retried.
func (a *APIClient) post(ctx context.Context, headers http.Header, pathOrURL string, data interface{}) (int, http.Header, []byte, error) {
	if headers == nil {
		headers = http.Header{}
	}
	if headers.Get(idempotencyKeyHeader) == "" {
		headers.Set(idempotencyKeyHeader, uuid.NewString())
	}
	return a.doRequest(ctx, headers, http.MethodPost, pathOrURL, data)
}

// doRequest performs an HTTP request and returns the status code, response headers and response body.
// Returns an error if there was a problem making the request but no HTTP status code inspection is made.
func (a *APIClient) doRequest(ctx context.Context, headers http.Header, verb string, pathOrURL string, data interface{}) (int, http.Header, []byte, error) {
	endpoint, err := a.getRequestEndpoint(pathOrURL)
	if err != nil {
		return -1, nil, nil, fmt.Errorf("error getting request endpoint: %w", err)
	}
	var body interface{}
	if data != nil {
		buf, err := json.Marshal(data)
		if err != nil {
			return -1, nil, nil, errors.Wrap(err, "error marshaling request data to JSON")
		}
		body = buf
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, verb, endpoint, body)
	if err != nil {
		return -1, nil, nil, errors.Wrap(err, "error making request")
	}
	if a.authenticator != nil {
		req.Header, err = a.authenticator.AuthenticateRequest(req.Header)
		if err != nil {
			return -1, nil, nil, errors.Wrap(err, "error authenticating request")
		}
	}
	for k, v := range headers {
		for _, vv := range v {
			req.Header.Set(k, vv)
		}
	}
	req.Header.Set("Accept", "application/json")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	a.log.Tracef("%s %s", verb, endpoint)
	res, err := a.retryableClient.Do(req)
	if err != nil {
		return -1, nil, nil, a.makeTransportError(ctx, verb, endpoint, err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return -1, nil, nil, errors.Wrap(err, "error reading response body")
	}
	a.log.Tracef("%s %s returned %d", verb, endpoint, res.StatusCode)
	return res.StatusCode, res.Header, resBody, nil
}

func (a *APIClient) getRequestEndpoint(pathOrURL string) (string, error) {
	uri, err := url.ParseRequestURI(pathOrURL)
	if err != nil || uri.Host == "" {
		endpoint := strings.TrimRight(a.endpoint, "/")
		if endpoint == "" {
			return "", errors.New("No endpoint")
		}
		if !strings.HasPrefix(pathOrURL, "/") {
			pathOrURL = "/" + pathOrURL
		}
		uri, err = url.ParseRequestURI(endpoint + pathOrURL)
		if err != nil {
			return "", errors.Wrap(err, "error forming url")
		}
	}
	return uri.String(), nil
}

// isOneOf returns true iff an HTTP status code is one of the supplied set of valid codes.
func (a *APIClient) isOneOf(statusCode int, validCodes []int) bool {
	for _, code := range validCodes {
		if statusCode == code {
			return true
		}
	}
	return false
}

// decode parses a JSON response body into out.
func (a *APIClient) decode(body []byte, out interface{}) error {
	err := json.Unmarshal(body, out)
	if err != nil {
		return errors.Wrapf(err, "error parsing response body: %s", string(body))
	}
	return nil
}

// makeTransportError converts an error from the HTTP client (after any retries) into a gerror.Error.
func (a *APIClient) makeTransportError(ctx context.Context, verb string, endpoint string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return gerror.NewErrTimeout(fmt.Sprintf("timed out calling %s %s", verb, endpoint)).Wrap(err)
	}
	return gerror.NewErrHttpOperationFailed(
		fmt.Sprintf("error during request %s %s", verb, endpoint),
		http.StatusBadGateway,
	).Wrap(err)
}

// makeHTTPError parses an error document from an HTTP response body and returns a gerror.Error whose code
// classifies the failure. If the body is not an error document, a generic error including the text of the
// response body is returned instead.
func (a *APIClient) makeHTTPError(statusCode int, body []byte) error {
	doc := &documents.ErrorDocument{}
	err := json.Unmarshal(body, doc)
	if err != nil || doc.Message() == "" {
		return a.classifyStatus(statusCode, fmt.Sprintf("error %d in HTTP response: %s", statusCode, strings.TrimSpace(string(body))))
	}
	gErr := a.classifyStatus(statusCode, doc.Message())
	if doc.ErrorCode != "" {
		gErr = gErr.EDetail("errorCode", doc.ErrorCode)
	}
	if doc.RequestID != "" {
		gErr = gErr.IDetail("requestId", doc.RequestID)
	}
	for _, field := range doc.InvalidFields {
		gErr = gErr.EDetail(gerror.DetailKey(field.Name), field.Message)
	}
	return gErr
}

func (a *APIClient) classifyStatus(statusCode int, message string) gerror.Error {
	switch statusCode {
	case http.StatusNotFound:
		return gerror.NewErrNotFound(message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return gerror.NewErrUnauthorized(message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return gerror.NewErrValidationFailed(message)
	default:
		return gerror.NewErrHttpOperationFailed(message, statusCode)
	}
}
