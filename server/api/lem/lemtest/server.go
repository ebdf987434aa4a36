package lemtest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/documents"
)

const (
	TestAPIKey = "lem-test-api-key"

	apiKeyHeader         = "X-API-Key"
	idempotencyKeyHeader = "Idempotency-Key"
)

// Request is a request received by the fake server.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Decode parses the request body into out.
func (r Request) Decode(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}

type failure struct {
	status int
	body   interface{}
}

// Server is an in-memory fake of the Legal Entity Management API, served over HTTP on a local port.
// Requests must carry the API key the server was created with.
type Server struct {
	*httptest.Server
	apiKey string

	mu            sync.Mutex
	legalEntities map[models.LegalEntityID]*models.LegalEntity
	businessLines map[models.BusinessLineID]*models.BusinessLine
	requests      []Request
	failures      []failure
	idempotent    map[string][]byte
	nextID        int
}

// NewServer starts a fake server accepting apiKey. Call Close when done.
func NewServer(apiKey string) *Server {
	s := &Server{
		apiKey:        apiKey,
		legalEntities: make(map[models.LegalEntityID]*models.LegalEntity),
		businessLines: make(map[models.BusinessLineID]*models.BusinessLine),
		idempotent:    make(map[string][]byte),
	}
	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.authenticate)
	r.Use(s.injectFailures)
	r.Get("/legalEntities/{legalEntityId}", s.getLegalEntity)
	r.Post("/legalEntities", s.idempotently(s.createLegalEntity))
	r.Post("/businessLines", s.idempotently(s.createBusinessLine))
	r.Post("/legalEntities/{legalEntityId}/onboardingLinks", s.createOnboardingLink)
	s.Server = httptest.NewServer(r)
	return s
}

// AddLegalEntity stores a legal entity, as though it had been created earlier.
func (s *Server) AddLegalEntity(legalEntity *models.LegalEntity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *legalEntity
	s.legalEntities[legalEntity.ID] = &copied
}

// LegalEntity returns the stored legal entity with the given ID.
func (s *Server) LegalEntity(id models.LegalEntityID) (*models.LegalEntity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	legalEntity, ok := s.legalEntities[id]
	return legalEntity, ok
}

// BusinessLines returns every stored business line.
func (s *Server) BusinessLines() []*models.BusinessLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]*models.BusinessLine, 0, len(s.businessLines))
	for _, line := range s.businessLines {
		lines = append(lines, line)
	}
	return lines
}

// FailNext makes the next request fail with the given status and error document.
// Calls queue up, so FailNext can be called several times to fail several requests in turn.
func (s *Server) FailNext(status int, doc *documents.ErrorDocument) {
	s.FailNextWithBody(status, doc)
}

// FailNextWithBody makes the next request fail with the given status. body is written as JSON
// unless it is a string, which is written as-is.
func (s *Server) FailNextWithBody(status int, body interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{status: status, body: body})
}

// Requests returns every request received so far, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request received.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, "000_0", "Unable to read request body")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(apiKeyHeader) != s.apiKey {
			s.writeError(w, r, http.StatusUnauthorized, "00_401", "Not authorized to access this service.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		var f *failure
		if len(s.failures) > 0 {
			f = &s.failures[0]
			s.failures = s.failures[1:]
		}
		s.mu.Unlock()
		if f == nil {
			next.ServeHTTP(w, r)
			return
		}
		if text, ok := f.body.(string); ok {
			w.WriteHeader(f.status)
			w.Write([]byte(text))
			return
		}
		render.Status(r, f.status)
		render.JSON(w, r, f.body)
	})
}

// idempotently replays the stored response when a POST is repeated with the same idempotency key.
func (s *Server) idempotently(handler func(r *http.Request) (int, interface{})) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(idempotencyKeyHeader)
		if key != "" {
			s.mu.Lock()
			stored, ok := s.idempotent[key]
			s.mu.Unlock()
			if ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Idempotent-Replayed", "true")
				w.Write(stored)
				return
			}
		}
		status, res := handler(r)
		buf, _ := json.Marshal(res)
		if key != "" && status == http.StatusOK {
			s.mu.Lock()
			s.idempotent[key] = buf
			s.mu.Unlock()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(buf)
	}
}

func (s *Server) getLegalEntity(w http.ResponseWriter, r *http.Request) {
	id := legalEntityIDParam(r)
	legalEntity, ok := s.LegalEntity(id)
	if !ok {
		s.writeError(w, r, http.StatusNotFound, "30_112", fmt.Sprintf("Legal entity %s not found", id))
		return
	}
	render.JSON(w, r, legalEntity)
}

func (s *Server) createLegalEntity(r *http.Request) (int, interface{}) {
	req := &documents.LegalEntityInfoRequiredType{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return s.errorDocument(r, http.StatusBadRequest, "000_0", "Request body is not valid JSON")
	}
	if !req.Type.Valid() {
		return s.invalidField(r, "type", req.Type.String(), "Invalid legal entity type")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	legalEntity := &models.LegalEntity{
		ID:           models.LegalEntityID(fmt.Sprintf("LE%08d", s.nextID)),
		Type:         req.Type,
		Individual:   req.Individual,
		Organization: req.Organization,
	}
	s.legalEntities[legalEntity.ID] = legalEntity
	return http.StatusOK, legalEntity
}

func (s *Server) createBusinessLine(r *http.Request) (int, interface{}) {
	req := &documents.BusinessLineInfo{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return s.errorDocument(r, http.StatusBadRequest, "000_0", "Request body is not valid JSON")
	}
	if _, ok := s.LegalEntity(req.LegalEntityID); !ok {
		return s.invalidField(r, "legalEntityId", req.LegalEntityID.String(), "Legal entity does not exist")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	webData := make([]models.WebData, len(req.WebData))
	for i, data := range req.WebData {
		data.WebAddressID = fmt.Sprintf("SO%08d", s.nextID*10+i)
		webData[i] = data
	}
	businessLine := &models.BusinessLine{
		ID:            models.BusinessLineID(fmt.Sprintf("SE%08d", s.nextID)),
		LegalEntityID: req.LegalEntityID,
		IndustryCode:  req.IndustryCode,
		SalesChannels: req.SalesChannels,
		Service:       req.Service,
		WebData:       webData,
	}
	s.businessLines[businessLine.ID] = businessLine
	return http.StatusOK, businessLine
}

func (s *Server) createOnboardingLink(w http.ResponseWriter, r *http.Request) {
	id := legalEntityIDParam(r)
	if _, ok := s.LegalEntity(id); !ok {
		s.writeError(w, r, http.StatusNotFound, "30_112", fmt.Sprintf("Legal entity %s not found", id))
		return
	}
	req := &documents.OnboardingLinkInfo{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "000_0", "Request body is not valid JSON")
		return
	}
	query := url.Values{}
	query.Set("locale", req.Locale)
	query.Set("redirectUrl", req.RedirectURL)
	if req.ThemeID != "" {
		query.Set("themeId", req.ThemeID)
	}
	render.JSON(w, r, &models.OnboardingLink{
		URL: fmt.Sprintf("%s/onboarding/%s?%s", s.URL, url.PathEscape(id.String()), query.Encode()),
	})
}

func (s *Server) invalidField(r *http.Request, name string, value string, message string) (int, interface{}) {
	status, doc := s.errorDocument(r, http.StatusUnprocessableEntity, "30_011", "Invalid legal entity information provided")
	doc.InvalidFields = []documents.InvalidField{{Name: name, Value: value, Message: message}}
	return status, doc
}

func (s *Server) errorDocument(r *http.Request, status int, errorCode string, detail string) (int, *documents.ErrorDocument) {
	return status, &documents.ErrorDocument{
		Type:      "https://docs.adyen.com/errors/general",
		ErrorCode: errorCode,
		Title:     http.StatusText(status),
		Detail:    detail,
		RequestID: fmt.Sprintf("req-%d", len(s.Requests())),
		Status:    status,
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errorCode string, detail string) {
	status, doc := s.errorDocument(r, status, errorCode, detail)
	render.Status(r, status)
	render.JSON(w, r, doc)
}

// legalEntityIDParam returns the unescaped legal entity ID from the URL. chi matches routes against the
// raw path when it is set, so only then does the ID arrive still escaped.
func legalEntityIDParam(r *http.Request) models.LegalEntityID {
	param := chi.URLParam(r, "legalEntityId")
	if r.URL.RawPath == "" {
		return models.LegalEntityID(param)
	}
	unescaped, err := url.PathUnescape(param)
	if err != nil {
		return models.LegalEntityID(param)
	}
	return models.LegalEntityID(unescaped)
}
