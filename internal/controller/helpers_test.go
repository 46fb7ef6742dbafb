package controller_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	"github.com/unclebandit/leadreach-webclient/internal/controller"
	appErrors "github.com/unclebandit/leadreach-webclient/internal/errors"
	"github.com/unclebandit/leadreach-webclient/internal/flash"
	"github.com/unclebandit/leadreach-webclient/internal/model"
	"github.com/unclebandit/leadreach-webclient/internal/repository"
	"github.com/unclebandit/leadreach-webclient/internal/service"
	"github.com/unclebandit/leadreach-webclient/internal/web"
)

const testSessionID = "sess-1"

// --- In-memory session repo ---

type MockSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func NewMockSessionRepo() *MockSessionRepo {
	return &MockSessionRepo{sessions: map[string]*model.Session{
		testSessionID: {ID: testSessionID, AccessToken: "tok-abc", RefreshToken: "ref-abc"},
	}}
}

func (m *MockSessionRepo) Create(s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *s
	m.sessions[s.ID] = &copied
	return nil
}

func (m *MockSessionRepo) GetByID(id string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, appErrors.NewSessionNotFound(id)
	}
	copied := *s
	return &copied, nil
}

func (m *MockSessionRepo) UpdateTokens(id, accessToken, refreshToken string) error { return nil }

func (m *MockSessionRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionRepo) DeleteStale(olderThan time.Time) (int64, error) { return 0, nil }

var _ repository.SessionRepositoryInterface = (*MockSessionRepo)(nil)

// --- Test app wiring ---

// newTestApp wires the full page router against a fake backend handler. The
// fake backend must serve GET /api/auth/me for session hydration.
func newTestApp(backend http.Handler) (http.Handler, func()) {
	server := httptest.NewServer(backend)

	client := api.New(server.URL)
	authAPI := &api.AuthAPI{Client: client}
	campaignAPI := &api.CampaignAPI{Client: client}
	businessAPI := &api.BusinessAPI{Client: client}

	repo := NewMockSessionRepo()
	authService := &service.AuthService{Auth: authAPI, Sessions: repo}
	workflowService := service.NewWorkflowService(campaignAPI, businessAPI)

	flashStore := flash.NewStore()
	views := web.NewTemplates()

	authMiddleware := &controller.AuthMiddleware{Auth: authService}
	campaignController := &controller.CampaignController{
		Campaigns:  campaignAPI,
		Businesses: businessAPI,
		Workflow:   workflowService,
		Flash:      flashStore,
		Views:      views,
	}
	wizardController := &controller.WizardController{Campaigns: campaignAPI, Flash: flashStore, Views: views}
	settingsController := &controller.SettingsController{Auth: authAPI, Flash: flashStore, Views: views}

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Get("/campaigns/new", wizardController.NewPage)
		r.Post("/campaigns/new", wizardController.Step)
		r.Get("/campaigns/{id}", campaignController.Detail)
		r.Get("/campaigns/{id}/send", campaignController.SendConfirm)
		r.Post("/campaigns/{id}/actions/{action}", campaignController.RunAction)
		r.Get("/settings", settingsController.Page)
		r.Post("/settings", settingsController.Submit)
	})

	return r, server.Close
}

func authedGet(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(&http.Cookie{Name: "leadreach_session", Value: testSessionID})
	return req
}

func authedForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "leadreach_session", Value: testSessionID})
	return req
}

func serveMe(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"id":"u1","email":"alice@example.com","full_name":"Alice"}`))
}
