package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	appErrors "github.com/unclebandit/leadreach-webclient/internal/errors"
	"github.com/unclebandit/leadreach-webclient/internal/model"
	"github.com/unclebandit/leadreach-webclient/internal/service"
)

// --- Mock campaign API ---

type MockCampaignAPI struct {
	mu            sync.Mutex
	GenerateCalls int
	SendCalls     int
	TrackCalls    int

	// blockSend, when set, holds SendApproved until released
	blockSend chan struct{}
}

func (m *MockCampaignAPI) List(ctx context.Context, token string) ([]model.Campaign, error) {
	return []model.Campaign{}, nil
}
func (m *MockCampaignAPI) Get(ctx context.Context, token, id string) (*model.Campaign, error) {
	return &model.Campaign{ID: id, Name: "Test", BusinessType: "dentists"}, nil
}
func (m *MockCampaignAPI) Create(ctx context.Context, token string, req api.CreateCampaignRequest) (*model.Campaign, error) {
	return &model.Campaign{ID: "new"}, nil
}
func (m *MockCampaignAPI) Update(ctx context.Context, token, id string, req api.UpdateCampaignRequest) (*model.Campaign, error) {
	return &model.Campaign{ID: id}, nil
}
func (m *MockCampaignAPI) Delete(ctx context.Context, token, id string) error { return nil }
func (m *MockCampaignAPI) Stats(ctx context.Context, token string) (*model.CampaignStats, error) {
	return &model.CampaignStats{}, nil
}
func (m *MockCampaignAPI) Scrape(ctx context.Context, token, id string, maxResults int) (*api.JobResult, error) {
	return &api.JobResult{Status: "ok"}, nil
}
func (m *MockCampaignAPI) GenerateEmails(ctx context.Context, token, id string) (*api.JobResult, error) {
	m.mu.Lock()
	m.GenerateCalls++
	m.mu.Unlock()
	return &api.JobResult{Status: "ok"}, nil
}
func (m *MockCampaignAPI) SendApproved(ctx context.Context, token, id string) (*api.JobResult, error) {
	m.mu.Lock()
	m.SendCalls++
	block := m.blockSend
	m.mu.Unlock()
	if block != nil {
		<-block
	}
	return &api.JobResult{Status: "ok"}, nil
}
func (m *MockCampaignAPI) TrackResponses(ctx context.Context, token, id string) (*api.JobResult, error) {
	m.mu.Lock()
	m.TrackCalls++
	m.mu.Unlock()
	return &api.JobResult{Status: "ok"}, nil
}
func (m *MockCampaignAPI) Responses(ctx context.Context, token, id string) ([]model.EmailResponse, error) {
	return []model.EmailResponse{}, nil
}

var _ api.CampaignAPIInterface = (*MockCampaignAPI)(nil)

// --- Mock business API ---

type MockBusinessAPI struct {
	mu          sync.Mutex
	businesses  []model.Business
	ScrapeCalls []api.ScrapeRequest
}

func (m *MockBusinessAPI) List(ctx context.Context, token, campaignID string) ([]model.Business, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.businesses, nil
}
func (m *MockBusinessAPI) Create(ctx context.Context, token, campaignID string, req api.CreateBusinessRequest) (*model.Business, error) {
	return &model.Business{ID: "b-new", Name: req.Name, Status: model.BusinessDraft}, nil
}
func (m *MockBusinessAPI) Scrape(ctx context.Context, token, campaignID string, req api.ScrapeRequest) ([]model.Business, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScrapeCalls = append(m.ScrapeCalls, req)
	return []model.Business{}, nil
}
func (m *MockBusinessAPI) Update(ctx context.Context, token, id string, req api.UpdateBusinessRequest) (*model.Business, error) {
	return &model.Business{ID: id}, nil
}
func (m *MockBusinessAPI) Delete(ctx context.Context, token, id string) error { return nil }
func (m *MockBusinessAPI) Approve(ctx context.Context, token, id string) (*model.Business, error) {
	return &model.Business{ID: id, Status: model.BusinessApproved}, nil
}

var _ api.BusinessAPIInterface = (*MockBusinessAPI)(nil)

// --- Tests ---

func sampleBusinesses() []model.Business {
	return []model.Business{
		{ID: "b1", Status: model.BusinessDraft},
		{ID: "b2", Status: model.BusinessDraft},
		{ID: "b3", Status: model.BusinessApproved},
		{ID: "b4", Status: model.BusinessSent},
		{ID: "b5", Status: model.BusinessReplied},
		{ID: "b6", Status: model.BusinessSent},
	}
}

func TestCountByStatus(t *testing.T) {
	counts := service.CountByStatus(sampleBusinesses())
	if counts.Draft != 2 || counts.Approved != 1 || counts.Sent != 2 || counts.Replied != 1 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}

func TestGateBooleans(t *testing.T) {
	cases := []struct {
		name     string
		counts   service.StatusCounts
		generate bool
		send     bool
		track    bool
	}{
		{"empty", service.StatusCounts{}, false, false, false},
		{"drafts only", service.StatusCounts{Draft: 3}, true, false, false},
		{"approved only", service.StatusCounts{Approved: 1}, false, true, false},
		{"sent only", service.StatusCounts{Sent: 2}, false, false, true},
		{"all stages", service.StatusCounts{Draft: 1, Approved: 1, Sent: 1, Replied: 1}, true, true, true},
	}

	for _, tc := range cases {
		if got := tc.counts.CanGenerate(); got != tc.generate {
			t.Errorf("%s: CanGenerate = %v, want %v", tc.name, got, tc.generate)
		}
		if got := tc.counts.CanSend(); got != tc.send {
			t.Errorf("%s: CanSend = %v, want %v", tc.name, got, tc.send)
		}
		if got := tc.counts.CanTrack(); got != tc.track {
			t.Errorf("%s: CanTrack = %v, want %v", tc.name, got, tc.track)
		}
	}
}

func TestGenerateRejectedWithoutDrafts(t *testing.T) {
	campaigns := &MockCampaignAPI{}
	businesses := &MockBusinessAPI{businesses: []model.Business{{ID: "b1", Status: model.BusinessSent}}}
	svc := service.NewWorkflowService(campaigns, businesses)

	campaign := &model.Campaign{ID: "c1", BusinessType: "dentists"}
	err := svc.Run(context.Background(), "tok", "sess", campaign, service.ActionGenerate)
	if _, ok := err.(*appErrors.ErrActionNotAllowed); !ok {
		t.Fatalf("expected ErrActionNotAllowed, got %v", err)
	}
	if campaigns.GenerateCalls != 0 {
		t.Errorf("expected no backend call when gate closed, got %d", campaigns.GenerateCalls)
	}
}

func TestGatesRecheckedFromFreshFetch(t *testing.T) {
	campaigns := &MockCampaignAPI{}
	businesses := &MockBusinessAPI{businesses: sampleBusinesses()}
	svc := service.NewWorkflowService(campaigns, businesses)

	campaign := &model.Campaign{ID: "c1", BusinessType: "dentists"}
	if err := svc.Run(context.Background(), "tok", "sess", campaign, service.ActionSend); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if campaigns.SendCalls != 1 {
		t.Errorf("expected 1 send call, got %d", campaigns.SendCalls)
	}
}

func TestScrapeUsesBusinessTypeQuery(t *testing.T) {
	campaigns := &MockCampaignAPI{}
	businesses := &MockBusinessAPI{}
	svc := service.NewWorkflowService(campaigns, businesses)

	campaign := &model.Campaign{ID: "c1", BusinessType: "coffee shops"}
	if err := svc.Run(context.Background(), "tok", "sess", campaign, service.ActionScrape); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(businesses.ScrapeCalls) != 1 {
		t.Fatalf("expected 1 scrape call, got %d", len(businesses.ScrapeCalls))
	}
	req := businesses.ScrapeCalls[0]
	if req.SearchQuery != "coffee shops near me" {
		t.Errorf("unexpected search query %q", req.SearchQuery)
	}
	if req.MaxResults != 20 {
		t.Errorf("expected max_results 20, got %d", req.MaxResults)
	}
}

func TestOnlyOneActionInFlightPerCampaign(t *testing.T) {
	campaigns := &MockCampaignAPI{blockSend: make(chan struct{})}
	businesses := &MockBusinessAPI{businesses: sampleBusinesses()}
	svc := service.NewWorkflowService(campaigns, businesses)

	campaign := &model.Campaign{ID: "c1", BusinessType: "dentists"}

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		done <- svc.Run(context.Background(), "tok", "sess", campaign, service.ActionSend)
	}()
	<-started

	// Wait until the first action registers as in flight.
	for {
		if _, running := svc.InFlight("sess", "c1"); running {
			break
		}
		time.Sleep(time.Millisecond)
	}

	err := svc.Run(context.Background(), "tok", "sess", campaign, service.ActionTrack)
	if _, ok := err.(*appErrors.ErrActionInFlight); !ok {
		t.Fatalf("expected ErrActionInFlight, got %v", err)
	}
	if campaigns.TrackCalls != 0 {
		t.Errorf("expected blocked action to issue no request, got %d", campaigns.TrackCalls)
	}

	close(campaigns.blockSend)
	if err := <-done; err != nil {
		t.Fatalf("first action failed: %v", err)
	}

	// Flag released: the next action goes through.
	if err := svc.Run(context.Background(), "tok", "sess", campaign, service.ActionTrack); err != nil {
		t.Fatalf("expected action after release to run, got %v", err)
	}
}

func TestDifferentSessionsDoNotBlockEachOther(t *testing.T) {
	campaigns := &MockCampaignAPI{blockSend: make(chan struct{})}
	businesses := &MockBusinessAPI{businesses: sampleBusinesses()}
	svc := service.NewWorkflowService(campaigns, businesses)

	campaign := &model.Campaign{ID: "c1", BusinessType: "dentists"}

	done := make(chan error, 1)
	go func() {
		done <- svc.Run(context.Background(), "tok", "sess-a", campaign, service.ActionSend)
	}()
	for {
		if _, running := svc.InFlight("sess-a", "c1"); running {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// No optimistic locking across sessions: another tab may still race.
	if err := svc.Run(context.Background(), "tok", "sess-b", campaign, service.ActionTrack); err != nil {
		t.Fatalf("expected independent session to proceed, got %v", err)
	}

	close(campaigns.blockSend)
	<-done
}
