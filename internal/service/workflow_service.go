// internal/service/workflow_service.go
package service

import (
	"context"
	"sync"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	appErrors "github.com/unclebandit/leadreach-webclient/internal/errors"
	"github.com/unclebandit/leadreach-webclient/internal/model"
)

// Workflow actions, in the order the campaign lifecycle runs them.
const (
	ActionScrape   = "scrape"
	ActionGenerate = "generate"
	ActionSend     = "send"
	ActionTrack    = "track"
)

const defaultScrapeResults = 20

// StatusCounts is always derived fresh from a business list, never read from
// a cached aggregate.
type StatusCounts struct {
	Draft    int
	Approved int
	Sent     int
	Replied  int
}

func CountByStatus(businesses []model.Business) StatusCounts {
	var c StatusCounts
	for _, b := range businesses {
		switch b.Status {
		case model.BusinessDraft:
			c.Draft++
		case model.BusinessApproved:
			c.Approved++
		case model.BusinessSent:
			c.Sent++
		case model.BusinessReplied:
			c.Replied++
		}
	}
	return c
}

func (c StatusCounts) CanGenerate() bool { return c.Draft > 0 }
func (c StatusCounts) CanSend() bool     { return c.Approved > 0 }
func (c StatusCounts) CanTrack() bool    { return c.Sent > 0 }

// WorkflowService runs the four bulk campaign actions. At most one action may
// be in flight per (session, campaign); the registry below enforces that the
// way the old UI's single loading flag did.
type WorkflowService struct {
	Campaigns  api.CampaignAPIInterface
	Businesses api.BusinessAPIInterface

	mu       sync.Mutex
	inFlight map[string]string
}

func NewWorkflowService(campaigns api.CampaignAPIInterface, businesses api.BusinessAPIInterface) *WorkflowService {
	return &WorkflowService{
		Campaigns:  campaigns,
		Businesses: businesses,
		inFlight:   make(map[string]string),
	}
}

func flightKey(sessionID, campaignID string) string {
	return sessionID + "/" + campaignID
}

func (s *WorkflowService) acquire(sessionID, campaignID, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := flightKey(sessionID, campaignID)
	if running, ok := s.inFlight[key]; ok {
		return appErrors.NewActionInFlight(campaignID, running)
	}
	s.inFlight[key] = action
	return nil
}

func (s *WorkflowService) release(sessionID, campaignID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, flightKey(sessionID, campaignID))
}

// InFlight reports the running action for a campaign in this session, if any.
func (s *WorkflowService) InFlight(sessionID, campaignID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	action, ok := s.inFlight[flightKey(sessionID, campaignID)]
	return action, ok
}

// Run executes one workflow action. Gates are re-checked against a fresh
// business fetch before the action fires, so a stale page can never trigger
// an action its campaign no longer qualifies for.
func (s *WorkflowService) Run(ctx context.Context, token, sessionID string, campaign *model.Campaign, action string) error {
	if err := s.acquire(sessionID, campaign.ID, action); err != nil {
		return err
	}
	defer s.release(sessionID, campaign.ID)

	if action != ActionScrape {
		businesses, err := s.Businesses.List(ctx, token, campaign.ID)
		if err != nil {
			return err
		}
		counts := CountByStatus(businesses)

		switch action {
		case ActionGenerate:
			if !counts.CanGenerate() {
				return appErrors.NewActionNotAllowed(action, "no draft businesses")
			}
		case ActionSend:
			if !counts.CanSend() {
				return appErrors.NewActionNotAllowed(action, "no approved businesses")
			}
		case ActionTrack:
			if !counts.CanTrack() {
				return appErrors.NewActionNotAllowed(action, "no sent businesses")
			}
		default:
			return appErrors.NewActionNotAllowed(action, "unknown action")
		}
	}

	switch action {
	case ActionScrape:
		_, err := s.Businesses.Scrape(ctx, token, campaign.ID, api.ScrapeRequest{
			SearchQuery: campaign.BusinessType + " near me",
			MaxResults:  defaultScrapeResults,
		})
		return err
	case ActionGenerate:
		_, err := s.Campaigns.GenerateEmails(ctx, token, campaign.ID)
		return err
	case ActionSend:
		_, err := s.Campaigns.SendApproved(ctx, token, campaign.ID)
		return err
	case ActionTrack:
		_, err := s.Campaigns.TrackResponses(ctx, token, campaign.ID)
		return err
	}
	return nil
}
