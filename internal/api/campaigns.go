// internal/api/campaigns.go
package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/unclebandit/leadreach-webclient/internal/model"
)

type CampaignAPIInterface interface {
	List(ctx context.Context, token string) ([]model.Campaign, error)
	Get(ctx context.Context, token, id string) (*model.Campaign, error)
	Create(ctx context.Context, token string, req CreateCampaignRequest) (*model.Campaign, error)
	Update(ctx context.Context, token, id string, req UpdateCampaignRequest) (*model.Campaign, error)
	Delete(ctx context.Context, token, id string) error
	Stats(ctx context.Context, token string) (*model.CampaignStats, error)
	Scrape(ctx context.Context, token, id string, maxResults int) (*JobResult, error)
	GenerateEmails(ctx context.Context, token, id string) (*JobResult, error)
	SendApproved(ctx context.Context, token, id string) (*JobResult, error)
	TrackResponses(ctx context.Context, token, id string) (*JobResult, error)
	Responses(ctx context.Context, token, id string) ([]model.EmailResponse, error)
}

type CampaignAPI struct {
	Client *Client
}

type CreateCampaignRequest struct {
	Name            string  `json:"name"`
	BusinessType    string  `json:"business_type"`
	OutreachType    string  `json:"outreach_type"`
	AutomationFocus *string `json:"automation_focus"`
	DataSource      string  `json:"data_source"`
	GoogleSheetID   string  `json:"google_sheet_id"`
}

type UpdateCampaignRequest struct {
	Name            *string `json:"name,omitempty"`
	Status          *string `json:"status,omitempty"`
	AutomationFocus *string `json:"automation_focus,omitempty"`
}

// JobResult is what the workflow endpoints return. The client only surfaces
// it, the work itself happens backend-side.
type JobResult struct {
	Status    string `json:"status"`
	Processed int    `json:"processed"`
	Message   string `json:"message,omitempty"`
}

func (a *CampaignAPI) List(ctx context.Context, token string) ([]model.Campaign, error) {
	campaigns := []model.Campaign{}
	if err := a.Client.get(ctx, "/api/campaigns", nil, token, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (a *CampaignAPI) Get(ctx context.Context, token, id string) (*model.Campaign, error) {
	var c model.Campaign
	if err := a.Client.get(ctx, "/api/campaigns/"+id, nil, token, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *CampaignAPI) Create(ctx context.Context, token string, req CreateCampaignRequest) (*model.Campaign, error) {
	var c model.Campaign
	if err := a.Client.post(ctx, "/api/campaigns", nil, token, req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *CampaignAPI) Update(ctx context.Context, token, id string, req UpdateCampaignRequest) (*model.Campaign, error) {
	var c model.Campaign
	if err := a.Client.put(ctx, "/api/campaigns/"+id, token, req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *CampaignAPI) Delete(ctx context.Context, token, id string) error {
	return a.Client.delete(ctx, "/api/campaigns/"+id, token)
}

func (a *CampaignAPI) Stats(ctx context.Context, token string) (*model.CampaignStats, error) {
	var stats model.CampaignStats
	if err := a.Client.get(ctx, "/api/campaigns/stats", nil, token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Scrape kicks off a backend scrape sized via the max_results query parameter.
func (a *CampaignAPI) Scrape(ctx context.Context, token, id string, maxResults int) (*JobResult, error) {
	query := url.Values{"max_results": []string{strconv.Itoa(maxResults)}}
	var result JobResult
	if err := a.Client.post(ctx, "/api/campaigns/"+id+"/scrape", query, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *CampaignAPI) GenerateEmails(ctx context.Context, token, id string) (*JobResult, error) {
	var result JobResult
	if err := a.Client.post(ctx, "/api/campaigns/"+id+"/generate-emails", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *CampaignAPI) SendApproved(ctx context.Context, token, id string) (*JobResult, error) {
	var result JobResult
	if err := a.Client.post(ctx, "/api/campaigns/"+id+"/send-approved", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *CampaignAPI) TrackResponses(ctx context.Context, token, id string) (*JobResult, error) {
	var result JobResult
	if err := a.Client.post(ctx, "/api/campaigns/"+id+"/track-responses", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *CampaignAPI) Responses(ctx context.Context, token, id string) ([]model.EmailResponse, error) {
	responses := []model.EmailResponse{}
	if err := a.Client.get(ctx, "/api/campaigns/"+id+"/responses", nil, token, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

var _ CampaignAPIInterface = (*CampaignAPI)(nil)
