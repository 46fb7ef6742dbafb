// internal/api/businesses.go
package api

import (
	"context"

	"github.com/unclebandit/leadreach-webclient/internal/model"
)

type BusinessAPIInterface interface {
	List(ctx context.Context, token, campaignID string) ([]model.Business, error)
	Create(ctx context.Context, token, campaignID string, req CreateBusinessRequest) (*model.Business, error)
	Scrape(ctx context.Context, token, campaignID string, req ScrapeRequest) ([]model.Business, error)
	Update(ctx context.Context, token, id string, req UpdateBusinessRequest) (*model.Business, error)
	Delete(ctx context.Context, token, id string) error
	Approve(ctx context.Context, token, id string) (*model.Business, error)
}

type BusinessAPI struct {
	Client *Client
}

type CreateBusinessRequest struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
}

type UpdateBusinessRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// ScrapeRequest is the body form of the scrape endpoint used by the detail
// page ("<business type> near me").
type ScrapeRequest struct {
	SearchQuery string `json:"search_query"`
	MaxResults  int    `json:"max_results"`
}

func (a *BusinessAPI) List(ctx context.Context, token, campaignID string) ([]model.Business, error) {
	businesses := []model.Business{}
	if err := a.Client.get(ctx, "/api/campaigns/"+campaignID+"/businesses", nil, token, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

func (a *BusinessAPI) Create(ctx context.Context, token, campaignID string, req CreateBusinessRequest) (*model.Business, error) {
	var b model.Business
	if err := a.Client.post(ctx, "/api/campaigns/"+campaignID+"/businesses", nil, token, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (a *BusinessAPI) Scrape(ctx context.Context, token, campaignID string, req ScrapeRequest) ([]model.Business, error) {
	businesses := []model.Business{}
	if err := a.Client.post(ctx, "/api/campaigns/"+campaignID+"/scrape", nil, token, req, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

func (a *BusinessAPI) Update(ctx context.Context, token, id string, req UpdateBusinessRequest) (*model.Business, error) {
	var b model.Business
	if err := a.Client.put(ctx, "/api/businesses/"+id, token, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (a *BusinessAPI) Delete(ctx context.Context, token, id string) error {
	return a.Client.delete(ctx, "/api/businesses/"+id, token)
}

func (a *BusinessAPI) Approve(ctx context.Context, token, id string) (*model.Business, error) {
	var b model.Business
	if err := a.Client.put(ctx, "/api/businesses/"+id+"/approve", token, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

var _ BusinessAPIInterface = (*BusinessAPI)(nil)
