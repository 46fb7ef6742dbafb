// internal/controller/dashboard_controller.go
package controller

import (
	"net/http"
	"sync"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	"github.com/unclebandit/leadreach-webclient/internal/flash"
	"github.com/unclebandit/leadreach-webclient/internal/model"
	"github.com/unclebandit/leadreach-webclient/internal/web"
)

const recentCampaignLimit = 5

type DashboardController struct {
	Campaigns api.CampaignAPIInterface
	Flash     *flash.Store
	Views     *web.Templates
}

type dashboardData struct {
	Stats  *model.CampaignStats
	Recent []model.Campaign
}

// Dashboard fetches the summary stats and the campaign list in parallel and
// renders only once both are in.
func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	session := CurrentSession(r)
	token := session.AccessToken

	var (
		wg           sync.WaitGroup
		stats        *model.CampaignStats
		campaigns    []model.Campaign
		statsErr     error
		campaignsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, statsErr = c.Campaigns.Stats(r.Context(), token)
	}()
	go func() {
		defer wg.Done()
		campaigns, campaignsErr = c.Campaigns.List(r.Context(), token)
	}()
	wg.Wait()

	notices := c.Flash.Pop(session.ID)
	if statsErr != nil || campaignsErr != nil {
		notices = append(notices, flash.Notice{Level: flash.LevelError, Message: "Failed to load dashboard data"})
	}
	if stats == nil {
		stats = &model.CampaignStats{}
	}

	recent := campaigns
	if len(recent) > recentCampaignLimit {
		recent = recent[:recentCampaignLimit]
	}

	c.Views.Render(w, "dashboard", web.Page{
		Title:   "Dashboard",
		User:    user,
		Notices: notices,
		Data:    dashboardData{Stats: stats, Recent: recent},
	})
}
