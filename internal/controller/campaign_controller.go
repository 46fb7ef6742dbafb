// internal/controller/campaign_controller.go
package controller

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	"github.com/unclebandit/leadreach-webclient/internal/flash"
	"github.com/unclebandit/leadreach-webclient/internal/model"
	"github.com/unclebandit/leadreach-webclient/internal/service"
	"github.com/unclebandit/leadreach-webclient/internal/web"
)

type CampaignController struct {
	Campaigns  api.CampaignAPIInterface
	Businesses api.BusinessAPIInterface
	Workflow   *service.WorkflowService
	Flash      *flash.Store
	Views      *web.Templates
}

type campaignListData struct {
	Campaigns []model.Campaign
}

type campaignDetailData struct {
	Campaign   *model.Campaign
	Businesses []model.Business
	Counts     service.StatusCounts
	InFlight   string
	Responses  []model.EmailResponse
}

func (c *CampaignController) List(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)

	campaigns, err := c.Campaigns.List(r.Context(), session.AccessToken)
	notices := c.Flash.Pop(session.ID)
	if err != nil {
		notices = append(notices, flash.Notice{Level: flash.LevelError, Message: api.Detail(err, "Failed to load campaigns")})
	}

	c.Views.Render(w, "campaigns", web.Page{
		Title:   "Campaigns",
		User:    CurrentUser(r),
		Notices: notices,
		Data:    campaignListData{Campaigns: campaigns},
	})
}

// Detail loads the campaign and its businesses concurrently; nothing renders
// until both fetches resolve.
func (c *CampaignController) Detail(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	token := session.AccessToken
	id := chi.URLParam(r, "id")

	campaign, businesses, err := c.fetchCampaignData(r, token, id)
	if err != nil {
		c.Flash.Error(session.ID, api.Detail(err, "Failed to load campaign"))
		http.Redirect(w, r, "/campaigns", http.StatusSeeOther)
		return
	}

	counts := service.CountByStatus(businesses)
	inFlight, _ := c.Workflow.InFlight(session.ID, id)
	notices := c.Flash.Pop(session.ID)

	var responses []model.EmailResponse
	if counts.Replied > 0 {
		var respErr error
		responses, respErr = c.Campaigns.Responses(r.Context(), token, id)
		if respErr != nil {
			notices = append(notices, flash.Notice{Level: flash.LevelError, Message: api.Detail(respErr, "Failed to load responses")})
		}
	}

	c.Views.Render(w, "campaign_detail", web.Page{
		Title:   campaign.Name,
		User:    CurrentUser(r),
		Notices: notices,
		Data: campaignDetailData{
			Campaign:   campaign,
			Businesses: businesses,
			Counts:     counts,
			InFlight:   inFlight,
			Responses:  responses,
		},
	})
}

func (c *CampaignController) fetchCampaignData(r *http.Request, token, id string) (*model.Campaign, []model.Business, error) {
	var (
		wg            sync.WaitGroup
		campaign      *model.Campaign
		businesses    []model.Business
		campaignErr   error
		businessesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		campaign, campaignErr = c.Campaigns.Get(r.Context(), token, id)
	}()
	go func() {
		defer wg.Done()
		businesses, businessesErr = c.Businesses.List(r.Context(), token, id)
	}()
	wg.Wait()

	if campaignErr != nil {
		return nil, nil, campaignErr
	}
	if businessesErr != nil {
		return nil, nil, businessesErr
	}
	return campaign, businesses, nil
}

// SendConfirm is the explicit confirmation page for the bulk send. Declining
// is just navigating away; no request reaches the backend.
func (c *CampaignController) SendConfirm(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	id := chi.URLParam(r, "id")

	campaign, businesses, err := c.fetchCampaignData(r, session.AccessToken, id)
	if err != nil {
		c.Flash.Error(session.ID, api.Detail(err, "Failed to load campaign"))
		http.Redirect(w, r, "/campaigns", http.StatusSeeOther)
		return
	}

	c.Views.Render(w, "send_confirm", web.Page{
		Title:   "Confirm send",
		User:    CurrentUser(r),
		Notices: c.Flash.Pop(session.ID),
		Data: campaignDetailData{
			Campaign: campaign,
			Counts:   service.CountByStatus(businesses),
		},
	})
}

// RunAction fires one workflow action, then redirects back to the detail
// page so the whole campaign state is re-fetched from the backend.
func (c *CampaignController) RunAction(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	token := session.AccessToken
	id := chi.URLParam(r, "id")
	action := chi.URLParam(r, "action")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	// The bulk send never fires without the explicit confirmation step.
	if action == service.ActionSend && r.FormValue("confirm") != "yes" {
		http.Redirect(w, r, "/campaigns/"+id+"/send", http.StatusSeeOther)
		return
	}

	campaign, err := c.Campaigns.Get(r.Context(), token, id)
	if err != nil {
		c.Flash.Error(session.ID, api.Detail(err, "Failed to load campaign"))
		http.Redirect(w, r, "/campaigns", http.StatusSeeOther)
		return
	}

	if err := c.Workflow.Run(r.Context(), token, session.ID, campaign, action); err != nil {
		c.Flash.Error(session.ID, api.Detail(err, err.Error()))
	} else {
		c.Flash.Success(session.ID, actionSuccessMessage(action))
	}

	http.Redirect(w, r, "/campaigns/"+id, http.StatusSeeOther)
}

func actionSuccessMessage(action string) string {
	switch action {
	case service.ActionScrape:
		return "Businesses scraped successfully!"
	case service.ActionGenerate:
		return "Emails generated successfully!"
	case service.ActionSend:
		return "Emails sent successfully!"
	case service.ActionTrack:
		return "Responses tracked successfully!"
	}
	return "Done"
}

func (c *CampaignController) Delete(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	id := chi.URLParam(r, "id")

	if err := c.Campaigns.Delete(r.Context(), session.AccessToken, id); err != nil {
		c.Flash.Error(session.ID, api.Detail(err, "Failed to delete campaign"))
	} else {
		c.Flash.Success(session.ID, "Campaign deleted")
	}
	http.Redirect(w, r, "/campaigns", http.StatusSeeOther)
}

func (c *CampaignController) AddBusiness(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	req := api.CreateBusinessRequest{
		Name:     r.FormValue("name"),
		Location: r.FormValue("location"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
	}
	if req.Name == "" {
		c.Flash.Error(session.ID, "Business name is required")
		http.Redirect(w, r, "/campaigns/"+id, http.StatusSeeOther)
		return
	}

	if _, err := c.Businesses.Create(r.Context(), session.AccessToken, id, req); err != nil {
		c.Flash.Error(session.ID, api.Detail(err, "Failed to add business"))
	} else {
		c.Flash.Success(session.ID, "Business added")
	}
	http.Redirect(w, r, "/campaigns/"+id, http.StatusSeeOther)
}

func (c *CampaignController) ApproveBusiness(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	id := chi.URLParam(r, "id")
	campaignID := r.FormValue("campaign_id")

	if _, err := c.Businesses.Approve(r.Context(), session.AccessToken, id); err != nil {
		c.Flash.Error(session.ID, api.Detail(err, "Failed to approve email"))
	} else {
		c.Flash.Success(session.ID, "Email approved")
	}
	redirectToCampaign(w, r, campaignID)
}

func (c *CampaignController) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	id := chi.URLParam(r, "id")
	campaignID := r.FormValue("campaign_id")

	if err := c.Businesses.Delete(r.Context(), session.AccessToken, id); err != nil {
		c.Flash.Error(session.ID, api.Detail(err, "Failed to delete business"))
	} else {
		c.Flash.Success(session.ID, "Business deleted")
	}
	redirectToCampaign(w, r, campaignID)
}

func redirectToCampaign(w http.ResponseWriter, r *http.Request, campaignID string) {
	if campaignID == "" {
		http.Redirect(w, r, "/campaigns", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/campaigns/"+campaignID, http.StatusSeeOther)
}
