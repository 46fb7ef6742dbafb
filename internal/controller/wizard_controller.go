// internal/controller/wizard_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	"github.com/unclebandit/leadreach-webclient/internal/flash"
	"github.com/unclebandit/leadreach-webclient/internal/model"
	"github.com/unclebandit/leadreach-webclient/internal/service"
	"github.com/unclebandit/leadreach-webclient/internal/web"
)

type WizardController struct {
	Campaigns api.CampaignAPIInterface
	Flash     *flash.Store
	Views     *web.Templates
}

type wizardData struct {
	Step int
	Form service.WizardForm
}

func (c *WizardController) NewPage(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	c.Views.Render(w, "campaign_new", web.Page{
		Title:   "New campaign",
		User:    CurrentUser(r),
		Notices: c.Flash.Pop(session.ID),
		Data: wizardData{
			Step: service.StepBasicInfo,
			Form: service.WizardForm{
				OutreachType: model.OutreachGeneralHelp,
				DataSource:   model.DataSourceGoogleMaps,
			},
		},
	})
}

// Step handles Back/Next/Submit. Only the step being left gets validated:
// going back and jumping forward again never re-runs earlier gates.
func (c *WizardController) Step(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	step, err := strconv.Atoi(r.FormValue("step"))
	if err != nil || step < service.StepBasicInfo || step > service.StepSheet {
		step = service.StepBasicInfo
	}
	form := service.WizardForm{
		Name:            r.FormValue("name"),
		BusinessType:    r.FormValue("business_type"),
		OutreachType:    r.FormValue("outreach_type"),
		AutomationFocus: r.FormValue("automation_focus"),
		DataSource:      r.FormValue("data_source"),
		GoogleSheetID:   r.FormValue("google_sheet_id"),
	}

	switch r.FormValue("nav") {
	case "back":
		if step > service.StepBasicInfo {
			step--
		}
		c.renderStep(w, r, step, form, nil)
		return

	case "submit":
		// Submission leaves the wizard entirely, so the strategy gate binds
		// again even though back-navigation never re-runs it.
		if err := service.ValidateStep(service.StepStrategy, form); err != nil {
			c.renderStep(w, r, service.StepStrategy, form, err)
			return
		}
		if err := service.ValidateStep(service.StepSheet, form); err != nil {
			c.renderStep(w, r, service.StepSheet, form, err)
			return
		}

		campaign, err := c.Campaigns.Create(r.Context(), CurrentSession(r).AccessToken, form.Payload())
		if err != nil {
			// keep the form populated for retry
			c.renderStep(w, r, service.StepSheet, form, err)
			return
		}
		c.Flash.Success(session.ID, "Campaign created successfully!")
		http.Redirect(w, r, "/campaigns/"+campaign.ID, http.StatusSeeOther)
		return

	default: // next
		if err := service.ValidateStep(step, form); err != nil {
			c.renderStep(w, r, step, form, err)
			return
		}
		if step < service.StepSheet {
			step++
		}
		c.renderStep(w, r, step, form, nil)
		return
	}
}

func (c *WizardController) renderStep(w http.ResponseWriter, r *http.Request, step int, form service.WizardForm, stepErr error) {
	session := CurrentSession(r)
	notices := c.Flash.Pop(session.ID)
	if stepErr != nil {
		notices = append(notices, flash.Notice{Level: flash.LevelError, Message: api.Detail(stepErr, stepErr.Error())})
	}

	c.Views.Render(w, "campaign_new", web.Page{
		Title:   "New campaign",
		User:    CurrentUser(r),
		Notices: notices,
		Data:    wizardData{Step: step, Form: form},
	})
}
