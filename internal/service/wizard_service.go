// internal/service/wizard_service.go
package service

import (
	"fmt"
	"strings"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	"github.com/unclebandit/leadreach-webclient/internal/model"
)

// Wizard steps. Validation is forward-only: moving past a step validates that
// step and nothing earlier.
const (
	StepBasicInfo  = 1
	StepStrategy   = 2
	StepDataSource = 3
	StepSheet      = 4
)

// WizardForm carries the accumulated answers between steps; the server keeps
// no wizard state of its own.
type WizardForm struct {
	Name            string
	BusinessType    string
	OutreachType    string
	AutomationFocus string
	DataSource      string
	GoogleSheetID   string
}

// ValidateStep checks the gate for a single step.
func ValidateStep(step int, f WizardForm) error {
	switch step {
	case StepBasicInfo:
		if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.BusinessType) == "" {
			return fmt.Errorf("Please fill in all fields")
		}
	case StepStrategy:
		if f.OutreachType == model.OutreachSpecificAutomation && strings.TrimSpace(f.AutomationFocus) == "" {
			return fmt.Errorf("Please select an automation focus")
		}
	case StepSheet:
		if strings.TrimSpace(f.GoogleSheetID) == "" {
			return fmt.Errorf("Please enter a Google Sheet ID")
		}
	}
	return nil
}

// Payload assembles the create request. automation_focus only travels when
// the strategy actually uses it.
func (f WizardForm) Payload() api.CreateCampaignRequest {
	req := api.CreateCampaignRequest{
		Name:          f.Name,
		BusinessType:  f.BusinessType,
		OutreachType:  f.OutreachType,
		DataSource:    f.DataSource,
		GoogleSheetID: f.GoogleSheetID,
	}
	if f.OutreachType == model.OutreachSpecificAutomation {
		focus := f.AutomationFocus
		req.AutomationFocus = &focus
	}
	return req
}
