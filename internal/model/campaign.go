// internal/model/campaign.go
package model

import "time"

// Outreach strategies offered by the backend.
const (
	OutreachGeneralHelp        = "general_help"
	OutreachSpecificAutomation = "specific_automation"
)

// Data sources for campaign leads.
const (
	DataSourceGoogleMaps = "google_maps"
	DataSourceJSONFile   = "json_file"
	DataSourceManual     = "manual"
)

// Campaign statuses.
const (
	CampaignActive    = "active"
	CampaignPaused    = "paused"
	CampaignCompleted = "completed"
)

type Campaign struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	BusinessType    string     `json:"business_type"`
	OutreachType    string     `json:"outreach_type"`
	AutomationFocus *string    `json:"automation_focus,omitempty"`
	DataSource      string     `json:"data_source"`
	GoogleSheetID   string     `json:"google_sheet_id,omitempty"`
	Status          string     `json:"status"`
	TotalBusinesses int        `json:"total_businesses"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// CampaignStats is the dashboard summary returned by GET /api/campaigns/stats.
type CampaignStats struct {
	TotalCampaigns  int     `json:"total_campaigns"`
	ActiveCampaigns int     `json:"active_campaigns"`
	TotalBusinesses int     `json:"total_businesses"`
	EmailsSent      int     `json:"emails_sent"`
	ResponseRate    float64 `json:"response_rate"`
}
