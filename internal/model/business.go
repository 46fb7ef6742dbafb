// internal/model/business.go
package model

// Business email lifecycle: draft -> approved -> sent -> replied.
// Transitions happen on the backend only; the client just asks for them.
const (
	BusinessDraft    = "draft"
	BusinessApproved = "approved"
	BusinessSent     = "sent"
	BusinessReplied  = "replied"
)

type Business struct {
	ID               string `json:"id"`
	CampaignID       string `json:"campaign_id"`
	Name             string `json:"name"`
	Location         string `json:"location,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Website          string `json:"website,omitempty"`
	Status           string `json:"status"`
	GeneratedSubject string `json:"generated_subject,omitempty"`
	GeneratedBody    string `json:"generated_body,omitempty"`
}

// EmailResponse is a tracked reply returned by GET /api/campaigns/{id}/responses.
type EmailResponse struct {
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	Subject      string `json:"subject"`
	Snippet      string `json:"snippet"`
	ReceivedAt   string `json:"received_at"`
}
