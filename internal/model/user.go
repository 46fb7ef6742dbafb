// internal/model/user.go
package model

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Settings is what GET /api/auth/settings returns. Secrets are never echoed
// back, only has_* presence flags.
type Settings struct {
	GmailAddress       string `json:"gmail_address,omitempty"`
	TelegramChatID     string `json:"telegram_chat_id,omitempty"`
	NotificationMethod string `json:"notification_method"`
	HasGeminiAPIKey    bool   `json:"has_gemini_api_key"`
	HasGmailPassword   bool   `json:"has_gmail_app_password"`
	HasTelegramToken   bool   `json:"has_telegram_bot_token"`
}

// SettingsUpdate is the PUT body. Secret fields are write-only: an empty value
// is omitted from the wire entirely, which the backend reads as "leave unchanged".
type SettingsUpdate struct {
	GeminiAPIKey       string `json:"gemini_api_key,omitempty"`
	GmailAddress       string `json:"gmail_address,omitempty"`
	GmailAppPassword   string `json:"gmail_app_password,omitempty"`
	TelegramBotToken   string `json:"telegram_bot_token,omitempty"`
	TelegramChatID     string `json:"telegram_chat_id,omitempty"`
	NotificationMethod string `json:"notification_method"`
}
