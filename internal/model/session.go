// internal/model/session.go
package model

import "time"

// Session holds the backend token pair for one browser. The browser itself
// only carries the opaque session id cookie.
type Session struct {
	ID           string    `db:"id"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
