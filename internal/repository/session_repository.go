package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/unclebandit/leadreach-webclient/internal/errors"
	"github.com/unclebandit/leadreach-webclient/internal/model"
)

type SessionRepositoryInterface interface {
	Create(s *model.Session) error
	GetByID(id string) (*model.Session, error)
	UpdateTokens(id, accessToken, refreshToken string) error
	Delete(id string) error
	DeleteStale(olderThan time.Time) (int64, error)
}

type SessionRepository struct {
	DB *sql.DB
}

func (r *SessionRepository) Create(s *model.Session) error {
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	query := `
		INSERT INTO sessions (id, access_token, refresh_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET access_token=$2, refresh_token=$3, updated_at=$5
	`
	_, err := r.DB.Exec(query, s.ID, s.AccessToken, s.RefreshToken, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *SessionRepository) GetByID(id string) (*model.Session, error) {
	query := `
		SELECT id, access_token, refresh_token, created_at, updated_at
		FROM sessions WHERE id=$1
	`
	var s model.Session
	err := r.DB.QueryRow(query, id).Scan(&s.ID, &s.AccessToken, &s.RefreshToken, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewSessionNotFound(id)
		}
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) UpdateTokens(id, accessToken, refreshToken string) error {
	query := `UPDATE sessions SET access_token=$1, refresh_token=$2, updated_at=$3 WHERE id=$4`
	_, err := r.DB.Exec(query, accessToken, refreshToken, time.Now(), id)
	return err
}

func (r *SessionRepository) Delete(id string) error {
	_, err := r.DB.Exec(`DELETE FROM sessions WHERE id=$1`, id)
	return err
}

// DeleteStale drops sessions that have not been touched since olderThan.
// Used by the cleanup command.
func (r *SessionRepository) DeleteStale(olderThan time.Time) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM sessions WHERE updated_at < $1`, olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var _ SessionRepositoryInterface = (*SessionRepository)(nil)
