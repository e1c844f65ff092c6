package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curioapp/curio/internal/domain/entity"
	"github.com/curioapp/curio/internal/domain/repository"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, s *entity.Session, userUUID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_auth (uuid, user_uuid, access_token, login_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`, s.UUID, userUUID, s.AccessToken, s.LoginAt, s.ExpiresAt)
	return err
}

// FindByToken joins the owning user so gates can read role and uuid without
// a second round trip. Token comparison is exact (text equality).
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	s := &entity.Session{User: &entity.User{}}
	row := r.pool.QueryRow(ctx, `
		SELECT a.uuid, a.access_token, a.login_at, a.expires_at, a.logout_at,
		       u.uuid, u.first_name, u.last_name, u.user_name, u.email,
		       u.password, u.salt, u.country, u.about_me, u.dob, u.role,
		       u.contact_number, u.created_at
		FROM user_auth a
		JOIN users u ON u.uuid = a.user_uuid
		WHERE a.access_token = $1
	`, token)
	if err := row.Scan(&s.UUID, &s.AccessToken, &s.LoginAt, &s.ExpiresAt, &s.LogoutAt,
		&s.User.UUID, &s.User.FirstName, &s.User.LastName, &s.User.UserName, &s.User.Email,
		&s.User.Password, &s.User.Salt, &s.User.Country, &s.User.AboutMe, &s.User.DOB,
		&s.User.Role, &s.User.ContactNumber, &s.User.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *SessionRepository) MarkSignedOut(ctx context.Context, token string, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE user_auth SET logout_at = $2 WHERE access_token = $1
	`, token, at)
	return err
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
