package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/curioapp/curio/internal/domain/entity"
	repo "github.com/curioapp/curio/internal/domain/repository"
	"github.com/curioapp/curio/pkg/helpers"
)

// SessionService is the session authority: it owns token issuance and the
// signed-in/signed-out gate every other operation delegates to.
type SessionService struct {
	Sessions repo.SessionRepository
	Minter   *helpers.TokenMinter
	Logger   *logrus.Logger

	// TTL is the fixed validity window stamped on every session (8h).
	TTL time.Duration
	// EnforceExpiry additionally treats an elapsed ExpiresAt as closed.
	// Off by default: LogoutAt is the sole authoritative state.
	EnforceExpiry bool

	now func() time.Time
}

const DefaultSessionTTL = 8 * time.Hour

func NewSessionService(sessions repo.SessionRepository, minter *helpers.TokenMinter, logger *logrus.Logger, ttl time.Duration, enforceExpiry bool) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		Sessions:      sessions,
		Minter:        minter,
		Logger:        logger,
		TTL:           ttl,
		EnforceExpiry: enforceExpiry,
		now:           time.Now,
	}
}

// Resolve maps a bearer token to its session. ErrUnauthenticated when no
// session matches; ErrSessionClosed when the session was signed out or,
// with EnforceExpiry, its window elapsed.
func (s *SessionService) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	sess, err := s.Sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	if sess.Closed() {
		return nil, ErrSessionClosed
	}
	if s.EnforceExpiry && sess.Expired(s.now()) {
		return nil, ErrSessionClosed
	}
	return sess, nil
}

// Create issues a fresh session for the user: new session uuid, token
// stamped over it, LoginAt=now, ExpiresAt=now+TTL. A user may hold any
// number of concurrent sessions.
func (s *SessionService) Create(ctx context.Context, u *entity.User) (*entity.Session, error) {
	now := s.now()
	sess := &entity.Session{
		UUID:      uuid.NewString(),
		LoginAt:   now,
		ExpiresAt: now.Add(s.TTL),
		User:      u,
	}
	token, err := s.Minter.Mint(sess.UUID, sess.LoginAt, sess.ExpiresAt)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_uuid", u.UUID).Error("mint access token failed")
		}
		return nil, err
	}
	sess.AccessToken = token
	if err := s.Sessions.Create(ctx, sess, u.UUID); err != nil {
		return nil, err
	}
	return sess, nil
}

// Close signs the session out by setting LogoutAt. ErrNotSignedIn when the
// token does not resolve to an open session; closing an already-closed
// session fails the same way rather than succeeding twice.
func (s *SessionService) Close(ctx context.Context, token string) (string, error) {
	sess, err := s.Sessions.FindByToken(ctx, token)
	if err != nil {
		return "", err
	}
	if sess == nil || sess.Closed() {
		return "", ErrNotSignedIn
	}
	if err := s.Sessions.MarkSignedOut(ctx, token, s.now()); err != nil {
		return "", err
	}
	return sess.User.UUID, nil
}
