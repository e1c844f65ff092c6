package repository

import (
	"context"
	"time"

	"github.com/curioapp/curio/internal/domain/entity"
)

// SessionRepository persists authentication sessions. FindByToken loads the
// owning user alongside the session; token matching is exact and
// case-sensitive and FindByToken returns (nil, nil) when nothing matches.
// Sessions are only ever marked closed, never removed.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session, userUUID string) error
	FindByToken(ctx context.Context, token string) (*entity.Session, error)
	MarkSignedOut(ctx context.Context, token string, at time.Time) error
}
