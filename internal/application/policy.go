package application

import (
	"context"

	"github.com/curioapp/curio/internal/domain/entity"
)

// Policy layers ownership and role rules on top of the session authority.
// Edit is an authorship act (owner only, even for admins); delete is a
// moderation act (owner or admin); user deletion is moderation only.
type Policy struct {
	Authority *SessionService
}

func NewPolicy(authority *SessionService) *Policy {
	return &Policy{Authority: authority}
}

// RequireSignedIn is the universal first gate: it resolves the token to an
// active session or fails with ErrUnauthenticated / ErrSessionClosed.
func (p *Policy) RequireSignedIn(ctx context.Context, token string) (*entity.Session, error) {
	return p.Authority.Resolve(ctx, token)
}

// RequireOwner fails with ErrForbidden unless the session user owns the
// resource. No admin override.
func (p *Policy) RequireOwner(sess *entity.Session, ownerUUID string) error {
	if sess.User.UUID != ownerUUID {
		return ErrForbidden
	}
	return nil
}

// RequireOwnerOrAdmin fails with ErrForbidden unless the session user owns
// the resource or holds the admin role.
func (p *Policy) RequireOwnerOrAdmin(sess *entity.Session, ownerUUID string) error {
	if sess.User.UUID != ownerUUID && !sess.User.Role.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// RequireAdmin fails with ErrForbidden unless the session user is an admin.
func (p *Policy) RequireAdmin(sess *entity.Session) error {
	if !sess.User.Role.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
