package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioapp/curio/internal/domain/entity"
)

func TestSessionCreateAndResolve(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	u := e.addUser(t, "alice", entity.RoleNonAdmin)

	sess, err := e.authority.Create(ctx, u)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.AccessToken)
	assert.Equal(t, sess.LoginAt.Add(DefaultSessionTTL), sess.ExpiresAt)

	got, err := e.authority.Resolve(ctx, sess.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.UUID, got.User.UUID)
}

func TestResolveUnknownToken(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.authority.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolveTokenMatchIsExact(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	u := e.addUser(t, "alice", entity.RoleNonAdmin)
	token := e.openSession(t, u)

	_, err := e.authority.Resolve(ctx, token+"x")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = e.authority.Resolve(ctx, token)
	assert.NoError(t, err)
}

func TestResolveClosedSession(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	u := e.addUser(t, "alice", entity.RoleNonAdmin)
	token := e.openSession(t, u)

	_, err := e.authority.Close(ctx, token)
	require.NoError(t, err)

	_, err = e.authority.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestCloseIsNotIdempotent(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	u := e.addUser(t, "alice", entity.RoleNonAdmin)
	token := e.openSession(t, u)

	userUUID, err := e.authority.Close(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.UUID, userUUID)

	_, err = e.authority.Close(ctx, token)
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestCloseUnknownToken(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.authority.Close(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestExpiryIgnoredByDefault(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	u := e.addUser(t, "alice", entity.RoleNonAdmin)
	token := e.openSession(t, u)

	// Jump past the validity window; without enforcement only LogoutAt counts.
	e.authority.now = func() time.Time { return time.Now().Add(DefaultSessionTTL + time.Hour) }

	_, err := e.authority.Resolve(ctx, token)
	assert.NoError(t, err)
}

func TestExpiryEnforcedWhenEnabled(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	u := e.addUser(t, "alice", entity.RoleNonAdmin)
	token := e.openSession(t, u)

	e.authority.EnforceExpiry = true
	e.authority.now = func() time.Time { return time.Now().Add(DefaultSessionTTL + time.Hour) }

	_, err := e.authority.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestConcurrentSessionsAreIndependent(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	u := e.addUser(t, "alice", entity.RoleNonAdmin)
	first := e.openSession(t, u)
	second := e.openSession(t, u)
	require.NotEqual(t, first, second)

	_, err := e.authority.Close(ctx, first)
	require.NoError(t, err)

	_, err = e.authority.Resolve(ctx, first)
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = e.authority.Resolve(ctx, second)
	assert.NoError(t, err)
}
