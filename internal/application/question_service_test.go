package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioapp/curio/internal/domain/entity"
)

func TestQuestionCreateAndListRoundTrip(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.addUser(t, "alice", entity.RoleNonAdmin)
	token := e.openSession(t, alice)

	q, err := e.questionSvc.Create(ctx, token, "What is a goroutine?")
	require.NoError(t, err)
	assert.Equal(t, alice.UUID, q.UserUUID)
	assert.NotEmpty(t, q.UUID)

	all, err := e.questionSvc.All(ctx, token)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, q.UUID, all[0].UUID)
	assert.Equal(t, "What is a goroutine?", all[0].Content)
}

func TestQuestionCreateRequiresSession(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.questionSvc.Create(context.Background(), "bogus", "content")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestQuestionCreateRejectsClosedSession(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.addUser(t, "alice", entity.RoleNonAdmin)
	token := e.openSession(t, alice)
	_, err := e.authority.Close(ctx, token)
	require.NoError(t, err)

	_, err = e.questionSvc.Create(ctx, token, "content")
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestQuestionEditOwnerOnly(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.addUser(t, "alice", entity.RoleNonAdmin)
	bob := e.addUser(t, "bob", entity.RoleNonAdmin)
	admin := e.addUser(t, "admin", entity.RoleAdmin)
	aliceTok := e.openSession(t, alice)
	bobTok := e.openSession(t, bob)
	adminTok := e.openSession(t, admin)

	q, err := e.questionSvc.Create(ctx, aliceTok, "original")
	require.NoError(t, err)

	_, err = e.questionSvc.Edit(ctx, bobTok, q.UUID, "hijacked")
	assert.ErrorIs(t, err, ErrForbidden)

	// Admins cannot edit someone else's question either.
	_, err = e.questionSvc.Edit(ctx, adminTok, q.UUID, "hijacked")
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := e.questionSvc.Edit(ctx, aliceTok, q.UUID, "updated")
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Content)

	stored, err := e.questions.GetByUUID(ctx, q.UUID)
	require.NoError(t, err)
	assert.Equal(t, "updated", stored.Content)
}

func TestQuestionEditMissing(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.addUser(t, "alice", entity.RoleNonAdmin)
	token := e.openSession(t, alice)

	_, err := e.questionSvc.Edit(ctx, token, "no-such-question", "content")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestQuestionDeleteOwnerOrAdmin(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.addUser(t, "alice", entity.RoleNonAdmin)
	bob := e.addUser(t, "bob", entity.RoleNonAdmin)
	admin := e.addUser(t, "admin", entity.RoleAdmin)
	aliceTok := e.openSession(t, alice)
	bobTok := e.openSession(t, bob)
	adminTok := e.openSession(t, admin)

	q1, err := e.questionSvc.Create(ctx, aliceTok, "first")
	require.NoError(t, err)
	q2, err := e.questionSvc.Create(ctx, aliceTok, "second")
	require.NoError(t, err)

	assert.ErrorIs(t, e.questionSvc.Delete(ctx, bobTok, q1.UUID), ErrForbidden)
	assert.NoError(t, e.questionSvc.Delete(ctx, aliceTok, q1.UUID))
	assert.NoError(t, e.questionSvc.Delete(ctx, adminTok, q2.UUID))

	all, err := e.questionSvc.All(ctx, aliceTok)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestQuestionAllByUser(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	alice := e.addUser(t, "alice", entity.RoleNonAdmin)
	bob := e.addUser(t, "bob", entity.RoleNonAdmin)
	aliceTok := e.openSession(t, alice)
	bobTok := e.openSession(t, bob)

	_, err := e.questionSvc.Create(ctx, aliceTok, "alice q1")
	require.NoError(t, err)
	_, err = e.questionSvc.Create(ctx, bobTok, "bob q1")
	require.NoError(t, err)
	_, err = e.questionSvc.Create(ctx, aliceTok, "alice q2")
	require.NoError(t, err)

	got, err := e.questionSvc.AllByUser(ctx, bobTok, alice.UUID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice q1", got[0].Content)
	assert.Equal(t, "alice q2", got[1].Content)

	// A user with no questions yields an empty list, not an error.
	carol := e.addUser(t, "carol", entity.RoleNonAdmin)
	got, err = e.questionSvc.AllByUser(ctx, bobTok, carol.UUID)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = e.questionSvc.AllByUser(ctx, bobTok, "no-such-uuid")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
