package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/curioapp/curio/internal/domain/entity"
	"github.com/curioapp/curio/pkg/helpers"
)

type testEnv struct {
	users     *memUserRepo
	sessions  *memSessionRepo
	questions *memQuestionRepo
	answers   *memAnswerRepo

	authority *SessionService
	policy    *Policy

	userSvc     *UserService
	questionSvc *QuestionService
	answerSvc   *AnswerService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	e := &testEnv{
		users:     newMemUserRepo(),
		sessions:  newMemSessionRepo(),
		questions: newMemQuestionRepo(),
		answers:   newMemAnswerRepo(),
	}
	minter := helpers.NewTokenMinter("test-secret")
	e.authority = NewSessionService(e.sessions, minter, logger, DefaultSessionTTL, false)
	e.policy = NewPolicy(e.authority)
	e.userSvc = NewUserService(e.users, e.authority, e.policy, logger)
	e.questionSvc = NewQuestionService(e.questions, e.users, e.policy, logger)
	e.answerSvc = NewAnswerService(e.answers, e.questions, e.policy, logger)
	return e
}

// addUser inserts a user straight into the store, skipping signup's hashing.
func (e *testEnv) addUser(t *testing.T, userName string, role entity.Role) *entity.User {
	t.Helper()
	u := &entity.User{
		UUID:      uuid.NewString(),
		FirstName: "Test",
		LastName:  "User",
		UserName:  userName,
		Email:     userName + "@example.com",
		Role:      role,
		CreatedAt: time.Now(),
	}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

// openSession issues a session for the user and returns its bearer token.
func (e *testEnv) openSession(t *testing.T, u *entity.User) string {
	t.Helper()
	sess, err := e.authority.Create(context.Background(), u)
	require.NoError(t, err)
	return sess.AccessToken
}
