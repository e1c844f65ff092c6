package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/curioapp/curio/internal/domain/entity"
	repo "github.com/curioapp/curio/internal/domain/repository"
)

// QuestionService orchestrates the question lifecycle. Every operation is
// gated by the policy: signed-in for reads and creates, owner-only for
// edits, owner-or-admin for deletes.
type QuestionService struct {
	Questions repo.QuestionRepository
	Users     repo.UserRepository
	Policy    *Policy
	Logger    *logrus.Logger
}

func NewQuestionService(questions repo.QuestionRepository, users repo.UserRepository, policy *Policy, logger *logrus.Logger) *QuestionService {
	return &QuestionService{Questions: questions, Users: users, Policy: policy, Logger: logger}
}

// Create posts a new question owned by the session user.
func (s *QuestionService) Create(ctx context.Context, token, content string) (*entity.Question, error) {
	sess, err := s.Policy.RequireSignedIn(ctx, token)
	if err != nil {
		return nil, err
	}
	q := &entity.Question{
		UUID:     uuid.NewString(),
		Content:  content,
		Date:     time.Now(),
		UserUUID: sess.User.UUID,
	}
	if err := s.Questions.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Edit replaces the question content. Owner only; admins get no override
// on edits.
func (s *QuestionService) Edit(ctx context.Context, token, questionUUID, content string) (*entity.Question, error) {
	sess, err := s.Policy.RequireSignedIn(ctx, token)
	if err != nil {
		return nil, err
	}
	q, err := s.Questions.GetByUUID(ctx, questionUUID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	if err := s.Policy.RequireOwner(sess, q.UserUUID); err != nil {
		return nil, err
	}
	if err := s.Questions.UpdateContent(ctx, questionUUID, content); err != nil {
		return nil, err
	}
	q.Content = content
	return q, nil
}

// Delete removes the question. Owner or admin; answers under it go away via
// the store's cascade rule.
func (s *QuestionService) Delete(ctx context.Context, token, questionUUID string) error {
	sess, err := s.Policy.RequireSignedIn(ctx, token)
	if err != nil {
		return err
	}
	q, err := s.Questions.GetByUUID(ctx, questionUUID)
	if err != nil {
		return err
	}
	if q == nil {
		return ErrQuestionNotFound
	}
	if err := s.Policy.RequireOwnerOrAdmin(sess, q.UserUUID); err != nil {
		return err
	}
	return s.Questions.Delete(ctx, questionUUID)
}

// All lists every question for any signed-in user.
func (s *QuestionService) All(ctx context.Context, token string) ([]*entity.Question, error) {
	if _, err := s.Policy.RequireSignedIn(ctx, token); err != nil {
		return nil, err
	}
	return s.Questions.All(ctx)
}

// AllByUser lists the target user's questions. The target must exist; an
// existing user with zero questions yields an empty list, not an error.
func (s *QuestionService) AllByUser(ctx context.Context, token, userUUID string) ([]*entity.Question, error) {
	if _, err := s.Policy.RequireSignedIn(ctx, token); err != nil {
		return nil, err
	}
	target, err := s.Users.GetByUUID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}
	return s.Questions.AllByUser(ctx, userUUID)
}
