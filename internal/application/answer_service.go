package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/curioapp/curio/internal/domain/entity"
	repo "github.com/curioapp/curio/internal/domain/repository"
)

// AnswerService orchestrates the answer lifecycle under the same gates as
// questions, with the extra requirement that the parent question exists.
type AnswerService struct {
	Answers   repo.AnswerRepository
	Questions repo.QuestionRepository
	Policy    *Policy
	Logger    *logrus.Logger
}

func NewAnswerService(answers repo.AnswerRepository, questions repo.QuestionRepository, policy *Policy, logger *logrus.Logger) *AnswerService {
	return &AnswerService{Answers: answers, Questions: questions, Policy: policy, Logger: logger}
}

// Create posts an answer against an existing question.
func (s *AnswerService) Create(ctx context.Context, token, questionUUID, content string) (*entity.Answer, error) {
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
	a := &entity.Answer{
		UUID:         uuid.NewString(),
		Content:      content,
		Date:         time.Now(),
		UserUUID:     sess.User.UUID,
		QuestionUUID: q.UUID,
	}
	if err := s.Answers.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Edit replaces the answer content and refreshes its timestamp. Owner only.
func (s *AnswerService) Edit(ctx context.Context, token, answerUUID, content string) (*entity.Answer, error) {
	sess, err := s.Policy.RequireSignedIn(ctx, token)
	if err != nil {
		return nil, err
	}
	a, err := s.Answers.GetByUUID(ctx, answerUUID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAnswerNotFound
	}
	if err := s.Policy.RequireOwner(sess, a.UserUUID); err != nil {
		return nil, err
	}
	a.Content = content
	a.Date = time.Now()
	if err := s.Answers.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the answer. Owner or admin.
func (s *AnswerService) Delete(ctx context.Context, token, answerUUID string) (*entity.Answer, error) {
	sess, err := s.Policy.RequireSignedIn(ctx, token)
	if err != nil {
		return nil, err
	}
	a, err := s.Answers.GetByUUID(ctx, answerUUID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAnswerNotFound
	}
	if err := s.Policy.RequireOwnerOrAdmin(sess, a.UserUUID); err != nil {
		return nil, err
	}
	if err := s.Answers.Delete(ctx, answerUUID); err != nil {
		return nil, err
	}
	return a, nil
}

// AllForQuestion returns the question and all answers under it, in store
// order. A question with no answers is an empty list, never a not-found.
func (s *AnswerService) AllForQuestion(ctx context.Context, token, questionUUID string) (*entity.Question, []*entity.Answer, error) {
	if _, err := s.Policy.RequireSignedIn(ctx, token); err != nil {
		return nil, nil, err
	}
	q, err := s.Questions.GetByUUID(ctx, questionUUID)
	if err != nil {
		return nil, nil, err
	}
	if q == nil {
		return nil, nil, ErrQuestionNotFound
	}
	answers, err := s.Answers.AllForQuestion(ctx, questionUUID)
	if err != nil {
		return nil, nil, err
	}
	return q, answers, nil
}
