package repository

import (
	"context"

	"github.com/curioapp/curio/internal/domain/entity"
)

// AnswerRepository persists answers with owner and parent question
// references. GetByUUID returns (nil, nil) when no row matches.
type AnswerRepository interface {
	Create(ctx context.Context, a *entity.Answer) error
	GetByUUID(ctx context.Context, uuid string) (*entity.Answer, error)
	Update(ctx context.Context, a *entity.Answer) error
	Delete(ctx context.Context, uuid string) error
	AllForQuestion(ctx context.Context, questionUUID string) ([]*entity.Answer, error)
}
