package repository

import (
	"context"

	"github.com/curioapp/curio/internal/domain/entity"
)

// QuestionRepository persists questions with owner references. GetByUUID
// returns (nil, nil) when no row matches.
type QuestionRepository interface {
	Create(ctx context.Context, q *entity.Question) error
	GetByUUID(ctx context.Context, uuid string) (*entity.Question, error)
	UpdateContent(ctx context.Context, uuid, content string) error
	Delete(ctx context.Context, uuid string) error
	All(ctx context.Context) ([]*entity.Question, error)
	AllByUser(ctx context.Context, userUUID string) ([]*entity.Question, error)
}
