package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curioapp/curio/internal/domain/entity"
	"github.com/curioapp/curio/internal/domain/repository"
)

type AnswerRepository struct {
	pool *pgxpool.Pool
}

func NewAnswerRepository(pool *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{pool: pool}
}

func (r *AnswerRepository) Create(ctx context.Context, a *entity.Answer) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO answer (uuid, ans, date, user_uuid, question_uuid)
		VALUES ($1, $2, $3, $4, $5)
	`, a.UUID, a.Content, a.Date, a.UserUUID, a.QuestionUUID)
	return err
}

func (r *AnswerRepository) GetByUUID(ctx context.Context, uuid string) (*entity.Answer, error) {
	a := &entity.Answer{}
	row := r.pool.QueryRow(ctx, `
		SELECT uuid, ans, date, user_uuid, question_uuid FROM answer WHERE uuid = $1
	`, uuid)
	if err := row.Scan(&a.UUID, &a.Content, &a.Date, &a.UserUUID, &a.QuestionUUID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *AnswerRepository) Update(ctx context.Context, a *entity.Answer) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE answer SET ans = $2, date = $3 WHERE uuid = $1
	`, a.UUID, a.Content, a.Date)
	return err
}

func (r *AnswerRepository) Delete(ctx context.Context, uuid string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM answer WHERE uuid = $1`, uuid)
	return err
}

func (r *AnswerRepository) AllForQuestion(ctx context.Context, questionUUID string) ([]*entity.Answer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uuid, ans, date, user_uuid, question_uuid FROM answer WHERE question_uuid = $1
	`, questionUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*entity.Answer, 0)
	for rows.Next() {
		a := &entity.Answer{}
		if err := rows.Scan(&a.UUID, &a.Content, &a.Date, &a.UserUUID, &a.QuestionUUID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ repository.AnswerRepository = (*AnswerRepository)(nil)
