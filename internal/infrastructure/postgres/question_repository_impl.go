package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curioapp/curio/internal/domain/entity"
	"github.com/curioapp/curio/internal/domain/repository"
)

type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func (r *QuestionRepository) Create(ctx context.Context, q *entity.Question) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO question (uuid, content, date, user_uuid)
		VALUES ($1, $2, $3, $4)
	`, q.UUID, q.Content, q.Date, q.UserUUID)
	return err
}

func (r *QuestionRepository) GetByUUID(ctx context.Context, uuid string) (*entity.Question, error) {
	q := &entity.Question{}
	row := r.pool.QueryRow(ctx, `
		SELECT uuid, content, date, user_uuid FROM question WHERE uuid = $1
	`, uuid)
	if err := row.Scan(&q.UUID, &q.Content, &q.Date, &q.UserUUID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return q, nil
}

func (r *QuestionRepository) UpdateContent(ctx context.Context, uuid, content string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE question SET content = $2 WHERE uuid = $1
	`, uuid, content)
	return err
}

func (r *QuestionRepository) Delete(ctx context.Context, uuid string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM question WHERE uuid = $1`, uuid)
	return err
}

func (r *QuestionRepository) All(ctx context.Context) ([]*entity.Question, error) {
	rows, err := r.pool.Query(ctx, `SELECT uuid, content, date, user_uuid FROM question`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *QuestionRepository) AllByUser(ctx context.Context, userUUID string) ([]*entity.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uuid, content, date, user_uuid FROM question WHERE user_uuid = $1
	`, userUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func scanQuestions(rows pgx.Rows) ([]*entity.Question, error) {
	out := make([]*entity.Question, 0)
	for rows.Next() {
		q := &entity.Question{}
		if err := rows.Scan(&q.UUID, &q.Content, &q.Date, &q.UserUUID); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

var _ repository.QuestionRepository = (*QuestionRepository)(nil)
