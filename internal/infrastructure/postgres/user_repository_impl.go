package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curioapp/curio/internal/application"
	"github.com/curioapp/curio/internal/domain/entity"
	"github.com/curioapp/curio/internal/domain/repository"
)

const userColumns = `uuid, first_name, last_name, user_name, email, password, salt, country, about_me, dob, role, contact_number, created_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, u.UUID, u.FirstName, u.LastName, u.UserName, u.Email, u.Password, u.Salt,
		u.Country, u.AboutMe, u.DOB, u.Role, u.ContactNumber, u.CreatedAt)
	if err != nil {
		// Concurrent signups race past the service-level existence checks;
		// the unique constraints are the final word.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_user_name_key":
				return application.ErrDuplicateUserName
			case "users_email_key":
				return application.ErrDuplicateEmail
			}
		}
		return err
	}
	return nil
}

func (r *UserRepository) scanRow(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.UUID, &u.FirstName, &u.LastName, &u.UserName, &u.Email,
		&u.Password, &u.Salt, &u.Country, &u.AboutMe, &u.DOB, &u.Role,
		&u.ContactNumber, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByUUID(ctx context.Context, uuid string) (*entity.User, error) {
	return r.scanRow(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE uuid = $1`, uuid))
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*entity.User, error) {
	return r.scanRow(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_name = $1`, userName))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.scanRow(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) Delete(ctx context.Context, uuid string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE uuid = $1`, uuid)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return application.ErrUserNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
