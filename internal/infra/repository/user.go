package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookit-api/internal/domain/user"
	"bookit-api/internal/infra"
	"bookit-api/internal/infra/db"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const createUserSQL = `
INSERT INTO users (id, name, email, password_hash, role, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	_, err := dbtx.Exec(ctx, createUserSQL,
		u.ID(),
		u.Name().Value(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

const findUserByIDSQL = `
SELECT id, name, email, password_hash, role, created_at
FROM users
WHERE id = $1
`

func (r *UserRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.User, error) {
	return r.scanUser(ctx, dbtx, findUserByIDSQL, id)
}

const findUserByEmailSQL = `
SELECT id, name, email, password_hash, role, created_at
FROM users
WHERE email = $1
`

func (r *UserRepository) FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*user.User, error) {
	return r.scanUser(ctx, dbtx, findUserByEmailSQL, email)
}

const updateUserSQL = `
UPDATE users
SET name = $2, email = $3, password_hash = $4
WHERE id = $1
`

func (r *UserRepository) Update(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	tag, err := dbtx.Exec(ctx, updateUserSQL,
		u.ID(),
		u.Name().Value(),
		u.Email().Value(),
		u.PasswordHash(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *UserRepository) scanUser(ctx context.Context, dbtx db.DBTX, query string, arg any) (*user.User, error) {
	var (
		id           uuid.UUID
		name         string
		email        string
		passwordHash string
		roleStr      string
		createdAt    time.Time
	)

	row := dbtx.QueryRow(ctx, query, arg)
	if err := row.Scan(&id, &name, &email, &passwordHash, &roleStr, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid role stored for user", err)
	}

	return user.ReconstructUser(id, name, email, passwordHash, role, createdAt), nil
}
