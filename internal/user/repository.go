package user

import (
	"context"
	"database/sql"
	"errors"

	"fixitplus-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, name, email, password, role string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, password, role string) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, email, password, role, avatar_url, created_at`,
		name, email, password, role,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.AvatarURL, &u.CreatedAt)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, role, avatar_url, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.AvatarURL, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	return u, err
}

func (r *repository) FindByID(ctx context.Context, id string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, role, avatar_url, created_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.AvatarURL, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	return u, err
}

// UpdateProfile touches name/email/avatar only. Role is immutable after
// creation and is deliberately absent from this statement.
func (r *repository) UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProfile"),
		zap.String("user_id", params.UserID),
	)

	// COALESCE keeps existing values when the input field is nil
	var u User
	err := r.db.QueryRowContext(ctx,
		`UPDATE users
		 SET name = COALESCE($2, name),
			email = COALESCE($3, email),
			avatar_url = COALESCE($4, avatar_url)
		 WHERE id = $1
		 RETURNING id, name, email, password, role, avatar_url, created_at`,
		params.UserID, params.Name, params.Email, params.AvatarURL,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.AvatarURL, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		log.Info("user not found")
		return User{}, ErrUserNotFound
	}
	if err != nil {
		log.Error("failed to update profile", zap.Error(err))
		return User{}, err
	}

	return u, nil
}
