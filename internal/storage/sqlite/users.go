package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/smartchef/smartchef/internal/models"
	"github.com/smartchef/smartchef/internal/storage"
)

const userColumns = `id, email, display_name, password_hash, bio, avatar_url, dietary_preferences, created_at, updated_at`

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		strings.ToLower(user.Email),
		user.DisplayName,
		user.PasswordHash,
		user.Bio,
		user.AvatarURL,
		encodeStrings(user.DietaryPreferences),
		user.CreatedAt,
		user.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return fmt.Errorf("user %s: %w", user.Email, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, strings.ToLower(email)))
	if err == sql.ErrNoRows {
		return nil, notFound("user", email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, notFound("user", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// UpdateUser saves profile fields and the password hash.
func (s *SQLiteStore) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET display_name = ?, password_hash = ?, bio = ?, avatar_url = ?, dietary_preferences = ?, updated_at = ?
		WHERE id = ?`,
		user.DisplayName,
		user.PasswordHash,
		user.Bio,
		user.AvatarURL,
		encodeStrings(user.DietaryPreferences),
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return checkAffected(res, "user", user.ID)
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var prefs string
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		&user.Bio,
		&user.AvatarURL,
		&prefs,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if user.DietaryPreferences, err = decodeStrings(prefs); err != nil {
		return nil, err
	}
	return user, nil
}
