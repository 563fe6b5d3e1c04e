package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduguru-api/internal/models"
)

// UserRepository manages persistence for user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername fetches a full user row, including the password hash.
// Returns sql.ErrNoRows when the username is unknown.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	query := `SELECT id, username, password, name, role, avatar, created_at, updated_at
        FROM users WHERE username = $1`
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID fetches the public view of a user.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.PublicUser, error) {
	var user models.PublicUser
	query := `SELECT id, username, name, role, avatar FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameExists reports whether a username is already taken.
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.db.GetContext(ctx, &one, `SELECT 1 FROM users WHERE username = $1 LIMIT 1`, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check username: %w", err)
	}
	return true, nil
}

// Create inserts a new user account.
func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	query := `INSERT INTO users (id, username, password, name, role, avatar)
        VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.Name, user.Role, user.Avatar); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// PasswordHash fetches only the stored password hash for a user.
func (r *UserRepository) PasswordHash(ctx context.Context, id string) (string, error) {
	var hash string
	if err := r.db.GetContext(ctx, &hash, `SELECT password FROM users WHERE id = $1`, id); err != nil {
		return "", fmt.Errorf("fetch password hash: %w", err)
	}
	return hash, nil
}

// ProfileUpdate carries the optional fields of a profile update. Nil fields
// are left untouched.
type ProfileUpdate struct {
	Name         *string
	Avatar       *string
	PasswordHash *string
}

// UpdateProfile applies the non-nil fields of the update.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) error {
	sets := []string{}
	args := []interface{}{}

	if update.Name != nil {
		args = append(args, *update.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if update.Avatar != nil {
		args = append(args, *update.Avatar)
		sets = append(sets, fmt.Sprintf("avatar = $%d", len(args)))
	}
	if update.PasswordHash != nil {
		args = append(args, *update.PasswordHash)
		sets = append(sets, fmt.Sprintf("password = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
