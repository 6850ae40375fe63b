package repositories

import (
	"database/sql"

	intconfig "shuttle/internal/config"
	"shuttle/internal/domain"
	"shuttle/internal/domain/models"
)

// UserRepository wraps DB access for the users table.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) GetByUsername(username string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
        SELECT id, username, email, password_hash, is_staff, created_at
        FROM users
        WHERE username = ?
    `, username).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.IsStaff,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, err
	}
	return u, nil
}

func (r UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int
	err := r.db().QueryRow(`
        SELECT COUNT(*)
        FROM users
        WHERE username = ?
    `, username).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new user and returns its id.
func (r UserRepository) Create(username, email, passwordHash string, isStaff bool) (int64, error) {
	res, err := r.db().Exec(`
        INSERT INTO users (username, email, password_hash, is_staff, created_at)
        VALUES (?, ?, ?, ?, NOW())
    `, username, email, passwordHash, isStaff)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepository) CountAll() (int, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
