package repositories

import (
	"database/sql"

	intconfig "shuttle/internal/config"
	"shuttle/internal/domain/models"
)

// AuthLogRepository wraps DB access for the append-only auth_logs table.
type AuthLogRepository struct {
	DB *sql.DB
}

func (r AuthLogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Append records an auth event. userID 0 is stored as NULL.
func (r AuthLogRepository) Append(event string, userID int64, username string) error {
	_, err := r.db().Exec(`
        INSERT INTO auth_logs (event, user_id, username, timestamp)
        VALUES (?, NULLIF(?,0), ?, NOW())
    `, event, userID, username)
	return err
}

// List returns auth logs newest-first, optionally filtered by event kind.
// The filter is applied before the limit.
func (r AuthLogRepository) List(event string, limit int) ([]models.AuthLog, error) {
	query := `
        SELECT id, event, COALESCE(user_id, 0), username, timestamp
        FROM auth_logs`
	args := []any{}
	if event != "" {
		query += ` WHERE event = ?`
		args = append(args, event)
	}
	query += ` ORDER BY timestamp DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.AuthLog{}
	for rows.Next() {
		var l models.AuthLog
		if err := rows.Scan(&l.ID, &l.Event, &l.UserID, &l.Username, &l.Timestamp); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
