package db

import (
	"database/sql"
	"fmt"
	"strings"
)

const tokenKey = "auth_token"

// SaveToken persists the opaque session token so it survives restarts.
func SaveToken(sqldb *sql.DB, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token is required")
	}
	_, err := sqldb.Exec(`
INSERT INTO credentials(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, tokenKey, token)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func LoadToken(sqldb *sql.DB) (string, bool, error) {
	var value string
	err := sqldb.QueryRow(`SELECT value FROM credentials WHERE key = ?`, tokenKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load token: %w", err)
	}
	return value, true, nil
}

// ClearToken removes the persisted token. Clearing an absent token is a no-op.
func ClearToken(sqldb *sql.DB) error {
	if _, err := sqldb.Exec(`DELETE FROM credentials WHERE key = ?`, tokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
