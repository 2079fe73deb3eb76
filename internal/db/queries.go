package db

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/rb7a/nano-banana-prompt/internal/errors"
)

// ErrUniqueConstraint is returned when an insert violates a UNIQUE constraint.
var ErrUniqueConstraint = &errors.Error{
	Code:    "UNIQUE_CONSTRAINT",
	Status:  409,
	Message: "unique constraint violation",
}

// Favorite is a bookmarked case.
type Favorite struct {
	ID         string `json:"id"`
	CaseNumber int    `json:"caseNumber"`
	CreatedAt  int64  `json:"createdAt"`
}

// InsertFavorite stores a new favorite row.
func InsertFavorite(db *sql.DB, f *Favorite) error {
	query := `
		INSERT INTO favorites (id, case_number, created_at)
		VALUES (?, ?, ?)
	`
	_, err := db.Exec(query, f.ID, f.CaseNumber, f.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrUniqueConstraint
		}
		return errors.NewInternal(err)
	}
	return nil
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// SQLite returns "UNIQUE constraint failed: ..." for unique violations
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// DeleteFavorite removes the favorite for a case number.
func DeleteFavorite(db *sql.DB, caseNumber int) error {
	result, err := db.Exec(`DELETE FROM favorites WHERE case_number = ?`, caseNumber)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(strconv.Itoa(caseNumber))
	}

	return nil
}

// FavoriteExists reports whether a case is currently favorited.
func FavoriteExists(db *sql.DB, caseNumber int) (bool, error) {
	var exists int
	err := db.QueryRow(`SELECT 1 FROM favorites WHERE case_number = ? LIMIT 1`, caseNumber).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return true, nil
}

// ListFavorites returns all favorites, most recently added first.
// Ties on created_at fall back to case number so the order is deterministic.
func ListFavorites(db *sql.DB) ([]Favorite, error) {
	rows, err := db.Query(`
		SELECT id, case_number, created_at
		FROM favorites
		ORDER BY created_at DESC, case_number DESC
	`)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.CaseNumber, &f.CreatedAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return favorites, nil
}

// ClearFavorites removes all favorites and returns how many were deleted.
func ClearFavorites(db *sql.DB) (int64, error) {
	result, err := db.Exec(`DELETE FROM favorites`)
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return rowsAffected, nil
}

// SetFilterValue upserts a filter state entry. The value is stored as the
// caller's JSON; this layer does not interpret it.
func SetFilterValue(db *sql.DB, key, valueJSON string) error {
	query := `
		INSERT INTO filter_state (key, value_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value_json = excluded.value_json, updated_at = excluded.updated_at
	`
	if _, err := db.Exec(query, key, valueJSON, time.Now().Unix()); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// GetFilterValue returns the stored JSON for a filter key.
// The second return is false when the key has never been set.
func GetFilterValue(db *sql.DB, key string) (string, bool, error) {
	var valueJSON string
	err := db.QueryRow(`SELECT value_json FROM filter_state WHERE key = ?`, key).Scan(&valueJSON)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewInternal(err)
	}
	return valueJSON, true, nil
}

// DeleteFilterValue removes a filter state entry. Missing keys are not an error.
func DeleteFilterValue(db *sql.DB, key string) error {
	if _, err := db.Exec(`DELETE FROM filter_state WHERE key = ?`, key); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}
