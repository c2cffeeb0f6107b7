package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type UserR struct {
	db QueryI
}

func NewUserRepository(db QueryI) *UserR {
	return &UserR{db: db}
}

// BirthDate returns nil for unknown users and users without a birth date.
func (u *UserR) BirthDate(ctx context.Context, userID int64) (*time.Time, error) {
	query := `SELECT birth_date FROM users WHERE id = $1`

	var birthDate sql.NullTime
	err := u.db.GetContext(ctx, &birthDate, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get birth date of user %d: %w", userID, err)
	}

	if !birthDate.Valid {
		return nil, nil
	}
	return &birthDate.Time, nil
}
