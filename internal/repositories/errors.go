package repositories

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate: нарушение уникального ключа (email, user_id+platform).
var ErrDuplicate = errors.New("duplicate key")

const pqUniqueViolation = "23505"

func mapWriteErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrDuplicate
	}
	return err
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

