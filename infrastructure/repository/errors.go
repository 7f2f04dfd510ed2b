package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicateKey indica violação de uma constraint UNIQUE
var ErrDuplicateKey = errors.New("duplicate key")

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

type rowScanner interface {
	Scan(dest ...any) error
}
