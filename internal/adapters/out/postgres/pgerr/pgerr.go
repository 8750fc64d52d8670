// Package pgerr classifies Postgres errors by SQLSTATE so repositories can turn
// constraint violations into domain errors. Both lib/pq and pgx errors are understood.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type sqlStater interface {
	SQLState() string
}

// Code returns the SQLSTATE carried by err, or "" when err did not come from the server.
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var stater sqlStater
	if errors.As(err, &stater) {
		return stater.SQLState()
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || Code(err) == codeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated) || Code(err) == codeForeignKeyViolation
}

// Constraint returns the name of the violated constraint, or "" when err does not
// carry one.
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
