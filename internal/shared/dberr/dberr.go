// Package dberr translates postgres and gorm failures into feature errors.
package dberr

import (
	"errors"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Some drivers only surface the server message, so the constraint name is
// also parsed from the text.
var uniqueMessage = regexp.MustCompile(`duplicate key value violates unique constraint "([^"]+)"`)

// UniqueViolation reports the violated constraint of a unique key error.
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName, pgErr.Code == codeUniqueViolation
	}
	if m := uniqueMessage.FindStringSubmatch(err.Error()); m != nil {
		return m[1], true
	}
	return "", false
}

func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// Mapping lists the feature errors a repository failure may turn into.
// Zero fields are skipped; unmatched errors pass through unchanged.
type Mapping struct {
	NotFound   error
	Unique     map[string]error
	ForeignKey error
}

func (m Mapping) Map(err error) error {
	if err == nil {
		return nil
	}
	if m.NotFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return m.NotFound
	}
	if constraint, ok := UniqueViolation(err); ok {
		if mapped, found := m.Unique[constraint]; found {
			return mapped
		}
	}
	if m.ForeignKey != nil && IsForeignKeyViolation(err) {
		return m.ForeignKey
	}
	return err
}
