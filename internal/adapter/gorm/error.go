package gorm

import (
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.WithStack(port.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, sqlite3.CONSTRAINT_UNIQUE),
		errors.Is(err, sqlite3.CONSTRAINT_PRIMARYKEY):
		return errors.Wrap(port.ErrAlreadyExists, err.Error())
	default:
		return errors.WithStack(err)
	}
}
