package dao

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
	"github.com/memories-timeline/memories-backend/pkg/models"
	"gorm.io/gorm"
)

// DBToApiError converts gorm, postgres and model validation errors to a DaoError
func DBToApiError(e error) error {
	if e == nil {
		return nil
	}

	var daoError *ce.DaoError
	if errors.As(e, &daoError) {
		return daoError
	}

	var pgError *pgconn.PgError
	if errors.As(e, &pgError) {
		switch pgError.Code {
		case "23505":
			return &ce.DaoError{BadValidation: true, Message: "Memory or asset with this id already exists", Err: e}
		case "22021", "22P02", "22007", "22008":
			return &ce.DaoError{BadValidation: true, Message: "Request parameters contain invalid syntax", Err: e}
		}
	}

	var dbError models.Error
	if errors.As(e, &dbError) {
		return &ce.DaoError{BadValidation: dbError.Validation, Message: dbError.Message}
	}

	if errors.Is(e, gorm.ErrRecordNotFound) {
		return &ce.DaoError{NotFound: true, Message: "Could not find memory"}
	}

	return &ce.DaoError{Message: e.Error()}
}
