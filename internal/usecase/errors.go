package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrDepartmentNameExists = errors.New("department name already exists")
	ErrInvalidDate          = errors.New("invalid date format")
	ErrInvalidDateRange     = errors.New("from and to must be supplied together and from must not be after to")
)

// isDuplicateKeyError checks if the error is a unique violation, either as a
// raw PostgreSQL error or translated by gorm
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505"
	}
	return false
}
