// Package service implements the core staff MIS operations: geofenced
// attendance, the field trip lifecycle, the leave workflow and the
// payroll ledger. Controllers translate the errors defined here into
// HTTP responses.
package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrOfficeNotConfigured is returned when no active office location
	// exists to geofence against.
	ErrOfficeNotConfigured = errors.New("no active office location configured")

	// ErrStaffNotFound is returned when the caller has no staff profile.
	ErrStaffNotFound = errors.New("staff profile not found")

	// ErrTripOngoing is returned when a staff member tries to start a
	// second field trip while one is still ONGOING.
	ErrTripOngoing = errors.New("an ongoing field trip already exists")

	// ErrTripNotFound is returned when no ONGOING trip belongs to the
	// caller, including attempts to end someone else's trip.
	ErrTripNotFound = errors.New("ongoing field trip not found")

	ErrLeaveNotFound   = errors.New("leave request not found")
	ErrLeaveNotPending = errors.New("leave request is not pending")

	ErrPayrollNotFound     = errors.New("payroll record not found")
	ErrPayrollNotGenerated = errors.New("payroll record is not in generated state")
)

// GeofenceError reports a submission outside the office radius. The
// computed distance is kept so the caller can show it to the user.
type GeofenceError struct {
	Distance float64
	Radius   float64
}

func (e *GeofenceError) Error() string {
	return fmt.Sprintf("outside geofence: %.1f m from office (radius %.0f m)", e.Distance, e.Radius)
}

// ValidationError marks malformed or missing input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// isUniqueViolation reports whether err is a unique-constraint failure.
// Postgres reports SQLSTATE 23505, sqlite "UNIQUE constraint failed";
// matching on the message covers both drivers.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
