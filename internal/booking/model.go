package booking

import (
	"net/http"
	"time"

	"github.com/campushub/resource-hub-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrResourceNotFound    = apperror.New(http.StatusNotFound, "resource not found")
	ErrResourceNotBookable = apperror.New(http.StatusBadRequest, "resource is not available for booking")
	ErrEndBeforeStart      = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrStartTimePast       = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrHorizonExceeded     = apperror.New(http.StatusBadRequest, "cannot book more than 365 days in advance")
	ErrDurationExceeded    = apperror.New(http.StatusBadRequest, "booking duration cannot exceed 7 days")
	ErrTimeConflict        = apperror.New(http.StatusConflict, "time slot conflicts with an existing booking")
	ErrPermissionDenied    = apperror.New(http.StatusForbidden, "permission denied")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition   = apperror.New(http.StatusConflict, "booking status does not permit this transition")
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	// StatusCompleted is never set by a user-facing transition; a
	// time-based sweep owns it. It still counts as a valid terminal
	// state everywhere bookings are read.
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Active reports whether a booking in this status blocks the time slot.
// Only pending and approved bookings participate in conflict checks;
// freeing a slot is purely a status change.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusApproved
}

// Booking represents one reservation request against exactly one resource.
// Resource, requester, start and end are immutable after creation; there is
// no reschedule operation, only status transitions.
type Booking struct {
	ID            string
	ResourceID    string
	ResourceTitle string
	RequesterID   string
	RequesterName string
	StartTime     time.Time
	EndTime       time.Time
	Status        Status
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	RequesterID string
	ResourceID  string
	// OwnerID restricts to bookings against resources owned by this user.
	OwnerID  string
	Status   string
	Page     int
	PageSize int
}
