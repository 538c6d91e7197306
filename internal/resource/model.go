package resource

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrEmptyTitle       = errors.New("title must be at least 3 characters")
	ErrInvalidStatus    = errors.New("invalid resource status")
	ErrPermissionDenied = errors.New("permission denied")
)

// Status is the publication state of a resource.
// Only published resources are searchable and accept new bookings.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Resource represents a bookable campus asset (room, equipment).
type Resource struct {
	ID          string
	OwnerID     string
	OwnerName   string
	Title       string
	Description string
	Category    string
	Location    string
	Capacity    int
	ImagePath   *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for searching resources.
type Filter struct {
	Keyword  string
	Category string
	Location string
	Status   string
	OwnerID  string
	Page     int
	PageSize int
}
