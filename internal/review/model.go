package review

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("review not found")
	ErrDuplicate        = errors.New("you have already reviewed this resource")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrPermissionDenied = errors.New("permission denied")
)

type Review struct {
	ID           string
	ResourceID   string
	ReviewerID   string
	ReviewerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary is the per-resource rating aggregate.
type Summary struct {
	ResourceID    string
	AverageRating float64
	ReviewCount   int
}

// RatedResource is a resource ranked by its average rating, used by the
// concierge recommendations.
type RatedResource struct {
	ResourceID    string
	Title         string
	Category      string
	AverageRating float64
	ReviewCount   int
}
