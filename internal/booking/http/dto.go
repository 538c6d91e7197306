package http

import (
	"time"

	"github.com/campushub/resource-hub-backend/internal/booking"
	"github.com/campushub/resource-hub-backend/internal/pkg/request"
	resHttp "github.com/campushub/resource-hub-backend/internal/resource/http"
	userHttp "github.com/campushub/resource-hub-backend/internal/user/http"
)

type CreateBookingRequest struct {
	ResourceID string    `json:"resource_id" binding:"required,uuid"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	Notes      string    `json:"notes" binding:"omitempty,max=2000"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	ResourceID string `form:"resource_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected cancelled completed"`
	// View selects whose bookings to list: "requester" (default) shows
	// the caller's own requests, "owner" shows bookings against
	// resources the caller owns.
	View string `form:"view" binding:"omitempty,oneof=requester owner"`
}

type AvailabilityRequest struct {
	ResourceID string    `form:"resource_id" binding:"required,uuid"`
	StartTime  time.Time `form:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime    time.Time `form:"end_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type BookingResponse struct {
	ID        string              `json:"id"`
	Resource  resHttp.ResourceTag `json:"resource"`
	Requester userHttp.UserTag    `json:"requester"`
	StartTime time.Time           `json:"start_time"`
	EndTime   time.Time           `json:"end_time"`
	Status    string              `json:"status"`
	Notes     string              `json:"notes,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Resource:  resHttp.ResourceTag{ID: b.ResourceID, Title: b.ResourceTitle},
		Requester: userHttp.UserTag{ID: b.RequesterID, Name: b.RequesterName},
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    string(b.Status),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
