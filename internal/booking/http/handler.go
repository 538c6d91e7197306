package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushub/resource-hub-backend/internal/auth"
	"github.com/campushub/resource-hub-backend/internal/booking"
	"github.com/campushub/resource-hub-backend/internal/pkg/response"
	"github.com/campushub/resource-hub-backend/internal/resource"
	"github.com/campushub/resource-hub-backend/internal/user"
)

// AuditLogger records administrative actions. The handler only needs the
// write side of the audit trail, so it takes the narrowest interface.
type AuditLogger interface {
	LogAction(ctx context.Context, actorID, action, targetType, targetID string) error
}

type Handler struct {
	service     booking.Service
	resources   resource.Service
	userService user.Service
	audit       AuditLogger
}

func NewHandler(service booking.Service, resources resource.Service, userService user.Service, audit AuditLogger) *Handler {
	return &Handler{
		service:     service,
		resources:   resources,
		userService: userService,
		audit:       audit,
	}
}

func (h *Handler) actorRole(c *gin.Context, userID string) user.Role {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return user.RoleStudent
	}
	return u.Role
}

// Create handles POST /bookings. The resource must exist and be published
// before the booking engine is asked to reserve the slot.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.resources.GetByID(c.Request.Context(), body.ResourceID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			response.Error(c, booking.ErrResourceNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up resource"})
		return
	}
	if res.Status != resource.StatusPublished {
		response.Error(c, booking.ErrResourceNotBookable)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		ResourceID:  body.ResourceID,
		RequesterID: auth.GetUserID(c),
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		Notes:       body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// The insert does not join, so fill in the display names with a
	// follow-up read.
	if full, err := h.service.GetByID(c.Request.Context(), b.ID); err == nil {
		b = full
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var query ListBookingsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	actorID := auth.GetUserID(c)
	filter := booking.Filter{
		ResourceID: query.ResourceID,
		Status:     query.Status,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	// Visibility: everyone sees their own requests; the owner view shows
	// bookings made against the caller's resources; admins see everything.
	switch {
	case query.View == "owner":
		filter.OwnerID = actorID
	case h.actorRole(c, actorID) == user.RoleAdmin:
		// unrestricted
	default:
		filter.RequesterID = actorID
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	actorID := auth.GetUserID(c)
	if !h.canView(c, b, actorID) {
		response.Error(c, booking.ErrPermissionDenied)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// canView allows the requester, the resource owner, and moderators.
func (h *Handler) canView(c *gin.Context, b *booking.Booking, actorID string) bool {
	if b.RequesterID == actorID {
		return true
	}
	if h.actorRole(c, actorID).CanModerate() {
		return true
	}
	res, err := h.resources.GetByID(c.Request.Context(), b.ResourceID)
	if err != nil {
		return false
	}
	return res.OwnerID == actorID
}

// Availability handles GET /bookings/availability, a read-only conflict
// probe that never reserves anything.
func (h *Handler) Availability(c *gin.Context) {
	var query AvailabilityRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	if !query.EndTime.After(query.StartTime) {
		response.Error(c, booking.ErrEndBeforeStart)
		return
	}

	conflict, err := h.service.CheckConflict(c.Request.Context(), query.ResourceID, query.StartTime, query.EndTime, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check availability"})
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{Available: !conflict})
}

func (h *Handler) Approve(c *gin.Context) {
	h.transition(c, booking.StatusApproved)
}

func (h *Handler) Reject(c *gin.Context) {
	h.transition(c, booking.StatusRejected)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, booking.StatusCancelled)
}

func (h *Handler) transition(c *gin.Context, target booking.Status) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	actorID := auth.GetUserID(c)
	b, err := h.service.Transition(c.Request.Context(), id, target, actorID, h.actorRole(c, actorID))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Delete handles the admin-only hard delete and leaves an audit trail.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	actorID := auth.GetUserID(c)
	if err := h.service.Delete(c.Request.Context(), id, h.actorRole(c, actorID)); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.audit.LogAction(c.Request.Context(), actorID, "booking.delete", "booking", id); err != nil {
		// The delete already happened; a failed audit write is not worth
		// surfacing to the caller.
		_ = c.Error(err)
	}

	c.Status(http.StatusNoContent)
}
