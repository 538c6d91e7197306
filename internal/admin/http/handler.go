package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushub/resource-hub-backend/internal/admin"
	"github.com/campushub/resource-hub-backend/internal/auth"
	"github.com/campushub/resource-hub-backend/internal/pkg/request"
	"github.com/campushub/resource-hub-backend/internal/pkg/response"
	"github.com/campushub/resource-hub-backend/internal/review"
	reviewHttp "github.com/campushub/resource-hub-backend/internal/review/http"
	"github.com/campushub/resource-hub-backend/internal/user"
	userHttp "github.com/campushub/resource-hub-backend/internal/user/http"
)

type Handler struct {
	service     admin.Service
	userService user.Service
	reviews     review.Service
}

func NewHandler(service admin.Service, userService user.Service, reviews review.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
		reviews:     reviews,
	}
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, NewStatsResponse(stats))
}

func (h *Handler) UsageByCategory(c *gin.Context) {
	usage, err := h.service.UsageByCategory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute category usage"})
		return
	}

	items := make([]CategoryUsageResponse, len(usage))
	for i, u := range usage {
		items[i] = CategoryUsageResponse{Category: u.Category, Resources: u.Resources, Bookings: u.Bookings}
	}
	c.JSON(http.StatusOK, gin.H{"categories": items})
}

func (h *Handler) UsageByDepartment(c *gin.Context) {
	usage, err := h.service.UsageByDepartment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute department usage"})
		return
	}

	items := make([]DepartmentUsageResponse, len(usage))
	for i, u := range usage {
		items[i] = DepartmentUsageResponse{Department: u.Department, Requesters: u.Requesters, Bookings: u.Bookings}
	}
	c.JSON(http.StatusOK, gin.H{"departments": items})
}

// ListUsers is the account management view.
func (h *Handler) ListUsers(c *gin.Context) {
	var query request.ListParams
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	items := make([]userHttp.UserResponse, len(users))
	for i, u := range users {
		items[i] = userHttp.NewUserResponse(u)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}

// DeleteUser removes an account and records the action. Deleting your
// own account is rejected so the last admin cannot lock everyone out.
func (h *Handler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	actorID := auth.GetUserID(c)
	deleted, err := h.userService.Delete(c.Request.Context(), id, actorID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrSelfDelete):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		}
		return
	}

	if err := h.service.LogAction(c.Request.Context(), actorID, "user.delete", "users",
		fmt.Sprintf("deleted user: %s", deleted.Email)); err != nil {
		_ = c.Error(err)
	}

	c.Status(http.StatusNoContent)
}

// ListReviews is the review moderation view across all resources.
func (h *Handler) ListReviews(c *gin.Context) {
	var query request.ListParams
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	reviews, total, err := h.reviews.ListAll(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}

	items := make([]reviewHttp.ReviewResponse, len(reviews))
	for i, rv := range reviews {
		items[i] = reviewHttp.NewReviewResponse(rv)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}

func (h *Handler) ListLogs(c *gin.Context) {
	var query request.ListParams
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	logs, total, err := h.service.ListLogs(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list logs"})
		return
	}

	items := make([]LogEntryResponse, len(logs))
	for i, e := range logs {
		items[i] = NewLogEntryResponse(e)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}
