package http

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushub/resource-hub-backend/internal/auth"
	"github.com/campushub/resource-hub-backend/internal/pkg/response"
	"github.com/campushub/resource-hub-backend/internal/pkg/storage"
	"github.com/campushub/resource-hub-backend/internal/resource"
	"github.com/campushub/resource-hub-backend/internal/user"
)

type Handler struct {
	service     resource.Service
	userService user.Service
	files       storage.Storage
	images      *storage.ImageProcessor
}

func NewHandler(service resource.Service, userService user.Service, files storage.Storage, images *storage.ImageProcessor) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
		files:       files,
		images:      images,
	}
}

// actorRole looks up the authenticated user's campus role.
// Roles live in the database, not the token, so a role change
// takes effect without waiting for token expiry.
func (h *Handler) actorRole(c *gin.Context, userID string) user.Role {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return user.RoleStudent
	}
	return u.Role
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateResourceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ownerID := auth.GetUserID(c)

	res, err := h.service.Create(c.Request.Context(), ownerID, resource.CreateRequest{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Location:    body.Location,
		Capacity:    body.Capacity,
	})
	if err != nil {
		if errors.Is(err, resource.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create resource"})
		return
	}

	c.JSON(http.StatusCreated, NewResourceResponse(res))
}

func (h *Handler) List(c *gin.Context) {
	var query ListResourcesRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	filter := resource.Filter{
		Keyword:  query.Keyword,
		Category: query.Category,
		Location: query.Location,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Mine {
		filter.OwnerID = auth.GetUserID(c)
	}

	resources, total, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list resources"})
		return
	}

	items := make([]ResourceResponse, len(resources))
	for i, res := range resources {
		items[i] = NewResourceResponse(res)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get resource"})
		return
	}

	c.JSON(http.StatusOK, NewResourceResponse(res))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateResourceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	actorID := auth.GetUserID(c)

	res, err := h.service.Update(c.Request.Context(), id, resource.UpdateRequest{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Location:    body.Location,
		Capacity:    body.Capacity,
	}, actorID, h.actorRole(c, actorID))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResourceResponse(res))
}

func (h *Handler) SetStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body SetStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	actorID := auth.GetUserID(c)

	res, err := h.service.SetStatus(c.Request.Context(), id, resource.Status(body.Status), actorID, h.actorRole(c, actorID))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResourceResponse(res))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	actorID := auth.GetUserID(c)

	if err := h.service.Delete(c.Request.Context(), id, actorID, h.actorRole(c, actorID)); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// UploadImage stores a resized resource image and records its path.
func (h *Handler) UploadImage(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".gif" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer src.Close()

	thumb, err := h.images.GenerateThumbnail(src, 1024, 768)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image"})
		return
	}

	path := fmt.Sprintf("resources/%s/%s.jpg", id, uuid.NewString())
	if err := h.files.Save(c.Request.Context(), path, thumb); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	actorID := auth.GetUserID(c)
	res, err := h.service.Update(c.Request.Context(), id, resource.UpdateRequest{
		ImagePath: &path,
	}, actorID, h.actorRole(c, actorID))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResourceResponse(res))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resource.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, resource.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, resource.ErrEmptyTitle), errors.Is(err, resource.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
