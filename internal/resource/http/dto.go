package http

import (
	"time"

	"github.com/campushub/resource-hub-backend/internal/pkg/request"
	"github.com/campushub/resource-hub-backend/internal/resource"
)

type CreateResourceRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Category    string `json:"category" binding:"omitempty,max=100"`
	Location    string `json:"location" binding:"omitempty,max=200"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=0"`
}

type UpdateResourceRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=3,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=0"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft published archived"`
}

type ListResourcesRequest struct {
	request.ListParams
	Keyword  string `form:"keyword" binding:"omitempty,max=200"`
	Category string `form:"category" binding:"omitempty,max=100"`
	Location string `form:"location" binding:"omitempty,max=200"`
	Mine     bool   `form:"mine"`
}

type ResourceResponse struct {
	ID          string    `json:"id"`
	Owner       OwnerTag  `json:"owner"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	ImagePath   *string   `json:"image_path,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnerTag is the minimal owner info embedded in resource responses.
type OwnerTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResourceTag is the minimal resource info embedded in other modules' responses.
type ResourceTag struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func NewResourceResponse(res *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          res.ID,
		Owner:       OwnerTag{ID: res.OwnerID, Name: res.OwnerName},
		Title:       res.Title,
		Description: res.Description,
		Category:    res.Category,
		Location:    res.Location,
		Capacity:    res.Capacity,
		ImagePath:   res.ImagePath,
		Status:      string(res.Status),
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}
