package http

import (
	"time"

	"github.com/campushub/resource-hub-backend/internal/review"
	userHttp "github.com/campushub/resource-hub-backend/internal/user/http"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID         string           `json:"id"`
	ResourceID string           `json:"resource_id"`
	Reviewer   userHttp.UserTag `json:"reviewer"`
	Rating     int              `json:"rating"`
	Comment    string           `json:"comment,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

func NewReviewResponse(rv *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:         rv.ID,
		ResourceID: rv.ResourceID,
		Reviewer:   userHttp.UserTag{ID: rv.ReviewerID, Name: rv.ReviewerName},
		Rating:     rv.Rating,
		Comment:    rv.Comment,
		CreatedAt:  rv.CreatedAt,
	}
}

type SummaryResponse struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}
