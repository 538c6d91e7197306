package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/resource-hub-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response.
// AppError values determine their own status code; anything else is an
// unexpected storage or internal failure and surfaces as a generic 500,
// so typed business outcomes never get conflated with system faults.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.Error(err) // keep the internal error visible to the request logger
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
