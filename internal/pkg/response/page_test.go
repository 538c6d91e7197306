package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse([]string{"a", "b"}, 1, 20, 41)
	assert.Equal(t, 41, resp.Total)
	assert.Equal(t, 3, resp.TotalPages)

	// A nil slice must become an empty one so JSON renders [].
	empty := NewPageResponse[string](nil, 1, 20, 0)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}
