package http

import (
	"time"

	"github.com/campushub/resource-hub-backend/internal/admin"
)

type ResourceUsageResponse struct {
	ResourceID string `json:"resource_id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Bookings   int    `json:"bookings"`
}

type StatsResponse struct {
	UsersByRole       map[string]int          `json:"users_by_role"`
	ResourcesByStatus map[string]int          `json:"resources_by_status"`
	BookingsByStatus  map[string]int          `json:"bookings_by_status"`
	TotalReviews      int                     `json:"total_reviews"`
	MostBooked        []ResourceUsageResponse `json:"most_booked"`
}

func NewStatsResponse(s *admin.SystemStats) StatsResponse {
	mostBooked := make([]ResourceUsageResponse, len(s.MostBooked))
	for i, u := range s.MostBooked {
		mostBooked[i] = ResourceUsageResponse{
			ResourceID: u.ResourceID,
			Title:      u.Title,
			Category:   u.Category,
			Bookings:   u.Bookings,
		}
	}
	return StatsResponse{
		UsersByRole:       s.UsersByRole,
		ResourcesByStatus: s.ResourcesByStatus,
		BookingsByStatus:  s.BookingsByStatus,
		TotalReviews:      s.TotalReviews,
		MostBooked:        mostBooked,
	}
}

type CategoryUsageResponse struct {
	Category  string `json:"category"`
	Resources int    `json:"resources"`
	Bookings  int    `json:"bookings"`
}

type DepartmentUsageResponse struct {
	Department string `json:"department"`
	Requesters int    `json:"requesters"`
	Bookings   int    `json:"bookings"`
}

type LogEntryResponse struct {
	ID          string    `json:"id"`
	AdminID     string    `json:"admin_id"`
	AdminName   string    `json:"admin_name"`
	Action      string    `json:"action"`
	TargetTable string    `json:"target_table,omitempty"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewLogEntryResponse(e *admin.LogEntry) LogEntryResponse {
	return LogEntryResponse{
		ID:          e.ID,
		AdminID:     e.AdminID,
		AdminName:   e.AdminName,
		Action:      e.Action,
		TargetTable: e.TargetTable,
		Details:     e.Details,
		CreatedAt:   e.CreatedAt,
	}
}
