package admin

import "time"

// SystemStats is the admin dashboard snapshot. Every number comes from a
// live aggregate query.
type SystemStats struct {
	UsersByRole       map[string]int
	ResourcesByStatus map[string]int
	BookingsByStatus  map[string]int
	TotalReviews      int
	MostBooked        []ResourceUsage
}

// ResourceUsage counts bookings per resource.
type ResourceUsage struct {
	ResourceID string
	Title      string
	Category   string
	Bookings   int
}

// CategoryUsage counts published resources and bookings per category.
type CategoryUsage struct {
	Category  string
	Resources int
	Bookings  int
}

// DepartmentUsage counts bookings made by requesters of one department.
type DepartmentUsage struct {
	Department string
	Requesters int
	Bookings   int
}

// LogEntry is one recorded administrative action.
type LogEntry struct {
	ID          string
	AdminID     string
	AdminName   string
	Action      string
	TargetTable string
	Details     string
	CreatedAt   time.Time
}
