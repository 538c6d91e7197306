package admin

import (
	"context"
)

// mostBookedLimit bounds the dashboard's top resources list.
const mostBookedLimit = 5

type Service interface {
	Stats(ctx context.Context) (*SystemStats, error)
	UsageByCategory(ctx context.Context) ([]CategoryUsage, error)
	UsageByDepartment(ctx context.Context) ([]DepartmentUsage, error)
	// LogAction records an administrative action for the audit trail.
	LogAction(ctx context.Context, actorID, action, targetTable, details string) error
	ListLogs(ctx context.Context, page, pageSize int) ([]*LogEntry, int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Stats(ctx context.Context) (*SystemStats, error) {
	usersByRole, err := s.repo.CountByColumn(ctx, "public.users", "role")
	if err != nil {
		return nil, err
	}
	resourcesByStatus, err := s.repo.CountByColumn(ctx, "public.resources", "status")
	if err != nil {
		return nil, err
	}
	bookingsByStatus, err := s.repo.CountByColumn(ctx, "public.bookings", "status")
	if err != nil {
		return nil, err
	}
	totalReviews, err := s.repo.CountRows(ctx, "public.reviews")
	if err != nil {
		return nil, err
	}
	mostBooked, err := s.repo.MostBooked(ctx, mostBookedLimit)
	if err != nil {
		return nil, err
	}

	return &SystemStats{
		UsersByRole:       usersByRole,
		ResourcesByStatus: resourcesByStatus,
		BookingsByStatus:  bookingsByStatus,
		TotalReviews:      totalReviews,
		MostBooked:        mostBooked,
	}, nil
}

func (s *service) UsageByCategory(ctx context.Context) ([]CategoryUsage, error) {
	return s.repo.UsageByCategory(ctx)
}

func (s *service) UsageByDepartment(ctx context.Context) ([]DepartmentUsage, error) {
	return s.repo.UsageByDepartment(ctx)
}

func (s *service) LogAction(ctx context.Context, actorID, action, targetTable, details string) error {
	return s.repo.InsertLog(ctx, &LogEntry{
		AdminID:     actorID,
		Action:      action,
		TargetTable: targetTable,
		Details:     details,
	})
}

func (s *service) ListLogs(ctx context.Context, page, pageSize int) ([]*LogEntry, int, error) {
	return s.repo.ListLogs(ctx, page, pageSize)
}
