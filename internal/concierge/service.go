package concierge

import (
	"context"
	"fmt"
	"strings"

	"github.com/campushub/resource-hub-backend/internal/admin"
	"github.com/campushub/resource-hub-backend/internal/review"
)

// Intent labels which canned answer a query was routed to.
type Intent string

const (
	IntentTopRated   Intent = "top_rated"
	IntentMostBooked Intent = "most_booked"
	IntentCategories Intent = "categories"
	IntentStats      Intent = "stats"
	IntentHelp       Intent = "help"
)

// Answer is a concierge reply. Text is a rendered summary; Data carries
// the aggregate rows the text was built from so clients can render their
// own view.
type Answer struct {
	Intent Intent
	Text   string
	Data   any
}

// RatingSource supplies the rating leaderboard.
type RatingSource interface {
	TopRated(ctx context.Context, limit int) ([]*review.RatedResource, error)
}

// UsageSource supplies booking aggregates.
type UsageSource interface {
	Stats(ctx context.Context) (*admin.SystemStats, error)
	UsageByCategory(ctx context.Context) ([]admin.CategoryUsage, error)
}

type Service interface {
	// Ask routes a free-text question by keyword to a live aggregate.
	// Unrecognized queries get the help answer; nothing is ever made up.
	Ask(ctx context.Context, query string) (*Answer, error)
}

type service struct {
	ratings RatingSource
	usage   UsageSource
}

func NewService(ratings RatingSource, usage UsageSource) Service {
	return &service{ratings: ratings, usage: usage}
}

const helpText = "I can answer questions about top rated resources, the most booked resources, " +
	"resource categories, and overall usage statistics. Try asking for \"top rated\" or \"stats\"."

func (s *service) Ask(ctx context.Context, query string) (*Answer, error) {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, "top rated", "best", "recommend"):
		return s.topRated(ctx)
	case containsAny(q, "popular", "most booked"):
		return s.mostBooked(ctx)
	case containsAny(q, "category", "categories", "types"):
		return s.categories(ctx)
	case containsAny(q, "stats", "statistics", "overview"):
		return s.stats(ctx)
	default:
		return &Answer{Intent: IntentHelp, Text: helpText}, nil
	}
}

func containsAny(q string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func (s *service) topRated(ctx context.Context) (*Answer, error) {
	rated, err := s.ratings.TopRated(ctx, 5)
	if err != nil {
		return nil, err
	}
	if len(rated) == 0 {
		return &Answer{
			Intent: IntentTopRated,
			Text:   "No resources have been reviewed yet.",
		}, nil
	}

	var b strings.Builder
	b.WriteString("Top rated resources:\n")
	for i, r := range rated {
		fmt.Fprintf(&b, "%d. %s (%.1f from %d reviews)\n", i+1, r.Title, r.AverageRating, r.ReviewCount)
	}
	return &Answer{Intent: IntentTopRated, Text: b.String(), Data: rated}, nil
}

func (s *service) mostBooked(ctx context.Context) (*Answer, error) {
	stats, err := s.usage.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if len(stats.MostBooked) == 0 {
		return &Answer{
			Intent: IntentMostBooked,
			Text:   "No bookings have been made yet.",
		}, nil
	}

	var b strings.Builder
	b.WriteString("Most booked resources:\n")
	for i, u := range stats.MostBooked {
		fmt.Fprintf(&b, "%d. %s (%d bookings)\n", i+1, u.Title, u.Bookings)
	}
	return &Answer{Intent: IntentMostBooked, Text: b.String(), Data: stats.MostBooked}, nil
}

func (s *service) categories(ctx context.Context) (*Answer, error) {
	usage, err := s.usage.UsageByCategory(ctx)
	if err != nil {
		return nil, err
	}
	if len(usage) == 0 {
		return &Answer{
			Intent: IntentCategories,
			Text:   "No resource categories exist yet.",
		}, nil
	}

	var b strings.Builder
	b.WriteString("Resource categories:\n")
	for _, u := range usage {
		fmt.Fprintf(&b, "- %s: %d resources, %d bookings\n", u.Category, u.Resources, u.Bookings)
	}
	return &Answer{Intent: IntentCategories, Text: b.String(), Data: usage}, nil
}

func (s *service) stats(ctx context.Context) (*Answer, error) {
	stats, err := s.usage.Stats(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers := 0
	for _, n := range stats.UsersByRole {
		totalUsers += n
	}
	totalResources := 0
	for _, n := range stats.ResourcesByStatus {
		totalResources += n
	}
	totalBookings := 0
	for _, n := range stats.BookingsByStatus {
		totalBookings += n
	}

	text := fmt.Sprintf(
		"The hub currently has %d users, %d resources, %d bookings and %d reviews.",
		totalUsers, totalResources, totalBookings, stats.TotalReviews,
	)
	return &Answer{Intent: IntentStats, Text: text, Data: stats}, nil
}
