package ports

import (
	"context"

	"github.com/jltforwarding/backoffice/internal/core/domain"
)

// DashboardService assembles the role-shaped dashboard payload for a user.
// The returned value is one of the four domain dashboard structures; the
// concrete shape is selected by the user's role.
type DashboardService interface {
	ForUser(ctx context.Context, user *domain.User) (any, error)
}

// ClientStats holds the per-client figures backing the client dashboard.
type ClientStats struct {
	OngoingShipments   int64
	CompletedShipments int64
	RequestedQuotes    int64
	RespondedQuotes    int64
}

// SpecialistStats holds the book-wide figures backing the account-specialist
// dashboard.
type SpecialistStats struct {
	LeadQueries        int64
	LeadNew            int64
	LeadReplied        int64
	OngoingShipments   int64
	DeliveredShipments int64
	NewQuotes          int64
	RespondedQuotes    int64
	AcceptedQuotes     int64
	DiscardedQuotes    int64
	Clients            int64
}

// MarketingStats holds the content figures backing the marketing dashboard.
type MarketingStats struct {
	Views    int64
	Clients  int64
	Videos   int64
	Articles int64
}

// DashboardRepository runs the aggregate count queries per dashboard variant.
type DashboardRepository interface {
	ClientStats(ctx context.Context, userID int64) (*ClientStats, error)
	SpecialistStats(ctx context.Context) (*SpecialistStats, error)
	MarketingStats(ctx context.Context) (*MarketingStats, error)
}
