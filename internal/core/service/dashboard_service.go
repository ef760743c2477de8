package service

import (
	"context"
	"strconv"

	"github.com/jltforwarding/backoffice/internal/api/metrics"
	"github.com/jltforwarding/backoffice/internal/core/domain"
	"github.com/jltforwarding/backoffice/internal/core/ports"
)

// DashboardService assembles the role-shaped dashboard payloads. The field
// sets per variant are part of the wire contract: the front end classifies the
// payload by which keys are present, so shapes must not drift.
type DashboardService struct {
	repo ports.DashboardRepository
}

func NewDashboardService(repo ports.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

func (s *DashboardService) ForUser(ctx context.Context, user *domain.User) (any, error) {
	switch user.Role {
	case domain.RoleClient:
		return s.clientDashboard(ctx, user)
	case domain.RoleAccountSpecialist:
		return s.specialistDashboard(ctx, user)
	case domain.RoleMarketing:
		return s.marketingDashboard(ctx, user)
	default:
		// Human Resource has no metrics yet.
		metrics.DashboardRequestsTotal.WithLabelValues("human_resource").Inc()
		return domain.HumanResourceDashboard{Message: "Generic dashboard data"}, nil
	}
}

func (s *DashboardService) clientDashboard(ctx context.Context, user *domain.User) (any, error) {
	stats, err := s.repo.ClientStats(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	metrics.DashboardRequestsTotal.WithLabelValues("client").Inc()
	return domain.ClientDashboard{
		User: dashboardUser(user, false),
		Shipments: domain.ClientShipmentStats{
			OngoingCount:   stats.OngoingShipments,
			CompletedCount: stats.CompletedShipments,
		},
		Quotes: domain.ClientQuoteStats{
			RequestedCount: stats.RequestedQuotes,
			RespondedCount: stats.RespondedQuotes,
		},
	}, nil
}

func (s *DashboardService) specialistDashboard(ctx context.Context, user *domain.User) (any, error) {
	stats, err := s.repo.SpecialistStats(ctx)
	if err != nil {
		return nil, err
	}

	metrics.DashboardRequestsTotal.WithLabelValues("account_specialist").Inc()
	return domain.SpecialistDashboard{
		User: dashboardUser(user, true),
		Leads: domain.SpecialistLeadStats{
			QueriesCount: stats.LeadQueries,
			NewCount:     stats.LeadNew,
			RepliedCount: stats.LeadReplied,
		},
		Shipments: domain.SpecialistShipmentStats{
			OngoingCount:   stats.OngoingShipments,
			DeliveredCount: stats.DeliveredShipments,
		},
		Quotes: domain.SpecialistQuoteStats{
			NewCount:       stats.NewQuotes,
			RespondedCount: stats.RespondedQuotes,
			AcceptedCount:  stats.AcceptedQuotes,
			DiscardedCount: stats.DiscardedQuotes,
		},
		Accounts: domain.SpecialistAccountStats{ClientsCount: stats.Clients},
	}, nil
}

func (s *DashboardService) marketingDashboard(ctx context.Context, user *domain.User) (any, error) {
	stats, err := s.repo.MarketingStats(ctx)
	if err != nil {
		return nil, err
	}

	metrics.DashboardRequestsTotal.WithLabelValues("marketing").Inc()
	return domain.MarketingDashboard{
		User:          dashboardUser(user, true),
		ViewsCount:    strconv.FormatInt(stats.Views, 10),
		ClientsCount:  strconv.FormatInt(stats.Clients, 10),
		TotalVideos:   strconv.FormatInt(stats.Videos, 10),
		TotalArticles: strconv.FormatInt(stats.Articles, 10),
	}, nil
}

// dashboardUser builds the abbreviated user block. The client variant carries
// the full name, staff variants carry the role.
func dashboardUser(user *domain.User, withRole bool) domain.DashboardUser {
	du := domain.DashboardUser{
		Company:   user.CompanyName,
		ImagePath: user.ImagePath,
	}
	if withRole {
		du.Role = user.Role
	} else if user.FullName != nil {
		du.FullName = *user.FullName
	} else {
		du.FullName = user.FirstName + " " + user.LastName
	}
	return du
}
