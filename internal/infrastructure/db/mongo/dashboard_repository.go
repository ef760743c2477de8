package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jltforwarding/backoffice/internal/core/domain"
	"github.com/jltforwarding/backoffice/internal/core/ports"
)

// Collections backing the dashboard aggregates.
const (
	shipmentsCollection  = "shipments"
	quotationsCollection = "quotations"
	leadsCollection      = "leads"
	articlesCollection   = "articles"
	reelsCollection      = "reels"
)

// MongoDashboardRepository runs the count queries behind each dashboard
// variant. Counts only — the dashboard never loads documents.
type MongoDashboardRepository struct {
	db *mongo.Database
}

func NewDashboardRepository(db *mongo.Database) *MongoDashboardRepository {
	return &MongoDashboardRepository{db: db}
}

func (r *MongoDashboardRepository) ClientStats(ctx context.Context, userID int64) (*ports.ClientStats, error) {
	stats := &ports.ClientStats{}

	counts := []struct {
		dst    *int64
		coll   string
		filter bson.M
	}{
		{&stats.OngoingShipments, shipmentsCollection, bson.M{"client_id": userID, "status": bson.M{"$in": []string{"ongoing", "in_transit"}}}},
		{&stats.CompletedShipments, shipmentsCollection, bson.M{"client_id": userID, "status": "completed"}},
		{&stats.RequestedQuotes, quotationsCollection, bson.M{"client_id": userID, "status": "requested"}},
		{&stats.RespondedQuotes, quotationsCollection, bson.M{"client_id": userID, "status": "responded"}},
	}
	if err := r.runCounts(ctx, counts); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *MongoDashboardRepository) SpecialistStats(ctx context.Context) (*ports.SpecialistStats, error) {
	stats := &ports.SpecialistStats{}

	counts := []struct {
		dst    *int64
		coll   string
		filter bson.M
	}{
		{&stats.LeadQueries, leadsCollection, bson.M{}},
		{&stats.LeadNew, leadsCollection, bson.M{"status": "new"}},
		{&stats.LeadReplied, leadsCollection, bson.M{"status": "replied"}},
		{&stats.OngoingShipments, shipmentsCollection, bson.M{"status": bson.M{"$in": []string{"ongoing", "in_transit"}}}},
		{&stats.DeliveredShipments, shipmentsCollection, bson.M{"status": "delivered"}},
		{&stats.NewQuotes, quotationsCollection, bson.M{"status": "requested"}},
		{&stats.RespondedQuotes, quotationsCollection, bson.M{"status": "responded"}},
		{&stats.AcceptedQuotes, quotationsCollection, bson.M{"status": "accepted"}},
		{&stats.DiscardedQuotes, quotationsCollection, bson.M{"status": "discarded"}},
		{&stats.Clients, usersCollection, bson.M{"role": domain.RoleClient}},
	}
	if err := r.runCounts(ctx, counts); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *MongoDashboardRepository) MarketingStats(ctx context.Context) (*ports.MarketingStats, error) {
	stats := &ports.MarketingStats{}

	counts := []struct {
		dst    *int64
		coll   string
		filter bson.M
	}{
		{&stats.Videos, reelsCollection, bson.M{}},
		{&stats.Articles, articlesCollection, bson.M{}},
		{&stats.Clients, usersCollection, bson.M{"role": domain.RoleClient}},
	}
	if err := r.runCounts(ctx, counts); err != nil {
		return nil, err
	}

	// Views are accumulated per reel; sum them instead of counting documents.
	views, err := r.sumViews(ctx)
	if err != nil {
		return nil, err
	}
	stats.Views = views
	return stats, nil
}

func (r *MongoDashboardRepository) runCounts(ctx context.Context, counts []struct {
	dst    *int64
	coll   string
	filter bson.M
}) error {
	for _, cq := range counts {
		n, err := r.db.Collection(cq.coll).CountDocuments(ctx, cq.filter)
		if err != nil {
			return fmt.Errorf("count %s: %w", cq.coll, err)
		}
		*cq.dst = n
	}
	return nil
}

func (r *MongoDashboardRepository) sumViews(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "views": bson.M{"$sum": "$view_count"}}}},
	}

	cursor, err := r.db.Collection(reelsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum reel views: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Views int64 `bson:"views"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode reel views: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Views, nil
}
