package repositories

import (
	"context"
	"fmt"
	"time"

	"oakline-partners/internal/models"
	"oakline-partners/pkg/database"
	"oakline-partners/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type leadRepository struct {
	collection *mongo.Collection
}

func NewLeadRepository() LeadRepository {
	return &leadRepository{
		collection: database.DB.Collection("leads"),
	}
}

func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, lead)
	metrics.MongoOperationDuration.WithLabelValues("insert", "leads").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "leads").Inc()
		return err
	}
	return nil
}

func (r *leadRepository) Update(ctx context.Context, lead *models.Lead) error {
	update := bson.M{
		"$set": bson.M{
			"address":          lead.Address,
			"attributes":       lead.Attributes,
			"decision":         lead.Decision,
			"homeowner":        lead.Homeowner,
			"status":           lead.Status,
			"fundingReference": lead.FundingReference,
			"updatedAt":        lead.UpdatedAt,
		},
	}
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"leadId": lead.LeadID}, update)
	metrics.MongoOperationDuration.WithLabelValues("update_one", "leads").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", "leads").Inc()
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("lead not found: %w", mongo.ErrNoDocuments)
	}
	return nil
}

func (r *leadRepository) FindByLeadID(ctx context.Context, leadID string) (*models.Lead, error) {
	start := time.Now()
	var lead models.Lead
	err := r.collection.FindOne(ctx, bson.M{"leadId": leadID}).Decode(&lead)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "leads").Observe(time.Since(start).Seconds())
	if err != nil {
		if err != mongo.ErrNoDocuments {
			metrics.MongoErrorsTotal.WithLabelValues("find_one", "leads").Inc()
		}
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) FindByLeadIDs(ctx context.Context, leadIDs []string) ([]models.Lead, error) {
	if len(leadIDs) == 0 {
		return []models.Lead{}, nil
	}

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"leadId": bson.M{"$in": leadIDs}})
	metrics.MongoOperationDuration.WithLabelValues("find", "leads").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "leads").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	start = time.Now()
	err = cursor.All(ctx, &leads)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "leads").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "leads").Inc()
		return nil, err
	}

	// Preserve the requested order; $in does not.
	byID := make(map[string]models.Lead, len(leads))
	for _, lead := range leads {
		byID[lead.LeadID] = lead
	}
	ordered := make([]models.Lead, 0, len(leads))
	for _, id := range leadIDs {
		if lead, ok := byID[id]; ok {
			ordered = append(ordered, lead)
		}
	}
	return ordered, nil
}

func (r *leadRepository) CountByPartner(ctx context.Context, partnerID string) (int64, error) {
	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, bson.M{"partnerId": partnerID})
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "leads").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "leads").Inc()
		return 0, err
	}
	return total, nil
}

func (r *leadRepository) FindByPartner(ctx context.Context, partnerID string, offset, limit int) ([]models.Lead, int64, error) {
	filter := bson.M{"partnerId": partnerID} // leads are partner-scoped, never cross-tenant

	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, filter)
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "leads").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "leads").Inc()
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	start = time.Now()
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "leads").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "leads").Inc()
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	start = time.Now()
	err = cursor.All(ctx, &leads)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "leads").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "leads").Inc()
		return nil, 0, err
	}
	return leads, total, nil
}
