package repositories

import (
	"context"
	"fmt"
	"time"

	"oakline-partners/internal/models"
	"oakline-partners/pkg/database"
	"oakline-partners/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type partnerRepository struct {
	collection *mongo.Collection
}

func NewPartnerRepository() PartnerRepository {
	return &partnerRepository{
		collection: database.DB.Collection("partners"),
	}
}

func (r *partnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, partner)
	metrics.MongoOperationDuration.WithLabelValues("insert", "partners").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "partners").Inc()
		return err
	}
	return nil
}

func (r *partnerRepository) FindByEmail(ctx context.Context, email string) (*models.Partner, error) {
	start := time.Now()
	var partner models.Partner
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&partner)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "partners").Observe(time.Since(start).Seconds())
	if err != nil {
		if err != mongo.ErrNoDocuments {
			metrics.MongoErrorsTotal.WithLabelValues("find_one", "partners").Inc()
		}
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) FindByID(ctx context.Context, id string) (*models.Partner, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid partner id: %v", err)
	}

	start := time.Now()
	var partner models.Partner
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&partner)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "partners").Observe(time.Since(start).Seconds())
	if err != nil {
		if err != mongo.ErrNoDocuments {
			metrics.MongoErrorsTotal.WithLabelValues("find_one", "partners").Inc()
		}
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) UpdateStatus(ctx context.Context, id string, status models.PartnerStatus) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid partner id: %v", err)
	}

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	metrics.MongoOperationDuration.WithLabelValues("update_one", "partners").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", "partners").Inc()
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("partner not found: %w", mongo.ErrNoDocuments)
	}
	return nil
}
