package database

import (
	"context"
	"time"

	"oakline-partners/pkg/logger"
	"oakline-partners/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// create indexes for the leads collection to optimize partner-scoped lookups.
func CreateLeadIndexes(db *mongo.Database) error {
	collection := db.Collection("leads")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "leadId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "partnerId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "address.state", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "address.zipCode", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	})
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "leads").Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "leads").Inc()
		logger.GlobalLogger.Errorf("Failed to create lead indexes: %v", err)
		return err
	}

	logger.GlobalLogger.Println("MongoDB lead indexes created successfully.")
	return nil
}

// create indexes for the partners collection.
func CreatePartnerIndexes(db *mongo.Database) error {
	collection := db.Collection("partners")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	})
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "partners").Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "partners").Inc()
		logger.GlobalLogger.Errorf("Failed to create partner indexes: %v", err)
		return err
	}

	logger.GlobalLogger.Println("MongoDB partner indexes created successfully.")
	return nil
}
