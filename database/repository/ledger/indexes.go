package ledgerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoLedgerRepo) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	questionIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "askedBy", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "advice", Value: 1}}},
	}
	if _, err := r.questions.Indexes().CreateMany(ctx, questionIndexes); err != nil {
		return fmt.Errorf("failed to create question indexes: %w", err)
	}

	adviceIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "answeredBy", Value: 1}}},
		{Keys: bson.D{{Key: "questionId", Value: 1}}},
	}
	if _, err := r.advice.Indexes().CreateMany(ctx, adviceIndexes); err != nil {
		return fmt.Errorf("failed to create advice indexes: %w", err)
	}
	return nil
}
