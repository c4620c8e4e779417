package ledgerRepo

import (
	"context"
	"errors"
	"fmt"

	"lexify/database/repository"
	"lexify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AttachAdvice inserts advice and sets its question's reference atomically.
// The question update only matches while the question is still open, so two
// concurrent posts cannot both succeed. Requires a replica set or mongos.
func (r *MongoLedgerRepo) AttachAdvice(ctx context.Context, advice *models.Advice) error {
	sess, err := r.questions.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	// WithTransaction retries on TransientTransactionError and
	// UnknownTransactionCommitResult, so the callback must be safe to rerun.
	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		filter := bson.M{"id": advice.QuestionID, "advice": bson.M{"$exists": false}}
		update := bson.M{"$set": bson.M{"advice": advice.ID}}

		res, err := r.questions.UpdateOne(sc, filter, update)
		if err != nil {
			return nil, fmt.Errorf("link question failed: %w", err)
		}
		if res.MatchedCount == 0 {
			var existing models.Question
			if err := r.questions.FindOne(sc, bson.M{"id": advice.QuestionID}).Decode(&existing); err != nil {
				return nil, repository.Translate(err)
			}
			return nil, ErrQuestionAnswered
		}

		if _, err := r.advice.InsertOne(sc, advice); err != nil {
			return nil, fmt.Errorf("insert advice failed: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, ErrQuestionAnswered) {
			return err
		}
		return fmt.Errorf("advice transaction failed: %w", err)
	}
	return nil
}
