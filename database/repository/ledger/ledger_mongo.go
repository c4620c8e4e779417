// File: database/repository/ledger/ledger_mongo.go
package ledgerRepo

import (
	"context"
	"fmt"
	"time"

	"lexify/database/repository"
	"lexify/models"
	"lexify/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	QuestionCollection = "questions"
	AdviceCollection   = "advice"
)

// MongoLedgerRepo implements LedgerRepository using MongoDB.
type MongoLedgerRepo struct {
	questions *mongo.Collection
	advice    *mongo.Collection
}

// NewMongoLedgerRepo creates the repository and makes sure its indexes exist.
func NewMongoLedgerRepo(ctx context.Context, db *mongo.Database) *MongoLedgerRepo {
	repo := NewMongoLedgerRepoWithCollections(db.Collection(QuestionCollection), db.Collection(AdviceCollection))
	if err := repo.ensureIndexes(ctx); err != nil {
		utils.GetLogger().Error("ledgerRepo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func NewMongoLedgerRepoWithCollections(questions, advice *mongo.Collection) *MongoLedgerRepo {
	return &MongoLedgerRepo{questions: questions, advice: advice}
}

// CreateQuestion inserts a new question document.
func (r *MongoLedgerRepo) CreateQuestion(ctx context.Context, q *models.Question) error {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	if _, err := r.questions.InsertOne(ctx, q); err != nil {
		return fmt.Errorf("failed to create question: %w", repository.Translate(err))
	}
	return nil
}

// GetQuestion retrieves a question by id.
func (r *MongoLedgerRepo) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	var q models.Question
	if err := r.questions.FindOne(ctx, bson.M{"id": id}).Decode(&q); err != nil {
		if err = repository.Translate(err); err == repository.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch question with id %s: %w", id, err)
	}
	return &q, nil
}

func buildQuestionFilter(f QuestionFilter) bson.M {
	filter := bson.M{}
	if f.Answered != nil {
		filter["advice"] = bson.M{"$exists": *f.Answered}
	}
	if f.AskedBy != "" {
		filter["askedBy"] = f.AskedBy
	}
	if f.IDs != nil {
		filter["id"] = bson.M{"$in": f.IDs}
	}
	return filter
}

// FindQuestions returns matching questions, newest first.
func (r *MongoLedgerRepo) FindQuestions(ctx context.Context, f QuestionFilter) ([]models.Question, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.questions.Find(ctx, buildQuestionFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve questions: %w", err)
	}
	defer cursor.Close(ctx)

	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	return questions, nil
}

func (r *MongoLedgerRepo) findAdvice(ctx context.Context, filter bson.M) ([]models.Advice, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.advice.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve advice: %w", err)
	}
	defer cursor.Close(ctx)

	advice := []models.Advice{}
	if err := cursor.All(ctx, &advice); err != nil {
		return nil, fmt.Errorf("failed to decode advice: %w", err)
	}
	return advice, nil
}

func (r *MongoLedgerRepo) GetAdviceByIDs(ctx context.Context, ids []string) ([]models.Advice, error) {
	if len(ids) == 0 {
		return []models.Advice{}, nil
	}
	return r.findAdvice(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (r *MongoLedgerRepo) GetAdviceByLawyer(ctx context.Context, lawyerID string) ([]models.Advice, error) {
	return r.findAdvice(ctx, bson.M{"answeredBy": lawyerID})
}

// LinkAdvice sets the advice reference of a question that has none.
func (r *MongoLedgerRepo) LinkAdvice(ctx context.Context, questionID, adviceID string) (bool, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	filter := bson.M{"id": questionID, "advice": bson.M{"$exists": false}}
	result, err := r.questions.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"advice": adviceID}})
	if err != nil {
		return false, fmt.Errorf("failed to link advice %s to question %s: %w", adviceID, questionID, err)
	}
	return result.MatchedCount > 0, nil
}

// FindOrphanedAdvice joins every advice with its question and keeps those not referenced back.
func (r *MongoLedgerRepo) FindOrphanedAdvice(ctx context.Context) ([]OrphanedAdvice, error) {
	ctx, cancel := repository.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: r.questions.Name()},
			{Key: "localField", Value: "questionId"},
			{Key: "foreignField", Value: "id"},
			{Key: "as", Value: "question"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$question"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$match", Value: bson.D{
			{Key: "$expr", Value: bson.D{{Key: "$ne", Value: bson.A{"$question.advice", "$id"}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}}}},
	}

	cursor, err := r.advice.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orphaned advice: %w", err)
	}
	defer cursor.Close(ctx)

	orphans := []OrphanedAdvice{}
	if err := cursor.All(ctx, &orphans); err != nil {
		return nil, fmt.Errorf("failed to decode orphaned advice: %w", err)
	}
	return orphans, nil
}
