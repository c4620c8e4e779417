// File: database/repository/lawyer/lawyer_mongo.go
package lawyerRepo

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

const CollectionName = "lawyers"

// MongoLawyerRepo implements LawyerRepository using MongoDB.
type MongoLawyerRepo struct {
	coll *mongo.Collection
}

// NewMongoLawyerRepo creates the repository and makes sure its indexes exist.
func NewMongoLawyerRepo(ctx context.Context, db *mongo.Database) *MongoLawyerRepo {
	repo := &MongoLawyerRepo{coll: db.Collection(CollectionName)}
	if err := repo.ensureIndexes(ctx); err != nil {
		utils.GetLogger().Error("lawyerRepo: failed to create indexes", zap.Error(err))
	}
	return repo
}

// NewMongoLawyerRepoWithCollection wraps an existing collection without touching indexes.
func NewMongoLawyerRepoWithCollection(coll *mongo.Collection) *MongoLawyerRepo {
	return &MongoLawyerRepo{coll: coll}
}

// Create inserts a new lawyer document.
func (r *MongoLawyerRepo) Create(ctx context.Context, lawyer *models.Lawyer) error {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	now := time.Now()
	lawyer.CreatedAt = now
	lawyer.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, lawyer); err != nil {
		if err = repository.Translate(err); err == repository.ErrDuplicateKey {
			return err
		}
		return fmt.Errorf("failed to create lawyer: %w", err)
	}
	return nil
}

func (r *MongoLawyerRepo) findOne(ctx context.Context, filter bson.M) (*models.Lawyer, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	var lawyer models.Lawyer
	if err := r.coll.FindOne(ctx, filter).Decode(&lawyer); err != nil {
		if err = repository.Translate(err); err == repository.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch lawyer: %w", err)
	}
	return &lawyer, nil
}

func (r *MongoLawyerRepo) GetByID(ctx context.Context, id string) (*models.Lawyer, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoLawyerRepo) GetByUsername(ctx context.Context, username string) (*models.Lawyer, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoLawyerRepo) GetByGoogleID(ctx context.Context, googleID string) (*models.Lawyer, error) {
	return r.findOne(ctx, bson.M{"googleId": googleID})
}

// GetNamesByIDs maps lawyer ids to display names.
func (r *MongoLawyerRepo) GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lawyer names: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var l models.Lawyer
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode lawyer: %w", err)
		}
		names[l.ID] = l.Name
	}
	return names, cursor.Err()
}

// UpdateProfile sets the onboarding fields.
func (r *MongoLawyerRepo) UpdateProfile(ctx context.Context, id string, profile models.LawyerProfile) error {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	set := bson.M{
		"city":           profile.City,
		"registrationId": profile.RegistrationID,
		"experience":     profile.Experience,
		"updatedAt":      time.Now(),
	}
	if profile.DateOfBirth != nil {
		set["dob"] = *profile.DateOfBirth
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update lawyer with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
