// File: database/repository/client/client_mongo.go
package clientRepo

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

const CollectionName = "clients"

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates the repository and makes sure its indexes exist.
func NewMongoClientRepo(ctx context.Context, db *mongo.Database) *MongoClientRepo {
	repo := &MongoClientRepo{coll: db.Collection(CollectionName)}
	if err := repo.ensureIndexes(ctx); err != nil {
		utils.GetLogger().Error("clientRepo: failed to create indexes", zap.Error(err))
	}
	return repo
}

// NewMongoClientRepoWithCollection wraps an existing collection without touching indexes.
func NewMongoClientRepoWithCollection(coll *mongo.Collection) *MongoClientRepo {
	return &MongoClientRepo{coll: coll}
}

// Create inserts a new client document.
func (r *MongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		if err = repository.Translate(err); err == repository.ErrDuplicateKey {
			return err
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *MongoClientRepo) findOne(ctx context.Context, filter bson.M) (*models.Client, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, filter).Decode(&client); err != nil {
		if err = repository.Translate(err); err == repository.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return &client, nil
}

// GetByID retrieves a client by its unique ID.
func (r *MongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// GetByUsername retrieves a client by its username.
func (r *MongoClientRepo) GetByUsername(ctx context.Context, username string) (*models.Client, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// GetByGoogleID retrieves a client by its linked Google subject.
func (r *MongoClientRepo) GetByGoogleID(ctx context.Context, googleID string) (*models.Client, error) {
	return r.findOne(ctx, bson.M{"googleId": googleID})
}

// GetNamesByIDs maps client ids to display names.
func (r *MongoClientRepo) GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve client names: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var c models.Client
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode client: %w", err)
		}
		names[c.ID] = c.Name
	}
	return names, cursor.Err()
}
