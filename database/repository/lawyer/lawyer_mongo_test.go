package lawyerRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"lexify/database/repository"
	"lexify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGetLawyerByGoogleID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("bare federated lawyer is not onboarded", func(mt *mtest.T) {
		repo := NewMongoLawyerRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "lexify.lawyers", mtest.FirstBatch, bson.D{
			{Key: "id", Value: "l1"},
			{Key: "username", Value: "meera@example.com"},
			{Key: "name", Value: "Meera"},
			{Key: "googleId", Value: "g-1"},
		}))

		l, err := repo.GetByGoogleID(context.Background(), "g-1")
		if err != nil {
			t.Fatalf("GetByGoogleID failed: %v", err)
		}
		if l.GoogleID != "g-1" || l.Onboarded() {
			t.Errorf("unexpected lawyer: %+v", l)
		}
	})

	mt.Run("onboarded lawyer", func(mt *mtest.T) {
		repo := NewMongoLawyerRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "lexify.lawyers", mtest.FirstBatch, bson.D{
			{Key: "id", Value: "l2"},
			{Key: "name", Value: "Arjun"},
			{Key: "city", Value: "Delhi"},
			{Key: "experience", Value: int32(7)},
		}))

		l, err := repo.GetByGoogleID(context.Background(), "g-2")
		if err != nil {
			t.Fatalf("GetByGoogleID failed: %v", err)
		}
		if !l.Onboarded() || l.Experience != 7 {
			t.Errorf("unexpected lawyer: %+v", l)
		}
	})
}

func TestUpdateLawyerProfile(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	dob := time.Date(1985, 4, 12, 0, 0, 0, 0, time.UTC)
	profile := models.LawyerProfile{DateOfBirth: &dob, City: "Delhi", RegistrationID: "D/123/2010", Experience: 12}

	mt.Run("matched", func(mt *mtest.T) {
		repo := NewMongoLawyerRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		if err := repo.UpdateProfile(context.Background(), "l1", profile); err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
	})

	mt.Run("unknown lawyer", func(mt *mtest.T) {
		repo := NewMongoLawyerRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))
		err := repo.UpdateProfile(context.Background(), "missing", profile)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
