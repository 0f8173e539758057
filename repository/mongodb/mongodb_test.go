package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
)

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find by id decodes embedded lists", func(mt *mtest.T) {
		repo := &userRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "storefront.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u1"},
			{Key: "username", Value: "asha"},
			{Key: "profile", Value: bson.D{{Key: "name", Value: "Asha"}}},
			{Key: "cart", Value: bson.A{
				bson.D{{Key: "productID", Value: "p1"}, {Key: "price", Value: 100.0}},
				bson.D{{Key: "productID", Value: "p2"}, {Key: "price", Value: 250.0}},
			}},
		}))

		u, err := repo.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "Asha", u.Profile.Name)
		require.Len(t, u.Cart, 2)
		assert.Equal(t, 350.0, models.TotalPrice(u.Cart))
	})

	mt.Run("missing user is not found", func(mt *mtest.T) {
		repo := &userRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "storefront.users", mtest.FirstBatch))

		_, err := repo.FindByID(ctx, "nope")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	mt.Run("duplicate username", func(mt *mtest.T) {
		repo := &userRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: storefront.users index: username_1",
		}))

		err := repo.Create(ctx, &models.User{Username: "asha"})
		assert.ErrorIs(t, err, repository.ErrDuplicateIdentity)
	})

	mt.Run("save of unknown user", func(mt *mtest.T) {
		repo := &userRepository{coll: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := repo.Save(ctx, &models.User{ID: "ghost"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	mt.Run("upsert retries once after losing an insert race", func(mt *mtest.T) {
		repo := &userRepository{coll: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    11000,
				Message: "E11000 duplicate key error collection: storefront.users index: googleId_1",
			}),
			mtest.CreateCursorResponse(1, "storefront.users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "winner"},
				{Key: "googleId", Value: "g-1"},
			}),
		)

		u, err := repo.UpsertExternal(ctx, models.ProviderGoogle, "g-1", "Asha")
		require.NoError(t, err)
		assert.Equal(t, "winner", u.ID)
	})
}

func TestWrap(t *testing.T) {
	err := wrap("op", assert.AnError)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.ErrorIs(t, err, assert.AnError)
}
