package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGetAllUsers(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes all users", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "marn-friend.users", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "Alice"},
				{Key: "email", Value: "alice@example.com"},
				{Key: "image", Value: "https://img.example.com/alice.png"},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "Bob"},
				{Key: "email", Value: "bob@example.com"},
			},
		))
		repo := NewUserRepository(mt.DB)

		users, err := repo.GetAllUsers(context.Background())
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "Alice", users[0].Name)
		assert.Equal(mt, "bob@example.com", users[1].Email)
	})
}
