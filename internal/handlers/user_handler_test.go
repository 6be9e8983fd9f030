package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/friendlink/friendlink/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGetUsersHandler(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns all users", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "marn-friend.users", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "Alice"},
				{Key: "email", Value: "alice@example.com"},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "Bob"},
				{Key: "email", Value: "bob@example.com"},
			},
		))
		router := newTestRouter(mt)

		rr := doRequest(router, http.MethodGet, "/users", "")

		assert.Equal(mt, http.StatusOK, rr.Code)
		assert.Equal(mt, "application/json", rr.Header().Get("Content-Type"))

		var users []models.User
		require.NoError(mt, json.Unmarshal(rr.Body.Bytes(), &users))
		require.Len(mt, users, 2)
		assert.Equal(mt, "Alice", users[0].Name)
	})
}
