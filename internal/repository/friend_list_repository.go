package repository

import (
	"context"
	"time"

	"github.com/friendlink/friendlink/internal/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FriendListRepository handles database operations on the friend-list
// collection.
type FriendListRepository struct {
	collection *mongo.Collection
}

// NewFriendListRepository creates a new instance of FriendListRepository.
func NewFriendListRepository(db *mongo.Database) *FriendListRepository {
	return &FriendListRepository{
		collection: db.Collection("friend-list"),
	}
}

// CreateEntry inserts a new friend list entry with the creation time set
// server-side.
func (r *FriendListRepository) CreateEntry(ctx context.Context, entry *models.FriendListEntry) (*mongo.InsertOneResult, error) {
	entry.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create friend list entry")
	}

	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = insertedID
	}

	return result, nil
}

// GetAllEntries retrieves every friend list entry.
func (r *FriendListRepository) GetAllEntries(ctx context.Context) ([]models.FriendListEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch friend list")
	}
	defer cursor.Close(ctx)

	entries := make([]models.FriendListEntry, 0)
	for cursor.Next(ctx) {
		var entry models.FriendListEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, errors.Wrap(err, "failed to decode friend list entry")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// DeleteEntry removes the friend list entry with the given id, returning
// models.ErrNotFound when nothing matched.
func (r *FriendListRepository) DeleteEntry(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "failed to delete friend list entry")
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
