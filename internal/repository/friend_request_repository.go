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

// FriendRequestRepository handles database operations on the friend_requests
// collection.
type FriendRequestRepository struct {
	collection *mongo.Collection
}

// NewFriendRequestRepository creates a new instance of FriendRequestRepository.
func NewFriendRequestRepository(db *mongo.Database) *FriendRequestRepository {
	return &FriendRequestRepository{
		collection: db.Collection("friend_requests"),
	}
}

// CreateRequest inserts a new friend request. Status and creation time are
// set here regardless of what the caller supplied.
func (r *FriendRequestRepository) CreateRequest(ctx context.Context, req *models.FriendRequest) (*mongo.InsertOneResult, error) {
	req.Status = models.StatusPending
	req.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create friend request")
	}

	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		req.ID = insertedID
	}

	return result, nil
}

// GetRequestsByRecipientEmail retrieves all requests addressed to the given
// email. The match is exact; requests where only the sender email matches
// are excluded.
func (r *FriendRequestRepository) GetRequestsByRecipientEmail(ctx context.Context, email string) ([]models.FriendRequest, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"recipientEmail": email})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch friend requests")
	}
	defer cursor.Close(ctx)

	requests := make([]models.FriendRequest, 0)
	for cursor.Next(ctx) {
		var req models.FriendRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, errors.Wrap(err, "failed to decode friend request")
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// GetRequestByID retrieves a single friend request, returning
// models.ErrNotFound when the id does not resolve to a record.
func (r *FriendRequestRepository) GetRequestByID(ctx context.Context, id primitive.ObjectID) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friend request")
	}
	return &request, nil
}

// UpdateRequestStatus sets the request's status unconditionally. A request
// that has already left "pending" is overwritten all the same; an unknown id
// simply reports zero matched documents.
func (r *FriendRequestRepository) UpdateRequestStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update request status")
	}
	return result, nil
}
