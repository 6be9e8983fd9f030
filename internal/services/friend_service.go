package services

import (
	"context"

	"github.com/friendlink/friendlink/internal/models"
	"github.com/friendlink/friendlink/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FriendService handles business logic for the friend request lifecycle and
// the friend list.
type FriendService struct {
	requestRepo *repository.FriendRequestRepository
	listRepo    *repository.FriendListRepository
}

// NewFriendService creates a new FriendService.
func NewFriendService(requestRepo *repository.FriendRequestRepository, listRepo *repository.FriendListRepository) *FriendService {
	return &FriendService{
		requestRepo: requestRepo,
		listRepo:    listRepo,
	}
}

// CreateRequest persists a new friend request as pending.
func (s *FriendService) CreateRequest(ctx context.Context, req *models.FriendRequest) (*mongo.InsertOneResult, error) {
	return s.requestRepo.CreateRequest(ctx, req)
}

// GetRequestsForRecipient returns all requests addressed to the given email.
func (s *FriendService) GetRequestsForRecipient(ctx context.Context, email string) ([]models.FriendRequest, error) {
	return s.requestRepo.GetRequestsByRecipientEmail(ctx, email)
}

// AcceptRequest copies the stored request into the friend list and marks the
// request accepted. The two writes are not atomic.
func (s *FriendService) AcceptRequest(ctx context.Context, requestID primitive.ObjectID) (*mongo.UpdateResult, error) {
	request, err := s.requestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	entry := models.NewFriendListEntry(request)
	if _, err := s.listRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	return s.requestRepo.UpdateRequestStatus(ctx, requestID, models.StatusAccepted)
}

// RejectRequest marks the request rejected. An id that resolves to nothing
// still succeeds with a zero-matched result.
func (s *FriendService) RejectRequest(ctx context.Context, requestID primitive.ObjectID) (*mongo.UpdateResult, error) {
	return s.requestRepo.UpdateRequestStatus(ctx, requestID, models.StatusRejected)
}

// GetFriendList returns every friend list entry.
func (s *FriendService) GetFriendList(ctx context.Context) ([]models.FriendListEntry, error) {
	return s.listRepo.GetAllEntries(ctx)
}

// Unfriend removes a friend list entry by id.
func (s *FriendService) Unfriend(ctx context.Context, id primitive.ObjectID) error {
	return s.listRepo.DeleteEntry(ctx, id)
}
