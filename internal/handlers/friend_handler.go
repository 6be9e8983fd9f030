package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/friendlink/friendlink/internal/models"
	"github.com/friendlink/friendlink/internal/services"
	"github.com/friendlink/friendlink/pkg/logger"
	"github.com/gorilla/mux"
)

// FriendHandler manages HTTP endpoints for friend requests and the friend
// list.
type FriendHandler struct {
	Service *services.FriendService
}

// NewFriendHandler initializes a new FriendHandler.
func NewFriendHandler(service *services.FriendService) *FriendHandler {
	return &FriendHandler{Service: service}
}

// CreateRequestHandler creates a new friend request. Status and creation
// time are always set server-side; unknown fields in the payload are
// dropped.
func (h *FriendHandler) CreateRequestHandler(w http.ResponseWriter, r *http.Request) {
	var req models.FriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode friend request payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	result, err := h.Service.CreateRequest(r.Context(), &req)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to create friend request")
		respondError(w, http.StatusInternalServerError, "Error creating friend request", err)
		return
	}

	logger.Log.WithField("requestID", req.ID.Hex()).Info("Friend request created")
	respondJSON(w, http.StatusCreated, newInsertAck(result))
}

// GetRequestsHandler lists all friend requests addressed to the email in
// the path.
func (h *FriendHandler) GetRequestsHandler(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	requests, err := h.Service.GetRequestsForRecipient(r.Context(), email)
	if err != nil {
		logger.Log.WithError(err).Errorf("Failed to fetch friend requests for %s", email)
		respondError(w, http.StatusInternalServerError, "Error fetching friend requests", err)
		return
	}

	respondJSON(w, http.StatusOK, requests)
}

// AcceptRequestHandler accepts a friend request: the stored request is
// copied into the friend list and its status set to accepted. The caller's
// own identity fields are received but ignored.
func (h *FriendHandler) AcceptRequestHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RequestID string `json:"requestId"`
		UserEmail string `json:"userEmail"`
		UserName  string `json:"userName"`
		UserPhoto string `json:"userPhoto"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode accept payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	requestID, err := models.ParseObjectID(body.RequestID)
	if err != nil {
		logger.Log.WithError(err).Warn("Invalid friend request ID")
		respondError(w, http.StatusInternalServerError, "Error accepting friend request", err)
		return
	}

	result, err := h.Service.AcceptRequest(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logger.Log.Warnf("Friend request %s not found", body.RequestID)
			respondJSON(w, http.StatusNotFound, messageResponse{Message: "Friend request not found"})
			return
		}
		logger.Log.WithError(err).Errorf("Failed to accept friend request %s", body.RequestID)
		respondError(w, http.StatusInternalServerError, "Error accepting friend request", err)
		return
	}

	logger.Log.WithField("requestID", body.RequestID).Info("Friend request accepted")
	respondJSON(w, http.StatusOK, newUpdateAck(result))
}

// RejectRequestHandler rejects a friend request. An id that matches nothing
// still succeeds with a zero-matched acknowledgment.
func (h *FriendHandler) RejectRequestHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RequestID string `json:"requestId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode reject payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	requestID, err := models.ParseObjectID(body.RequestID)
	if err != nil {
		logger.Log.WithError(err).Warn("Invalid friend request ID")
		respondError(w, http.StatusInternalServerError, "Error rejecting friend request", err)
		return
	}

	result, err := h.Service.RejectRequest(r.Context(), requestID)
	if err != nil {
		logger.Log.WithError(err).Errorf("Failed to reject friend request %s", body.RequestID)
		respondError(w, http.StatusInternalServerError, "Error rejecting friend request", err)
		return
	}

	logger.Log.WithField("requestID", body.RequestID).Info("Friend request rejected")
	respondJSON(w, http.StatusOK, newUpdateAck(result))
}

// GetFriendListHandler returns every friend list entry.
func (h *FriendHandler) GetFriendListHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.GetFriendList(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch friend list")
		respondError(w, http.StatusInternalServerError, "Error fetching friend requests", err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// UnfriendHandler removes the friend list entry identified by the path id.
func (h *FriendHandler) UnfriendHandler(w http.ResponseWriter, r *http.Request) {
	idHex := mux.Vars(r)["id"]

	id, err := models.ParseObjectID(idHex)
	if err != nil {
		logger.Log.WithError(err).Warn("Invalid friend list entry ID")
		respondError(w, http.StatusInternalServerError, "Error removing friend", err)
		return
	}

	if err := h.Service.Unfriend(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logger.Log.Warnf("Friend list entry %s not found", idHex)
			respondJSON(w, http.StatusNotFound, messageResponse{Message: "Friend not found"})
			return
		}
		logger.Log.WithError(err).Errorf("Failed to remove friend %s", idHex)
		respondError(w, http.StatusInternalServerError, "Error removing friend", err)
		return
	}

	logger.Log.WithField("entryID", idHex).Info("Friend removed")
	respondJSON(w, http.StatusOK, messageResponse{Message: "Friend removed successfully"})
}
