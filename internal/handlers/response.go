package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// errorResponse is the failure body: a fixed human-readable message plus the
// raw underlying error.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// messageResponse carries a bare status message.
type messageResponse struct {
	Message string `json:"message"`
}

// insertAck mirrors the insert acknowledgment shape clients already consume.
type insertAck struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// updateAck mirrors the update acknowledgment shape clients already consume.
type updateAck struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

func newInsertAck(result *mongo.InsertOneResult) insertAck {
	ack := insertAck{Acknowledged: true}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		ack.InsertedID = id.Hex()
	}
	return ack
}

func newUpdateAck(result *mongo.UpdateResult) updateAck {
	return updateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	respondJSON(w, status, errorResponse{Message: message, Error: err.Error()})
}
