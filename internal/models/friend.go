package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Friend request statuses. A request starts out pending and is only ever
// moved to accepted or rejected, never back.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// FriendRequest carries denormalized sender and recipient identity so the
// friend list can be materialized without extra lookups on accept.
type FriendRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SenderName     string             `bson:"senderName" json:"senderName"`
	SenderEmail    string             `bson:"senderEmail" json:"senderEmail"`
	SenderImage    string             `bson:"senderImage" json:"senderImage"`
	RecipientID    string             `bson:"recipientId" json:"recipientId"`
	RecipientEmail string             `bson:"recipientEmail" json:"recipientEmail"`
	RecipientName  string             `bson:"recipientName" json:"recipientName"`
	RecipientImage string             `bson:"recipientImage" json:"recipientImage"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// FriendListEntry is a friendship record created when a request is accepted.
// Sender fields are copied as name/email/image, recipient fields as
// mailUser/nameUser/photoUser. It keeps no reference to the request it
// originated from.
type FriendListEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Image     string             `bson:"image" json:"image"`
	MailUser  string             `bson:"mailUser" json:"mailUser"`
	NameUser  string             `bson:"nameUser" json:"nameUser"`
	PhotoUser string             `bson:"photoUser" json:"photoUser"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewFriendListEntry builds the friend list record for an accepted request.
func NewFriendListEntry(req *FriendRequest) *FriendListEntry {
	return &FriendListEntry{
		Name:      req.SenderName,
		Email:     req.SenderEmail,
		Image:     req.SenderImage,
		MailUser:  req.RecipientEmail,
		NameUser:  req.RecipientName,
		PhotoUser: req.RecipientImage,
	}
}
