package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account record in the users collection. This service only ever
// reads users; accounts are created and maintained elsewhere.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Image string             `bson:"image" json:"image"`
}
