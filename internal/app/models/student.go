package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student represents a student record. The registration ID is the business key:
// unique, immutable after creation, and distinct from the store's internal id.
// Store-managed timestamps are never serialized to API responses.
type Student struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Department     Department         `bson:"department" json:"department"`
	RegistrationID int64              `bson:"registrationId" json:"registrationId"`
	Age            *int               `bson:"age,omitempty" json:"age,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"-"`
}
