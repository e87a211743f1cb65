package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Teacher represents a teacher record, keyed by the unique, immutable teacher ID.
type Teacher struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Designation string             `bson:"designation" json:"designation"`
	Department  Department         `bson:"department" json:"department"`
	TeacherID   int64              `bson:"teacherId" json:"teacherId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"-"`
}
