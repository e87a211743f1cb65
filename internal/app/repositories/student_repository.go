package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/asthait/studentms/internal/app/models"
	"github.com/asthait/studentms/internal/db"
	"github.com/asthait/studentms/internal/pkg/apperrors"
)

// StudentFilter describes the recognized list filters. String fields match as
// case-insensitive substrings; registration ID and age match exactly. Nil or
// empty fields are not applied.
type StudentFilter struct {
	Name           string
	Email          string
	Department     string
	RegistrationID *int64
	Age            *int
}

// StudentUpdate carries the mutable student fields. The registration ID is
// deliberately absent: it can never be changed after creation.
type StudentUpdate struct {
	Name       *string
	Email      *string
	Department *string
	Age        *int
}

// StudentRepository defines the store operations for student records
type StudentRepository interface {
	Find(ctx context.Context, filter StudentFilter) ([]models.Student, error)
	FindByRegistrationID(ctx context.Context, registrationID int64) (*models.Student, error)
	Insert(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, registrationID int64, update StudentUpdate) (*models.Student, error)
	Delete(ctx context.Context, registrationID int64) error
}

type mongoStudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a student repository backed by MongoDB
func NewStudentRepository(database *mongo.Database) StudentRepository {
	return &mongoStudentRepository{
		collection: database.Collection(db.StudentCollection),
	}
}

func (r *mongoStudentRepository) Find(ctx context.Context, filter StudentFilter) ([]models.Student, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = containsPattern(filter.Name)
	}
	if filter.Email != "" {
		query["email"] = containsPattern(filter.Email)
	}
	if filter.Department != "" {
		query["department"] = containsPattern(filter.Department)
	}
	if filter.RegistrationID != nil {
		query["registrationId"] = *filter.RegistrationID
	}
	if filter.Age != nil {
		query["age"] = *filter.Age
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error finding students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}

	return students, nil
}

func (r *mongoStudentRepository) FindByRegistrationID(ctx context.Context, registrationID int64) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"registrationId": registrationID}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

func (r *mongoStudentRepository) Insert(ctx context.Context, student *models.Student) error {
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		if dupErr, ok := translateDuplicateKey(err); ok {
			return dupErr
		}
		return fmt.Errorf("error inserting student: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		student.ID = oid
	}

	return nil
}

func (r *mongoStudentRepository) Update(ctx context.Context, registrationID int64, update StudentUpdate) (*models.Student, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Department != nil {
		set["department"] = *update.Department
	}
	if update.Age != nil {
		set["age"] = *update.Age
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var student models.Student
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"registrationId": registrationID}, bson.M{"$set": set}, opts).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		if dupErr, ok := translateDuplicateKey(err); ok {
			return nil, dupErr
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return &student, nil
}

func (r *mongoStudentRepository) Delete(ctx context.Context, registrationID int64) error {
	err := r.collection.FindOneAndDelete(ctx, bson.M{"registrationId": registrationID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	return nil
}
