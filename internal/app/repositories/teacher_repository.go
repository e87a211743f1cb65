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

// TeacherFilter describes the recognized list filters for teachers
type TeacherFilter struct {
	Name        string
	Email       string
	Department  string
	Designation string
	TeacherID   *int64
}

// TeacherUpdate carries the mutable teacher fields; the teacher ID is immutable
type TeacherUpdate struct {
	Name        *string
	Email       *string
	Department  *string
	Designation *string
}

// TeacherRepository defines the store operations for teacher records
type TeacherRepository interface {
	Find(ctx context.Context, filter TeacherFilter) ([]models.Teacher, error)
	FindByTeacherID(ctx context.Context, teacherID int64) (*models.Teacher, error)
	Insert(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacherID int64, update TeacherUpdate) (*models.Teacher, error)
	Delete(ctx context.Context, teacherID int64) error
}

type mongoTeacherRepository struct {
	collection *mongo.Collection
}

// NewTeacherRepository creates a teacher repository backed by MongoDB
func NewTeacherRepository(database *mongo.Database) TeacherRepository {
	return &mongoTeacherRepository{
		collection: database.Collection(db.TeacherCollection),
	}
}

func (r *mongoTeacherRepository) Find(ctx context.Context, filter TeacherFilter) ([]models.Teacher, error) {
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
	if filter.Designation != "" {
		query["designation"] = containsPattern(filter.Designation)
	}
	if filter.TeacherID != nil {
		query["teacherId"] = *filter.TeacherID
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error finding teachers: %w", err)
	}
	defer cursor.Close(ctx)

	var teachers []models.Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, fmt.Errorf("error decoding teachers: %w", err)
	}

	return teachers, nil
}

func (r *mongoTeacherRepository) FindByTeacherID(ctx context.Context, teacherID int64) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.collection.FindOne(ctx, bson.M{"teacherId": teacherID}).Decode(&teacher)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

func (r *mongoTeacherRepository) Insert(ctx context.Context, teacher *models.Teacher) error {
	now := time.Now().UTC()
	teacher.CreatedAt = now
	teacher.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, teacher)
	if err != nil {
		if dupErr, ok := translateDuplicateKey(err); ok {
			return dupErr
		}
		return fmt.Errorf("error inserting teacher: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		teacher.ID = oid
	}

	return nil
}

func (r *mongoTeacherRepository) Update(ctx context.Context, teacherID int64, update TeacherUpdate) (*models.Teacher, error) {
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
	if update.Designation != nil {
		set["designation"] = *update.Designation
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var teacher models.Teacher
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"teacherId": teacherID}, bson.M{"$set": set}, opts).Decode(&teacher)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeacherNotFound
		}
		if dupErr, ok := translateDuplicateKey(err); ok {
			return nil, dupErr
		}
		return nil, fmt.Errorf("error updating teacher: %w", err)
	}

	return &teacher, nil
}

func (r *mongoTeacherRepository) Delete(ctx context.Context, teacherID int64) error {
	err := r.collection.FindOneAndDelete(ctx, bson.M{"teacherId": teacherID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrTeacherNotFound
		}
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	return nil
}
