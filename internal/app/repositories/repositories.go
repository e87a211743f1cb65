package repositories

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/asthait/studentms/internal/pkg/apperrors"
	"github.com/asthait/studentms/internal/pkg/dberrors"
)

// Repositories holds all repository instances
type Repositories struct {
	Student StudentRepository
	Teacher TeacherRepository
}

// NewRepositories creates all repositories backed by the given database
func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		Student: NewStudentRepository(database),
		Teacher: NewTeacherRepository(database),
	}
}

// containsPattern builds a case-insensitive substring match for string filters.
// User input is quoted so it is matched literally, not as a regex.
func containsPattern(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

// translateDuplicateKey maps a store-level uniqueness violation to the
// client-facing conflict error naming the offending field. Store-specific
// error shapes never leak past this layer.
func translateDuplicateKey(err error) (error, bool) {
	field, ok := dberrors.DuplicateKeyField(err)
	if !ok {
		return nil, false
	}
	if field == "" {
		field = "field"
	}
	return apperrors.NewDuplicateFieldError(field), true
}
