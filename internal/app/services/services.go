package services

import (
	"context"

	"github.com/asthait/studentms/internal/app/models"
	"github.com/asthait/studentms/internal/app/models/dto"
	"github.com/asthait/studentms/internal/app/repositories"
)

// AuthService issues bearer tokens for the fixed credential pair
type AuthService interface {
	Login(username, password string) (string, error)
}

// StudentService handles student record operations
type StudentService interface {
	List(ctx context.Context, filter repositories.StudentFilter) ([]models.Student, error)
	GetByRegistrationID(ctx context.Context, registrationID int64) (*models.Student, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	Update(ctx context.Context, registrationID int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, registrationID int64) error
}

// TeacherService handles teacher record operations
type TeacherService interface {
	List(ctx context.Context, filter repositories.TeacherFilter) ([]models.Teacher, error)
	GetByTeacherID(ctx context.Context, teacherID int64) (*models.Teacher, error)
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error)
	Update(ctx context.Context, teacherID int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error)
	Delete(ctx context.Context, teacherID int64) error
}
