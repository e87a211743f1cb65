package services

import (
	"context"

	"github.com/asthait/studentms/internal/app/models"
	"github.com/asthait/studentms/internal/app/models/dto"
	"github.com/asthait/studentms/internal/app/repositories"
)

type studentService struct {
	studentRepo repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository) StudentService {
	return &studentService{
		studentRepo: studentRepo,
	}
}

// List returns all students matching the recognized filters, in store order
func (s *studentService) List(ctx context.Context, filter repositories.StudentFilter) ([]models.Student, error) {
	return s.studentRepo.Find(ctx, filter)
}

// GetByRegistrationID retrieves a single student by its registration ID
func (s *studentService) GetByRegistrationID(ctx context.Context, registrationID int64) (*models.Student, error) {
	return s.studentRepo.FindByRegistrationID(ctx, registrationID)
}

// Create persists a new student. Uniqueness of email and registration ID is
// enforced by the store; conflicts surface as duplicate field errors.
func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		Name:           req.Name,
		Email:          req.Email,
		Department:     models.Department(req.Department),
		RegistrationID: *req.RegistrationID,
		Age:            req.Age,
	}

	if err := s.studentRepo.Insert(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Update applies the supplied fields to the student identified by the path
// registration ID. A registration ID in the body is silently discarded.
func (s *studentService) Update(ctx context.Context, registrationID int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	update := repositories.StudentUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Age:        req.Age,
	}

	return s.studentRepo.Update(ctx, registrationID, update)
}

// Delete removes the student identified by the registration ID
func (s *studentService) Delete(ctx context.Context, registrationID int64) error {
	return s.studentRepo.Delete(ctx, registrationID)
}
