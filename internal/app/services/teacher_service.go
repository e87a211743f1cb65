package services

import (
	"context"

	"github.com/asthait/studentms/internal/app/models"
	"github.com/asthait/studentms/internal/app/models/dto"
	"github.com/asthait/studentms/internal/app/repositories"
)

type teacherService struct {
	teacherRepo repositories.TeacherRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo repositories.TeacherRepository) TeacherService {
	return &teacherService{
		teacherRepo: teacherRepo,
	}
}

func (s *teacherService) List(ctx context.Context, filter repositories.TeacherFilter) ([]models.Teacher, error) {
	return s.teacherRepo.Find(ctx, filter)
}

func (s *teacherService) GetByTeacherID(ctx context.Context, teacherID int64) (*models.Teacher, error) {
	return s.teacherRepo.FindByTeacherID(ctx, teacherID)
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	teacher := &models.Teacher{
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
		Department:  models.Department(req.Department),
		TeacherID:   *req.TeacherID,
	}

	if err := s.teacherRepo.Insert(ctx, teacher); err != nil {
		return nil, err
	}

	return teacher, nil
}

// Update applies the supplied fields to the teacher identified by the path
// teacher ID. A teacher ID in the body is silently discarded.
func (s *teacherService) Update(ctx context.Context, teacherID int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	update := repositories.TeacherUpdate{
		Name:        req.Name,
		Email:       req.Email,
		Department:  req.Department,
		Designation: req.Designation,
	}

	return s.teacherRepo.Update(ctx, teacherID, update)
}

func (s *teacherService) Delete(ctx context.Context, teacherID int64) error {
	return s.teacherRepo.Delete(ctx, teacherID)
}
