package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/asthait/studentms/internal/app/models"
	"github.com/asthait/studentms/internal/app/models/dto"
	"github.com/asthait/studentms/internal/app/repositories"
	"github.com/asthait/studentms/internal/app/services"
	"github.com/asthait/studentms/internal/pkg/apperrors"
)

func newTeacherRouter(svc services.TeacherService) *gin.Engine {
	router := gin.New()
	ctrl := NewTeacherController(svc)
	router.GET("/api/teacher", ctrl.GetTeachers)
	router.POST("/api/teacher", ctrl.CreateTeacher)
	router.GET("/api/teacher/:teacherId", ctrl.GetTeacher)
	router.PUT("/api/teacher/:teacherId", ctrl.UpdateTeacher)
	router.DELETE("/api/teacher/:teacherId", ctrl.DeleteTeacher)
	return router
}

func sampleTeacher() *models.Teacher {
	return &models.Teacher{
		Name:        "Dr. Alice Brown",
		Email:       "alice@example.com",
		Designation: "Professor",
		Department:  "CSE",
		TeacherID:   501,
	}
}

func TestGetTeachers_PassesFilters(t *testing.T) {
	var captured repositories.TeacherFilter
	router := newTeacherRouter(&stubTeacherService{
		listFn: func(filter repositories.TeacherFilter) ([]models.Teacher, error) {
			captured = filter
			return []models.Teacher{*sampleTeacher()}, nil
		},
	})

	w := performRequest(router, http.MethodGet, "/api/teacher?designation=prof&teacherId=501", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %q)", w.Code, w.Body.String())
	}

	if captured.Designation != "prof" {
		t.Errorf("designation filter not passed through: %+v", captured)
	}
	if captured.TeacherID == nil || *captured.TeacherID != 501 {
		t.Errorf("teacher ID filter not passed through: %+v", captured.TeacherID)
	}
}

func TestGetTeachers_NonNumericTeacherID(t *testing.T) {
	router := newTeacherRouter(&stubTeacherService{
		listFn: func(repositories.TeacherFilter) ([]models.Teacher, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	w := performRequest(router, http.MethodGet, "/api/teacher?teacherId=abc", nil)
	expectError(t, w, http.StatusBadRequest, "Teacher ID must be a number")
}

func TestGetTeacher_NotFound(t *testing.T) {
	router := newTeacherRouter(&stubTeacherService{
		getFn: func(int64) (*models.Teacher, error) { return nil, apperrors.ErrTeacherNotFound },
	})

	w := performRequest(router, http.MethodGet, "/api/teacher/9999", nil)
	expectError(t, w, http.StatusNotFound, "Teacher not found")
}

func TestCreateTeacher_Success(t *testing.T) {
	router := newTeacherRouter(&stubTeacherService{
		createFn: func(req *dto.CreateTeacherRequest) (*models.Teacher, error) {
			if req.TeacherID == nil || *req.TeacherID != 501 {
				t.Errorf("unexpected teacher ID in request: %v", req.TeacherID)
			}
			return sampleTeacher(), nil
		},
	})

	w := performRequest(router, http.MethodPost, "/api/teacher", gin.H{
		"name":        "Dr. Alice Brown",
		"email":       "alice@example.com",
		"department":  "CSE",
		"teacherId":   501,
		"designation": "Professor",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %q)", w.Code, w.Body.String())
	}
}

func TestCreateTeacher_ValidationMessages(t *testing.T) {
	router := newTeacherRouter(&stubTeacherService{
		createFn: func(*dto.CreateTeacherRequest) (*models.Teacher, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	tests := []struct {
		name    string
		body    gin.H
		message string
	}{
		{
			name: "missing designation",
			body: gin.H{
				"name":       "Dr. Alice Brown",
				"email":      "alice@example.com",
				"department": "CSE",
				"teacherId":  501,
			},
			message: "Designation is required",
		},
		{
			name: "teacher ID as string",
			body: gin.H{
				"name":        "Dr. Alice Brown",
				"email":       "alice@example.com",
				"department":  "CSE",
				"teacherId":   "501",
				"designation": "Professor",
			},
			message: "Teacher ID must be a number",
		},
		{
			name: "age is not a teacher field",
			body: gin.H{
				"name":        "Dr. Alice Brown",
				"email":       "alice@example.com",
				"department":  "CSE",
				"teacherId":   501,
				"designation": "Professor",
				"age":         45,
			},
			message: `"age" is not allowed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/api/teacher", tt.body)
			expectError(t, w, http.StatusBadRequest, tt.message)
		})
	}
}

func TestCreateTeacher_DuplicateTeacherID(t *testing.T) {
	router := newTeacherRouter(&stubTeacherService{
		createFn: func(*dto.CreateTeacherRequest) (*models.Teacher, error) {
			return nil, apperrors.NewDuplicateFieldError("teacherId")
		},
	})

	w := performRequest(router, http.MethodPost, "/api/teacher", gin.H{
		"name":        "Dr. Alice Brown",
		"email":       "alice@example.com",
		"department":  "CSE",
		"teacherId":   501,
		"designation": "Professor",
	})
	expectError(t, w, http.StatusBadRequest, "teacherId already exists")
}

func TestUpdateTeacher_Success(t *testing.T) {
	router := newTeacherRouter(&stubTeacherService{
		updateFn: func(teacherID int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
			if teacherID != 501 {
				t.Errorf("expected update of 501, got %d", teacherID)
			}
			if req.Designation == nil || *req.Designation != "Associate Professor" {
				t.Errorf("unexpected designation in request: %v", req.Designation)
			}
			teacher := sampleTeacher()
			teacher.Designation = "Associate Professor"
			return teacher, nil
		},
	})

	w := performRequest(router, http.MethodPut, "/api/teacher/501", gin.H{"designation": "Associate Professor"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %q)", w.Code, w.Body.String())
	}
}

func TestDeleteTeacher_Success(t *testing.T) {
	router := newTeacherRouter(&stubTeacherService{
		deleteFn: func(int64) error { return nil },
	})

	w := performRequest(router, http.MethodDelete, "/api/teacher/501", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "Teacher deleted successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestDeleteTeacher_NonNumericID(t *testing.T) {
	router := newTeacherRouter(&stubTeacherService{})

	w := performRequest(router, http.MethodDelete, "/api/teacher/abc", nil)
	expectError(t, w, http.StatusBadRequest, "Teacher ID must be a number")
}
