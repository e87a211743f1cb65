package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asthait/studentms/internal/app/models"
	"github.com/asthait/studentms/internal/app/models/dto"
	"github.com/asthait/studentms/internal/app/repositories"
	"github.com/asthait/studentms/internal/app/services"
	"github.com/asthait/studentms/internal/middleware"
)

// StudentController handles the student CRUD endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new instance of StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetStudents godoc
// @Summary List students
// @Description Lists students, optionally narrowed by query filters. String filters match case-insensitive substrings.
// @Tags students
// @Produce json
// @Param name query string false "Filter by name substring"
// @Param email query string false "Filter by email substring"
// @Param department query string false "Filter by department substring"
// @Param registrationId query integer false "Filter by exact registration ID"
// @Param age query integer false "Filter by exact age"
// @Success 200 {array} models.Student
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/student [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	filter := repositories.StudentFilter{
		Name:       ctx.Query("name"),
		Email:      ctx.Query("email"),
		Department: ctx.Query("department"),
	}

	if raw := ctx.Query("registrationId"); raw != "" {
		registrationID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Registration ID must be a number"})
			return
		}
		filter.RegistrationID = &registrationID
	}

	if raw := ctx.Query("age"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Age must be a number"})
			return
		}
		filter.Age = &age
	}

	students, err := c.studentService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if students == nil {
		students = []models.Student{}
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudent godoc
// @Summary Get a student
// @Description Retrieves a single student by registration ID
// @Tags students
// @Produce json
// @Param registrationId path integer true "Registration ID"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/student/{registrationId} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	registrationID, ok := c.pathRegistrationID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetByRegistrationID(ctx.Request.Context(), registrationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent godoc
// @Summary Create a student
// @Description Creates a new student. Email and registration ID must be unique.
// @Tags students
// @Accept json
// @Produce json
// @Param student body dto.CreateStudentRequest true "Student to create"
// @Success 201 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/student [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: middleware.BindingErrorMessage(err)})
		return
	}

	student, err := c.studentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// UpdateStudent godoc
// @Summary Update a student
// @Description Applies a partial update to the student with the given registration ID. A registration ID in the body is ignored.
// @Tags students
// @Accept json
// @Produce json
// @Param registrationId path integer true "Registration ID"
// @Param student body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/student/{registrationId} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	registrationID, ok := c.pathRegistrationID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: middleware.BindingErrorMessage(err)})
		return
	}

	student, err := c.studentService.Update(ctx.Request.Context(), registrationID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent godoc
// @Summary Delete a student
// @Description Deletes the student with the given registration ID
// @Tags students
// @Produce json
// @Param registrationId path integer true "Registration ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/student/{registrationId} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	registrationID, ok := c.pathRegistrationID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), registrationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted successfully"})
}

func (c *StudentController) pathRegistrationID(ctx *gin.Context) (int64, bool) {
	registrationID, err := strconv.ParseInt(ctx.Param("registrationId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Registration ID must be a number"})
		return 0, false
	}
	return registrationID, true
}
