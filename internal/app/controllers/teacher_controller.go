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

// TeacherController handles the teacher CRUD endpoints
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new instance of TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// GetTeachers godoc
// @Summary List teachers
// @Description Lists teachers, optionally narrowed by query filters. String filters match case-insensitive substrings.
// @Tags teachers
// @Produce json
// @Param name query string false "Filter by name substring"
// @Param email query string false "Filter by email substring"
// @Param department query string false "Filter by department substring"
// @Param designation query string false "Filter by designation substring"
// @Param teacherId query integer false "Filter by exact teacher ID"
// @Success 200 {array} models.Teacher
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/teacher [get]
func (c *TeacherController) GetTeachers(ctx *gin.Context) {
	filter := repositories.TeacherFilter{
		Name:        ctx.Query("name"),
		Email:       ctx.Query("email"),
		Department:  ctx.Query("department"),
		Designation: ctx.Query("designation"),
	}

	if raw := ctx.Query("teacherId"); raw != "" {
		teacherID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Teacher ID must be a number"})
			return
		}
		filter.TeacherID = &teacherID
	}

	teachers, err := c.teacherService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if teachers == nil {
		teachers = []models.Teacher{}
	}

	ctx.JSON(http.StatusOK, teachers)
}

// GetTeacher godoc
// @Summary Get a teacher
// @Description Retrieves a single teacher by teacher ID
// @Tags teachers
// @Produce json
// @Param teacherId path integer true "Teacher ID"
// @Success 200 {object} models.Teacher
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/teacher/{teacherId} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	teacherID, ok := c.pathTeacherID(ctx)
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetByTeacherID(ctx.Request.Context(), teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// CreateTeacher godoc
// @Summary Create a teacher
// @Description Creates a new teacher. Email and teacher ID must be unique.
// @Tags teachers
// @Accept json
// @Produce json
// @Param teacher body dto.CreateTeacherRequest true "Teacher to create"
// @Success 201 {object} models.Teacher
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/teacher [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: middleware.BindingErrorMessage(err)})
		return
	}

	teacher, err := c.teacherService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, teacher)
}

// UpdateTeacher godoc
// @Summary Update a teacher
// @Description Applies a partial update to the teacher with the given teacher ID. A teacher ID in the body is ignored.
// @Tags teachers
// @Accept json
// @Produce json
// @Param teacherId path integer true "Teacher ID"
// @Param teacher body dto.UpdateTeacherRequest true "Fields to update"
// @Success 200 {object} models.Teacher
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/teacher/{teacherId} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	teacherID, ok := c.pathTeacherID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: middleware.BindingErrorMessage(err)})
		return
	}

	teacher, err := c.teacherService.Update(ctx.Request.Context(), teacherID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// DeleteTeacher godoc
// @Summary Delete a teacher
// @Description Deletes the teacher with the given teacher ID
// @Tags teachers
// @Produce json
// @Param teacherId path integer true "Teacher ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/teacher/{teacherId} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	teacherID, ok := c.pathTeacherID(ctx)
	if !ok {
		return
	}

	if err := c.teacherService.Delete(ctx.Request.Context(), teacherID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Teacher deleted successfully"})
}

func (c *TeacherController) pathTeacherID(ctx *gin.Context) (int64, bool) {
	teacherID, err := strconv.ParseInt(ctx.Param("teacherId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Teacher ID must be a number"})
		return 0, false
	}
	return teacherID, true
}
