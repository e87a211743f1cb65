package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asthait/studentms/internal/app/controllers"
	"github.com/asthait/studentms/internal/app/models/dto"
	"github.com/asthait/studentms/internal/middleware"
)

// Controllers groups the handlers wired into the router
type Controllers struct {
	Auth    *controllers.AuthController
	Student *controllers.StudentController
	Teacher *controllers.TeacherController
}

// SetupRoutes registers all application routes. Everything under /api
// requires a valid bearer token; the rest is public.
func SetupRoutes(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Welcome to Student Management System with Authentication API"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/login", ctrl.Auth.Login)

	setupSwaggerRoutes(router)

	api := router.Group("/api")
	api.Use(authMiddleware.JWTAuth())
	{
		students := api.Group("/student")
		{
			students.GET("", ctrl.Student.GetStudents)
			students.POST("", ctrl.Student.CreateStudent)
			students.GET("/:registrationId", ctrl.Student.GetStudent)
			students.PUT("/:registrationId", ctrl.Student.UpdateStudent)
			students.DELETE("/:registrationId", ctrl.Student.DeleteStudent)
		}

		teachers := api.Group("/teacher")
		{
			teachers.GET("", ctrl.Teacher.GetTeachers)
			teachers.POST("", ctrl.Teacher.CreateTeacher)
			teachers.GET("/:teacherId", ctrl.Teacher.GetTeacher)
			teachers.PUT("/:teacherId", ctrl.Teacher.UpdateTeacher)
			teachers.DELETE("/:teacherId", ctrl.Teacher.DeleteTeacher)
		}
	}
}
