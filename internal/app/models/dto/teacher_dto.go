package dto

// CreateTeacherRequest carries the fields required to create a teacher
type CreateTeacherRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Department  string `json:"department" binding:"required,oneof=CSE BBA MBA LAW PHARMACY ENGLISH"`
	TeacherID   *int64 `json:"teacherId" binding:"required"`
	Designation string `json:"designation" binding:"required"`
}

// UpdateTeacherRequest carries the optional fields of a teacher update.
// The teacher ID is accepted in the body but never applied.
type UpdateTeacherRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Department  *string `json:"department" binding:"omitempty,oneof=CSE BBA MBA LAW PHARMACY ENGLISH"`
	Designation *string `json:"designation" binding:"omitempty,min=1"`
	TeacherID   *int64  `json:"teacherId"`
}
