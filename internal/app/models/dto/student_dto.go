package dto

// CreateStudentRequest carries the fields required to create a student.
// Field order matters: validation reports the first violated rule in
// declaration order.
type CreateStudentRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Department     string `json:"department" binding:"required,oneof=CSE BBA MBA LAW PHARMACY ENGLISH"`
	RegistrationID *int64 `json:"registrationId" binding:"required"`
	Age            *int   `json:"age"`
}

// UpdateStudentRequest carries the optional fields of a student update.
// Pointers distinguish "absent" from "supplied empty"; a supplied empty value
// for a required-type field is rejected. The registration ID is accepted in
// the body but never applied: the lookup key is always the path parameter.
type UpdateStudentRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Department     *string `json:"department" binding:"omitempty,oneof=CSE BBA MBA LAW PHARMACY ENGLISH"`
	Age            *int    `json:"age"`
	RegistrationID *int64  `json:"registrationId"`
}
