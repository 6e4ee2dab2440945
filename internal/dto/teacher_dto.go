package dto

import (
	"time"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

// TeacherJoinRequest describes a teacher registration request.
type TeacherJoinRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	DOB        string `json:"dob" validate:"required,datetime=2006-01-02"`
	Department string `json:"department" validate:"required"`
	Password   string `json:"password" validate:"required,min=8"`
	Phone      string `json:"phone"`
	School     string `json:"school"`
}

// TeacherStatusRequest approves or rejects a pending join request.
type TeacherStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// TeacherLoginRequest starts a teacher login; a passcode is sent on success.
type TeacherLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TeacherVerifyRequest completes a login by presenting the passcode.
type TeacherVerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// TeacherResponse is the serialized teacher representation. The credential
// hash is never included.
type TeacherResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DOB          time.Time `json:"dob"`
	Department   string    `json:"department"`
	Phone        string    `json:"phone,omitempty"`
	School       string    `json:"school,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Status       string    `json:"status"`
	GroupIDs     []uint    `json:"groups"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TokenResponse carries the bearer credential issued after OTP verification.
type TokenResponse struct {
	Token   string          `json:"token"`
	Teacher TeacherResponse `json:"teacher"`
}

// NewTeacherResponse converts a model into a DTO.
func NewTeacherResponse(model models.Teacher) TeacherResponse {
	groupIDs := []uint(model.GroupIDs)
	if groupIDs == nil {
		groupIDs = []uint{}
	}

	return TeacherResponse{
		ID:           model.ID,
		Name:         model.Name,
		Email:        model.Email,
		DOB:          model.DOB,
		Department:   model.Department,
		Phone:        model.Phone,
		School:       model.School,
		ProfileImage: model.ProfileImage,
		Status:       model.Status,
		GroupIDs:     groupIDs,
		CreatedAt:    model.CreatedAt,
	}
}

// NewTeacherResponseSlice converts a slice of models into DTOs.
func NewTeacherResponseSlice(teachers []models.Teacher) []TeacherResponse {
	responses := make([]TeacherResponse, 0, len(teachers))
	for _, teacher := range teachers {
		responses = append(responses, NewTeacherResponse(teacher))
	}

	return responses
}
