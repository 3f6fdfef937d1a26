package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	userModel "eduarchive_backend/internals/features/users/user/model"
)

/* ==========================
   Request
========================== */

type UpdateProfileRequest struct {
	FirstName *string          `json:"first_name"`
	LastName  *string          `json:"last_name"`
	School    *string          `json:"school"`
	Gender    *string          `json:"gender"`
	BirthDate *datatypes.Date  `json:"birth_date"`
}

type DeleteUserRequest struct {
	Reason string `json:"reason"`
}

type AddWarningRequest struct {
	Message string `json:"message"`
}

/* ==========================
   Response
========================== */

type UserResponse struct {
	ID              uuid.UUID       `json:"id"`
	UserName        string          `json:"user_name"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	Role            string          `json:"role"`
	ProfileImageURL *string         `json:"profile_image_url"`
	School          *string         `json:"school"`
	Gender          *string         `json:"gender"`
	BirthDate       *datatypes.Date `json:"birth_date"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}

type WarningResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:              u.ID,
		UserName:        u.UserName,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Role:            u.Role,
		ProfileImageURL: u.ProfileImageURL,
		School:          u.School,
		Gender:          u.Gender,
		BirthDate:       u.BirthDate,
		IsActive:        u.IsActive,
		CreatedAt:       u.CreatedAt,
	}
}

func ToUserResponses(users []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}

func ToWarningResponse(w *userModel.UserWarningModel) WarningResponse {
	return WarningResponse{
		ID:        w.UserWarningID,
		UserID:    w.UserWarningUserID,
		Message:   w.UserWarningMessage,
		CreatedAt: w.UserWarningCreatedAt,
	}
}
