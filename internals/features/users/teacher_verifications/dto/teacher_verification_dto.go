package dto

import (
	"time"

	"github.com/google/uuid"

	verifModel "eduarchive_backend/internals/features/users/teacher_verifications/model"
)

type RejectVerificationRequest struct {
	Reason string `json:"reason"`
}

type TeacherVerificationResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	UserName   string     `json:"user_name,omitempty"`
	Email      string     `json:"email,omitempty"`
	ProofURL   string     `json:"proof_url"`
	Status     string     `json:"status"`
	Reason     *string    `json:"reason,omitempty"`
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToTeacherVerificationResponse(v *verifModel.TeacherVerificationModel) TeacherVerificationResponse {
	return TeacherVerificationResponse{
		ID:         v.TeacherVerificationID,
		UserID:     v.TeacherVerificationUserID,
		ProofURL:   v.TeacherVerificationProofURL,
		Status:     v.TeacherVerificationStatus,
		Reason:     v.TeacherVerificationReason,
		ReviewedBy: v.TeacherVerificationReviewedBy,
		ReviewedAt: v.TeacherVerificationReviewedAt,
		CreatedAt:  v.TeacherVerificationCreatedAt,
	}
}
