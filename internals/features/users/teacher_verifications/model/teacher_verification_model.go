package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
)

// TeacherVerificationModel: satu baris per registrasi teacher yang butuh
// review bukti mengajar. pending -> approved / rejected (terminal).
type TeacherVerificationModel struct {
	TeacherVerificationID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"teacher_verification_id"`
	TeacherVerificationUserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"teacher_verification_user_id"`
	TeacherVerificationProofURL string    `gorm:"type:text;not null" json:"teacher_verification_proof_url"`
	TeacherVerificationStatus   string    `gorm:"type:varchar(10);not null;default:'pending'" json:"teacher_verification_status"`
	TeacherVerificationReason   *string   `gorm:"type:text" json:"teacher_verification_reason,omitempty"`

	TeacherVerificationReviewedBy *uuid.UUID `gorm:"type:uuid" json:"teacher_verification_reviewed_by,omitempty"`
	TeacherVerificationReviewedAt *time.Time `json:"teacher_verification_reviewed_at,omitempty"`

	TeacherVerificationCreatedAt time.Time `gorm:"autoCreateTime" json:"teacher_verification_created_at"`
	TeacherVerificationUpdatedAt time.Time `gorm:"autoUpdateTime" json:"teacher_verification_updated_at"`
}

func (TeacherVerificationModel) TableName() string {
	return "teacher_verifications"
}

func (v *TeacherVerificationModel) BeforeCreate(tx *gorm.DB) error {
	if v.TeacherVerificationID == uuid.Nil {
		v.TeacherVerificationID = uuid.New()
	}
	if v.TeacherVerificationStatus == "" {
		v.TeacherVerificationStatus = constants.StatusPending
	}
	return nil
}
