package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserWarningModel: catatan peringatan admin untuk seorang user.
// Append-only, diurutkan berdasarkan created_at.
type UserWarningModel struct {
	UserWarningID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_warning_id"`
	UserWarningUserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_warning_user_id"`
	UserWarningMessage   string    `gorm:"type:text;not null" json:"user_warning_message"`
	UserWarningCreatedAt time.Time `gorm:"autoCreateTime" json:"user_warning_created_at"`
}

func (UserWarningModel) TableName() string {
	return "user_warnings"
}

func (w *UserWarningModel) BeforeCreate(tx *gorm.DB) error {
	if w.UserWarningID == uuid.Nil {
		w.UserWarningID = uuid.New()
	}
	return nil
}
