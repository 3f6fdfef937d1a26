package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
)

type MaterialModel struct {
	MaterialID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"material_id"`
	MaterialChannelID uuid.UUID `gorm:"type:uuid;not null;index" json:"material_channel_id"`

	// Invariant: sama dengan owner channel saat create (divalidasi controller)
	MaterialUploadedBy uuid.UUID `gorm:"type:uuid;not null" json:"material_uploaded_by"`

	MaterialTitle       string `gorm:"type:varchar(150);not null" json:"material_title"`
	MaterialDescription string `gorm:"type:text" json:"material_description"`

	MaterialFileURL  string `gorm:"type:text;not null" json:"material_file_url"`
	MaterialFileName string `gorm:"type:varchar(255);not null" json:"material_file_name"`
	MaterialFileMime string `gorm:"type:varchar(100)" json:"material_file_mime"`
	MaterialFileSize int64  `gorm:"not null;default:0" json:"material_file_size"`

	// status adalah satu-satunya sumber kebenaran moderasi
	MaterialStatus string `gorm:"type:varchar(10);not null;default:'pending';index" json:"material_status"`

	MaterialApprovedBy *uuid.UUID `gorm:"type:uuid" json:"material_approved_by,omitempty"`
	MaterialApprovedAt *time.Time `json:"material_approved_at,omitempty"`

	MaterialCreatedAt time.Time      `gorm:"autoCreateTime" json:"material_created_at"`
	MaterialUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"material_updated_at"`
	MaterialDeletedAt gorm.DeletedAt `gorm:"column:material_deleted_at" json:"material_deleted_at,omitempty"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

func (m *MaterialModel) BeforeCreate(tx *gorm.DB) error {
	if m.MaterialID == uuid.Nil {
		m.MaterialID = uuid.New()
	}
	if m.MaterialStatus == "" {
		m.MaterialStatus = constants.StatusPending
	}
	return nil
}

func (m *MaterialModel) IsApproved() bool {
	return m.MaterialStatus == constants.StatusApproved
}
