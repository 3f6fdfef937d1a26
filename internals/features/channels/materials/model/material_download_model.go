package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaterialDownloadModel: audit log download/preview, append-only & best-effort
// (gagal tulis tidak menggagalkan request).
type MaterialDownloadModel struct {
	MaterialDownloadID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"material_download_id"`
	MaterialDownloadMaterialID uuid.UUID `gorm:"type:uuid;not null;index" json:"material_download_material_id"`
	MaterialDownloadUserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"material_download_user_id"`
	MaterialDownloadCreatedAt  time.Time `gorm:"autoCreateTime" json:"material_download_created_at"`
}

func (MaterialDownloadModel) TableName() string {
	return "material_downloads"
}

func (d *MaterialDownloadModel) BeforeCreate(tx *gorm.DB) error {
	if d.MaterialDownloadID == uuid.Nil {
		d.MaterialDownloadID = uuid.New()
	}
	return nil
}
