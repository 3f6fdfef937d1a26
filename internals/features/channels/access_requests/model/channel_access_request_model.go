package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
)

// ChannelAccessRequestModel: permintaan student untuk join channel private.
// Maksimal satu request pending per (channel, user); request yang sudah
// ditolak tidak memblokir request baru.
type ChannelAccessRequestModel struct {
	ChannelAccessRequestID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"channel_access_request_id"`
	ChannelAccessRequestChannelID uuid.UUID `gorm:"type:uuid;not null;index" json:"channel_access_request_channel_id"`
	ChannelAccessRequestUserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"channel_access_request_user_id"`

	ChannelAccessRequestStatus string  `gorm:"type:varchar(10);not null;default:'pending';index" json:"channel_access_request_status"`
	ChannelAccessRequestReason *string `gorm:"type:text" json:"channel_access_request_reason,omitempty"`

	ChannelAccessRequestReviewedBy *uuid.UUID `gorm:"type:uuid" json:"channel_access_request_reviewed_by,omitempty"`

	ChannelAccessRequestCreatedAt time.Time `gorm:"autoCreateTime" json:"channel_access_request_created_at"`
	ChannelAccessRequestUpdatedAt time.Time `gorm:"autoUpdateTime" json:"channel_access_request_updated_at"`
}

func (ChannelAccessRequestModel) TableName() string {
	return "channel_access_requests"
}

func (r *ChannelAccessRequestModel) BeforeCreate(tx *gorm.DB) error {
	if r.ChannelAccessRequestID == uuid.Nil {
		r.ChannelAccessRequestID = uuid.New()
	}
	if r.ChannelAccessRequestStatus == "" {
		r.ChannelAccessRequestStatus = constants.StatusPending
	}
	return nil
}
