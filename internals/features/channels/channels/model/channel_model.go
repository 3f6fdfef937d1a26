package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
)

type ChannelModel struct {
	ChannelID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"channel_id"`
	ChannelOwnerUserID uuid.UUID `gorm:"type:uuid;not null;index" json:"channel_owner_user_id"`

	ChannelTitle       string `gorm:"type:varchar(150);not null" json:"channel_title"`
	ChannelSlug        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"channel_slug"`
	ChannelDescription string `gorm:"type:text" json:"channel_description"`

	// Kode undangan acak, dipakai join-by-code
	ChannelAccessCode string `gorm:"type:varchar(16);uniqueIndex;not null" json:"-"`

	// Denormalized: dijaga lewat increment/decrement dalam transaksi join/leave
	ChannelSubscriberCount int `gorm:"not null;default:0" json:"channel_subscriber_count"`

	// Tanpa default tag: GORM men-skip zero-value field yang punya default,
	// sehingga is_public=false tidak pernah tertulis. Default true diisi controller.
	ChannelIsPublic bool   `gorm:"not null" json:"channel_is_public"`
	ChannelStatus   string `gorm:"type:varchar(10);not null;default:'pending';index" json:"channel_status"`

	ChannelApprovedBy *uuid.UUID `gorm:"type:uuid" json:"channel_approved_by,omitempty"`
	ChannelApprovedAt *time.Time `json:"channel_approved_at,omitempty"`

	ChannelCreatedAt time.Time      `gorm:"autoCreateTime" json:"channel_created_at"`
	ChannelUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"channel_updated_at"`
	ChannelDeletedAt gorm.DeletedAt `gorm:"column:channel_deleted_at" json:"channel_deleted_at,omitempty"`
}

func (ChannelModel) TableName() string {
	return "channels"
}

func (ch *ChannelModel) BeforeCreate(tx *gorm.DB) error {
	if ch.ChannelID == uuid.Nil {
		ch.ChannelID = uuid.New()
	}
	if ch.ChannelStatus == "" {
		ch.ChannelStatus = constants.StatusPending
	}
	return nil
}

func (ch *ChannelModel) IsApproved() bool {
	return ch.ChannelStatus == constants.StatusApproved
}
