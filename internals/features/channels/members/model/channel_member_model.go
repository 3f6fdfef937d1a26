package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChannelMemberModel: relasi join student <-> channel.
// Unique index (channel_id, user_id) menutup race check-then-insert.
type ChannelMemberModel struct {
	ChannelMemberID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"channel_member_id"`
	ChannelMemberChannelID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_channel_member_unique" json:"channel_member_channel_id"`
	ChannelMemberUserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_channel_member_unique" json:"channel_member_user_id"`
	ChannelMemberJoinedAt  time.Time `gorm:"autoCreateTime" json:"channel_member_joined_at"`
}

func (ChannelMemberModel) TableName() string {
	return "channel_members"
}

func (m *ChannelMemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChannelMemberID == uuid.Nil {
		m.ChannelMemberID = uuid.New()
	}
	return nil
}
