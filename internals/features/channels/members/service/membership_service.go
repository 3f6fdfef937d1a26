package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	channelModel "eduarchive_backend/internals/features/channels/channels/model"
	memberModel "eduarchive_backend/internals/features/channels/members/model"
	helpers "eduarchive_backend/internals/helpers"
)

/* ==========================
   Errors
========================== */

var (
	ErrChannelNotFound    = errors.New("channel tidak ditemukan")
	ErrChannelNotApproved = errors.New("channel belum disetujui admin")
	ErrChannelNotPublic   = errors.New("channel ini private, ajukan permintaan akses")
	ErrNotMember          = errors.New("anda bukan member channel ini")
)

// JoinResult membedakan join baru dengan no-op (sudah member).
type JoinResult struct {
	Channel       *channelModel.ChannelModel
	AlreadyMember bool
}

/* ==========================
   JOIN — by access code
========================== */

func JoinByCode(db *gorm.DB, userID uuid.UUID, accessCode string) (*JoinResult, error) {
	var channel channelModel.ChannelModel
	if err := db.First(&channel, "channel_access_code = ?", accessCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}
	if !channel.IsApproved() {
		return nil, ErrChannelNotApproved
	}
	return join(db, &channel, userID)
}

/* ==========================
   JOIN — public channel by id
========================== */

func JoinPublic(db *gorm.DB, userID, channelID uuid.UUID) (*JoinResult, error) {
	var channel channelModel.ChannelModel
	if err := db.First(&channel, "channel_id = ?", channelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}
	if !channel.IsApproved() {
		return nil, ErrChannelNotApproved
	}
	if !channel.ChannelIsPublic {
		return nil, ErrChannelNotPublic
	}
	return join(db, &channel, userID)
}

// join: insert membership + increment counter dalam satu transaksi.
// Unique index (channel_id, user_id) membuat join ganda jadi no-op.
func join(db *gorm.DB, channel *channelModel.ChannelModel, userID uuid.UUID) (*JoinResult, error) {
	result := &JoinResult{Channel: channel}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		member := memberModel.ChannelMemberModel{
			ChannelMemberChannelID: channel.ChannelID,
			ChannelMemberUserID:    userID,
		}
		if err := tx.Create(&member).Error; err != nil {
			if helpers.IsUniqueViolation(err) {
				result.AlreadyMember = true
				return nil
			}
			return err
		}

		return tx.Model(&channelModel.ChannelModel{}).
			Where("channel_id = ?", channel.ChannelID).
			UpdateColumn("channel_subscriber_count", gorm.Expr("channel_subscriber_count + 1")).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return result, nil
}

/* ==========================
   LEAVE
========================== */

func Leave(db *gorm.DB, userID, channelID uuid.UUID) error {
	var channel channelModel.ChannelModel
	if err := db.First(&channel, "channel_id = ?", channelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChannelNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("channel_member_channel_id = ? AND channel_member_user_id = ?",
			channelID, userID).
			Delete(&memberModel.ChannelMemberModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotMember
		}

		// Decrement di-clamp supaya counter tidak pernah negatif
		return tx.Model(&channelModel.ChannelModel{}).
			Where("channel_id = ?", channelID).
			UpdateColumn("channel_subscriber_count",
				gorm.Expr("CASE WHEN channel_subscriber_count > 0 THEN channel_subscriber_count - 1 ELSE 0 END")).Error
	})
}

/* ==========================
   Shared: AddMember — dipakai approval access request
========================== */

// AddMember menambahkan membership di dalam transaksi yang sudah berjalan.
// Mengembalikan true jika baris baru benar-benar dibuat.
func AddMember(tx *gorm.DB, channelID, userID uuid.UUID) (bool, error) {
	member := memberModel.ChannelMemberModel{
		ChannelMemberChannelID: channelID,
		ChannelMemberUserID:    userID,
	}
	if err := tx.Create(&member).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	if err := tx.Model(&channelModel.ChannelModel{}).
		Where("channel_id = ?", channelID).
		UpdateColumn("channel_subscriber_count", gorm.Expr("channel_subscriber_count + 1")).Error; err != nil {
		return false, err
	}
	return true, nil
}

/* ==========================
   Helper untuk fitur lain
========================== */

func IsMember(db *gorm.DB, channelID, userID uuid.UUID) (bool, error) {
	var cnt int64
	err := db.Model(&memberModel.ChannelMemberModel{}).
		Where("channel_member_channel_id = ? AND channel_member_user_id = ?", channelID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}
