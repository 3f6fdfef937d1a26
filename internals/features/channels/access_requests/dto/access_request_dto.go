package dto

import (
	"time"

	"github.com/google/uuid"

	requestModel "eduarchive_backend/internals/features/channels/access_requests/model"
)

type RejectAccessRequestRequest struct {
	Reason string `json:"reason"`
}

type AccessRequestResponse struct {
	ID         uuid.UUID  `json:"id"`
	ChannelID  uuid.UUID  `json:"channel_id"`
	UserID     uuid.UUID  `json:"user_id"`
	UserName   string     `json:"user_name,omitempty"`
	Status     string     `json:"status"`
	Reason     *string    `json:"reason,omitempty"`
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToAccessRequestResponse(r *requestModel.ChannelAccessRequestModel) AccessRequestResponse {
	return AccessRequestResponse{
		ID:         r.ChannelAccessRequestID,
		ChannelID:  r.ChannelAccessRequestChannelID,
		UserID:     r.ChannelAccessRequestUserID,
		Status:     r.ChannelAccessRequestStatus,
		Reason:     r.ChannelAccessRequestReason,
		ReviewedBy: r.ChannelAccessRequestReviewedBy,
		CreatedAt:  r.ChannelAccessRequestCreatedAt,
	}
}
