package dto

import (
	"time"

	"github.com/google/uuid"

	channelModel "eduarchive_backend/internals/features/channels/channels/model"
)

/* ==========================
   Request
========================== */

type CreateChannelRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"`
}

type UpdateChannelRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

/* ==========================
   Response
========================== */

// ChannelResponse: tampilan publik — access code tidak pernah ikut.
type ChannelResponse struct {
	ID              uuid.UUID  `json:"id"`
	OwnerUserID     uuid.UUID  `json:"owner_user_id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description"`
	SubscriberCount int        `json:"subscriber_count"`
	IsPublic        bool       `json:"is_public"`
	Status          string     `json:"status"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// OwnerChannelResponse: untuk pemilik — access code ikut ditampilkan.
type OwnerChannelResponse struct {
	ChannelResponse
	AccessCode string `json:"access_code"`
}

func ToChannelResponse(ch *channelModel.ChannelModel) ChannelResponse {
	return ChannelResponse{
		ID:              ch.ChannelID,
		OwnerUserID:     ch.ChannelOwnerUserID,
		Title:           ch.ChannelTitle,
		Slug:            ch.ChannelSlug,
		Description:     ch.ChannelDescription,
		SubscriberCount: ch.ChannelSubscriberCount,
		IsPublic:        ch.ChannelIsPublic,
		Status:          ch.ChannelStatus,
		ApprovedAt:      ch.ChannelApprovedAt,
		CreatedAt:       ch.ChannelCreatedAt,
	}
}

func ToOwnerChannelResponse(ch *channelModel.ChannelModel) OwnerChannelResponse {
	return OwnerChannelResponse{
		ChannelResponse: ToChannelResponse(ch),
		AccessCode:      ch.ChannelAccessCode,
	}
}

func ToChannelResponses(channels []channelModel.ChannelModel) []ChannelResponse {
	out := make([]ChannelResponse, 0, len(channels))
	for i := range channels {
		out = append(out, ToChannelResponse(&channels[i]))
	}
	return out
}

func ToOwnerChannelResponses(channels []channelModel.ChannelModel) []OwnerChannelResponse {
	out := make([]OwnerChannelResponse, 0, len(channels))
	for i := range channels {
		out = append(out, ToOwnerChannelResponse(&channels[i]))
	}
	return out
}
