package dto

import (
	"time"

	"github.com/google/uuid"

	materialModel "eduarchive_backend/internals/features/channels/materials/model"
)

type MaterialResponse struct {
	ID          uuid.UUID  `json:"id"`
	ChannelID   uuid.UUID  `json:"channel_id"`
	UploadedBy  uuid.UUID  `json:"uploaded_by"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	FileName    string     `json:"file_name"`
	FileMime    string     `json:"file_mime"`
	FileSize    int64      `json:"file_size"`
	Status      string     `json:"status"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToMaterialResponse(m *materialModel.MaterialModel) MaterialResponse {
	return MaterialResponse{
		ID:          m.MaterialID,
		ChannelID:   m.MaterialChannelID,
		UploadedBy:  m.MaterialUploadedBy,
		Title:       m.MaterialTitle,
		Description: m.MaterialDescription,
		FileName:    m.MaterialFileName,
		FileMime:    m.MaterialFileMime,
		FileSize:    m.MaterialFileSize,
		Status:      m.MaterialStatus,
		ApprovedAt:  m.MaterialApprovedAt,
		CreatedAt:   m.MaterialCreatedAt,
		UpdatedAt:   m.MaterialUpdatedAt,
	}
}

func ToMaterialResponses(materials []materialModel.MaterialModel) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for i := range materials {
		out = append(out, ToMaterialResponse(&materials[i]))
	}
	return out
}
