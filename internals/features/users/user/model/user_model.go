package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"eduarchive_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;not null;uniqueIndex" json:"user_name" validate:"required,min=3,max=50"`
	FirstName string    `gorm:"size:50;not null" json:"first_name" validate:"required,max=50"`
	LastName  string    `gorm:"size:50" json:"last_name" validate:"max=50"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role      string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	ProfileImageURL *string         `gorm:"type:text" json:"profile_image_url,omitempty"`
	School          *string         `gorm:"size:100" json:"school,omitempty"`
	Gender          *string         `gorm:"size:20" json:"gender,omitempty"`
	BirthDate       *datatypes.Date `json:"birth_date,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	// Alasan wajib diisi saat soft-delete (lihat controller admin)
	DeletedReason *string `gorm:"type:text" json:"deleted_reason,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
	return nil
}

func (u *UserModel) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}

func (u *UserModel) IsTeacher() bool {
	return u.Role == constants.RoleTeacher
}
