// internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserUsername string `gorm:"type:varchar(32);not null;uniqueIndex:uq_users_username;column:user_username" json:"user_username"`
	UserPassword string `gorm:"type:varchar(100);not null;column:user_password" json:"-"`
	UserName     string `gorm:"type:varchar(50);column:user_name" json:"user_name"`

	// Last issued refresh token, rotated on every refresh
	UserRefreshToken *string `gorm:"type:text;column:user_refresh_token" json:"-"`

	// Timestamps
	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
