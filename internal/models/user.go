package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// User is the marketplace identity referenced by messages and notifications.
// Authentication itself lives with the external identity provider.
type User struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Avatar    string         `json:"avatar,omitempty"`
	Disabled  bool           `gorm:"default:false" json:"disabled"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	DeviceTokens   []DeviceToken       `gorm:"foreignKey:UserID" json:"-"`
	DisableHistory []UserDisableRecord `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// DeviceToken is one push-notification device of a user. (user_id, token) is unique.
type DeviceToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_device_tokens_user_token" json:"userId"`
	Token     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_device_tokens_user_token" json:"-"`
	Platform  string    `gorm:"size:20;default:'unknown'" json:"platform"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserDisableRecord is one moderation action. ReenabledAt stays nil while the user is disabled.
type UserDisableRecord struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"type:varchar(36);not null;index" json:"userId"`
	Reason      string     `gorm:"type:text;not null" json:"reason"`
	DisabledBy  string     `gorm:"type:varchar(36)" json:"disabledBy"`
	DisabledAt  time.Time  `gorm:"not null" json:"disabledAt"`
	ReenabledAt *time.Time `json:"reenabledAt,omitempty"`
}

/** -------------------- DTOs -------------------- */
// Request
type RegisterTokenRequest struct {
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform" binding:"omitempty,oneof=ios android web unknown"`
}

// Response
type RegisterTokenResponse struct {
	Registered bool `json:"registered"`
	Duplicate  bool `json:"duplicate"`
}

type SendNotificationRequest struct {
	Tokens []string               `json:"tokens" binding:"required,min=1"`
	Title  string                 `json:"title" binding:"required"`
	Body   string                 `json:"body"`
	Data   map[string]interface{} `json:"data"`
}
