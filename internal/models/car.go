package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// Car is the rental listing a conversation is about.
type Car struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OwnerID        string         `gorm:"type:varchar(36);index;not null" json:"ownerId"`
	Brand          string         `gorm:"not null" json:"brand"`
	Model          string         `gorm:"not null" json:"model"`
	IsAutoApproved bool           `gorm:"default:false" json:"isAutoApproved"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// DisplayName is "<brand> <model>".
func (c *Car) DisplayName() string {
	return c.Brand + " " + c.Model
}
