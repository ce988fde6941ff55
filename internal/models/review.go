package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
type Review struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CarID     string         `gorm:"type:varchar(36);index;not null" json:"carId"`
	AuthorID  string         `gorm:"type:varchar(36);index;not null" json:"authorId"`
	Rating    int            `gorm:"not null" json:"rating"`
	Comment   string         `gorm:"type:text" json:"comment"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

/** -------------------- DTOs -------------------- */
// Request
type CreateReviewRequest struct {
	CarID   string `json:"carId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}
