package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// enum
type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "Pending"
	RentalStatusConfirmed RentalStatus = "Confirmed"
	RentalStatusCancelled RentalStatus = "Cancelled"
	RentalStatusCompleted RentalStatus = "Completed"
)

/** --------------------ENTITIES-------------------- */
type Rental struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CarID     string         `gorm:"type:varchar(36);index;not null" json:"carId"`
	RenterID  string         `gorm:"type:varchar(36);index;not null" json:"renterId"`
	StartDate time.Time      `gorm:"not null" json:"startDate"`
	EndDate   time.Time      `gorm:"not null" json:"endDate"`
	Status    RentalStatus   `gorm:"size:20;not null;default:'Pending'" json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Rental) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

/** -------------------- DTOs -------------------- */
// Request
type CreateRentalRequest struct {
	CarID     string       `json:"carId" binding:"required"`
	StartDate time.Time    `json:"startDate" binding:"required"`
	EndDate   time.Time    `json:"endDate" binding:"required"`
	Status    RentalStatus `json:"status" binding:"omitempty,oneof=Pending Confirmed Cancelled Completed"`
}
