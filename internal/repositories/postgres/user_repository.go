package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rental-chat-service/internal/models"
	"rental-chat-service/internal/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", user.Email).First(&existing).Error; err == nil {
			return errors.New("email already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check email existence: %w", err)
		}

		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// AddDeviceToken inserts the token unless the user already has it.
// It reports whether a new row was written.
func (r *UserRepository) AddDeviceToken(ctx context.Context, token *models.DeviceToken) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
			DoNothing: true,
		}).
		Create(token)
	if res.Error != nil {
		return false, fmt.Errorf("failed to add device token: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *UserRepository) HasDeviceToken(ctx context.Context, userID, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DeviceToken{}).
		Where("user_id = ? AND token = ?", userID, token).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) DeviceTokens(ctx context.Context, userID string) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).Model(&models.DeviceToken{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("token", &tokens).Error
	return tokens, err
}

// RemoveDeviceToken drops a token the push provider reported as unregistered.
func (r *UserRepository) RemoveDeviceToken(ctx context.Context, token string) error {
	res := r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.DeviceToken{})
	if res.Error != nil {
		return res.Error
	}
	slog.Debug("Removed device token", "rows", res.RowsAffected)
	return nil
}

// Disable marks the user disabled and appends a moderation record.
// Disabling an already disabled user returns the open record unchanged.
func (r *UserRepository) Disable(ctx context.Context, userID, reason, disabledBy string) (*models.UserDisableRecord, error) {
	var record models.UserDisableRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repositories.ErrNotFound
			}
			return err
		}

		if user.Disabled {
			err := tx.Where("user_id = ? AND reenabled_at IS NULL", userID).
				Order("disabled_at DESC").
				First(&record).Error
			if err == nil {
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		if err := tx.Model(&user).Update("disabled", true).Error; err != nil {
			return fmt.Errorf("failed to disable user: %w", err)
		}
		record = models.UserDisableRecord{
			UserID:     userID,
			Reason:     reason,
			DisabledBy: disabledBy,
			DisabledAt: time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record disable: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Enable lifts the user's disable and closes every open record.
func (r *UserRepository) Enable(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repositories.ErrNotFound
			}
			return err
		}
		if err := tx.Model(&user).Update("disabled", false).Error; err != nil {
			return fmt.Errorf("failed to enable user: %w", err)
		}
		return tx.Model(&models.UserDisableRecord{}).
			Where("user_id = ? AND reenabled_at IS NULL", userID).
			Update("reenabled_at", time.Now()).Error
	})
}

func (r *UserRepository) DisableHistory(ctx context.Context, userID string) ([]models.UserDisableRecord, error) {
	var records []models.UserDisableRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("disabled_at, id").
		Find(&records).Error
	return records, err
}
