package services

import "errors"

var (
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrCarNotFound          = errors.New("car not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrForbidden            = errors.New("not allowed to modify this message")
	ErrEditWindowExpired    = errors.New("edit window has expired")
	ErrMessageDeleted       = errors.New("message has been deleted")
	ErrEmptyContent         = errors.New("content must not be empty")
	ErrInvalidDateRange     = errors.New("end date must be after start date")
)
