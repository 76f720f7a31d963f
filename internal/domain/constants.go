package domain

import "time"

// Default configuration values
const (
	DefaultSlotIntervalMinutes     = 30
	DefaultMinBookingNoticeMinutes = 0
	DefaultSessionTTL              = 24 * time.Hour
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxCartItems              = 100
	MaxQuantityPerItem        = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
