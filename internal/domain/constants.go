package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DateTimeFormat канонический формат "дата время" на внешней границе
	DateTimeFormat = "2006-01-02 15:04"
)

// Рабочие часы салона по умолчанию
const (
	DefaultOpenHour        = 9
	DefaultCloseHour       = 21
	DefaultSlotStepMinutes = 30
)

// DefaultClosureWeekday еженедельный выходной салона
const DefaultClosureWeekday = time.Monday

// Business validation constants
const (
	MinSlotStepMinutes = 5
	MaxSlotStepMinutes = 240
)
