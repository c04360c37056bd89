package domain

import (
	"fmt"
	"time"

	"github.com/bsmobile/salon-booking/pkg/types"
)

// MonthDay фиксированный праздник, не зависящий от года
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay парсит праздник из строки "MM-DD"
func ParseMonthDay(s string) (MonthDay, error) {
	t, err := time.Parse("01-02", s)
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid holiday %q, expected MM-DD: %w", s, err)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

// DefaultHolidays фиксированные праздники салона
var DefaultHolidays = []MonthDay{
	{time.December, 31},
	{time.January, 1},
	{time.January, 7},
	{time.February, 23},
	{time.March, 8},
	{time.May, 1},
	{time.May, 9},
	{time.June, 12},
	{time.November, 4},
}

// SalonSchedule режим работы салона: рабочие часы, шаг сетки слотов,
// еженедельный выходной и фиксированные праздники
type SalonSchedule struct {
	OpenHour        int
	CloseHour       int
	SlotStepMinutes int
	ClosureWeekday  time.Weekday
	Holidays        []MonthDay
}

// DefaultSchedule возвращает режим работы салона по умолчанию:
// 09:00–21:00, шаг 30 минут, выходной в понедельник
func DefaultSchedule() SalonSchedule {
	return SalonSchedule{
		OpenHour:        DefaultOpenHour,
		CloseHour:       DefaultCloseHour,
		SlotStepMinutes: DefaultSlotStepMinutes,
		ClosureWeekday:  DefaultClosureWeekday,
		Holidays:        DefaultHolidays,
	}
}

// Validate проверяет согласованность расписания
func (s SalonSchedule) Validate() error {
	if s.OpenHour < 0 || s.OpenHour > 23 {
		return fmt.Errorf("open hour %d out of range", s.OpenHour)
	}
	if s.CloseHour < 1 || s.CloseHour > 23 {
		return fmt.Errorf("close hour %d out of range", s.CloseHour)
	}
	if s.OpenHour >= s.CloseHour {
		return fmt.Errorf("open hour %d must be before close hour %d", s.OpenHour, s.CloseHour)
	}
	if s.SlotStepMinutes < MinSlotStepMinutes || s.SlotStepMinutes > MaxSlotStepMinutes {
		return fmt.Errorf("slot step %d minutes out of range", s.SlotStepMinutes)
	}
	return nil
}

// OpenTime возвращает время открытия как TimeString
func (s SalonSchedule) OpenTime() types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:00", s.OpenHour))
}

// CloseTime возвращает время закрытия как TimeString
func (s SalonSchedule) CloseTime() types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:00", s.CloseHour))
}

// IsHoliday возвращает true, если месяц-день даты входит в список праздников
func (s SalonSchedule) IsHoliday(date time.Time) bool {
	for _, h := range s.Holidays {
		if date.Month() == h.Month && date.Day() == h.Day {
			return true
		}
	}
	return false
}
