package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bsmobile/salon-booking/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRules_IsPastDate(t *testing.T) {
	rules := NewRules(domain.DefaultSchedule())
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	assert.True(t, rules.IsPastDate(date(2025, time.March, 9), now))
	// Сегодняшний день не считается прошедшим, даже если время позднее
	assert.False(t, rules.IsPastDate(date(2025, time.March, 10), now))
	assert.False(t, rules.IsPastDate(date(2025, time.March, 11), now))
}

func TestRules_IsPastDateTime(t *testing.T) {
	rules := NewRules(domain.DefaultSchedule())
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	assert.True(t, rules.IsPastDateTime(date(2025, time.March, 10), "15:00", now))
	assert.False(t, rules.IsPastDateTime(date(2025, time.March, 10), "15:30", now))
	assert.False(t, rules.IsPastDateTime(date(2025, time.March, 10), "16:00", now))
	assert.False(t, rules.IsPastDateTime(date(2025, time.March, 11), "09:00", now))

	// Некорректное время считается прошедшим
	assert.True(t, rules.IsPastDateTime(date(2025, time.March, 11), "bad", now))
}

func TestRules_IsSalonHoliday(t *testing.T) {
	rules := NewRules(domain.DefaultSchedule())

	// Понедельник — еженедельный выходной
	assert.True(t, rules.IsSalonHoliday(date(2025, time.March, 10)))
	assert.False(t, rules.IsSalonHoliday(date(2025, time.March, 11)))

	// Фиксированные праздники в любой год
	holidays := []time.Time{
		date(2025, time.December, 31),
		date(2026, time.January, 1),
		date(2025, time.January, 7),
		date(2025, time.February, 23),
		date(2025, time.March, 8),
		date(2025, time.May, 1),
		date(2025, time.May, 9),
		date(2025, time.June, 12),
		date(2025, time.November, 4),
	}
	for _, h := range holidays {
		assert.True(t, rules.IsSalonHoliday(h), "expected %s to be a holiday", h.Format(domain.DateFormat))
	}

	// Обычный рабочий день
	assert.False(t, rules.IsSalonHoliday(date(2025, time.March, 12)))
}

func TestRules_IsBookable(t *testing.T) {
	rules := NewRules(domain.DefaultSchedule())
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

	assert.True(t, rules.IsBookable(date(2025, time.March, 12), now))
	assert.True(t, rules.IsBookable(date(2025, time.March, 13), now))

	// Прошлое
	assert.False(t, rules.IsBookable(date(2025, time.March, 11), now))
	// Понедельник
	assert.False(t, rules.IsBookable(date(2025, time.March, 17), now))
	// 8 марта — праздник (и к тому же прошедшая дата)
	assert.False(t, rules.IsBookable(date(2025, time.March, 8), now))
	// Праздник в будущем
	assert.False(t, rules.IsBookable(date(2025, time.May, 1), now))
}

func TestDisplayHelpers(t *testing.T) {
	d := date(2025, time.March, 8)
	assert.Equal(t, "Суббота", DayOfWeekName(d))
	assert.Equal(t, "8 марта 2025", FormatForDisplay(d))
}
