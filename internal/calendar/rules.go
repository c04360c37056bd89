package calendar

import (
	"fmt"
	"time"

	"github.com/bsmobile/salon-booking/internal/domain"
	"github.com/bsmobile/salon-booking/pkg/types"
)

// Rules календарные правила салона: прошедшие даты, выходные, праздники.
// Все методы чистые, текущее время передается параметром now.
type Rules struct {
	schedule domain.SalonSchedule
}

// NewRules создает правила для заданного режима работы салона
func NewRules(schedule domain.SalonSchedule) *Rules {
	return &Rules{schedule: schedule}
}

// Schedule возвращает режим работы салона
func (r *Rules) Schedule() domain.SalonSchedule {
	return r.schedule
}

// IsPastDate проверяет, что дата строго раньше сегодняшнего дня
// (время внутри суток не учитывается)
func (r *Rules) IsPastDate(date, now time.Time) bool {
	dateOnly := truncateToDay(date)
	nowOnly := truncateToDay(now)
	return dateOnly.Before(nowOnly)
}

// IsPastDateTime проверяет, что момент "дата + время начала" строго раньше now.
// Некорректное время начала считается прошедшим (fail closed).
func (r *Rules) IsPastDateTime(date time.Time, start types.TimeString, now time.Time) bool {
	minutes, err := start.Minutes()
	if err != nil {
		return true
	}

	moment := truncateToDay(date).Add(time.Duration(minutes) * time.Minute)
	return moment.Before(now)
}

// IsSalonHoliday проверяет, что дата приходится на еженедельный выходной
// салона либо на один из фиксированных праздников
func (r *Rules) IsSalonHoliday(date time.Time) bool {
	if date.Weekday() == r.schedule.ClosureWeekday {
		return true
	}
	return r.schedule.IsHoliday(date)
}

// IsBookable проверяет, что на дату можно записаться:
// не в прошлом и не выходной салона
func (r *Rules) IsBookable(date, now time.Time) bool {
	return !r.IsPastDate(date, now) && !r.IsSalonHoliday(date)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Названия дней недели и месяцев для отображения (как в мобильном клиенте)

var weekdayNames = [...]string{
	time.Sunday:    "Воскресенье",
	time.Monday:    "Понедельник",
	time.Tuesday:   "Вторник",
	time.Wednesday: "Среда",
	time.Thursday:  "Четверг",
	time.Friday:    "Пятница",
	time.Saturday:  "Суббота",
}

var monthNames = [...]string{
	time.January:   "января",
	time.February:  "февраля",
	time.March:     "марта",
	time.April:     "апреля",
	time.May:       "мая",
	time.June:      "июня",
	time.July:      "июля",
	time.August:    "августа",
	time.September: "сентября",
	time.October:   "октября",
	time.November:  "ноября",
	time.December:  "декабря",
}

// DayOfWeekName возвращает русское название дня недели
func DayOfWeekName(date time.Time) string {
	return weekdayNames[date.Weekday()]
}

// FormatForDisplay форматирует дату в читаемый вид, например "8 марта 2025"
func FormatForDisplay(date time.Time) string {
	return fmt.Sprintf("%d %s %d", date.Day(), monthNames[date.Month()], date.Year())
}
