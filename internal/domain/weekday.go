package domain

import (
	"fmt"
	"time"
)

// Weekday день недели учебного расписания
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"

	// Sunday не входит в учебную неделю: занятия по воскресеньям не планируются,
	// но разовые заявки на аренду могут приходиться на воскресенье
	Sunday Weekday = "sunday"
)

// ParseWeekday парсит день недели из строки
func ParseWeekday(s string) (Weekday, error) {
	switch Weekday(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return Weekday(s), nil
	default:
		return "", fmt.Errorf("unknown weekday %q", s)
	}
}

// WeekdayFromTime возвращает день недели для даты
func WeekdayFromTime(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// IsTeachingDay возвращает true, если день входит в учебную неделю
func (w Weekday) IsTeachingDay() bool {
	return w != Sunday
}
