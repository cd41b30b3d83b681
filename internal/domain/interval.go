package domain

import (
	"errors"

	"github.com/m04kA/USM-SpaceService/pkg/types"
)

// ErrInvalidInterval возвращается при попытке создать интервал с start >= end
var ErrInvalidInterval = errors.New("invalid interval: start must be before end")

// Interval полуоткрытый временной интервал [Start, End) в рамках одного дня недели
// Единственный источник истины для проверки пересечения временных диапазонов:
// все компоненты обязаны использовать Overlaps вместо собственных сравнений границ
type Interval struct {
	Weekday Weekday
	Start   types.TimeString
	End     types.TimeString
}

// NewInterval создает интервал с валидацией границ
func NewInterval(weekday Weekday, start, end types.TimeString) (Interval, error) {
	if err := start.Validate(); err != nil {
		return Interval{}, err
	}
	if err := end.Validate(); err != nil {
		return Interval{}, err
	}
	if !start.IsBefore(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Weekday: weekday, Start: start, End: end}, nil
}

// Overlaps проверяет пересечение двух интервалов
// Интервалы пересекаются только в один и тот же день недели и только если
// диапазоны реально накладываются: строгие неравенства, граничащие интервалы
// ([08:00,10:00) и [10:00,12:00)) пересечением не считаются
func Overlaps(a, b Interval) bool {
	if a.Weekday != b.Weekday {
		return false
	}
	return a.Start.IsBefore(b.End) && b.Start.IsBefore(a.End)
}

// DurationMinutes возвращает длительность интервала в минутах
func (i Interval) DurationMinutes() (int, error) {
	return i.Start.MinutesUntil(i.End)
}
