package domain

import "github.com/m04kA/USM-SpaceService/pkg/types"

// ScheduledSession регулярное еженедельное занятие в помещении
// Создается сервисом составления расписания; для этого сервиса read-only.
// Инвариант каталога: для одного помещения и дня недели активные занятия
// не пересекаются (обеспечивается проверкой доступности при создании,
// а не самим хранилищем)
type ScheduledSession struct {
	ID        int64
	SpaceID   int64
	Weekday   Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	GroupID   int64
	SubjectID int64

	// Денормализованные данные для отображения
	GroupCode   string
	SubjectName string
}

// Interval возвращает временной интервал занятия
func (s *ScheduledSession) Interval() Interval {
	return Interval{Weekday: s.Weekday, Start: s.StartTime, End: s.EndTime}
}

// SessionsFilter фильтр каталога занятий
type SessionsFilter struct {
	SpaceID *int64   // Фильтр по помещению (опционально)
	Weekday *Weekday // Фильтр по дню недели (опционально)
}
