package check_availability

import (
	"github.com/m04kA/USM-SpaceService/internal/domain"
	"github.com/m04kA/USM-SpaceService/pkg/types"
)

// Request модель запроса проверки доступности помещения
type Request struct {
	SpaceID   int64
	Weekday   domain.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Occupant занятие, блокирующее запрошенное окно
type Occupant struct {
	SessionID   int64
	GroupID     int64
	GroupCode   string
	SubjectID   int64
	SubjectName string
	Weekday     domain.Weekday
	StartTime   types.TimeString
	EndTime     types.TimeString
}

// Response результат проверки доступности
// Free = true означает отсутствие пересечений с каталогом занятий;
// иначе Occupant описывает первое блокирующее занятие в порядке каталога
type Response struct {
	SpaceID   int64
	Weekday   domain.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	Free      bool
	Occupant  *Occupant
}

// occupantFromSession собирает детали блокирующего занятия для отображения
func occupantFromSession(session *domain.ScheduledSession) *Occupant {
	return &Occupant{
		SessionID:   session.ID,
		GroupID:     session.GroupID,
		GroupCode:   session.GroupCode,
		SubjectID:   session.SubjectID,
		SubjectName: session.SubjectName,
		Weekday:     session.Weekday,
		StartTime:   session.StartTime,
		EndTime:     session.EndTime,
	}
}
