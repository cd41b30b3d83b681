package approve_loan_request

import (
	"time"

	checkAvailability "github.com/m04kA/USM-SpaceService/internal/usecase/check_availability"
	"github.com/m04kA/USM-SpaceService/pkg/types"
)

// Request модель запроса на одобрение заявки
type Request struct {
	RequestID int64
	Comment   *string // Комментарий администратора (опционален при одобрении)
}

// Conflict информация о пересечении с регулярным расписанием
// Носит справочный характер: площадка может сознательно совмещать
// мероприятия, поэтому конфликт не блокирует одобрение
type Conflict struct {
	SessionID   int64
	GroupCode   string
	SubjectName string
	StartTime   types.TimeString
	EndTime     types.TimeString
}

// Response модель ответа с одобренной заявкой
type Response struct {
	ID           int64
	SpaceID      int64
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       string
	AdminComment *string
	DecidedAt    *time.Time

	// Conflict заполняется, если окно заявки пересекается с занятием каталога
	Conflict *Conflict
}

// conflictFromOccupant собирает справочную информацию о блокирующем занятии
func conflictFromOccupant(occupant *checkAvailability.Occupant) *Conflict {
	return &Conflict{
		SessionID:   occupant.SessionID,
		GroupCode:   occupant.GroupCode,
		SubjectName: occupant.SubjectName,
		StartTime:   occupant.StartTime,
		EndTime:     occupant.EndTime,
	}
}
