package campusservice

import (
	"github.com/m04kA/USM-SpaceService/internal/domain"
	"github.com/m04kA/USM-SpaceService/pkg/types"
)

// Space модель помещения из CampusService
type Space struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Site     string `json:"site"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

// toDomain конвертирует DTO в доменную модель
func (s *Space) toDomain() *domain.Space {
	return &domain.Space{
		ID:       s.ID,
		Name:     s.Name,
		Type:     domain.SpaceType(s.Type),
		Site:     s.Site,
		Capacity: s.Capacity,
		Status:   domain.SpaceStatus(s.Status),
	}
}

// Session модель занятия из каталога расписания CampusService
type Session struct {
	ID          int64  `json:"id"`
	SpaceID     int64  `json:"space_id"`
	Weekday     string `json:"weekday"`
	StartTime   string `json:"start_time"` // "08:00"
	EndTime     string `json:"end_time"`   // "10:00"
	GroupID     int64  `json:"group_id"`
	SubjectID   int64  `json:"subject_id"`
	GroupCode   string `json:"group_code"`
	SubjectName string `json:"subject_name"`
}

// toDomain конвертирует DTO в доменную модель
func (s *Session) toDomain() (*domain.ScheduledSession, error) {
	weekday, err := domain.ParseWeekday(s.Weekday)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(s.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := types.NewTimeStringFromString(s.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.ScheduledSession{
		ID:          s.ID,
		SpaceID:     s.SpaceID,
		Weekday:     weekday,
		StartTime:   start,
		EndTime:     end,
		GroupID:     s.GroupID,
		SubjectID:   s.SubjectID,
		GroupCode:   s.GroupCode,
		SubjectName: s.SubjectName,
	}, nil
}

// ErrorResponse модель ошибки от CampusService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
