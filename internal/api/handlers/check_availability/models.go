package check_availability

import (
	"github.com/m04kA/USM-SpaceService/internal/domain"
	checkAvailability "github.com/m04kA/USM-SpaceService/internal/usecase/check_availability"
	"github.com/m04kA/USM-SpaceService/pkg/types"
)

// OccupantResponse HTTP модель занятия, блокирующего интервал
type OccupantResponse struct {
	SessionID   int64  `json:"sessionId"`
	GroupID     int64  `json:"groupId"`
	GroupCode   string `json:"groupCode"`
	SubjectID   int64  `json:"subjectId"`
	SubjectName string `json:"subjectName"`
	Weekday     string `json:"weekday"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	SpaceID   int64             `json:"spaceId"`
	Weekday   string            `json:"weekday"`
	StartTime string            `json:"startTime"`
	EndTime   string            `json:"endTime"`
	Free      bool              `json:"free"`
	Occupant  *OccupantResponse `json:"occupant,omitempty"`
}

// ToUseCaseRequest собирает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(spaceID int64, weekdayStr, startStr, endStr string) (*checkAvailability.Request, error) {
	weekday, err := domain.ParseWeekday(weekdayStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		SpaceID:   spaceID,
		Weekday:   weekday,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		SpaceID:   resp.SpaceID,
		Weekday:   string(resp.Weekday),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Free:      resp.Free,
	}

	if resp.Occupant != nil {
		out.Occupant = &OccupantResponse{
			SessionID:   resp.Occupant.SessionID,
			GroupID:     resp.Occupant.GroupID,
			GroupCode:   resp.Occupant.GroupCode,
			SubjectID:   resp.Occupant.SubjectID,
			SubjectName: resp.Occupant.SubjectName,
			Weekday:     string(resp.Occupant.Weekday),
			StartTime:   resp.Occupant.StartTime.String(),
			EndTime:     resp.Occupant.EndTime.String(),
		}
	}

	return out
}
