package submit_loan_request

import (
	"time"

	"github.com/m04kA/USM-SpaceService/pkg/types"
)

// Request модель заявки на разовую аренду помещения
type Request struct {
	RequesterName      string
	RequesterContact   string
	SpaceID            int64
	Date               time.Time
	StartTime          types.TimeString
	EndTime            types.TimeString
	EventType          string
	ExpectedAttendance int
	Resources          []string
}

// Response модель ответа с поданной заявкой
type Response struct {
	ID                 int64
	RequesterName      string
	RequesterContact   string
	SpaceID            int64
	Date               time.Time
	StartTime          types.TimeString
	EndTime            types.TimeString
	EventType          string
	ExpectedAttendance int
	Resources          []string
	Status             string
	SubmittedAt        time.Time
}
