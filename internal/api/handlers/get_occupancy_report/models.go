package get_occupancy_report

import (
	"github.com/m04kA/USM-SpaceService/internal/domain"
	aggregateOccupancy "github.com/m04kA/USM-SpaceService/internal/usecase/aggregate_occupancy"
)

// OccupancyRecordResponse сводка по одному помещению
type OccupancyRecordResponse struct {
	SpaceID        int64              `json:"spaceId"`
	SpaceName      string             `json:"spaceName"`
	HoursOccupied  float64            `json:"hoursOccupied"`
	HoursAvailable float64            `json:"hoursAvailable"`
	Percentage     float64            `json:"percentage"`
	Classification string             `json:"classification"`
	DayParts       map[string]float64 `json:"dayParts"`
}

// OccupancyReportResponse HTTP response model
type OccupancyReportResponse struct {
	WindowHours float64                   `json:"windowHours"`
	Records     []OccupancyRecordResponse `json:"records"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *aggregateOccupancy.Response) *OccupancyReportResponse {
	records := make([]OccupancyRecordResponse, 0, len(resp.Records))
	for _, record := range resp.Records {
		records = append(records, fromDomainRecord(record))
	}

	return &OccupancyReportResponse{
		WindowHours: resp.WindowHours,
		Records:     records,
	}
}

func fromDomainRecord(record *domain.OccupancyRecord) OccupancyRecordResponse {
	dayParts := make(map[string]float64, len(record.DayParts))
	for part, hours := range record.DayParts {
		dayParts[string(part)] = hours
	}

	return OccupancyRecordResponse{
		SpaceID:        record.SpaceID,
		SpaceName:      record.SpaceName,
		HoursOccupied:  record.HoursOccupied,
		HoursAvailable: record.HoursAvailable,
		Percentage:     record.Percentage,
		Classification: string(record.Classification),
		DayParts:       dayParts,
	}
}
