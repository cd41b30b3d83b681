package aggregate_occupancy

import (
	"github.com/m04kA/USM-SpaceService/internal/domain"
)

// buildRecord собирает сводку загруженности помещения за отчетное окно
// Сумма длительностей занятий дает занятые часы; процент считается
// от доступных часов окна, классификация - по фиксированным порогам
func buildRecord(space *domain.Space, sessions []*domain.ScheduledSession, windowHours float64) (*domain.OccupancyRecord, error) {
	occupiedMinutes := 0
	dayParts := map[domain.DayPart]float64{
		domain.DayPartMorning:   0,
		domain.DayPartAfternoon: 0,
		domain.DayPartEvening:   0,
	}

	for _, session := range sessions {
		minutes, err := session.Interval().DurationMinutes()
		if err != nil {
			return nil, err
		}
		occupiedMinutes += minutes
		dayParts[domain.DayPartFor(session.StartTime)] += float64(minutes) / 60
	}

	hoursOccupied := float64(occupiedMinutes) / 60

	percentage := 0.0
	if windowHours > 0 {
		percentage = hoursOccupied / windowHours * 100
	}

	return &domain.OccupancyRecord{
		SpaceID:        space.ID,
		SpaceName:      space.Name,
		HoursOccupied:  hoursOccupied,
		HoursAvailable: windowHours,
		Percentage:     percentage,
		Classification: domain.ClassifyOccupancy(percentage),
		DayParts:       dayParts,
	}, nil
}
