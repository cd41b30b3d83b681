package domain

import "github.com/m04kA/USM-SpaceService/pkg/types"

// OccupancyClass классификация загруженности помещения
type OccupancyClass string

const (
	OccupancyOverOccupied  OccupancyClass = "over_occupied"
	OccupancyNormal        OccupancyClass = "normal"
	OccupancyUnderUtilized OccupancyClass = "under_utilized"
)

// Пороговые значения классификации загруженности в процентах
// Фиксированная политика: строго больше 85 - перегружено,
// строго меньше 50 - недозагружено, граничные значения - норма
const (
	OverOccupiedThresholdPercent  = 85.0
	UnderUtilizedThresholdPercent = 50.0
)

// ClassifyOccupancy классифицирует процент загруженности
func ClassifyOccupancy(percentage float64) OccupancyClass {
	switch {
	case percentage > OverOccupiedThresholdPercent:
		return OccupancyOverOccupied
	case percentage < UnderUtilizedThresholdPercent:
		return OccupancyUnderUtilized
	default:
		return OccupancyNormal
	}
}

// DayPart часть дня для разбивки загруженности
type DayPart string

const (
	DayPartMorning   DayPart = "morning"
	DayPartAfternoon DayPart = "afternoon"
	DayPartEvening   DayPart = "evening"
)

// Границы частей дня: утро до 12:00, день до 18:00, далее вечер
const (
	afternoonStart = types.TimeString("12:00")
	eveningStart   = types.TimeString("18:00")
)

// DayPartFor возвращает часть дня, на которую приходится начало занятия
func DayPartFor(start types.TimeString) DayPart {
	switch {
	case start.IsBefore(afternoonStart):
		return DayPartMorning
	case start.IsBefore(eveningStart):
		return DayPartAfternoon
	default:
		return DayPartEvening
	}
}

// OccupancyRecord сводка загруженности помещения за отчетное окно
// Вычисляется по требованию из каталога занятий, нигде не хранится
type OccupancyRecord struct {
	SpaceID        int64
	SpaceName      string
	HoursOccupied  float64
	HoursAvailable float64
	Percentage     float64
	Classification OccupancyClass

	// Разбивка занятых часов по частям дня
	DayParts map[DayPart]float64
}
