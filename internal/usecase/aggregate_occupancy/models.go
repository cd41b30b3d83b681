package aggregate_occupancy

import "github.com/m04kA/USM-SpaceService/internal/domain"

// Request модель запроса сводки загруженности
type Request struct {
	// Помещения для отчета; пустой список означает все помещения
	SpaceIDs []int64

	// Доступные часы отчетного окна (например, 48 часов учебной недели)
	// Константа вызывающего, не выводится из календаря
	WindowHours float64
}

// Response модель ответа со сводками по помещениям
type Response struct {
	WindowHours float64
	Records     []*domain.OccupancyRecord
}
