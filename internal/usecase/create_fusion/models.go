package create_fusion

import "time"

// Request модель запроса на объединение групп
type Request struct {
	GroupIDs  []int64 // Выбранные группы в порядке выбора (минимум 2 различных)
	SubjectID int64   // Общий предмет, предложенный вызывающим
	SpaceID   int64   // Целевое помещение
}

// Response модель ответа с созданным объединением
type Response struct {
	ID                 int64
	SpaceID            int64
	SubjectID          int64
	GroupIDs           []int64
	AggregateHeadcount int
	ProgramIDs         []int64
	CreatedAt          time.Time
}
