package domain

import "time"

// Fusion объединение двух и более активных групп по общему предмету
// в одно помещение. Создается только через успешную валидацию
// (usecase create_fusion); удаляется явным административным действием
// без каскадных эффектов на группы
type Fusion struct {
	ID      int64
	SpaceID int64

	// Предмет, общий для всех участвующих групп
	SubjectID int64

	// Участвующие группы в порядке выбора (минимум 2)
	GroupIDs []int64

	// Суммарная численность участвующих групп
	AggregateHeadcount int

	// Учебные программы участвующих групп:
	// в порядке первого появления, без дубликатов
	ProgramIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
