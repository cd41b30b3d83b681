package domain

// SpaceType тип помещения
type SpaceType string

const (
	SpaceTypeClassroom  SpaceType = "classroom"
	SpaceTypeLab        SpaceType = "lab"
	SpaceTypeAuditorium SpaceType = "auditorium"
	SpaceTypeRoom       SpaceType = "room"
	SpaceTypeOther      SpaceType = "other"
)

// SpaceStatus эксплуатационный статус помещения
type SpaceStatus string

const (
	SpaceStatusOperational      SpaceStatus = "operational"
	SpaceStatusUnderMaintenance SpaceStatus = "under_maintenance"
)

// Space физическое помещение кампуса
// Справочные данные, создаются и редактируются административным сервисом;
// для этого сервиса read-only
type Space struct {
	ID       int64
	Name     string
	Type     SpaceType
	Site     string
	Capacity int
	Status   SpaceStatus
}

// CanFit возвращает true, если вместимость помещения покрывает headcount
func (s *Space) CanFit(headcount int) bool {
	return s.Capacity >= headcount
}
