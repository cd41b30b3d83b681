package domain

// Group учебная группа
// Справочные данные академического планирования; read-only для этого сервиса.
// Группы с историей деактивируются, а не удаляются
type Group struct {
	ID        int64
	Code      string
	Active    bool
	Headcount int
	ProgramID int64

	// Предметы, по которым группа сейчас занимается
	// Используются только валидатором объединения групп
	SubjectIDs []int64
}

// HasSubject возвращает true, если группа занимается по указанному предмету
func (g *Group) HasSubject(subjectID int64) bool {
	for _, id := range g.SubjectIDs {
		if id == subjectID {
			return true
		}
	}
	return false
}
