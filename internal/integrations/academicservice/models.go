package academicservice

import "github.com/m04kA/USM-SpaceService/internal/domain"

// Group модель учебной группы из AcademicService
type Group struct {
	ID         int64   `json:"id"`
	Code       string  `json:"code"`
	Active     bool    `json:"active"`
	Headcount  int     `json:"headcount"`
	ProgramID  int64   `json:"program_id"`
	SubjectIDs []int64 `json:"subject_ids"`
}

// toDomain конвертирует DTO в доменную модель
func (g *Group) toDomain() *domain.Group {
	return &domain.Group{
		ID:         g.ID,
		Code:       g.Code,
		Active:     g.Active,
		Headcount:  g.Headcount,
		ProgramID:  g.ProgramID,
		SubjectIDs: g.SubjectIDs,
	}
}

// ErrorResponse модель ошибки от AcademicService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
