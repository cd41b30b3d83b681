package domain

import (
	"time"

	"github.com/m04kA/USM-SpaceService/pkg/types"
)

// LoanStatus статус заявки на разовую аренду помещения
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusRejected LoanStatus = "rejected"
)

// LoanRequest разовая заявка на использование помещения вне регулярного расписания
// Создается заявителем; после подачи изменяется только администратором
// через переход статуса approved/rejected
type LoanRequest struct {
	ID                 int64
	RequesterName      string
	RequesterContact   string
	SpaceID            int64
	Date               time.Time
	StartTime          types.TimeString
	EndTime            types.TimeString
	EventType          string
	ExpectedAttendance int

	// Дополнительные ресурсы (проектор, звук и т.п.)
	Resources []string

	Status LoanStatus

	// Комментарий администратора: обязателен при отклонении, опционален при одобрении
	AdminComment *string

	SubmittedAt time.Time
	DecidedAt   *time.Time
}

// IsPending возвращает true, пока заявка не рассмотрена
func (r *LoanRequest) IsPending() bool {
	return r.Status == LoanStatusPending
}

// IsDecided возвращает true для терминальных статусов
// Из approved и rejected переходов нет
func (r *LoanRequest) IsDecided() bool {
	return r.Status == LoanStatusApproved || r.Status == LoanStatusRejected
}

// Interval возвращает временной интервал заявки (день недели берется из даты)
func (r *LoanRequest) Interval() Interval {
	return Interval{
		Weekday: WeekdayFromTime(r.Date),
		Start:   r.StartTime,
		End:     r.EndTime,
	}
}

// LoanRequestsFilter фильтр списка заявок
type LoanRequestsFilter struct {
	SpaceID   *int64      // Фильтр по помещению (опционально)
	Status    *LoanStatus // Фильтр по статусу (опционально)
	StartDate *time.Time  // Начало периода (опционально)
	EndDate   *time.Time  // Конец периода (опционально)
}
