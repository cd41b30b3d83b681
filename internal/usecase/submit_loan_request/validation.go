package submit_loan_request

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/USM-SpaceService/internal/domain"
)

// validateRequest валидирует входные данные заявки
// Доступность помещения при подаче не проверяется:
// конфликт оценивает администратор на этапе одобрения
func validateRequest(req *Request, now time.Time) error {
	if req.RequesterName == "" {
		return fmt.Errorf("%w: requesterName is required", ErrInvalidInput)
	}
	if len(req.RequesterName) > domain.MaxRequesterNameLength {
		return fmt.Errorf("%w: requesterName is too long", ErrInvalidInput)
	}

	if req.RequesterContact == "" {
		return fmt.Errorf("%w: requesterContact is required", ErrInvalidInput)
	}

	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.EventType) > domain.MaxEventTypeLength {
		return fmt.Errorf("%w: eventType is too long", ErrInvalidInput)
	}

	if req.ExpectedAttendance < 0 {
		return fmt.Errorf("%w: expectedAttendance must be non-negative", ErrInvalidInput)
	}

	if len(req.Resources) > domain.MaxLoanResources {
		return fmt.Errorf("%w: too many resources requested", ErrInvalidInput)
	}

	// Окно аренды строится через модель интервала: start < end обязательно
	weekday := domain.WeekdayFromTime(req.Date)
	if _, err := domain.NewInterval(weekday, req.StartTime, req.EndTime); err != nil {
		if errors.Is(err, domain.ErrInvalidInterval) {
			return fmt.Errorf("%w: %s-%s", ErrInvalidInterval, req.StartTime, req.EndTime)
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if isDateInPast(req.Date, now) {
		return fmt.Errorf("%w: %s", ErrDateInPast, req.Date.Format(domain.DateFormat))
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
