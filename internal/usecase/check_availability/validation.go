package check_availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/USM-SpaceService/internal/domain"
)

// validateRequest валидирует входные данные и строит запрошенный интервал
func validateRequest(req *Request) (domain.Interval, error) {
	if req.SpaceID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if _, err := domain.ParseWeekday(string(req.Weekday)); err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	window, err := domain.NewInterval(req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInterval) {
			return domain.Interval{}, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, req.StartTime, req.EndTime)
		}
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return window, nil
}

// findBlockingSession возвращает первое занятие каталога, пересекающееся
// с запрошенным окном, или nil, если окно свободно
// Порядок перебора - естественный порядок каталога
func findBlockingSession(window domain.Interval, sessions []*domain.ScheduledSession) *domain.ScheduledSession {
	for _, session := range sessions {
		if domain.Overlaps(window, session.Interval()) {
			return session
		}
	}
	return nil
}
