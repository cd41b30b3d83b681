package create_fusion

import (
	"fmt"

	"github.com/m04kA/USM-SpaceService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Требуется минимум две различных группы
func validateRequest(req *Request) error {
	if req.SubjectID <= 0 {
		return fmt.Errorf("%w: subjectID must be positive", ErrInvalidInput)
	}

	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	distinct := make(map[int64]struct{}, len(req.GroupIDs))
	for _, id := range req.GroupIDs {
		if id <= 0 {
			return fmt.Errorf("%w: groupID must be positive", ErrInvalidInput)
		}
		distinct[id] = struct{}{}
	}

	if len(distinct) < domain.MinFusionGroups {
		return fmt.Errorf("%w: got %d distinct groups", ErrInsufficientGroups, len(distinct))
	}

	return nil
}

// findInactiveGroup возвращает первую неактивную группу или nil
func findInactiveGroup(groups []*domain.Group) *domain.Group {
	for _, group := range groups {
		if !group.Active {
			return group
		}
	}
	return nil
}

// intersectSubjects возвращает пересечение списков предметов всех групп
// Порядок следования - порядок предметов первой группы
func intersectSubjects(groups []*domain.Group) []int64 {
	if len(groups) == 0 {
		return nil
	}

	common := make([]int64, 0, len(groups[0].SubjectIDs))
	for _, subjectID := range groups[0].SubjectIDs {
		shared := true
		for _, group := range groups[1:] {
			if !group.HasSubject(subjectID) {
				shared = false
				break
			}
		}
		if shared {
			common = append(common, subjectID)
		}
	}

	return common
}

// containsSubject проверяет вхождение предмета в пересечение
func containsSubject(subjects []int64, subjectID int64) bool {
	for _, id := range subjects {
		if id == subjectID {
			return true
		}
	}
	return false
}

// aggregateHeadcount возвращает суммарную численность групп
func aggregateHeadcount(groups []*domain.Group) int {
	total := 0
	for _, group := range groups {
		total += group.Headcount
	}
	return total
}

// distinctPrograms возвращает программы групп в порядке первого появления,
// без дубликатов
func distinctPrograms(groups []*domain.Group) []int64 {
	seen := make(map[int64]struct{}, len(groups))
	programs := make([]int64, 0, len(groups))

	for _, group := range groups {
		if _, ok := seen[group.ProgramID]; ok {
			continue
		}
		seen[group.ProgramID] = struct{}{}
		programs = append(programs, group.ProgramID)
	}

	return programs
}

// countDistinctIDs возвращает число различных идентификаторов
func countDistinctIDs(ids []int64) int {
	distinct := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}
	return len(distinct)
}

// orderGroupsByRequest возвращает группы в порядке идентификаторов запроса,
// пропуская дубликаты идентификаторов
func orderGroupsByRequest(groupIDs []int64, groups []*domain.Group) []*domain.Group {
	byID := make(map[int64]*domain.Group, len(groups))
	for _, group := range groups {
		byID[group.ID] = group
	}

	ordered := make([]*domain.Group, 0, len(groupIDs))
	seen := make(map[int64]struct{}, len(groupIDs))
	for _, id := range groupIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if group, ok := byID[id]; ok {
			ordered = append(ordered, group)
		}
	}

	return ordered
}
