package create_fusion

import "errors"

var (
	// ErrInsufficientGroups возвращается, когда выбрано меньше двух различных групп
	ErrInsufficientGroups = errors.New("create_fusion: at least two distinct groups are required")

	// ErrGroupNotFound возвращается, когда хотя бы одна группа не найдена
	ErrGroupNotFound = errors.New("create_fusion: group not found")

	// ErrInactiveGroup возвращается, когда среди выбранных есть неактивная группа
	// Частичные объединения групп в смешанном состоянии не допускаются
	ErrInactiveGroup = errors.New("create_fusion: group is inactive")

	// ErrNoCommonSubject возвращается, когда у выбранных групп нет общего предмета
	// или предложенный предмет не входит в пересечение
	ErrNoCommonSubject = errors.New("create_fusion: groups have no common subject")

	// ErrSpaceNotFound возвращается, когда целевое помещение не найдено
	ErrSpaceNotFound = errors.New("create_fusion: space not found")

	// ErrInsufficientCapacity возвращается, когда вместимость помещения
	// меньше суммарной численности групп
	ErrInsufficientCapacity = errors.New("create_fusion: insufficient space capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_fusion: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_fusion: internal error")
)
