package domain

// DateFormat формат дат в API и отчетах
const DateFormat = "2006-01-02" // YYYY-MM-DD

// Ограничения бизнес-валидации
const (
	MinFusionGroups        = 2
	MaxAdminCommentLength  = 500
	MaxEventTypeLength     = 100
	MaxRequesterNameLength = 200
	MaxLoanResources       = 20

	// Стандартное отчетное окно загруженности: 8 часов * 6 учебных дней
	DefaultReportingWindowHours = 48
)
