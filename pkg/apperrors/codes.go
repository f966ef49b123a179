package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Общие, не-доменные коды ошибок
const (
	// Системные и неизвестные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeUnknownError  ErrorCode = "UNKNOWN_ERROR"

	// Общие ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// Коды ошибок генератора фейковых моделей
const (
	// Нет ни одной строки-кандидата для случайного выбора
	CodeNoCandidates ErrorCode = "NO_CANDIDATES"
	// Атрибут не соответствует ни полю, ни связи модели
	CodeUnknownAttribute ErrorCode = "UNKNOWN_ATTRIBUTE"
)

// Коды ошибок HTTP-обертки
const (
	CodeUnknownOption  ErrorCode = "UNKNOWN_OPTION"
	CodeInvalidOption  ErrorCode = "INVALID_OPTION"
	CodeUnknownInfoKey ErrorCode = "UNKNOWN_INFO_KEY"
	CodeNotSent        ErrorCode = "NOT_SENT"
	CodeAlreadyClosed  ErrorCode = "ALREADY_CLOSED"
)
