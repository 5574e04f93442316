package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth & User Status ---

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrCannotModifySelf - пользователь (напр. админ) пытается изменить себя.
var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrWeakPassword - пароль слишком слабый.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInvalidOTP - неверный или просроченный OTP-код.
var ErrInvalidOTP = ValidationError(map[string]string{
	"code": "Invalid or expired verification code",
})

// ErrUserNotVerified - email не подтвержден.
var ErrUserNotVerified = New(
	CodeForbidden,
	"auth",
	"Please verify your email address",
	http.StatusForbidden,
)

// ErrUserDeactivated - аккаунт отключен администратором.
var ErrUserDeactivated = New(
	CodeForbidden,
	"auth",
	"Your account has been deactivated",
	http.StatusForbidden,
)

// ErrEmployerNotApproved - работодатель еще не одобрен администратором.
var ErrEmployerNotApproved = New(
	CodeForbidden,
	"employer",
	"Your employer account is pending approval",
	http.StatusForbidden,
)

// --- Jobs & Applications ---

// ErrDuplicateApplication - кандидат уже откликался на эту вакансию.
var ErrDuplicateApplication = New(
	CodeConflict,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// ErrJobInactive - вакансия закрыта для откликов.
var ErrJobInactive = New(
	CodeInvalidOperation,
	"job",
	"This job is no longer accepting applications",
	http.StatusBadRequest,
)

// ErrCompanyProfileIncomplete - у работодателя не заполнено название компании.
var ErrCompanyProfileIncomplete = New(
	CodeInvalidOperation,
	"employer",
	"Company name is required before posting jobs",
	http.StatusBadRequest,
)

// --- Uploads & Files ---

// ErrFileTooLarge - файл превышает максимальный размер.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - MIME-тип файла не разрешен.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- External services ---

// ErrDependencyFailure - сбой внешнего сервиса (почта, хранилище, экспорт).
func ErrDependencyFailure(err error, domain string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, "External service failure", http.StatusBadGateway)
}
