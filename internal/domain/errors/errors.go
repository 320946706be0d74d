// Package errors holds the domain error catalog. Every error a use case
// returns to the delivery layer is an AppError carrying its HTTP status.
package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError is the contract the error middleware renders.
type AppError interface {
	error
	HTTPCode() int
	// ErrorCode is the stable machine-readable code, e.g. ORDER_NOT_FOUND.
	ErrorCode() string
	// Message is shown to the customer as is.
	Message() string
	Details() string
}

// BaseError is a catalog entry. Values are shared, so derive copies with
// WithDetails or WithCause instead of mutating them.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is compares business codes, so derived copies still match the catalog value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

func (e *BaseError) WithDetails(details string) *BaseError {
	derived := *e
	derived.details = details

	return &derived
}

// WithCause attaches the underlying failure. The result still renders as e
// while errors.Is and errors.As reach the cause.
func (e *BaseError) WithCause(cause error) error {
	if cause == nil {
		return e
	}

	return &causedError{BaseError: e, cause: errors.WithStack(cause)}
}

type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Error() string { return e.message + ": " + e.cause.Error() }
func (e *causedError) Unwrap() error { return e.cause }

func notFound(code, message string) *BaseError {
	return NewBaseError(http.StatusNotFound, code, message, "")
}

func badRequest(code, message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, code, message, "")
}

func unauthorized(code, message string) *BaseError {
	return NewBaseError(http.StatusUnauthorized, code, message, "")
}

func internal(code, message string) *BaseError {
	return NewBaseError(http.StatusInternalServerError, code, message, "")
}

//nolint:gochecknoglobals
var (
	ErrNotFound         = notFound("NOT_FOUND", "Страница не найдена")
	ErrUserNotFound     = notFound("USER_NOT_FOUND", "Пользователь не найден")
	ErrProductNotFound  = notFound("PRODUCT_NOT_FOUND", "Товар не найден")
	ErrCategoryNotFound = notFound("CATEGORY_NOT_FOUND", "Категория не найдена")
	ErrCartItemNotFound = notFound("CART_ITEM_NOT_FOUND", "Товар в корзине не найден")
	// ErrOrderNotFound also covers orders owned by someone else.
	ErrOrderNotFound = notFound("ORDER_NOT_FOUND", "Заказ не найден")

	ErrValidationFailed       = badRequest("VALIDATION_FAILED", "Ошибка проверки введённых данных")
	ErrInvalidOrderStatus     = badRequest("INVALID_ORDER_STATUS", "Недопустимый статус заказа")
	ErrPasswordStrength       = badRequest("PASSWORD_STRENGTH", "Пароль недостаточно надёжный")
	ErrPasswordForbiddenWords = badRequest("PASSWORD_FORBIDDEN_WORDS", "Пароль содержит запрещённые слова или шаблоны")

	ErrAuthRequired       = unauthorized("AUTH_REQUIRED", "Требуется вход в систему")
	ErrInvalidCredentials = unauthorized("INVALID_CREDENTIALS", "Неверный логин или пароль")
	ErrForbidden          = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Доступ запрещён", "")

	ErrInternalError      = internal("INTERNAL_ERROR", "Внутренняя ошибка сервера")
	ErrTransactionFailed  = internal("TRANSACTION_FAILED", "Ошибка транзакции базы данных")
	ErrUserCreationFailed = internal("USER_CREATION_FAILED", "Не удалось создать пользователя")
	ErrUserUpdateFailed   = internal("USER_UPDATE_FAILED", "Не удалось обновить профиль")
	ErrPasswordHashFailed = internal("PASSWORD_HASH_FAILED", "Ошибка обработки пароля")
)

// DatabaseExecuteError is a failed statement. Details name the operation;
// the driver error stays reachable through Unwrap.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: errors.WithStack(err), details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Ошибка выполнения запроса к базе данных"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
