package errors

import (
	"net/http"
	"sort"
	"strings"
)

// Field messages shown next to form inputs.
const (
	MsgInvalidPhone      = "Номер телефона должен быть в формате +7XXXXXXXXXX"
	MsgRequired          = "Обязательное поле"
	MsgInvalidEmail      = "Введите корректный адрес электронной почты"
	MsgUsernameTaken     = "Пользователь с таким именем уже существует"
	MsgPasswordsMismatch = "Введённые пароли не совпадают"
	MsgInvalidQuantity   = "Количество должно быть положительным целым числом"
	MsgInvalidPrice      = "Введите корректную цену"
)

// ValidationError carries per-field messages for a rejected form. The empty
// field name holds form-wide messages.
type ValidationError struct {
	fields map[string][]string
}

// NewValidationError creates a validation error with a single field message.
func NewValidationError(field, message string) *ValidationError {
	return new(ValidationError).Add(field, message)
}

// Add appends a message to field and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.fields == nil {
		e.fields = make(map[string][]string)
	}
	e.fields[field] = append(e.fields[field], message)

	return e
}

// Fields returns the messages keyed by field name.
func (e *ValidationError) Fields() map[string][]string {
	return e.fields
}

// Field returns the first message for field, or "".
func (e *ValidationError) Field(field string) string {
	if msgs := e.fields[field]; len(msgs) > 0 {
		return msgs[0]
	}

	return ""
}

// HasErrors reports whether any message was added.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.fields) > 0
}

// OrNil returns nil when no message was added, so callers can collect
// messages and return the result directly.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}

	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		name := k
		if name == "" {
			name = "form"
		}
		parts = append(parts, name+": "+strings.Join(e.fields[k], "; "))
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

func (e *ValidationError) Details() string {
	return e.Error()
}

// Is lets errors.Is(err, ErrValidationFailed) match field-level errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
