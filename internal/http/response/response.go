// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков: подтверждение успеха, текст ошибки
// и сообщения валидации в едином формате.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// SuccessResponse — подтверждение успешной операции без данных.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse — структура ошибки клиенту.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OK возвращает подтверждение успешной операции.
func OK() SuccessResponse {
	return SuccessResponse{
		Success: true,
	}
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Error: msg,
	}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param()))
		case "numeric":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{
		Error: strings.Join(errsMsgs, ", "),
	}
}
