package utils

import "net/http"

// AppError adalah error bertipe dengan status code HTTP dan detail terstruktur.
// Taxonomy: validation/business rule -> 400, forbidden -> 403, not found -> 404.
type AppError struct {
	Code    int
	Message string
	Details interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidationError -> 400, field kosong / payload rusak / quantity tidak valid
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewBusinessError -> 400 dengan detail terstruktur opsional
// (mis. insufficient_items saat reservasi stok gagal)
func NewBusinessError(message string, details interface{}) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Details: details}
}

// NewForbiddenError -> 403, role atau branch tidak sesuai
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

// NewNotFoundError -> 404
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}
