package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// AppError es el error estándar que ve el cliente del API.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // causa, solo para logs
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetail retorna una copia con detalle.
func (e *AppError) WithDetail(d string) *AppError {
	c := *e
	c.Detail = d
	return &c
}

// WithCause retorna una copia con la causa original.
func (e *AppError) WithCause(err error) *AppError {
	c := *e
	c.Err = err
	return &c
}

var (
	ErrBadRequest     = &AppError{Code: "BAD_REQUEST", Message: "invalid request body", HTTPStatus: http.StatusBadRequest}
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "missing or invalid bearer token", HTTPStatus: http.StatusUnauthorized}
	ErrUserRejected   = &AppError{Code: "USER_REJECTED", Message: "Invalid email or password. User not added.", HTTPStatus: http.StatusUnprocessableEntity}
	ErrBackend        = &AppError{Code: "BACKEND_ERROR", Message: "user could not be stored or notified", HTTPStatus: http.StatusBadGateway}
	ErrNotImplemented = &AppError{Code: "NOT_IMPLEMENTED", Message: "not supported by the storage driver", HTTPStatus: http.StatusNotImplemented}
	ErrInternal       = &AppError{Code: "INTERNAL", Message: "internal server error", HTTPStatus: http.StatusInternalServerError}
)

// WriteError escribe err como JSON {code,message,detail}.
func WriteError(w http.ResponseWriter, err *AppError) {
	writeJSON(w, err.HTTPStatus, err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
